/*
Copyright 2026 The google-url Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package urlcanon

import (
	"unicode/utf16"

	"github.com/ericmckean/google-url/urlparse"
)

// CanonicalizeQuery appends "?" and the re-encoded query whenever a query
// component is present, even an empty one: "no query" and "empty query" are
// different URLs. The returned component covers the text after the "?".
//
// The query is re-encoded from its logical character form into the target
// character set through the converter; a nil converter means UTF-8.
// This step cannot fail: malformed input sequences become the replacement
// character and processing continues, so some output is always produced.
func CanonicalizeQuery[C Char](spec []C, query urlparse.Component, converter CharsetConverter, out *Output[byte]) urlparse.Component {
	if !query.Present {
		return urlparse.Component{}
	}
	out.Append('?')
	begin := out.Len()

	if converter == nil && !isWideChar[C]() {
		// 8-bit UTF-8 input staying UTF-8: escape straight from the
		// source, no conversion pass.
		for i := query.Begin; i < query.End(); i++ {
			b := byte(spec[i])
			if isQueryChar(b) {
				out.Append(b)
			} else {
				appendEscapedByte(out, b)
			}
		}
		return urlparse.MakeRange(begin, out.Len())
	}

	converted := NewOutputCapacity[byte](query.Len + 16)
	if converter == nil {
		appendQueryUTF8(spec, query, converted)
	} else {
		converter.ConvertFromUTF16(queryUTF16(spec, query), converted)
	}
	for i := 0; i < converted.Len(); i++ {
		b := converted.At(i)
		// The converter's own escapes (the "%26%23...%3B" references)
		// arrive pre-escaped and pass through untouched.
		if isQueryChar(b) {
			out.Append(b)
		} else {
			appendEscapedByte(out, b)
		}
	}
	return urlparse.MakeRange(begin, out.Len())
}

// appendQueryUTF8 transcodes the query to UTF-8, substituting U+FFFD for
// malformed sequences.
func appendQueryUTF8[C Char](spec []C, query urlparse.Component, out *Output[byte]) {
	for i := query.Begin; i < query.End(); {
		r, size := nextRune(spec, i)
		appendRune(out, r)
		i += size
	}
}

// queryUTF16 produces the logical UTF-16 form of the query for the charset
// converter, substituting U+FFFD for malformed sequences.
func queryUTF16[C Char](spec []C, query urlparse.Component) []uint16 {
	if isWideChar[C]() {
		wide := make([]uint16, query.Len)
		for i := range wide {
			wide[i] = uint16(spec[query.Begin+i])
		}
		return wide
	}
	runes := make([]rune, 0, query.Len)
	for i := query.Begin; i < query.End(); {
		r, size := nextRune(spec, i)
		runes = append(runes, r)
		i += size
	}
	return utf16.Encode(runes)
}
