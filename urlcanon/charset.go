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
	"strconv"
	"unicode/utf16"

	"golang.org/x/text/encoding"
)

// CharsetConverter re-encodes query strings into a target character set.
// Implementations are injected per call; the engine registers nothing
// globally and falls back to UTF-8 when no converter is supplied.
type CharsetConverter interface {
	// ConvertFromUTF16 converts the input to the target encoding,
	// appending to out. It must not fail: a character the target set
	// cannot represent is emitted as a decimal numeric character
	// reference with the '&', '#', and ';' percent-escaped, e.g.
	// "%26%2320320%3B" for U+4F60.
	ConvertFromUTF16(input []uint16, out *Output[byte])
}

// EncodingCharsetConverter adapts an x/text encoding to the
// CharsetConverter contract. It is stateless between calls and safe to
// share across goroutines.
//
// Characters are encoded rune by rune so an unrepresentable one can be
// replaced by its numeric character reference without disturbing its
// neighbors; stateful encodings that shift between calls are therefore not
// supported, which matches the single-byte and UTF code pages query
// re-encoding targets in practice.
type EncodingCharsetConverter struct {
	enc encoding.Encoding
}

// NewEncodingCharsetConverter returns a converter targeting enc.
func NewEncodingCharsetConverter(enc encoding.Encoding) *EncodingCharsetConverter {
	return &EncodingCharsetConverter{enc: enc}
}

func (c *EncodingCharsetConverter) ConvertFromUTF16(input []uint16, out *Output[byte]) {
	encoder := c.enc.NewEncoder()
	for _, r := range utf16.Decode(input) {
		encoded, err := encoder.Bytes([]byte(string(r)))
		if err != nil {
			appendNumericReference(out, r)
			continue
		}
		out.AppendSlice(encoded)
	}
}

// appendNumericReference writes "&#NNNN;" for r with the ampersand, number
// sign, and semicolon percent-escaped.
func appendNumericReference(out *Output[byte], r rune) {
	out.AppendSlice([]byte("%26%23"))
	out.AppendSlice([]byte(strconv.Itoa(int(r))))
	out.AppendSlice([]byte("%3B"))
}
