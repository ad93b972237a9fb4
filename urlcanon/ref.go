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
	"unicode/utf8"

	"github.com/ericmckean/google-url/urlparse"
)

// CanonicalizeRef appends "#" and the reference fragment whenever one is
// present. Unlike every other component the output may carry non-ASCII
// text, but it is always valid UTF-8: malformed input sequences become the
// Unicode replacement character.
//
// The call reports false when a substitution happened. Whole-URL
// canonicalization deliberately ignores that flag, because a mangled
// fragment must not invalidate an otherwise good URL.
func CanonicalizeRef[C Char](spec []C, ref urlparse.Component, out *Output[byte]) (urlparse.Component, bool) {
	if !ref.Present {
		return urlparse.Component{}, true
	}
	out.Append('#')
	begin := out.Len()
	ok := true
	for i := ref.Begin; i < ref.End(); {
		r, size := nextRune(spec, i)
		if r == utf8.RuneError && size == 1 {
			ok = false
		}
		appendRune(out, r)
		i += size
	}
	return urlparse.MakeRange(begin, out.Len()), ok
}
