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

import "github.com/ericmckean/google-url/urlparse"

// CanonicalizeScheme appends the lower-cased scheme and its trailing colon.
// The returned component covers the scheme text up to but not including the
// colon.
//
// A canonical URL always has a scheme. When the input scheme is absent or
// empty, only the colon is written and the call fails; characters outside
// the RFC 3986, Section 3.1 scheme set are escaped best-effort and also
// fail the call.
func CanonicalizeScheme[C Char](spec []C, scheme urlparse.Component, out *Output[byte]) (urlparse.Component, bool) {
	if !scheme.Nonempty() {
		outScheme := urlparse.MakeComponent(out.Len(), 0)
		out.Append(':')
		return outScheme, false
	}

	begin := out.Len()
	ok := true
	for i := scheme.Begin; i < scheme.End(); i++ {
		r := rune(spec[i])
		switch {
		case 'A' <= r && r <= 'Z':
			out.Append(byte(r) + 'a' - 'A')
		case i == scheme.Begin && !isASCIILetter(r),
			i != scheme.Begin && !isSchemeChar(r):
			// A scheme this malformed can never be canonical, but the
			// escaped text keeps the breakage visible to the caller.
			ok = false
			if r < 0x80 {
				appendEscapedByte(out, byte(r))
			} else {
				var size int
				r, size = nextRune(spec, i)
				i += size - 1
				appendEscapedRune(out, r)
			}
		default:
			out.Append(byte(r))
		}
	}
	outScheme := urlparse.MakeRange(begin, out.Len())
	out.Append(':')
	return outScheme, ok
}
