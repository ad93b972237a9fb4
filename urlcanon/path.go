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

// CanonicalizePath appends the canonical hierarchical path. The result
// always begins with a slash; one is prepended when the input is empty or
// does not start with it. Characters outside the path-safe set are
// percent-encoded, valid escapes are copied with normalized hex, and "."
// and ".." segments are left alone (collapsing them is relative
// resolution's job, not a property of an isolated path).
//
// 8-bit input is passed through without UTF-8 validation: the bytes are
// assumed to already be in the encoding the server expects, and high-bit
// bytes are escaped as they are. Wide input is converted to UTF-8, with
// unpaired surrogates escaped as the replacement character.
func CanonicalizePath[C Char](spec []C, path urlparse.Component, out *Output[byte]) (urlparse.Component, bool) {
	begin := out.Len()
	if !path.Nonempty() {
		out.Append('/')
		return urlparse.MakeRange(begin, out.Len()), true
	}
	if rune(spec[path.Begin]) != '/' {
		out.Append('/')
	}
	appendPathText(spec, path.Begin, path.End(), false, out)
	return urlparse.MakeRange(begin, out.Len()), true
}

// FileCanonicalizePath appends a file-URL path, which additionally
// understands Windows drive specs: a leading "<letter>:" or "<letter>|"
// segment canonicalizes to an upper-case "<LETTER>:" after the root slash,
// so "c|/foo" becomes "/C:/foo". Backslashes act as path separators and
// come out as slashes.
func FileCanonicalizePath[C Char](spec []C, path urlparse.Component, out *Output[byte]) (urlparse.Component, bool) {
	begin := out.Len()
	out.Append('/')

	i := path.Begin
	for i < path.End() && isPathSeparator(rune(spec[i])) {
		i++
	}
	if n := driveSpecLength(spec, i, path.End()); n > 0 {
		letter := byte(spec[i])
		if letter >= 'a' {
			letter -= 'a' - 'A'
		}
		out.Append(letter)
		out.Append(':')
		i += n
	}
	appendPathText(spec, i, path.End(), true, out)
	return urlparse.MakeRange(begin, out.Len()), true
}

// driveSpecLength returns the length of a drive spec at offset i (the
// letter plus its ':' or '|' separator), or zero when there is none. The
// spec must be a whole segment: followed by a separator or the end.
func driveSpecLength[C Char](spec []C, i, end int) int {
	if i >= end || !isASCIILetter(rune(spec[i])) {
		return 0
	}
	if i+1 >= end || (rune(spec[i+1]) != ':' && rune(spec[i+1]) != '|') {
		return 0
	}
	if i+2 < end && !isPathSeparator(rune(spec[i+2])) {
		return 0
	}
	return 2
}

// isPathSeparator matches the separators file paths accept.
func isPathSeparator(r rune) bool {
	return r == '/' || r == '\\'
}

// appendPathText escapes path content from spec[i:end]. File paths convert
// backslashes to slashes; standard paths escape them like any other
// out-of-set character.
func appendPathText[C Char](spec []C, i, end int, file bool, out *Output[byte]) {
	for i < end {
		r := rune(spec[i])
		switch {
		case r == '%':
			if _, valid := validEscape(spec, i, end); valid {
				copyEscape(spec, i, end, out)
				i += 3
				continue
			}
			appendEscapedByte(out, '%')
			i++
		case file && r == '\\':
			out.Append('/')
			i++
		case r < 0x80:
			if isPathChar(r) {
				out.Append(byte(r))
			} else {
				appendEscapedByte(out, byte(r))
			}
			i++
		case !isWideChar[C]():
			// Raw high-bit byte in 8-bit input: escape as-is, no
			// UTF-8 validation.
			appendEscapedByte(out, byte(r))
			i++
		default:
			var size int
			r, size = nextRune(spec, i)
			appendEscapedRune(out, r)
			i += size
		}
	}
}
