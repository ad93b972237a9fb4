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
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

const upperHexDigits = "0123456789ABCDEF"

// isASCIILetter checks if a rune is an ASCII letter.
func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// isASCIIDigit checks if a rune is an ASCII digit.
func isASCIIDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isASCIIHexDigit checks if a rune is an ASCII hexadecimal digit.
func isASCIIHexDigit(r rune) bool {
	return isASCIIDigit(r) || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

// hexCharValue returns the numeric value of an ASCII hexadecimal digit.
func hexCharValue(r rune) byte {
	switch {
	case isASCIIDigit(r):
		return byte(r - '0')
	case 'a' <= r && r <= 'f':
		return byte(r-'a') + 10
	default:
		return byte(r-'A') + 10
	}
}

// isSchemeChar checks if a rune may appear in a scheme after the first
// character, per RFC 3986, Section 3.1.
func isSchemeChar(r rune) bool {
	return isASCIILetter(r) || isASCIIDigit(r) || r == '+' || r == '-' || r == '.'
}

// isUserInfoChar checks if a rune may appear unescaped in the username or
// password. This is the RFC 3986 unreserved and sub-delims sets; the
// delimiters ':', '@', and '/' must be escaped.
func isUserInfoChar(r rune) bool {
	return isASCIILetter(r) || isASCIIDigit(r) || strings.ContainsRune("-._~!$&'()*+,;=", r)
}

// isPathChar checks if a rune may appear unescaped in a hierarchical path.
// This is the RFC 3986 pchar set plus '/'; '%' is handled separately so
// existing escape sequences survive.
func isPathChar(r rune) bool {
	return isASCIILetter(r) || isASCIIDigit(r) ||
		strings.ContainsRune("-._~!$&'()*+,;=:@/", r)
}

// isQueryChar checks if a byte of converted query output can be emitted
// without escaping. Control bytes, space, high bytes, and the characters
// that can confuse an embedding document are escaped.
func isQueryChar(b byte) bool {
	if b <= 0x20 || b > 0x7e {
		return false
	}
	switch b {
	case '"', '#', '<', '>':
		return false
	}
	return true
}

// IsValidHostCharacter reports whether r is legal in a canonical host name:
// ASCII alphanumerics and a small punctuation set. Percent-escapes are
// unescaped before this applies, and non-ASCII host text goes through IDN
// conversion instead.
func IsValidHostCharacter(r rune) bool {
	return isASCIILetter(r) || isASCIIDigit(r) ||
		strings.ContainsRune("-._~!$&'()*+,;=", r)
}

// appendEscapedByte writes b as a percent-escape with upper-case hex.
func appendEscapedByte(out *Output[byte], b byte) {
	out.Append('%')
	out.Append(upperHexDigits[b>>4])
	out.Append(upperHexDigits[b&0xf])
}

// appendEscapedRune writes the UTF-8 encoding of r, each byte
// percent-escaped.
func appendEscapedRune(out *Output[byte], r rune) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	for i := 0; i < n; i++ {
		appendEscapedByte(out, buf[i])
	}
}

// appendRune writes the UTF-8 encoding of r unescaped.
func appendRune(out *Output[byte], r rune) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	out.AppendSlice(buf[:n])
}

// isWideChar reports whether C is a 16-bit code unit type. The comparison
// folds to a constant per instantiation.
func isWideChar[C Char]() bool {
	return ^C(0) > 0xff
}

// nextRune decodes one rune from s starting at offset i and returns it with
// the number of code units consumed. Byte input decodes as UTF-8 and uint16
// input as UTF-16. A malformed sequence decodes to utf8.RuneError with size
// 1, which is how callers detect invalid input.
func nextRune[C Char](s []C, i int) (rune, int) {
	if isWideChar[C]() {
		c := uint16(s[i])
		if utf16.IsSurrogate(rune(c)) {
			if c < 0xdc00 && i+1 < len(s) {
				c2 := uint16(s[i+1])
				if r := utf16.DecodeRune(rune(c), rune(c2)); r != utf8.RuneError {
					return r, 2
				}
			}
			return utf8.RuneError, 1
		}
		return rune(c), 1
	}

	var buf [utf8.UTFMax]byte
	n := min(utf8.UTFMax, len(s)-i)
	for k := 0; k < n; k++ {
		buf[k] = byte(s[i+k])
	}
	r, size := utf8.DecodeRune(buf[:n])
	return r, size
}

// validEscape reports whether s has a complete percent-escape at offset i
// (which must hold '%'), and returns its decoded byte value. The lookahead
// is bounded by end, the exclusive limit of the component being read: an
// escape truncated by the component boundary is not valid even when hex
// digits happen to follow in the source string.
func validEscape[C Char](s []C, i, end int) (byte, bool) {
	if i+2 >= end {
		return 0, false
	}
	c1, c2 := rune(s[i+1]), rune(s[i+2])
	if !isASCIIHexDigit(c1) || !isASCIIHexDigit(c2) {
		return 0, false
	}
	return hexCharValue(c1)<<4 | hexCharValue(c2), true
}

// copyEscape writes the normalized (upper-case hex) form of a percent-escape
// already validated by validEscape.
func copyEscape[C Char](s []C, i, end int, out *Output[byte]) {
	b, _ := validEscape(s, i, end)
	appendEscapedByte(out, b)
}
