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
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/ericmckean/google-url/urlparse"
)

// CanonicalizeHost appends the canonical form of the host component.
//
// The strategy is: unescape percent-encoded sequences while rejecting
// characters no host may contain, try an IP-address interpretation and emit
// the canonical numeric text on success, and otherwise treat the host as a
// registrable name: lower-cased ASCII, with non-ASCII names NFC-normalized
// and delegated to the IDN converter for an "xn--" form. A nil converter
// selects the package default backed by the IDNA Lookup profile.
//
// On failure a best-effort host is still written, with illegal characters
// escaped so a displayed URL shows what was wrong; such output must not be
// used for navigation.
func CanonicalizeHost[C Char](spec []C, host urlparse.Component, idn IDNConverter, out *Output[byte]) (urlparse.Component, bool) {
	begin := out.Len()
	if !host.Nonempty() {
		c := urlparse.Component{}
		if host.Present {
			c = urlparse.MakeComponent(begin, 0)
		}
		return c, true
	}

	unescaped, ok := unescapeHost(spec, host)

	if hasNonASCII(unescaped) {
		if idn == nil {
			idn = defaultIDN
		}
		ascii, converted := idnToASCII(unescaped, idn)
		if !converted {
			// Escape what we have so the breakage stays visible.
			appendInvalidHost(unescaped, out)
			return urlparse.MakeRange(begin, out.Len()), false
		}
		unescaped = ascii
	}

	// Lower-case in place; hosts are case-insensitive and canonical form
	// is lower.
	for i, c := range unescaped {
		if 'A' <= c && c <= 'Z' {
			unescaped[i] = c + 'a' - 'A'
		}
	}

	if ipComp, isIP := appendIPAddress(unescaped, out); isIP {
		return ipComp, ok
	}
	if len(unescaped) >= 1 && unescaped[0] == '[' {
		// Bracketed but not a valid IPv6 literal.
		ok = false
	}

	for _, c := range unescaped {
		if c < 0x80 && IsValidHostCharacter(rune(c)) {
			out.Append(c)
		} else {
			ok = false
			appendEscapedByte(out, c)
		}
	}
	return urlparse.MakeRange(begin, out.Len()), ok
}

// unescapeHost decodes the host component into UTF-8 bytes, resolving
// percent-escapes and reporting whether every character was legal. Control
// characters, whitespace, and embedded nulls are never acceptable no matter
// how they were spelled.
func unescapeHost[C Char](spec []C, host urlparse.Component) ([]byte, bool) {
	unescaped := make([]byte, 0, host.Len)
	ok := true
	for i := host.Begin; i < host.End(); {
		r, size := nextRune(spec, i)
		if r == '%' {
			if b, valid := validEscape(spec, i, host.End()); valid {
				unescaped = append(unescaped, b)
				i += 3
				continue
			}
			// A bare '%' is not a host character; keep it so the
			// escaping pass flags it.
			ok = false
			unescaped = append(unescaped, '%')
			i++
			continue
		}
		if r <= 0x20 || r == 0x7f {
			ok = false
		}
		if r == utf8.RuneError && size == 1 {
			ok = false
		}
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], r)
		unescaped = append(unescaped, buf[:n]...)
		i += size
	}
	return unescaped, ok
}

// hasNonASCII reports whether any byte is outside the ASCII range.
func hasNonASCII(s []byte) bool {
	for _, c := range s {
		if c > 0x7f {
			return true
		}
	}
	return false
}

// idnToASCII runs the NFC + IDN pipeline over a UTF-8 host and returns the
// ASCII bytes.
func idnToASCII(host []byte, idn IDNConverter) ([]byte, bool) {
	normalized := norm.NFC.Bytes(host)
	wide := utf16.Encode([]rune(string(normalized)))

	wideOut := NewOutputCapacity[uint16](len(wide) + 16)
	if err := idn.ToASCII(wide, wideOut); err != nil {
		return nil, false
	}

	ascii := make([]byte, wideOut.Len())
	for i := range ascii {
		ascii[i] = byte(wideOut.At(i))
	}
	return ascii, true
}

// appendInvalidHost writes a failed host with everything suspicious
// escaped. ASCII letters still fold so repeated canonicalization of the
// broken output is stable.
func appendInvalidHost(unescaped []byte, out *Output[byte]) {
	for _, c := range unescaped {
		switch {
		case 'A' <= c && c <= 'Z':
			out.Append(c + 'a' - 'A')
		case c < 0x80 && IsValidHostCharacter(rune(c)):
			out.Append(c)
		default:
			appendEscapedByte(out, c)
		}
	}
}
