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
	"net/netip"
	"strconv"

	"github.com/ericmckean/google-url/urlparse"
)

// CanonicalizeIPAddress tries to interpret the host component as an IP
// address literal. When it is one, the canonical text is appended (IPv4 as
// four decimal octets joined by dots, IPv6 as lower-case RFC 5952 hex in
// brackets), the output range is returned, and the call reports true. When
// it is not, nothing is written and the host should be resolved like any
// other name.
//
// The host canonicalizer calls this automatically on unescaped input; the
// standalone entry point exists for diagnostics on already-canonical hosts.
func CanonicalizeIPAddress[C Char](spec []C, host urlparse.Component, out *Output[byte]) (urlparse.Component, bool) {
	if !host.Nonempty() {
		return urlparse.Component{}, false
	}
	text := make([]byte, 0, host.Len)
	for i := host.Begin; i < host.End(); i++ {
		c := spec[i]
		if uint32(c) > 0x7f {
			return urlparse.Component{}, false
		}
		text = append(text, byte(c))
	}
	return appendIPAddress(text, out)
}

// appendIPAddress is the byte-level worker behind CanonicalizeIPAddress.
func appendIPAddress(host []byte, out *Output[byte]) (urlparse.Component, bool) {
	if len(host) >= 2 && host[0] == '[' && host[len(host)-1] == ']' {
		return appendIPv6(host[1:len(host)-1], out)
	}
	addr, ok := parseIPv4(host)
	if !ok {
		return urlparse.Component{}, false
	}
	begin := out.Len()
	for i, octet := range addr {
		if i > 0 {
			out.Append('.')
		}
		out.AppendSlice([]byte(strconv.Itoa(int(octet))))
	}
	return urlparse.MakeRange(begin, out.Len()), true
}

// appendIPv6 canonicalizes the inside of a bracketed literal. Zone
// identifiers and embedded IPv4 forms other than the well-known mapped
// prefix come out however the formatter renders them; anything unparseable
// is not an IP literal.
func appendIPv6(inner []byte, out *Output[byte]) (urlparse.Component, bool) {
	addr, err := netip.ParseAddr(string(inner))
	if err != nil || !addr.Is6() || addr.Zone() != "" {
		return urlparse.Component{}, false
	}
	begin := out.Len()
	out.Append('[')
	out.AppendSlice([]byte(addr.String()))
	out.Append(']')
	return urlparse.MakeRange(begin, out.Len()), true
}

// parseIPv4 interprets host with the legacy dotted-number rules: one to
// four dot-separated numbers, each decimal, 0x-prefixed hexadecimal, or
// leading-zero octal, where the last number fills all remaining octets
// ("16.0x10.257" covers three). One trailing dot is tolerated. Overflow or
// any non-numeric part means the host is not an IPv4 literal.
func parseIPv4(host []byte) (addr [4]byte, ok bool) {
	if len(host) == 0 {
		return addr, false
	}
	// Tolerate a single trailing dot, as the resolver tradition does.
	if host[len(host)-1] == '.' {
		host = host[:len(host)-1]
		if len(host) == 0 {
			return addr, false
		}
	}

	var parts [][]byte
	start := 0
	for i := 0; i <= len(host); i++ {
		if i == len(host) || host[i] == '.' {
			parts = append(parts, host[start:i])
			start = i + 1
		}
	}
	if len(parts) > 4 {
		return addr, false
	}

	values := make([]uint32, len(parts))
	for i, part := range parts {
		v, valid := parseIPv4Number(part)
		if !valid {
			return addr, false
		}
		values[i] = v
	}

	// All but the last number are single octets; the last spans whatever
	// octets remain.
	last := len(values) - 1
	for i := 0; i < last; i++ {
		if values[i] > 0xff {
			return addr, false
		}
		addr[i] = byte(values[i])
	}
	remaining := 4 - last
	if remaining < 4 && uint64(values[last]) >= uint64(1)<<(8*remaining) {
		return addr, false
	}
	v := values[last]
	for i := 3; i >= last; i-- {
		addr[i] = byte(v)
		v >>= 8
	}
	return addr, true
}

// parseIPv4Number reads one dotted-number component in its detected base.
func parseIPv4Number(part []byte) (uint32, bool) {
	if len(part) == 0 {
		return 0, false
	}
	base := uint32(10)
	if len(part) >= 2 && part[0] == '0' && (part[1] == 'x' || part[1] == 'X') {
		base = 16
		part = part[2:]
		if len(part) == 0 {
			return 0, false
		}
	} else if len(part) >= 2 && part[0] == '0' {
		base = 8
		part = part[1:]
	}

	var value uint32
	for _, c := range part {
		r := rune(c)
		var digit byte
		switch {
		case isASCIIDigit(r) && uint32(r-'0') < base:
			digit = byte(r - '0')
		case base == 16 && isASCIIHexDigit(r):
			digit = hexCharValue(r)
		default:
			return 0, false
		}
		if value > (0xffffffff-uint32(digit))/base {
			return 0, false
		}
		value = value*base + uint32(digit)
	}
	return value, true
}
