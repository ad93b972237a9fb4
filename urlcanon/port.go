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

	"github.com/ericmckean/google-url/urlparse"
)

const (
	// UnknownPort is the default-port value for schemes without one; it
	// disables default-port elision.
	UnknownPort = -1

	// maxPort is the largest valid port number.
	maxPort = 65535
)

// CanonicalizePort appends ":<port>" when a port is present. The returned
// component covers the digits only.
//
// The engine holds no scheme/port table; the caller supplies the scheme's
// default port (UnknownPort when there is none). A port equal to the
// default is elided entirely, so "http://host:80/" canonicalizes without
// the redundant ":80". Leading zeros are dropped.
//
// Non-decimal or out-of-range input fails, but a best-effort ":" plus the
// original text is still written so the caller can recognize the malformed
// output without silently losing data.
func CanonicalizePort[C Char](spec []C, port urlparse.Component, defaultPort int, out *Output[byte]) (urlparse.Component, bool) {
	if !port.Nonempty() {
		// "host:" with nothing after the colon canonicalizes the same
		// as no port at all.
		return urlparse.Component{}, true
	}

	value := 0
	for i := port.Begin; i < port.End(); i++ {
		r := rune(spec[i])
		if !isASCIIDigit(r) || value > maxPort {
			return appendBrokenPort(spec, port, out), false
		}
		value = value*10 + int(r-'0')
	}
	if value > maxPort {
		return appendBrokenPort(spec, port, out), false
	}

	if value == defaultPort {
		return urlparse.Component{}, true
	}

	out.Append(':')
	begin := out.Len()
	out.AppendSlice([]byte(strconv.Itoa(value)))
	return urlparse.MakeRange(begin, out.Len()), true
}

// appendBrokenPort preserves unusable port text in escaped form.
func appendBrokenPort[C Char](spec []C, port urlparse.Component, out *Output[byte]) urlparse.Component {
	out.Append(':')
	begin := out.Len()
	for i := port.Begin; i < port.End(); {
		r, size := nextRune(spec, i)
		if r < 0x80 && r > 0x20 && r != 0x7f {
			out.Append(byte(r))
		} else {
			appendEscapedRune(out, r)
		}
		i += size
	}
	return urlparse.MakeRange(begin, out.Len())
}
