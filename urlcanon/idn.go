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
	"errors"
	"unicode/utf16"

	"golang.org/x/net/idna"
)

// IDNConverter converts a Unicode host name to its ASCII-compatible
// ("xn--") form using IDNA rules.
type IDNConverter interface {
	// ToASCII converts the UTF-16 host to ASCII-range UTF-16 code units
	// appended to out, which is assumed empty at entry. On error the
	// output contents are undefined and the host cannot be
	// canonicalized.
	ToASCII(host []uint16, out *Output[uint16]) error
}

// errNonASCIIIDNOutput guards against a profile mapping that produces
// non-ASCII output, which would not be a valid canonical host.
var errNonASCIIIDNOutput = errors.New("urlcanon: IDN conversion produced non-ASCII output")

// idnaConverter adapts an x/net/idna profile to the IDNConverter contract.
type idnaConverter struct {
	profile *idna.Profile
}

// NewIDNAConverter returns an IDNConverter backed by the given idna
// profile.
func NewIDNAConverter(profile *idna.Profile) IDNConverter {
	return &idnaConverter{profile: profile}
}

// defaultIDN is used by host canonicalization when the caller supplies no
// converter. The Lookup profile applies UTS 46 mapping with the validity
// checks a resolver would apply, so invalid labels fail the conversion
// rather than slipping into the canonical URL.
var defaultIDN = NewIDNAConverter(idna.Lookup)

func (c *idnaConverter) ToASCII(host []uint16, out *Output[uint16]) error {
	ascii, err := c.profile.ToASCII(string(utf16.Decode(host)))
	if err != nil {
		return err
	}
	for i := 0; i < len(ascii); i++ {
		if ascii[i] > 0x7f {
			return errNonASCIIIDNOutput
		}
		out.Append(uint16(ascii[i]))
	}
	return nil
}
