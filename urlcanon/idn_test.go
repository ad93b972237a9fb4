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

//nolint:testpackage // White-box tests; they exercise unexported helpers alongside the exported API.
package urlcanon

import (
	"testing"

	"golang.org/x/net/idna"
)

func TestIDNAConverterToASCII(t *testing.T) {
	tests := []struct {
		name string
		host string
		want string // empty means conversion must fail
	}{
		{"ASCII passes through", "example.com", "example.com"},
		{"German umlaut", "bücher.de", "xn--bcher-kva.de"},
		{"Han label", "例え.jp", "xn--r8jz45g.jp"},
		{"Mixed labels", "a.ñ.example", "a.xn--ida.example"},
		{"Disallowed character fails", "a b.example", ""},
	}

	conv := NewIDNAConverter(idna.Lookup)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NewOutputCapacity[uint16](64)
			err := conv.ToASCII(wide(tt.host), out)
			if tt.want == "" {
				if err == nil {
					t.Errorf("ToASCII(%q) = %q, want error", tt.host, out.String())
				}
				return
			}
			if err != nil {
				t.Fatalf("ToASCII(%q) failed: %v", tt.host, err)
			}
			if out.String() != tt.want {
				t.Errorf("ToASCII(%q) = %q, want %q", tt.host, out.String(), tt.want)
			}
		})
	}
}

// CanonicalizeHost accepts a caller-supplied converter in place of the
// package default, which is how embedders substitute their own IDN policy.
func TestCanonicalizeHost_CustomIDNConverter(t *testing.T) {
	in := "bücher.de"
	out := NewOutput[byte]()
	c, ok := CanonicalizeHost([]byte(in), comp(in), NewIDNAConverter(idna.Display), out)
	if !ok {
		t.Fatalf("CanonicalizeHost with custom converter failed: %q", out.String())
	}
	if want := "xn--bcher-kva.de"; out.String() != want {
		t.Errorf("host = %q, want %q", out.String(), want)
	}
	if c.Extract(out.String()) != out.String() {
		t.Errorf("component does not cover the output: %q", c.Extract(out.String()))
	}
}
