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

	"github.com/ericmckean/google-url/urlparse"
)

// comp builds a component covering all of s, or an absent one for the
// empty string. Tests that need a present-but-empty component build it
// directly.
func comp(s string) urlparse.Component {
	if s == "" {
		return urlparse.Component{}
	}
	return urlparse.MakeComponent(0, len(s))
}

func TestCanonicalizeScheme(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{"Lower-case passes through", "http", "http:", true},
		{"Upper-case folds", "HTTP", "http:", true},
		{"Mixed case folds", "wS", "ws:", true},
		{"Plus minus dot allowed", "foo+bar-baz.quux", "foo+bar-baz.quux:", true},
		{"Leading digit rejected", "1http", "%31http:", false},
		{"Space escaped and rejected", "ht tp", "ht%20tp:", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NewOutput[byte]()
			c, ok := CanonicalizeScheme([]byte(tt.in), comp(tt.in), out)
			if out.String() != tt.want || ok != tt.wantOK {
				t.Errorf("CanonicalizeScheme(%q) = %q, %v, want %q, %v",
					tt.in, out.String(), ok, tt.want, tt.wantOK)
			}
			// The component excludes the trailing colon.
			if got := c.Extract(out.String()); ok && got+":" != tt.want {
				t.Errorf("scheme component = %q, want %q", got, tt.want[:len(tt.want)-1])
			}
		})
	}
}

func TestCanonicalizeScheme_Absent(t *testing.T) {
	out := NewOutput[byte]()
	_, ok := CanonicalizeScheme([]byte(""), urlparse.Component{}, out)
	if ok {
		t.Error("absent scheme must fail")
	}
	if out.String() != ":" {
		t.Errorf("absent scheme output = %q, want %q", out.String(), ":")
	}
}

func TestCanonicalizeUserInfo(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		want     string
	}{
		{"Both empty writes nothing", "", "", ""},
		{"Username only", "user", "", "user@"},
		{"Username and password", "user", "pass", "user:pass@"},
		{"Password only", "", "pass", ":pass@"},
		{"Reserved characters escaped", "us er", "p@ss", "us%20er:p%40ss@"},
		{"Unreserved marks kept", "a.b-c_d~e", "", "a.b-c_d~e@"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NewOutput[byte]()
			_, _, ok := CanonicalizeUserInfo(
				[]byte(tt.username), comp(tt.username),
				[]byte(tt.password), comp(tt.password), out)
			if !ok {
				t.Fatalf("CanonicalizeUserInfo(%q, %q) failed", tt.username, tt.password)
			}
			if out.String() != tt.want {
				t.Errorf("CanonicalizeUserInfo(%q, %q) = %q, want %q",
					tt.username, tt.password, out.String(), tt.want)
			}
		})
	}
}

func TestCanonicalizeHost(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{"Lower-case passes through", "example.com", "example.com", true},
		{"Upper-case folds", "ExAmPle.CoM", "example.com", true},
		{"Escapes decoded then folded", "%41%42%43.com", "abc.com", true},
		{"IPv4 dotted decimal", "127.0.0.1", "127.0.0.1", true},
		{"IPv4 hex components", "0x1.0x1.0x1.0x1", "1.1.1.1", true},
		{"IPv4 octal components", "0177.0.0.01", "127.0.0.1", true},
		{"IPv4 partial fills low octets", "192.168.257", "192.168.1.1", true},
		{"IPv6 compressed", "[0:0:0:0:0:0:0:1]", "[::1]", true},
		{"IPv6 already canonical", "[::1]", "[::1]", true},
		{"IDN to punycode", "bücher.de", "xn--bcher-kva.de", true},
		{"IDN escaped UTF-8", "b%C3%BCcher.de", "xn--bcher-kva.de", true},
		{"Space rejected", "exa mple.com", "exa%20mple.com", false},
		{"Bare percent rejected", "100%.com", "100%25.com", false},
		{"Bracket without IPv6 rejected", "[not-an-ip]", "%5Bnot-an-ip%5D", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NewOutput[byte]()
			c, ok := CanonicalizeHost([]byte(tt.in), comp(tt.in), nil, out)
			if out.String() != tt.want || ok != tt.wantOK {
				t.Errorf("CanonicalizeHost(%q) = %q, %v, want %q, %v",
					tt.in, out.String(), ok, tt.want, tt.wantOK)
			}
			if ok && c.Extract(out.String()) != tt.want {
				t.Errorf("host component = %q, want %q", c.Extract(out.String()), tt.want)
			}
		})
	}
}

// An escape cut off by the host component boundary is a bare percent, not
// a decode of hex digits belonging to the next component.
func TestCanonicalizeHost_EscapeCutByComponentEnd(t *testing.T) {
	src := []byte("ab%41cd")
	out := NewOutput[byte]()
	_, ok := CanonicalizeHost(src, urlparse.MakeComponent(0, 4), nil, out)
	if ok {
		t.Error("host with a truncated escape must fail")
	}
	if want := "ab%254"; out.String() != want {
		t.Errorf("truncated-escape host = %q, want %q", out.String(), want)
	}
}

func TestCanonicalizeHost_Empty(t *testing.T) {
	out := NewOutput[byte]()
	c, ok := CanonicalizeHost([]byte(""), urlparse.Component{}, nil, out)
	if !ok || out.Len() != 0 {
		t.Errorf("absent host = %q, %v, want empty output and ok", out.String(), ok)
	}
	if c.Nonempty() {
		t.Error("absent host must not produce a nonempty component")
	}
}

func TestCanonicalizePort(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		defaultPort int
		want        string
		wantOK      bool
	}{
		{"Non-default kept", "8080", 80, ":8080", true},
		{"Default elided", "80", 80, "", true},
		{"No default keeps value", "80", UnknownPort, ":80", true},
		{"Other scheme default keeps value", "80", 8080, ":80", true},
		{"Leading zeros dropped", "008080", 80, ":8080", true},
		{"Zero-padded default elided", "0080", 80, "", true},
		{"Non-digit fails", "12x", UnknownPort, ":12x", false},
		{"Out of range fails", "66000", UnknownPort, ":66000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NewOutput[byte]()
			_, ok := CanonicalizePort([]byte(tt.in), comp(tt.in), tt.defaultPort, out)
			if out.String() != tt.want || ok != tt.wantOK {
				t.Errorf("CanonicalizePort(%q, %d) = %q, %v, want %q, %v",
					tt.in, tt.defaultPort, out.String(), ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCanonicalizePort_EmptyElided(t *testing.T) {
	// "host:" with nothing after the colon writes no port at all.
	out := NewOutput[byte]()
	c, ok := CanonicalizePort([]byte(""), urlparse.MakeComponent(0, 0), 80, out)
	if !ok || out.Len() != 0 || c.Present {
		t.Errorf("empty port = %q, %v, component %+v; want no output", out.String(), ok, c)
	}
}
