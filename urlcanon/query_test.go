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

	"golang.org/x/text/encoding/charmap"

	"github.com/ericmckean/google-url/urlparse"
)

func TestCanonicalizeQuery(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Plain key value", "q=hello", "?q=hello"},
		{"Space escaped", "a b", "?a%20b"},
		{"Quote and angle brackets escaped", `a"b<c>d`, "?a%22b%3Cc%3Ed"},
		{"Percent kept verbatim", "a%zzb", "?a%zzb"},
		{"Existing escape kept verbatim", "a%20b", "?a%20b"},
		{"UTF-8 escaped", "\xe4\xb8\xad", "?%E4%B8%AD"},
		{"Control character escaped", "a\x01b", "?a%01b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NewOutput[byte]()
			c := CanonicalizeQuery([]byte(tt.in), comp(tt.in), nil, out)
			if out.String() != tt.want {
				t.Errorf("CanonicalizeQuery(%q) = %q, want %q", tt.in, out.String(), tt.want)
			}
			if c.Extract(out.String()) != tt.want[1:] {
				t.Errorf("query component = %q, want %q", c.Extract(out.String()), tt.want[1:])
			}
		})
	}
}

func TestCanonicalizeQuery_PresenceMatters(t *testing.T) {
	// "no query" and "empty query" are different URLs.
	out := NewOutput[byte]()
	if c := CanonicalizeQuery([]byte(""), urlparse.Component{}, nil, out); c.Present || out.Len() != 0 {
		t.Errorf("absent query wrote %q", out.String())
	}
	out = NewOutput[byte]()
	if c := CanonicalizeQuery([]byte(""), urlparse.MakeComponent(0, 0), nil, out); !c.Present || out.String() != "?" {
		t.Errorf("empty query = %q, want %q", out.String(), "?")
	}
}

func TestCanonicalizeQuery_WideInput(t *testing.T) {
	// Wide input converts to UTF-8 before escaping.
	in := wide("q=中")
	out := NewOutput[byte]()
	CanonicalizeQuery(in, urlparse.MakeComponent(0, len(in)), nil, out)
	if want := "?q=%E4%B8%AD"; out.String() != want {
		t.Errorf("wide query = %q, want %q", out.String(), want)
	}
}

func TestCanonicalizeQuery_Charset(t *testing.T) {
	conv := NewEncodingCharsetConverter(charmap.Windows1252)
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ASCII unchanged", "q=a", "?q=a"},
		{"Space escaped after conversion", "a b", "?a%20b"},
		{"Latin letter re-encoded", "q=Ä", "?q=%C4"},
		{"Unrepresentable becomes reference", "q=你", "?q=%26%2320320%3B"},
		{"Mixed text", "Ä=你", "?%C4=%26%2320320%3B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NewOutput[byte]()
			CanonicalizeQuery([]byte(tt.in), comp(tt.in), conv, out)
			if out.String() != tt.want {
				t.Errorf("CanonicalizeQuery(%q) = %q, want %q", tt.in, out.String(), tt.want)
			}
		})
	}
}

func TestCanonicalizeRef(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{"ASCII fragment", "section-2", "#section-2", true},
		{"Non-ASCII stays raw UTF-8", "résumé", "#résumé", true},
		{"Malformed byte replaced", "a\xffb", "#a�b", false},
		{"Truncated sequence replaced", "a\xc3", "#a�", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NewOutput[byte]()
			c, ok := CanonicalizeRef([]byte(tt.in), comp(tt.in), out)
			if out.String() != tt.want || ok != tt.wantOK {
				t.Errorf("CanonicalizeRef(%q) = %q, %v, want %q, %v",
					tt.in, out.String(), ok, tt.want, tt.wantOK)
			}
			if c.Extract(out.String()) != tt.want[1:] {
				t.Errorf("ref component = %q, want %q", c.Extract(out.String()), tt.want[1:])
			}
		})
	}
}

func TestCanonicalizeRef_UnpairedSurrogate(t *testing.T) {
	in := []uint16{'x', 0xdc00}
	out := NewOutput[byte]()
	_, ok := CanonicalizeRef(in, urlparse.MakeComponent(0, len(in)), out)
	if ok {
		t.Error("unpaired surrogate must report failure")
	}
	if want := "#x�"; out.String() != want {
		t.Errorf("surrogate ref = %q, want %q", out.String(), want)
	}
}

func TestCanonicalizeRef_Absent(t *testing.T) {
	out := NewOutput[byte]()
	c, ok := CanonicalizeRef([]byte(""), urlparse.Component{}, out)
	if !ok || c.Present || out.Len() != 0 {
		t.Errorf("absent ref wrote %q", out.String())
	}
}
