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

//nolint:testpackage // White-box tests alongside the data model.
package urlparse

import "testing"

func TestComponentZeroValueIsAbsent(t *testing.T) {
	var c Component
	if c.Present {
		t.Error("zero Component must be absent")
	}
	if c.Nonempty() {
		t.Error("zero Component must not be nonempty")
	}
	if c.Extract("anything") != "" {
		t.Error("absent Component must extract the empty string")
	}
}

func TestComponentAbsentVersusEmpty(t *testing.T) {
	// "http://h/?" has a present, empty query; "http://h/" has none. The
	// distinction must survive the Component representation.
	empty := MakeComponent(10, 0)
	var absent Component

	if !empty.Present {
		t.Error("MakeComponent must produce a present component")
	}
	if empty.Nonempty() {
		t.Error("a present empty component is not nonempty")
	}
	if empty == absent {
		t.Error("present-empty and absent must not compare equal")
	}
}

func TestMakeRange(t *testing.T) {
	tests := []struct {
		name       string
		begin, end int
		wantLen    int
	}{
		{"Simple range", 2, 7, 5},
		{"Empty range", 4, 4, 0},
		{"From zero", 0, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := MakeRange(tt.begin, tt.end)
			if !c.Present || c.Begin != tt.begin || c.Len != tt.wantLen {
				t.Errorf("MakeRange(%d, %d) = %+v, want begin %d len %d",
					tt.begin, tt.end, c, tt.begin, tt.wantLen)
			}
			if c.End() != tt.end {
				t.Errorf("End() = %d, want %d", c.End(), tt.end)
			}
		})
	}
}

func TestComponentExtract(t *testing.T) {
	s := "http://example.com/path"
	host := MakeRange(7, 18)
	if host.Extract(s) != "example.com" {
		t.Errorf("Extract = %q, want %q", host.Extract(s), "example.com")
	}
	path := MakeRange(18, len(s))
	if path.Extract(s) != "/path" {
		t.Errorf("Extract = %q, want %q", path.Extract(s), "/path")
	}
}
