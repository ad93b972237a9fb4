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

// Package urlparse defines the component-range data model shared by the URL
// canonicalization engine and any lexical parser that feeds it.
//
// A Component marks one URL part as a half-open range into a source string,
// and a Parsed aggregates the components describing one URL's structure.
// Ranges always address the string they were derived from; they never alias
// canonicalizer output unless they were produced by a canonicalizer for that
// output.
package urlparse

// Component marks one URL part as the half-open range
// [Begin, Begin+Len) into a source string.
//
// A Component distinguishes "absent" from "present but empty": an empty
// query after a bare "?" is present with Len == 0, while a URL with no "?"
// at all has an absent query. The zero Component is absent.
type Component struct {
	// Begin is the offset of the first code unit of the part.
	Begin int
	// Len is the number of code units in the part. It is never negative.
	Len int
	// Present reports whether the part exists at all. When false, Begin
	// and Len are meaningless.
	Present bool
}

// MakeComponent builds a present Component from an offset and a length.
func MakeComponent(begin, length int) Component {
	return Component{Begin: begin, Len: length, Present: true}
}

// MakeRange builds a present Component covering [begin, end).
func MakeRange(begin, end int) Component {
	return Component{Begin: begin, Len: end - begin, Present: true}
}

// End returns the offset one past the last code unit of the part.
func (c Component) End() int {
	return c.Begin + c.Len
}

// Nonempty reports whether the part is present and has at least one code unit.
func (c Component) Nonempty() bool {
	return c.Present && c.Len > 0
}

// Extract returns the substring of s the component addresses, or "" for an
// absent component.
func (c Component) Extract(s string) string {
	if !c.Present {
		return ""
	}
	return s[c.Begin:c.End()]
}

// Parsed aggregates the components describing the logical structure of one
// URL string. Absent components are simply not part of that URL.
//
// Two Parsed values commonly coexist: one describing the source string(s) an
// operation consumes, and one describing the freshly produced output string.
type Parsed struct {
	// Scheme (without the trailing colon).
	Scheme Component
	// Username, before the host. Password is separated from it by a colon.
	Username Component
	Password Component
	// Host name or IP literal. For a bracketed IPv6 literal the range
	// includes the brackets.
	Host Component
	// Port digits (without the leading colon).
	Port Component
	// Path, including the leading slash for hierarchical URLs. For opaque
	// schemes this is everything between the scheme colon and the query.
	Path Component
	// Query (without the leading question mark).
	Query Component
	// Ref is the reference fragment (without the leading hash mark).
	Ref Component
}
