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

// Package urlcanon canonicalizes URLs: given a source string and the
// pre-split component ranges a lexical parser produced for it, the package
// builds the normalized, validated, re-encoded form that different URL
// schemes require, along with updated component ranges over the output.
//
// Three kinds of entry point cover the common operations:
//   - Whole-URL canonicalization (CanonicalizeStandardURL,
//     CanonicalizeFileURL, CanonicalizePathURL), one per URL shape.
//   - Component replacement (ReplaceStandardURL and friends), which
//     re-derives a canonical URL from a canonical base with a sparse set
//     of overrides instead of rebuilding from scratch.
//   - Relative-reference resolution (IsRelativeURL, ResolveRelativeURL)
//     per RFC 3986, Section 5, with file and opaque-scheme special cases.
//
// The piece-by-piece canonicalizers behind them are exported as well. They
// append to a caller-owned Output and are designed to be chained: each one
// only knows its position from the output's current length, so preceding
// components must already be written.
//
// Failure is reported as a boolean, never an error value or a panic: URLs
// routinely arrive malformed from untrusted sources, and a best-effort
// string is always produced so a caller can display what was wrong. Failed
// output must not be used for navigation.
//
// Every operation accepts 8-bit (UTF-8) or wide (UTF-16) source text and
// behaves identically for both. Operations are single-pass, allocate only
// through the caller's Output plus bounded scratch space, and share no
// state, so distinct calls are safe from concurrent goroutines.
package urlcanon

import "github.com/ericmckean/google-url/urlparse"

// sourceSet pairs per-component source text with the ranges addressing it.
// Plain canonicalization points every component at one spec string; the
// replacer mixes the base with override strings. Keeping the source general
// here is what lets both share the same canonicalization drivers.
type sourceSet[C Char] struct {
	scheme, username, password []C
	host, port                 []C
	path, query, ref           []C
	parsed                     urlparse.Parsed
}

// wholeSource builds the sourceSet for canonicalizing one spec string.
func wholeSource[C Char](spec []C, parsed urlparse.Parsed) sourceSet[C] {
	return sourceSet[C]{
		scheme: spec, username: spec, password: spec,
		host: spec, port: spec,
		path: spec, query: spec, ref: spec,
		parsed: parsed,
	}
}

// CanonicalizeStandardURL canonicalizes a URL with an authority and a
// hierarchical path: scheme, "//", user info, host, port, path (never
// empty; it defaults to "/"), query, and fragment, in that order.
//
// defaultPort is the scheme's default port for elision (UnknownPort for
// none); idn and converter may be nil for the package defaults. The
// returned Parsed describes the output written to out. False means the URL
// is structurally broken (bad scheme, host, or port) even though a
// best-effort string was produced.
func CanonicalizeStandardURL[C Char](spec []C, parsed urlparse.Parsed, defaultPort int,
	idn IDNConverter, converter CharsetConverter, out *Output[byte]) (urlparse.Parsed, bool) {
	return canonicalizeStandard(wholeSource(spec, parsed), defaultPort, idn, converter, out)
}

// CanonicalizeFileURL canonicalizes a file URL: scheme, "//", an optional
// host, a drive-letter-aware path, query, and fragment. User info and a
// port are not part of file URLs and are dropped if the source has them.
func CanonicalizeFileURL[C Char](spec []C, parsed urlparse.Parsed,
	idn IDNConverter, converter CharsetConverter, out *Output[byte]) (urlparse.Parsed, bool) {
	return canonicalizeFile(wholeSource(spec, parsed), idn, converter, out)
}

// CanonicalizePathURL canonicalizes an opaque URL such as "javascript:":
// scheme, colon, and the path copied verbatim with no escaping or
// leading-slash normalization, since the scheme defines its own internal
// syntax. Query and fragment still follow when present.
func CanonicalizePathURL[C Char](spec []C, parsed urlparse.Parsed,
	converter CharsetConverter, out *Output[byte]) (urlparse.Parsed, bool) {
	return canonicalizePath(wholeSource(spec, parsed), converter, out)
}

func canonicalizeStandard[C Char](s sourceSet[C], defaultPort int,
	idn IDNConverter, converter CharsetConverter, out *Output[byte]) (urlparse.Parsed, bool) {
	var newParsed urlparse.Parsed
	var ok bool
	newParsed.Scheme, ok = CanonicalizeScheme(s.scheme, s.parsed.Scheme, out)

	out.AppendSlice([]byte("//"))

	var userOK bool
	newParsed.Username, newParsed.Password, userOK = CanonicalizeUserInfo(
		s.username, s.parsed.Username, s.password, s.parsed.Password, out)
	ok = ok && userOK

	var hostOK bool
	newParsed.Host, hostOK = CanonicalizeHost(s.host, s.parsed.Host, idn, out)
	// A standard URL without a host has nothing to connect to.
	ok = ok && hostOK && s.parsed.Host.Nonempty()

	var portOK bool
	newParsed.Port, portOK = CanonicalizePort(s.port, s.parsed.Port, defaultPort, out)
	ok = ok && portOK

	newParsed.Path, _ = CanonicalizePath(s.path, s.parsed.Path, out)
	newParsed.Query = CanonicalizeQuery(s.query, s.parsed.Query, converter, out)
	newParsed.Ref, _ = CanonicalizeRef(s.ref, s.parsed.Ref, out)
	return newParsed, ok
}

func canonicalizeFile[C Char](s sourceSet[C], idn IDNConverter,
	converter CharsetConverter, out *Output[byte]) (urlparse.Parsed, bool) {
	var newParsed urlparse.Parsed
	var ok bool
	newParsed.Scheme, ok = CanonicalizeScheme(s.scheme, s.parsed.Scheme, out)

	out.AppendSlice([]byte("//"))

	// An empty host means "this machine", so unlike standard URLs it is
	// not an error here.
	var hostOK bool
	newParsed.Host, hostOK = CanonicalizeHost(s.host, s.parsed.Host, idn, out)
	ok = ok && hostOK

	newParsed.Path, _ = FileCanonicalizePath(s.path, s.parsed.Path, out)
	newParsed.Query = CanonicalizeQuery(s.query, s.parsed.Query, converter, out)
	newParsed.Ref, _ = CanonicalizeRef(s.ref, s.parsed.Ref, out)
	return newParsed, ok
}

func canonicalizePath[C Char](s sourceSet[C], converter CharsetConverter,
	out *Output[byte]) (urlparse.Parsed, bool) {
	var newParsed urlparse.Parsed
	var ok bool
	newParsed.Scheme, ok = CanonicalizeScheme(s.scheme, s.parsed.Scheme, out)

	if s.parsed.Path.Present {
		begin := out.Len()
		appendOpaquePath(s.path, s.parsed.Path, out)
		newParsed.Path = urlparse.MakeRange(begin, out.Len())
	}
	newParsed.Query = CanonicalizeQuery(s.query, s.parsed.Query, converter, out)
	newParsed.Ref, _ = CanonicalizeRef(s.ref, s.parsed.Ref, out)
	return newParsed, ok
}

// appendOpaquePath copies an opaque path verbatim. Wide input is
// transcoded to UTF-8 (the one transformation that cannot be skipped) with
// malformed sequences becoming the replacement character.
func appendOpaquePath[C Char](spec []C, path urlparse.Component, out *Output[byte]) {
	if !isWideChar[C]() {
		for i := path.Begin; i < path.End(); i++ {
			out.Append(byte(spec[i]))
		}
		return
	}
	for i := path.Begin; i < path.End(); {
		r, size := nextRune(spec, i)
		appendRune(out, r)
		i += size
	}
}
