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

import "github.com/ericmckean/google-url/urlparse"

type replacementMode uint8

const (
	keepMode replacementMode = iota
	removeMode
	setMode
)

// Replacement is the tri-state override for one component of a replacement
// operation: keep the base's value, delete the component, or substitute new
// text. The three states are distinct on purpose; collapsing "keep" and
// "delete" into "empty string" would lose the difference between a URL
// with no query and one with an empty query. The zero Replacement keeps.
type Replacement struct {
	mode replacementMode
	text string
}

// Keep returns the Replacement that leaves the base's component untouched.
func Keep() Replacement {
	return Replacement{}
}

// Remove returns the Replacement that deletes the component.
func Remove() Replacement {
	return Replacement{mode: removeMode}
}

// ReplaceWith returns the Replacement substituting text for the component.
// Empty text deletes the component, same as Remove: for parts that can be
// either empty or nonexistent, replacement always picks nonexistent.
func ReplaceWith(text string) Replacement {
	if text == "" {
		return Remove()
	}
	return Replacement{mode: setMode, text: text}
}

// source returns the source string and component this replacement
// contributes, given the base's.
func (r Replacement) source(base []byte, baseComp urlparse.Component) ([]byte, urlparse.Component) {
	switch r.mode {
	case removeMode:
		return nil, urlparse.Component{}
	case setMode:
		return []byte(r.text), urlparse.MakeComponent(0, len(r.text))
	default:
		return base, baseComp
	}
}

// Replacements collects one Replacement per URL component. The zero value
// keeps everything, so callers set only the fields they want to change.
// Replacement text is UTF-8; the base it applies to is canonical and
// therefore ASCII.
type Replacements struct {
	Scheme   Replacement
	Username Replacement
	Password Replacement
	Host     Replacement
	Port     Replacement
	Path     Replacement
	Query    Replacement
	Ref      Replacement
}

// ReplaceStandardURL derives a new canonical standard URL from a canonical
// base and a set of overrides, re-running only the standard-URL
// canonicalization over the mixed sources. The base's shape is fixed:
// replacing the scheme can swap in another standard scheme but cannot turn
// the URL into a file or opaque URL.
func ReplaceStandardURL(base []byte, baseParsed urlparse.Parsed, r Replacements,
	defaultPort int, idn IDNConverter, converter CharsetConverter,
	out *Output[byte]) (urlparse.Parsed, bool) {
	s := sourceSet[byte]{}
	s.scheme, s.parsed.Scheme = r.Scheme.source(base, baseParsed.Scheme)
	s.username, s.parsed.Username = r.Username.source(base, baseParsed.Username)
	s.password, s.parsed.Password = r.Password.source(base, baseParsed.Password)
	s.host, s.parsed.Host = r.Host.source(base, baseParsed.Host)
	s.port, s.parsed.Port = r.Port.source(base, baseParsed.Port)
	s.path, s.parsed.Path = r.Path.source(base, baseParsed.Path)
	s.query, s.parsed.Query = r.Query.source(base, baseParsed.Query)
	s.ref, s.parsed.Ref = r.Ref.source(base, baseParsed.Ref)
	return canonicalizeStandard(s, defaultPort, idn, converter, out)
}

// ReplaceFileURL is the file-URL variant. File URLs have no user info or
// port, and their scheme is what makes them file URLs, so those overrides
// are ignored; host, path, query, and ref replacements apply.
func ReplaceFileURL(base []byte, baseParsed urlparse.Parsed, r Replacements,
	idn IDNConverter, converter CharsetConverter,
	out *Output[byte]) (urlparse.Parsed, bool) {
	s := sourceSet[byte]{}
	s.scheme, s.parsed.Scheme = base, baseParsed.Scheme
	s.host, s.parsed.Host = r.Host.source(base, baseParsed.Host)
	s.path, s.parsed.Path = r.Path.source(base, baseParsed.Path)
	s.query, s.parsed.Query = r.Query.source(base, baseParsed.Query)
	s.ref, s.parsed.Ref = r.Ref.source(base, baseParsed.Ref)
	return canonicalizeFile(s, idn, converter, out)
}

// ReplacePathURL is the opaque-URL variant. Only the scheme and path can
// be replaced; every other override is ignored and the base's query and
// ref carry through.
func ReplacePathURL(base []byte, baseParsed urlparse.Parsed, r Replacements,
	converter CharsetConverter, out *Output[byte]) (urlparse.Parsed, bool) {
	s := sourceSet[byte]{}
	s.scheme, s.parsed.Scheme = r.Scheme.source(base, baseParsed.Scheme)
	s.path, s.parsed.Path = r.Path.source(base, baseParsed.Path)
	s.query, s.parsed.Query = base, baseParsed.Query
	s.ref, s.parsed.Ref = base, baseParsed.Ref
	return canonicalizePath(s, converter, out)
}
