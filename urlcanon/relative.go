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

// IsRelativeURL decides whether ref is a relative reference against the
// given canonical base or an absolute URL of its own. Leading and trailing
// whitespace and control characters are trimmed from consideration, and the
// returned component identifies the portion of ref that matters for
// resolution (for a reference carrying the base's own scheme, the part
// after the colon).
//
// False from ok means the combination makes no sense: a relative-looking
// reference against a non-hierarchical base cannot be resolved at all. The
// relative component is meaningful only when isRelative is true.
func IsRelativeURL[C Char](base []byte, baseParsed urlparse.Parsed, ref []C,
	baseIsHierarchical bool) (isRelative bool, relative urlparse.Component, ok bool) {
	begin, end := trimReference(ref)
	if begin == end {
		return true, urlparse.MakeComponent(begin, 0), true
	}

	schemeEnd := referenceSchemeEnd(ref, begin, end)
	if schemeEnd < 0 {
		// No scheme: a relative reference, resolvable only against a
		// hierarchical base.
		if !baseIsHierarchical {
			return false, urlparse.Component{}, false
		}
		return true, urlparse.MakeRange(begin, end), true
	}

	if schemeEnd-begin == 1 && baseSchemeIsFile(base, baseParsed) {
		// Single letter before the colon against a file base: a
		// Windows drive spec like "c:\foo", not a scheme.
		return true, urlparse.MakeRange(begin, end), true
	}

	if baseIsHierarchical && schemeMatchesBase(base, baseParsed, ref, begin, schemeEnd) {
		// Browsers treat "http:foo" against an http base as relative.
		return true, urlparse.MakeRange(schemeEnd+1, end), true
	}

	// A scheme of its own: absolute, canonicalize independently.
	return false, urlparse.Component{}, true
}

// ResolveRelativeURL resolves a reference known to be relative (classified
// by IsRelativeURL, which also produced relComp) against a canonical base,
// writing the resolved canonical URL. baseIsFile triggers the drive-letter
// and host-dropping rules; defaultPort, idn, and converter are needed when
// the reference replaces the authority onward.
//
// The base must be hierarchical with a slash-rooted path. When it is not,
// the base is echoed back unchanged as a safe fallback and the call fails.
func ResolveRelativeURL[C Char](base []byte, baseParsed urlparse.Parsed, baseIsFile bool,
	rel []C, relComp urlparse.Component, defaultPort int,
	idn IDNConverter, converter CharsetConverter, out *Output[byte]) (urlparse.Parsed, bool) {
	shift := out.Len()
	bp := baseParsed.Path
	if !bp.Nonempty() || base[bp.Begin] != '/' {
		out.AppendSlice(base)
		return shiftParsed(baseParsed, shift), false
	}

	pathStart, pathEnd, refQuery, refFrag := splitReference(rel, relComp)

	// Empty reference: the base already is the answer.
	if pathStart == pathEnd && !refQuery.Present && !refFrag.Present {
		out.AppendSlice(base)
		return shiftParsed(baseParsed, shift), true
	}

	newParsed := shiftParsed(baseParsed, shift)

	if pathStart == pathEnd {
		if !refQuery.Present {
			// Fragment only: keep everything through the query.
			out.AppendSlice(base[:baseQueryEnd(baseParsed)])
			newParsed.Ref, _ = CanonicalizeRef(rel, refFrag, out)
			return newParsed, true
		}
		// Query onward replaced.
		out.AppendSlice(base[:basePathEnd(baseParsed)])
		newParsed.Query = CanonicalizeQuery(rel, refQuery, converter, out)
		newParsed.Ref, _ = CanonicalizeRef(rel, refFrag, out)
		return newParsed, true
	}

	if baseIsFile && driveSpecLength(rel, pathStart, pathEnd) > 0 {
		// A drive spec starts a fresh absolute path and drops the
		// host: "file:///C:/...".
		out.AppendSlice(base[:baseParsed.Scheme.End()+3])
		newParsed.Username, newParsed.Password = urlparse.Component{}, urlparse.Component{}
		newParsed.Host = urlparse.MakeComponent(out.Len(), 0)
		newParsed.Port = urlparse.Component{}
		newParsed.Path, _ = FileCanonicalizePath(rel, urlparse.MakeRange(pathStart, pathEnd), out)
		newParsed.Query = CanonicalizeQuery(rel, refQuery, converter, out)
		newParsed.Ref, _ = CanonicalizeRef(rel, refFrag, out)
		return newParsed, true
	}

	if isPathSeparator(rune(rel[pathStart])) {
		if pathStart+1 < pathEnd && isPathSeparator(rune(rel[pathStart+1])) {
			// Network-path reference: keep the scheme, replace the
			// authority onward.
			return resolveAuthority(base, baseParsed, baseIsFile, rel,
				pathStart+2, pathEnd, refQuery, refFrag,
				defaultPort, idn, converter, shift, out)
		}
		// Absolute-path reference: keep scheme and authority.
		out.AppendSlice(base[:baseAuthorityEnd(baseParsed)])
		if baseIsFile {
			newParsed.Path, _ = FileCanonicalizePath(rel, urlparse.MakeRange(pathStart, pathEnd), out)
		} else {
			newParsed.Path, _ = CanonicalizePath(rel, urlparse.MakeRange(pathStart, pathEnd), out)
		}
		newParsed.Query = CanonicalizeQuery(rel, refQuery, converter, out)
		newParsed.Ref, _ = CanonicalizeRef(rel, refFrag, out)
		return newParsed, true
	}

	// Relative path: merge with the base path and remove dot segments.
	out.AppendSlice(base[:baseAuthorityEnd(baseParsed)])
	pathBegin := out.Len()
	lastSlash := bp.End() - 1
	for base[lastSlash] != '/' {
		lastSlash--
	}
	out.AppendSlice(base[bp.Begin : lastSlash+1])
	mergeRelativePath(rel, pathStart, pathEnd, baseIsFile, pathBegin, out)
	newParsed.Path = urlparse.MakeRange(pathBegin, out.Len())
	newParsed.Query = CanonicalizeQuery(rel, refQuery, converter, out)
	newParsed.Ref, _ = CanonicalizeRef(rel, refFrag, out)
	return newParsed, true
}

// resolveAuthority canonicalizes a network-path reference ("//host/...")
// under the base's scheme.
func resolveAuthority[C Char](base []byte, baseParsed urlparse.Parsed, baseIsFile bool,
	rel []C, authStart, pathEnd int, refQuery, refFrag urlparse.Component,
	defaultPort int, idn IDNConverter, converter CharsetConverter,
	shift int, out *Output[byte]) (urlparse.Parsed, bool) {
	var newParsed urlparse.Parsed
	newParsed.Scheme = shiftComponent(baseParsed.Scheme, shift)
	out.AppendSlice(base[:baseParsed.Scheme.End()+1])
	out.AppendSlice([]byte("//"))

	username, password, host, port, pathStart := splitReferenceAuthority(rel, authStart, pathEnd)

	ok := true
	if !baseIsFile {
		var userOK, hostOK, portOK bool
		newParsed.Username, newParsed.Password, userOK = CanonicalizeUserInfo(rel, username, rel, password, out)
		newParsed.Host, hostOK = CanonicalizeHost(rel, host, idn, out)
		newParsed.Port, portOK = CanonicalizePort(rel, port, defaultPort, out)
		ok = userOK && hostOK && portOK && host.Nonempty()
		newParsed.Path, _ = CanonicalizePath(rel, urlparse.MakeRange(pathStart, pathEnd), out)
	} else {
		newParsed.Host, ok = CanonicalizeHost(rel, host, idn, out)
		newParsed.Path, _ = FileCanonicalizePath(rel, urlparse.MakeRange(pathStart, pathEnd), out)
	}
	newParsed.Query = CanonicalizeQuery(rel, refQuery, converter, out)
	newParsed.Ref, _ = CanonicalizeRef(rel, refFrag, out)
	return newParsed, ok
}

// mergeRelativePath walks the reference path segment by segment. "."
// segments drop, ".." segments pop the previously written segment with a
// buffer truncation (never above the path root), and ordinary segments are
// escaped like any hierarchical path text. At entry the output must end
// with the slash terminating the base path prefix.
func mergeRelativePath[C Char](rel []C, i, end int, file bool, pathBegin int, out *Output[byte]) {
	for i < end {
		j := i
		for j < end && !separatorAt(rel, j, file) {
			j++
		}
		switch dotSegmentValue(rel, i, j) {
		case 1:
			// "." keeps the directory; nothing to write.
		case 2:
			popPathSegment(out, pathBegin)
		default:
			appendPathText(rel, i, j, file, out)
			if j < end {
				out.Append('/')
			}
		}
		if j < end {
			i = j + 1
		} else {
			i = j
		}
	}
}

// popPathSegment truncates the trailing "<segment>/" from the output,
// keeping at least the root slash at pathBegin. The output ends with a
// slash both before and after.
func popPathSegment(out *Output[byte], pathBegin int) {
	end := out.Len() - 1
	if end <= pathBegin {
		return
	}
	k := end - 1
	for k > pathBegin && out.At(k) != '/' {
		k--
	}
	out.SetLen(k + 1)
}

// dotSegmentValue classifies the segment [i, j): 1 for ".", 2 for "..",
// and 0 for an ordinary segment. Dots hidden as "%2e" count, so escaping
// cannot smuggle a ".." past the popping logic.
func dotSegmentValue[C Char](s []C, i, j int) int {
	dots := 0
	for i < j {
		switch {
		case rune(s[i]) == '.':
			i++
		case rune(s[i]) == '%' && i+2 < j && rune(s[i+1]) == '2' &&
			(rune(s[i+2]) == 'e' || rune(s[i+2]) == 'E'):
			i += 3
		default:
			return 0
		}
		dots++
		if dots > 2 {
			return 0
		}
	}
	return dots
}

// separatorAt reports whether position i holds a path separator.
// Backslashes separate only in file paths.
func separatorAt[C Char](s []C, i int, file bool) bool {
	r := rune(s[i])
	return r == '/' || (file && r == '\\')
}

// trimReference returns the sub-range of ref left after stripping leading
// and trailing ASCII whitespace and control characters, DEL included.
func trimReference[C Char](ref []C) (begin, end int) {
	end = len(ref)
	for begin < end && isTrimmableRefChar(uint32(ref[begin])) {
		begin++
	}
	for end > begin && isTrimmableRefChar(uint32(ref[end-1])) {
		end--
	}
	return begin, end
}

func isTrimmableRefChar(c uint32) bool {
	return c <= 0x20 || c == 0x7f
}

// referenceSchemeEnd returns the offset of the colon ending a syntactically
// valid scheme at the start of the reference, or -1 when the reference does
// not begin with a scheme.
func referenceSchemeEnd[C Char](ref []C, begin, end int) int {
	if begin >= end || !isASCIILetter(rune(ref[begin])) {
		return -1
	}
	for i := begin + 1; i < end; i++ {
		r := rune(ref[i])
		if r == ':' {
			return i
		}
		if !isSchemeChar(r) {
			return -1
		}
	}
	return -1
}

// schemeMatchesBase compares the reference's scheme, case-insensitively,
// with the base's canonical (already lower-case) scheme.
func schemeMatchesBase[C Char](base []byte, baseParsed urlparse.Parsed, ref []C, begin, schemeEnd int) bool {
	bs := baseParsed.Scheme
	if !bs.Present || schemeEnd-begin != bs.Len {
		return false
	}
	for i := 0; i < bs.Len; i++ {
		r := rune(ref[begin+i])
		if 'A' <= r && r <= 'Z' {
			r += 'a' - 'A'
		}
		if r != rune(base[bs.Begin+i]) {
			return false
		}
	}
	return true
}

// baseSchemeIsFile reports whether the canonical base carries the file
// scheme.
func baseSchemeIsFile(base []byte, baseParsed urlparse.Parsed) bool {
	s := baseParsed.Scheme
	return s.Present && s.Len == 4 &&
		base[s.Begin] == 'f' && base[s.Begin+1] == 'i' &&
		base[s.Begin+2] == 'l' && base[s.Begin+3] == 'e'
}

// splitReference locates the path, query, and fragment of the relative
// portion of a reference.
func splitReference[C Char](rel []C, relComp urlparse.Component) (pathStart, pathEnd int, query, frag urlparse.Component) {
	pathStart = relComp.Begin
	end := relComp.End()
	pathEnd = end
	for i := pathStart; i < end; i++ {
		if rune(rel[i]) == '#' {
			frag = urlparse.MakeRange(i+1, end)
			end = i
			pathEnd = min(pathEnd, i)
			break
		}
	}
	for i := pathStart; i < end; i++ {
		if rune(rel[i]) == '?' {
			query = urlparse.MakeRange(i+1, end)
			pathEnd = i
			break
		}
	}
	return pathStart, pathEnd, query, frag
}

// splitReferenceAuthority splits the authority of a network-path reference
// into its parts, bracket-aware for IPv6 hosts. Missing parts come back
// absent, matching how a lexical parser would report them.
func splitReferenceAuthority[C Char](rel []C, begin, pathEnd int) (username, password, host, port urlparse.Component, pathStart int) {
	authEnd := begin
	for authEnd < pathEnd && !isPathSeparator(rune(rel[authEnd])) {
		authEnd++
	}
	pathStart = authEnd

	hostBegin := begin
	at := -1
	for i := authEnd - 1; i >= begin; i-- {
		if rune(rel[i]) == '@' {
			at = i
			break
		}
	}
	if at >= 0 {
		colon := -1
		for i := begin; i < at; i++ {
			if rune(rel[i]) == ':' {
				colon = i
				break
			}
		}
		if colon >= 0 {
			username = urlparse.MakeRange(begin, colon)
			password = urlparse.MakeRange(colon+1, at)
		} else {
			username = urlparse.MakeRange(begin, at)
		}
		hostBegin = at + 1
	}

	hostEnd := authEnd
	if hostBegin < authEnd && rune(rel[hostBegin]) == '[' {
		bracket := -1
		for i := authEnd - 1; i >= hostBegin; i-- {
			if rune(rel[i]) == ']' {
				bracket = i
				break
			}
		}
		if bracket >= 0 && bracket+1 < authEnd && rune(rel[bracket+1]) == ':' {
			hostEnd = bracket + 1
			port = urlparse.MakeRange(bracket+2, authEnd)
		}
	} else {
		for i := authEnd - 1; i >= hostBegin; i-- {
			if rune(rel[i]) == ':' {
				hostEnd = i
				port = urlparse.MakeRange(i+1, authEnd)
				break
			}
		}
	}
	host = urlparse.MakeRange(hostBegin, hostEnd)
	return username, password, host, port, pathStart
}

// shiftComponent rebases a component by delta output positions.
func shiftComponent(c urlparse.Component, delta int) urlparse.Component {
	if !c.Present || delta == 0 {
		return c
	}
	return urlparse.MakeComponent(c.Begin+delta, c.Len)
}

// shiftParsed rebases every component of p by delta output positions.
func shiftParsed(p urlparse.Parsed, delta int) urlparse.Parsed {
	p.Scheme = shiftComponent(p.Scheme, delta)
	p.Username = shiftComponent(p.Username, delta)
	p.Password = shiftComponent(p.Password, delta)
	p.Host = shiftComponent(p.Host, delta)
	p.Port = shiftComponent(p.Port, delta)
	p.Path = shiftComponent(p.Path, delta)
	p.Query = shiftComponent(p.Query, delta)
	p.Ref = shiftComponent(p.Ref, delta)
	return p
}

// basePathEnd returns the offset just past the canonical base's path.
func basePathEnd(p urlparse.Parsed) int {
	if p.Path.Present {
		return p.Path.End()
	}
	return baseAuthorityEnd(p)
}

// baseQueryEnd returns the offset just past the canonical base's query, or
// past its path when there is no query.
func baseQueryEnd(p urlparse.Parsed) int {
	if p.Query.Present {
		return p.Query.End()
	}
	return basePathEnd(p)
}

// baseAuthorityEnd returns the offset just past the canonical base's
// authority (after the port, or the host when there is no port).
func baseAuthorityEnd(p urlparse.Parsed) int {
	switch {
	case p.Port.Present:
		return p.Port.End()
	case p.Host.Present:
		return p.Host.End()
	case p.Path.Present:
		return p.Path.Begin
	default:
		return p.Scheme.End() + 3
	}
}
