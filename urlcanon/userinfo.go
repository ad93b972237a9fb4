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

// CanonicalizeUserInfo appends "<username>[:<password>]@" when user info is
// present. An empty password is treated as absent, and an entirely empty
// user-info section is omitted, including the "@".
//
// The username and password components address their respective source
// strings; these are usually the same string, which is legal as long as the
// two ranges do not overlap.
func CanonicalizeUserInfo[C Char](usernameSource []C, username urlparse.Component,
	passwordSource []C, password urlparse.Component,
	out *Output[byte]) (outUsername, outPassword urlparse.Component, ok bool) {
	if !username.Nonempty() && !password.Nonempty() {
		return urlparse.Component{}, urlparse.Component{}, true
	}

	outUsername = urlparse.MakeComponent(out.Len(), 0)
	appendUserInfoPart(usernameSource, username, out)
	outUsername.Len = out.Len() - outUsername.Begin

	if password.Nonempty() {
		out.Append(':')
		outPassword = urlparse.MakeComponent(out.Len(), 0)
		appendUserInfoPart(passwordSource, password, out)
		outPassword.Len = out.Len() - outPassword.Begin
	}

	out.Append('@')
	return outUsername, outPassword, true
}

// appendUserInfoPart escapes one user-info part. Existing valid escapes are
// copied with normalized hex; everything outside the user-info set is
// escaped, so delimiters can never leak into the authority.
func appendUserInfoPart[C Char](source []C, part urlparse.Component, out *Output[byte]) {
	for i := part.Begin; i < part.End(); {
		r, size := nextRune(source, i)
		switch {
		case r == '%':
			if _, valid := validEscape(source, i, part.End()); valid {
				copyEscape(source, i, part.End(), out)
				i += 3
				continue
			}
			appendEscapedByte(out, '%')
		case isUserInfoChar(r):
			out.Append(byte(r))
		default:
			appendEscapedRune(out, r)
		}
		i += size
	}
}
