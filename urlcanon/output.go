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

const (
	// defaultOutputCapacity is the initial allocation of a fresh Output.
	// Most URLs fit without a second allocation.
	defaultOutputCapacity = 1024

	// maxOutputCapacity is the hard growth ceiling. Once reached, further
	// writes are dropped rather than growing without bound; pathological
	// input produces a truncated best-effort string instead of undefined
	// behavior.
	maxOutputCapacity = 1 << 30
)

// Char constrains the code units a canonicalizer can consume or produce:
// bytes holding UTF-8, or uint16 values holding UTF-16.
type Char interface {
	~byte | ~uint16
}

// Output is a growable, append-only sequence of code units backing every
// canonicalizer's result. Content in [0, Len()) is always valid previously
// written data; capacity grows geometrically and never shrinks implicitly.
//
// Callers may shrink logically with SetLen, which is how relative resolution
// backs up over just-written path segments.
type Output[C Char] struct {
	buf []C
	n   int
}

// NewOutput returns an Output with the default initial capacity.
func NewOutput[C Char]() *Output[C] {
	return NewOutputCapacity[C](defaultOutputCapacity)
}

// NewOutputCapacity returns an Output with the given initial capacity.
func NewOutputCapacity[C Char](capacity int) *Output[C] {
	if capacity < 1 {
		capacity = 1
	}
	if capacity > maxOutputCapacity {
		capacity = maxOutputCapacity
	}
	return &Output[C]{buf: make([]C, capacity)}
}

// grow resizes the buffer so it can hold at least additional more code
// units, at least doubling the capacity each time. It reports false when
// the growth ceiling prevents the resize.
func (o *Output[C]) grow(additional int) bool {
	newCap := cap(o.buf)
	if newCap == 0 {
		newCap = 1
	}
	for newCap < o.n+additional {
		if newCap >= maxOutputCapacity {
			return false
		}
		newCap *= 2
	}
	newBuf := make([]C, newCap)
	copy(newBuf, o.buf[:o.n])
	o.buf = newBuf
	return true
}

// Append writes a single code unit. This is the hot path; growth is rare.
func (o *Output[C]) Append(c C) {
	if o.n < len(o.buf) {
		o.buf[o.n] = c
		o.n++
		return
	}
	if !o.grow(1) {
		return
	}
	o.buf[o.n] = c
	o.n++
}

// AppendSlice writes a run of code units.
func (o *Output[C]) AppendSlice(s []C) {
	if o.n+len(s) > len(o.buf) {
		if !o.grow(len(s)) {
			return
		}
	}
	copy(o.buf[o.n:], s)
	o.n += len(s)
}

// Len returns the number of code units written so far.
func (o *Output[C]) Len() int {
	return o.n
}

// Cap returns the number of code units that can be written without another
// allocation.
func (o *Output[C]) Cap() int {
	return len(o.buf)
}

// SetLen truncates the output to n code units, or declares data written
// directly through Data. It must not exceed Cap.
func (o *Output[C]) SetLen(n int) {
	if n < 0 || n > len(o.buf) {
		return
	}
	o.n = n
}

// At returns the code unit at offset i, which must be less than Len.
func (o *Output[C]) At(i int) C {
	return o.buf[i]
}

// Set overwrites the code unit at offset i, which must be less than Len.
func (o *Output[C]) Set(i int, c C) {
	o.buf[i] = c
}

// Data exposes the written code units. The slice extends to capacity so
// external collaborators can bulk-write past Len and then declare the new
// length with SetLen.
func (o *Output[C]) Data() []C {
	return o.buf
}

// String returns the written content. For byte outputs this is the
// canonical URL text itself; for uint16 outputs each unit is widened
// (collaborator outputs are ASCII-range, so no information is lost).
func (o *Output[C]) String() string {
	switch buf := any(o.buf[:o.n]).(type) {
	case []byte:
		return string(buf)
	default:
		runes := make([]rune, o.n)
		for i := 0; i < o.n; i++ {
			runes[i] = rune(o.buf[i])
		}
		return string(runes)
	}
}
