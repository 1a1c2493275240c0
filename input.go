// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsing

import (
	"reflect"
	"strconv"
)

// Text is the constraint for byte-level input: strings and byte slices.
// Both share their backing storage on copy, so a snapshot is O(1).
type Text interface {
	~string | ~[]byte
}

// Sized is implemented by structured inputs that can report how many
// elements remain. Remaining and the zero-width guard in Many use it.
type Sized interface {
	Len() int
}

// Remaining reports the number of unconsumed elements in in.
// The second result is false when the length cannot be measured.
func Remaining(in any) (int, bool) {
	switch v := in.(type) {
	case string:
		return len(v), true
	case []byte:
		return len(v), true
	case Sized:
		return v.Len(), true
	case nil:
		return 0, false
	}
	rv := reflect.ValueOf(in)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	case reflect.Pointer:
		if rv.IsNil() {
			return 0, false
		}
		return Remaining(rv.Elem().Interface())
	}
	return 0, false
}

// remainingAt is Remaining measured through the pointer, so string, byte
// slice and Sized inputs are not boxed on the hot path of a repetition.
func remainingAt[I any](in *I) (int, bool) {
	switch p := any(in).(type) {
	case *string:
		return len(*p), true
	case *[]byte:
		return len(*p), true
	case Sized:
		return p.Len(), true
	}
	return Remaining(*in)
}

// appendText appends s onto *in for either Text representation.
// A string buffer is copied on every append, so printing many elements
// into one is quadratic; print large outputs into a []byte buffer.
func appendText[S Text](in *S, s string) {
	*in = S(append([]byte(*in), s...))
}

// appendInt appends the decimal form of v without an intermediate string.
func appendInt[S Text](in *S, v int) {
	*in = S(strconv.AppendInt([]byte(*in), int64(v), 10))
}

// hasPrefix reports whether in starts with lit.
func hasPrefix[S Text](in S, lit string) bool {
	if len(in) < len(lit) {
		return false
	}
	for i := 0; i < len(lit); i++ {
		if in[i] != lit[i] {
			return false
		}
	}
	return true
}
