// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsing

// Fail never succeeds, for any input and any output type.
// Use it as a placeholder, a default branch, or a forbidden marker.
//
//	parsing.Fail[string, int]{}.Parse(&in) // error, in unchanged
type Fail[I, O any] struct{}

// Parse always fails and leaves *in unchanged.
func (Fail[I, O]) Parse(in *I) (O, error) {
	var zero O
	return zero, failf(*in, "a failing parser ran")
}

// Print always fails and leaves *in unchanged.
func (Fail[I, O]) Print(_ O, in *I) error {
	return failf(*in, "a failing printer ran")
}
