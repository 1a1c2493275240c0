// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsing

import "slices"

// Literal matches a fixed string at the start of Text input.
type Literal[S Text] struct {
	lit string
}

// Lit returns a matcher for s over string or byte input.
//
//	parsing.Lit[string]("Hello").Parse(&in) // "Hello world" → " world"
func Lit[S Text](s string) Literal[S] {
	return Literal[S]{lit: s}
}

// String returns the literal text.
func (l Literal[S]) String() string { return l.lit }

// Parse removes the literal from the front of *in.
// The prefix test runs before any mutation, so failure leaves *in unchanged.
// An empty literal always matches.
func (l Literal[S]) Parse(in *S) (Void, error) {
	if !hasPrefix(*in, l.lit) {
		return Void{}, failf(*in, "expected %q", l.lit)
	}
	*in = (*in)[len(l.lit):]
	return Void{}, nil
}

// Print appends the literal. It never fails.
func (l Literal[S]) Print(_ Void, in *S) error {
	appendText(in, l.lit)
	return nil
}

// Elements matches a fixed run of elements at the start of a slice input.
type Elements[E comparable] struct {
	elems []E
}

// Elems returns a matcher for the element sequence e over []E input.
func Elems[E comparable](e ...E) Elements[E] {
	return Elements[E]{elems: slices.Clone(e)}
}

// Parse removes the elements from the front of *in.
func (l Elements[E]) Parse(in *[]E) (Void, error) {
	n := len(l.elems)
	if len(*in) < n || !slices.Equal((*in)[:n], l.elems) {
		return Void{}, failf(*in, "expected %v", l.elems)
	}
	*in = (*in)[n:]
	return Void{}, nil
}

// Print appends the elements. It never fails.
func (l Elements[E]) Print(_ Void, in *[]E) error {
	*in = append(*in, l.elems...)
	return nil
}
