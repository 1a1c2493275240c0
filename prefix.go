// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsing

import (
	"math"
	"slices"
	"strings"
)

// Prefix consumes the longest run of bytes satisfying a predicate.
// Returned from While and While1.
type Prefix[S Text] struct {
	pred func(byte) bool
	min  int
}

// While returns the longest, possibly empty, prefix whose bytes satisfy pred.
//
//	hex := parsing.While[string](isHexDigit) // "db8::1" → "db8", "::1"
func While[S Text](pred func(byte) bool) Prefix[S] {
	return Prefix[S]{pred: pred}
}

// While1 is While requiring at least one byte.
func While1[S Text](pred func(byte) bool) Prefix[S] {
	return Prefix[S]{pred: pred, min: 1}
}

// Parse consumes the matching run.
func (p Prefix[S]) Parse(in *S) (S, error) {
	n := 0
	for n < len(*in) && p.pred((*in)[n]) {
		n++
	}
	if n < p.min {
		var zero S
		return zero, failf(*in, "expected at least %d matching bytes", p.min)
	}
	out := (*in)[:n]
	*in = (*in)[n:]
	return out, nil
}

// Print appends out after checking it would parse back to itself.
func (p Prefix[S]) Print(out S, in *S) error {
	if len(out) < p.min {
		return failf(*in, "expected at least %d matching bytes", p.min)
	}
	for i := 0; i < len(out); i++ {
		if !p.pred(out[i]) {
			return failf(*in, "byte %q does not match", out[i])
		}
	}
	appendText(in, string(out))
	return nil
}

// Delimited consumes input up to a delimiter.
// Returned from UpTo and Through.
type Delimited[S Text] struct {
	delim   string
	through bool
}

// UpTo consumes everything before the first occurrence of delim.
// It fails when delim does not occur; delim itself stays in the input.
func UpTo[S Text](delim string) Delimited[S] {
	return Delimited[S]{delim: delim}
}

// Through consumes everything up to and including the first occurrence of delim.
func Through[S Text](delim string) Delimited[S] {
	return Delimited[S]{delim: delim, through: true}
}

// Parse consumes the delimited prefix.
func (d Delimited[S]) Parse(in *S) (S, error) {
	i := strings.Index(string(*in), d.delim)
	if i < 0 {
		var zero S
		return zero, failf(*in, "expected %q", d.delim)
	}
	if d.through {
		i += len(d.delim)
	}
	out := (*in)[:i]
	*in = (*in)[i:]
	return out, nil
}

// Print appends out, which must parse back to itself.
// An empty delimiter parses only the empty string, so only that prints.
func (d Delimited[S]) Print(out S, in *S) error {
	s := string(out)
	if d.delim == "" {
		if s != "" {
			return failf(*in, "empty delimiter admits only empty output")
		}
		return nil
	}
	if d.through {
		if !strings.HasSuffix(s, d.delim) || strings.Index(s, d.delim) != len(s)-len(d.delim) {
			return failf(*in, "expected a single trailing %q", d.delim)
		}
	} else if strings.Contains(s, d.delim) {
		return failf(*in, "unexpected %q", d.delim)
	}
	appendText(in, s)
	return nil
}

// Digits parses an optionally signed decimal int.
// Returned from Int.
type Digits[S Text] struct{}

// Int returns a parser-printer for decimal ints.
func Int[S Text]() Digits[S] {
	return Digits[S]{}
}

// Parse consumes a sign and the longest run of digits.
// Out-of-range values fail and leave *in unchanged.
func (Digits[S]) Parse(in *S) (int, error) {
	n := 0
	if n < len(*in) && ((*in)[n] == '-' || (*in)[n] == '+') {
		n++
	}
	digits := n
	for n < len(*in) && (*in)[n] >= '0' && (*in)[n] <= '9' {
		n++
	}
	if n == digits {
		return 0, failf(*in, "expected integer")
	}
	neg := digits > 0 && (*in)[0] == '-'
	limit := uint64(math.MaxInt)
	if neg {
		limit++
	}
	var v uint64
	for i := digits; i < n; i++ {
		d := uint64((*in)[i] - '0')
		if v > (limit-d)/10 {
			return 0, failf(*in, "integer out of range")
		}
		v = v*10 + d
	}
	*in = (*in)[n:]
	if neg {
		return int(-v), nil
	}
	return int(v), nil
}

// Print appends the decimal form of v.
func (Digits[S]) Print(v int, in *S) error {
	appendInt(in, v)
	return nil
}

// Remainder consumes the whole input.
// Returned from Rest.
type Remainder[S Text] struct{}

// Rest returns a parser-printer for everything that is left.
func Rest[S Text]() Remainder[S] {
	return Remainder[S]{}
}

// Parse consumes and returns all of *in.
func (Remainder[S]) Parse(in *S) (S, error) {
	out := *in
	*in = (*in)[len(*in):]
	return out, nil
}

// Print appends out.
func (Remainder[S]) Print(out S, in *S) error {
	appendText(in, string(out))
	return nil
}

// Terminal succeeds only on exhausted input.
// Returned from End.
type Terminal[I any] struct{}

// End returns a matcher for the end of input.
// Inputs whose length cannot be measured never match.
func End[I any]() Terminal[I] {
	return Terminal[I]{}
}

// Parse succeeds when nothing remains.
func (Terminal[I]) Parse(in *I) (Void, error) {
	n, ok := remainingAt(in)
	if !ok || n != 0 {
		return Void{}, failf(*in, "expected end of input")
	}
	return Void{}, nil
}

// Print appends nothing.
func (Terminal[I]) Print(Void, *I) error { return nil }

// ElementRun consumes the longest run of slice elements satisfying a predicate.
// Returned from ElemsWhile.
type ElementRun[E any] struct {
	pred func(E) bool
}

// ElemsWhile returns the longest, possibly empty, run of elements satisfying pred.
func ElemsWhile[E any](pred func(E) bool) ElementRun[E] {
	return ElementRun[E]{pred: pred}
}

// Parse consumes the matching run.
func (r ElementRun[E]) Parse(in *[]E) ([]E, error) {
	n := 0
	for n < len(*in) && r.pred((*in)[n]) {
		n++
	}
	out := (*in)[:n:n]
	*in = (*in)[n:]
	return out, nil
}

// Print appends out after checking every element satisfies the predicate.
func (r ElementRun[E]) Print(out []E, in *[]E) error {
	if i := slices.IndexFunc(out, func(e E) bool { return !r.pred(e) }); i >= 0 {
		return failf(*in, "element %d does not match", i)
	}
	*in = append(*in, out...)
	return nil
}

// Element consumes exactly one slice element.
// Returned from One.
type Element[E any] struct{}

// One returns a parser-printer for a single element.
func One[E any]() Element[E] {
	return Element[E]{}
}

// Parse consumes the first element.
func (Element[E]) Parse(in *[]E) (E, error) {
	if len(*in) == 0 {
		var zero E
		return zero, failf(*in, "unexpected end of input")
	}
	e := (*in)[0]
	*in = (*in)[1:]
	return e, nil
}

// Print appends e.
func (Element[E]) Print(e E, in *[]E) error {
	*in = append(*in, e)
	return nil
}
