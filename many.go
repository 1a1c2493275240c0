// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsing

// IterationLimit caps repetitions over inputs whose length cannot be
// measured (see Remaining). Reaching it is reported as ErrNoProgress.
const IterationLimit = 1 << 20

// bounds holds the repetition count constraints.
// Without hasMax the repetition is unbounded.
type bounds struct {
	min    int
	max    int
	hasMax bool
}

func (b bounds) atMost(n int) bounds {
	b.max = max(n, 0)
	b.hasMax = true
	return b
}

func (b bounds) inverted() bool {
	return b.hasMax && b.min > b.max
}

func (b bounds) allows(n int) bool {
	return n >= b.min && (!b.hasMax || n <= b.max)
}

// repeat runs the element/separator loop shared by Many and Reduce.
//
// The run always ends right after the last matched element: a separator
// that is not followed by an element is rolled back, and once b.max
// elements matched no further separator is attempted. If fewer than b.min
// elements matched, *in is restored to its state before the first attempt.
// Inverted bounds fail before any attempt.
func repeat[I, O any](in *I, elem Parser[I, O], sep Parser[I, Void], b bounds, each func(O)) (int, error) {
	if b.inverted() {
		return 0, failf(*in, "minimum %d exceeds maximum %d", b.min, b.max)
	}
	start := *in
	last := start
	count := 0
	unbounded := !b.hasMax
	for unbounded || count < b.max {
		before, measured := remainingAt(in)
		if unbounded && !measured && count >= IterationLimit {
			*in = start
			return count, &Error{Msg: "iteration limit reached", Remaining: -1, Err: ErrNoProgress}
		}
		if count > 0 && sep != nil {
			if _, err := sep.Parse(in); err != nil {
				break
			}
		}
		out, err := elem.Parse(in)
		if err != nil {
			break
		}
		each(out)
		count++
		// With a separator the next iteration must consume it first, so
		// only separator-plus-element runs are checked for progress.
		if unbounded && measured && (sep == nil || count > 1) {
			if after, ok := remainingAt(in); ok && after >= before {
				*in = start
				return count, &Error{Msg: "zero-width element without a consuming separator", Remaining: before, Err: ErrNoProgress}
			}
		}
		last = *in
	}
	*in = last
	if count < b.min {
		*in = start
		return count, failf(*in, "expected at least %d values, got %d", b.min, count)
	}
	return count, nil
}

// Many applies an element parser repeatedly and collects the outputs.
// Returned from NewMany.
type Many[I, O any] struct {
	element   Parser[I, O]
	separator Parser[I, Void]
	bounds    bounds
}

// NewMany returns a greedy repetition of element with no bounds and no separator.
func NewMany[I, O any](element Parser[I, O]) Many[I, O] {
	return Many[I, O]{element: element}
}

// AtLeast requires n or more elements.
func (m Many[I, O]) AtLeast(n int) Many[I, O] {
	m.bounds.min = n
	return m
}

// AtMost stops after n elements even if more would match.
// AtMost(0) matches nothing and a negative n counts as 0.
// A maximum below the minimum makes every Parse fail.
func (m Many[I, O]) AtMost(n int) Many[I, O] {
	m.bounds = m.bounds.atMost(n)
	return m
}

// Separator interleaves sep between elements. A trailing separator is never consumed.
func (m Many[I, O]) Separator(sep Parser[I, Void]) Many[I, O] {
	m.separator = sep
	return m
}

// Parse collects element outputs in order.
func (m Many[I, O]) Parse(in *I) ([]O, error) {
	var out []O
	if _, err := repeat(in, m.element, m.separator, m.bounds, func(o O) {
		out = append(out, o)
	}); err != nil {
		return nil, err
	}
	if out == nil {
		out = []O{}
	}
	return out, nil
}

// ManyPrinter is the bidirectional collecting Many.
// Returned from NewManyPrinter.
type ManyPrinter[I, O any] struct {
	Many[I, O]
	element   Printer[I, O]
	separator Printer[I, Void]
}

// NewManyPrinter returns a Many that also prints a slice of outputs.
func NewManyPrinter[I, O any](element ParserPrinter[I, O]) ManyPrinter[I, O] {
	return ManyPrinter[I, O]{Many: NewMany[I, O](element), element: element}
}

// AtLeast requires n or more elements, in both directions.
func (m ManyPrinter[I, O]) AtLeast(n int) ManyPrinter[I, O] {
	m.Many = m.Many.AtLeast(n)
	return m
}

// AtMost caps the repetition at n elements, in both directions.
func (m ManyPrinter[I, O]) AtMost(n int) ManyPrinter[I, O] {
	m.Many = m.Many.AtMost(n)
	return m
}

// Separator interleaves sep between elements, in both directions.
func (m ManyPrinter[I, O]) Separator(sep ParserPrinter[I, Void]) ManyPrinter[I, O] {
	m.Many = m.Many.Separator(sep)
	m.separator = sep
	return m
}

// Print appends every element, with the separator between consecutive
// elements and never after the last. A count outside the bounds fails
// before anything is appended; a nested failure restores *in.
func (m ManyPrinter[I, O]) Print(out []O, in *I) error {
	if !m.bounds.allows(len(out)) {
		if !m.bounds.hasMax {
			return failf(*in, "cannot print %d values, need at least %d", len(out), m.bounds.min)
		}
		return failf(*in, "cannot print %d values within bounds [%d, %d]", len(out), m.bounds.min, m.bounds.max)
	}
	saved := *in
	for i, o := range out {
		if i > 0 && m.separator != nil {
			if err := m.separator.Print(Void{}, in); err != nil {
				*in = saved
				return err
			}
		}
		if err := m.element.Print(o, in); err != nil {
			*in = saved
			return err
		}
	}
	return nil
}

// Reduce applies an element parser repeatedly and folds the outputs into
// an accumulator. It is parse-only: a fold is not generally invertible.
// Returned from NewReduce.
type Reduce[I, O, A any] struct {
	element   Parser[I, O]
	separator Parser[I, Void]
	bounds    bounds
	seed      A
	combine   func(acc *A, o O)
}

// NewReduce returns a fold of element outputs starting from seed.
// The seed is copied on every Parse; combine updates the copy in place.
//
//	sum := parsing.NewReduce(parsing.Int[string](), 0, func(acc *int, n int) { *acc += n })
func NewReduce[I, O, A any](element Parser[I, O], seed A, combine func(acc *A, o O)) Reduce[I, O, A] {
	return Reduce[I, O, A]{element: element, seed: seed, combine: combine}
}

// AtLeast requires n or more elements.
func (r Reduce[I, O, A]) AtLeast(n int) Reduce[I, O, A] {
	r.bounds.min = n
	return r
}

// AtMost stops after n elements. AtMost(0) matches nothing.
func (r Reduce[I, O, A]) AtMost(n int) Reduce[I, O, A] {
	r.bounds = r.bounds.atMost(n)
	return r
}

// Separator interleaves sep between elements.
func (r Reduce[I, O, A]) Separator(sep Parser[I, Void]) Reduce[I, O, A] {
	r.separator = sep
	return r
}

// Parse folds element outputs in order.
func (r Reduce[I, O, A]) Parse(in *I) (A, error) {
	acc := r.seed
	if _, err := repeat(in, r.element, r.separator, r.bounds, func(o O) {
		r.combine(&acc, o)
	}); err != nil {
		var zero A
		return zero, err
	}
	return acc, nil
}
