// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsing

// Pair is the output of Take2.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Mapped transforms the output of upstream. Parse-only.
// Returned from Map.
type Mapped[I, A, B any] struct {
	upstream Parser[I, A]
	f        func(A) B
}

// Map returns a parser that applies f to the output of upstream.
func Map[I, A, B any](upstream Parser[I, A], f func(A) B) Mapped[I, A, B] {
	return Mapped[I, A, B]{upstream: upstream, f: f}
}

// Parse runs upstream and transforms its output.
// An upstream failure restores *in.
func (m Mapped[I, A, B]) Parse(in *I) (B, error) {
	saved := *in
	a, err := m.upstream.Parse(in)
	if err != nil {
		*in = saved
		var zero B
		return zero, err
	}
	return m.f(a), nil
}

// Conversion maps through an invertible pair of functions.
// Returned from Convert.
type Conversion[I, A, B any] struct {
	upstream ParserPrinter[I, A]
	apply    func(A) (B, error)
	unapply  func(B) (A, error)
}

// Convert returns a bidirectional map. apply runs after parsing and
// unapply before printing; either may reject a value by returning an error.
func Convert[I, A, B any](upstream ParserPrinter[I, A], apply func(A) (B, error), unapply func(B) (A, error)) Conversion[I, A, B] {
	return Conversion[I, A, B]{upstream: upstream, apply: apply, unapply: unapply}
}

// Parse runs upstream and applies the conversion.
// A rejected value restores *in.
func (c Conversion[I, A, B]) Parse(in *I) (B, error) {
	saved := *in
	a, err := c.upstream.Parse(in)
	if err != nil {
		*in = saved
		var zero B
		return zero, err
	}
	b, err := c.apply(a)
	if err != nil {
		*in = saved
		var zero B
		return zero, &Error{Msg: err.Error(), Remaining: remainingOrUnknown(*in), Err: err}
	}
	return b, nil
}

// Print unapplies the conversion and prints through upstream.
func (c Conversion[I, A, B]) Print(b B, in *I) error {
	a, err := c.unapply(b)
	if err != nil {
		return &Error{Msg: err.Error(), Remaining: remainingOrUnknown(*in), Err: err}
	}
	saved := *in
	if err := c.upstream.Print(a, in); err != nil {
		*in = saved
		return err
	}
	return nil
}

// Sequence runs two parsers in order.
// Returned from Take2.
type Sequence[I, A, B any] struct {
	first  Parser[I, A]
	second Parser[I, B]
}

// Take2 returns a parser producing both outputs as a Pair.
func Take2[I, A, B any](first Parser[I, A], second Parser[I, B]) Sequence[I, A, B] {
	return Sequence[I, A, B]{first: first, second: second}
}

// Parse runs first then second; a failure in either restores *in.
func (s Sequence[I, A, B]) Parse(in *I) (Pair[A, B], error) {
	saved := *in
	a, err := s.first.Parse(in)
	if err != nil {
		*in = saved
		return Pair[A, B]{}, err
	}
	b, err := s.second.Parse(in)
	if err != nil {
		*in = saved
		return Pair[A, B]{}, err
	}
	return Pair[A, B]{First: a, Second: b}, nil
}

// SequencePrinter is the bidirectional Take2.
type SequencePrinter[I, A, B any] struct {
	Sequence[I, A, B]
	first  Printer[I, A]
	second Printer[I, B]
}

// Take2Printer returns a Take2 that also prints both halves of a Pair.
func Take2Printer[I, A, B any](first ParserPrinter[I, A], second ParserPrinter[I, B]) SequencePrinter[I, A, B] {
	return SequencePrinter[I, A, B]{
		Sequence: Take2[I, A, B](first, second),
		first:    first,
		second:   second,
	}
}

// Print prints First then Second.
func (s SequencePrinter[I, A, B]) Print(p Pair[A, B], in *I) error {
	saved := *in
	if err := s.first.Print(p.First, in); err != nil {
		*in = saved
		return err
	}
	if err := s.second.Print(p.Second, in); err != nil {
		*in = saved
		return err
	}
	return nil
}

// Left runs both parsers and keeps the first output.
func Left[I, A, B any](first Parser[I, A], second Parser[I, B]) Mapped[I, Pair[A, B], A] {
	return Map[I, Pair[A, B], A](Take2(first, second), func(p Pair[A, B]) A { return p.First })
}

// Right runs both parsers and keeps the second output.
func Right[I, A, B any](first Parser[I, A], second Parser[I, B]) Mapped[I, Pair[A, B], B] {
	return Map[I, Pair[A, B], B](Take2(first, second), func(p Pair[A, B]) B { return p.Second })
}

// LeftPrinter is the bidirectional Left. The second parser must be Void,
// since its output cannot be recovered from the first.
func LeftPrinter[I, A any](first ParserPrinter[I, A], second ParserPrinter[I, Void]) Conversion[I, Pair[A, Void], A] {
	return Convert[I, Pair[A, Void], A](Take2Printer(first, second),
		func(p Pair[A, Void]) (A, error) { return p.First, nil },
		func(a A) (Pair[A, Void], error) { return Pair[A, Void]{First: a}, nil },
	)
}

// RightPrinter is the bidirectional Right. The first parser must be Void.
func RightPrinter[I, B any](first ParserPrinter[I, Void], second ParserPrinter[I, B]) Conversion[I, Pair[Void, B], B] {
	return Convert[I, Pair[Void, B], B](Take2Printer(first, second),
		func(p Pair[Void, B]) (B, error) { return p.Second, nil },
		func(b B) (Pair[Void, B], error) { return Pair[Void, B]{Second: b}, nil },
	)
}

// Alternatives tries parsers in order.
// Returned from OneOf.
type Alternatives[I, O any] struct {
	choices []Parser[I, O]
}

// OneOf returns the first successful result among choices, attempted in
// order with *in restored between attempts.
func OneOf[I, O any](choices ...Parser[I, O]) Alternatives[I, O] {
	return Alternatives[I, O]{choices: choices}
}

// Parse attempts each choice from the same position.
func (a Alternatives[I, O]) Parse(in *I) (O, error) {
	saved := *in
	for _, p := range a.choices {
		out, err := p.Parse(in)
		if err == nil {
			return out, nil
		}
		*in = saved
	}
	var zero O
	return zero, failf(*in, "no alternative matched")
}

// AlternativesPrinter is the bidirectional OneOf.
type AlternativesPrinter[I, O any] struct {
	Alternatives[I, O]
	printers []Printer[I, O]
}

// OneOfPrinter returns a OneOf that prints with the first choice whose
// Print succeeds.
func OneOfPrinter[I, O any](choices ...ParserPrinter[I, O]) AlternativesPrinter[I, O] {
	parsers := make([]Parser[I, O], len(choices))
	printers := make([]Printer[I, O], len(choices))
	for i, c := range choices {
		parsers[i] = c
		printers[i] = c
	}
	return AlternativesPrinter[I, O]{
		Alternatives: OneOf(parsers...),
		printers:     printers,
	}
}

// Print tries each printer from the same buffer state.
func (a AlternativesPrinter[I, O]) Print(out O, in *I) error {
	saved := *in
	for _, p := range a.printers {
		if err := p.Print(out, in); err == nil {
			return nil
		}
		*in = saved
	}
	return failf(*in, "no alternative printed %v", out)
}

// Skip discards the output of upstream. Parse-only.
func Skip[I, O any](upstream Parser[I, O]) Mapped[I, O, Void] {
	return Map[I, O, Void](upstream, func(O) Void { return Void{} })
}
