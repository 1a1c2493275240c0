// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsing

// Optional turns upstream failure into an absent (nil) output.
// Returned from NewOptional.
type Optional[I, O any] struct {
	upstream Parser[I, O]
}

// NewOptional returns a parser producing a pointer to upstream's output,
// or nil when upstream fails.
func NewOptional[I, O any](upstream Parser[I, O]) Optional[I, O] {
	return Optional[I, O]{upstream: upstream}
}

// Parse never fails. On upstream failure *in is restored and the result is nil.
func (o Optional[I, O]) Parse(in *I) (*O, error) {
	saved := *in
	out, err := o.upstream.Parse(in)
	if err != nil {
		*in = saved
		return nil, nil
	}
	return &out, nil
}

// OptionalPrinter is the bidirectional Optional.
type OptionalPrinter[I, O any] struct {
	Optional[I, O]
	printer Printer[I, O]
}

// NewOptionalPrinter returns an Optional that also prints present values.
func NewOptionalPrinter[I, O any](upstream ParserPrinter[I, O]) OptionalPrinter[I, O] {
	return OptionalPrinter[I, O]{
		Optional: NewOptional[I, O](upstream),
		printer:  upstream,
	}
}

// Print appends nothing for nil and delegates for a present value.
func (o OptionalPrinter[I, O]) Print(out *O, in *I) error {
	if out == nil {
		return nil
	}
	saved := *in
	if err := o.printer.Print(*out, in); err != nil {
		*in = saved
		return err
	}
	return nil
}

// OptionalVoid wraps a Void matcher that may not be configured at all.
// A nil upstream degenerates to a no-op success.
type OptionalVoid[I any] struct {
	upstream Parser[I, Void]
}

// NewOptionalVoid returns an OptionalVoid on upstream, which may be nil.
func NewOptionalVoid[I any](upstream Parser[I, Void]) OptionalVoid[I] {
	return OptionalVoid[I]{upstream: upstream}
}

// Parse runs upstream for its consumption and succeeds either way.
func (o OptionalVoid[I]) Parse(in *I) (Void, error) {
	if o.upstream == nil {
		return Void{}, nil
	}
	saved := *in
	if _, err := o.upstream.Parse(in); err != nil {
		*in = saved
	}
	return Void{}, nil
}

// OptionalVoidPrinter is the bidirectional OptionalVoid.
type OptionalVoidPrinter[I any] struct {
	OptionalVoid[I]
	printer Printer[I, Void]
}

// NewOptionalVoidPrinter returns an OptionalVoid that prints upstream as
// its canonical form. A nil upstream prints nothing.
func NewOptionalVoidPrinter[I any](upstream ParserPrinter[I, Void]) OptionalVoidPrinter[I] {
	if upstream == nil {
		return OptionalVoidPrinter[I]{}
	}
	return OptionalVoidPrinter[I]{
		OptionalVoid: NewOptionalVoid[I](upstream),
		printer:      upstream,
	}
}

// Print appends the configured upstream, or nothing.
func (o OptionalVoidPrinter[I]) Print(_ Void, in *I) error {
	if o.printer == nil {
		return nil
	}
	saved := *in
	if err := o.printer.Print(Void{}, in); err != nil {
		*in = saved
		return err
	}
	return nil
}
