// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsing

// Void is the output of matchers that carry no data.
type Void = struct{}

// Parser consumes a prefix of *in and produces an output.
//
// On success *in has advanced past exactly the consumed elements.
// Combinators in this package restore *in when they fail.
type Parser[I, O any] interface {
	Parse(in *I) (O, error)
}

// Printer appends the representation of out onto *in.
// Combinators in this package leave *in untouched when they fail.
type Printer[I, O any] interface {
	Print(out O, in *I) error
}

// ParserPrinter is a bidirectional combinator.
// For every out accepted by Print, Parse of the printed region yields out.
type ParserPrinter[I, O any] interface {
	Parser[I, O]
	Printer[I, O]
}

// ParserFunc adapts a function to the Parser contract.
type ParserFunc[I, O any] func(in *I) (O, error)

// Parse calls f(in).
func (f ParserFunc[I, O]) Parse(in *I) (O, error) { return f(in) }

// PrinterFunc adapts a function to the Printer contract.
type PrinterFunc[I, O any] func(out O, in *I) error

// Print calls f(out, in).
func (f PrinterFunc[I, O]) Print(out O, in *I) error { return f(out, in) }

// Parse runs p on input and returns the output and the unconsumed remainder.
func Parse[I, O any](p Parser[I, O], input I) (O, I, error) {
	out, err := p.Parse(&input)
	return out, input, err
}

// ParseAll runs p on input and requires the whole input to be consumed.
// A non-empty remainder is reported as an *Error wrapping ErrNotEnd.
func ParseAll[I, O any](p Parser[I, O], input I) (O, error) {
	out, err := p.Parse(&input)
	if err != nil {
		var zero O
		return zero, err
	}
	if n, ok := remainingAt(&input); ok && n > 0 {
		var zero O
		return zero, &Error{Msg: "unexpected input after end", Remaining: n, Err: ErrNotEnd}
	}
	return out, nil
}

// Print prints out onto an empty buffer and returns the buffer.
// String buffers copy on every append; print long outputs as []byte.
func Print[I, O any](p Printer[I, O], out O) (I, error) {
	var buf I
	err := p.Print(out, &buf)
	return buf, err
}

// PrintTo appends out onto buf and returns the extended buffer.
// On failure buf is returned unchanged.
func PrintTo[I, O any](p Printer[I, O], out O, buf I) (I, error) {
	saved := buf
	if err := p.Print(out, &buf); err != nil {
		return saved, err
	}
	return buf, nil
}
