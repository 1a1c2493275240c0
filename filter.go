// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsing

// Filter rejects upstream outputs that do not satisfy a predicate.
// Returned from NewFilter.
type Filter[I, O any] struct {
	upstream  Parser[I, O]
	predicate func(O) bool
}

// NewFilter returns a parser that fails when predicate rejects the output
// of upstream. A rejected output never leaves the input partially consumed.
func NewFilter[I, O any](upstream Parser[I, O], predicate func(O) bool) Filter[I, O] {
	return Filter[I, O]{upstream: upstream, predicate: predicate}
}

// Parse runs upstream and checks its output.
// The upstream already committed its consumption when the predicate runs,
// so a rejection restores *in from the snapshot.
func (f Filter[I, O]) Parse(in *I) (O, error) {
	saved := *in
	out, err := f.upstream.Parse(in)
	if err != nil {
		*in = saved
		return out, err
	}
	if !f.predicate(out) {
		*in = saved
		var zero O
		return zero, failf(*in, "filtered output %v", out)
	}
	return out, nil
}

// FilterPrinter is the bidirectional Filter.
// Returned from NewFilterPrinter.
type FilterPrinter[I, O any] struct {
	Filter[I, O]
	printer Printer[I, O]
}

// NewFilterPrinter returns a Filter that also prints through upstream.
func NewFilterPrinter[I, O any](upstream ParserPrinter[I, O], predicate func(O) bool) FilterPrinter[I, O] {
	return FilterPrinter[I, O]{
		Filter:  NewFilter[I, O](upstream, predicate),
		printer: upstream,
	}
}

// Print fails without touching *in when predicate rejects out.
func (f FilterPrinter[I, O]) Print(out O, in *I) error {
	if !f.predicate(out) {
		return failf(*in, "filtered output %v", out)
	}
	saved := *in
	if err := f.printer.Print(out, in); err != nil {
		*in = saved
		return err
	}
	return nil
}
