// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsing

import "code.hybscloud.com/atomix"

// Stats counts parse attempts through a traced parser.
// Counters are atomic, so one Stats may be shared by concurrent parses and
// read while they run. The zero value is ready to use.
type Stats struct {
	attempts  atomix.Uint32
	successes atomix.Uint32
	failures  atomix.Uint32
}

// Attempts returns the number of Parse calls observed.
func (s *Stats) Attempts() uint32 { return s.attempts.Load() }

// Successes returns the number of successful Parse calls observed.
func (s *Stats) Successes() uint32 { return s.successes.Load() }

// Failures returns the number of failed Parse calls observed.
// In a backtracking grammar each failure is one rolled-back attempt.
func (s *Stats) Failures() uint32 { return s.failures.Load() }

// Traced counts the attempts of an upstream parser.
// Returned from Trace.
type Traced[I, O any] struct {
	upstream Parser[I, O]
	stats    *Stats
}

// Trace wraps upstream so every Parse is counted in stats.
// Tracing never changes what upstream parses.
func Trace[I, O any](upstream Parser[I, O], stats *Stats) Traced[I, O] {
	return Traced[I, O]{upstream: upstream, stats: stats}
}

// Parse runs upstream and records the outcome.
func (t Traced[I, O]) Parse(in *I) (O, error) {
	t.stats.attempts.Add(1)
	saved := *in
	out, err := t.upstream.Parse(in)
	if err != nil {
		*in = saved
		t.stats.failures.Add(1)
		return out, err
	}
	t.stats.successes.Add(1)
	return out, nil
}

// TracedPrinter is a Traced parser that also prints through upstream.
// Printing is not counted.
type TracedPrinter[I, O any] struct {
	Traced[I, O]
	printer Printer[I, O]
}

// TracePrinter wraps a bidirectional upstream so every Parse is counted in stats.
func TracePrinter[I, O any](upstream ParserPrinter[I, O], stats *Stats) TracedPrinter[I, O] {
	return TracedPrinter[I, O]{Traced: Trace[I, O](upstream, stats), printer: upstream}
}

// Print delegates to upstream.
func (t TracedPrinter[I, O]) Print(out O, in *I) error {
	return t.printer.Print(out, in)
}
