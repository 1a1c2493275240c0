// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsing

import (
	"math/bits"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// DefaultPipeCapacity is the queue capacity used when NewPipe is given
// a non-positive capacity.
const DefaultPipeCapacity = 64

// Pipe splits a fully materialized input into records and hands them from
// one producer goroutine to one consumer goroutine.
// Transport is a bounded lock-free SPSC queue from lfq.
//
//	pipe := parsing.NewPipe(line, input, 0)
//	go pipe.Produce()
//	for rec, ok := pipe.Next(); ok; rec, ok = pipe.Next() {
//		// ...
//	}
//	if err := pipe.Err(); err != nil { ... }
type Pipe[I, O any] struct {
	parser Parser[I, O]
	input  I
	q      lfq.SPSC[O]
	slot   O
	done   atomix.Uint32
	err    error
}

// NewPipe creates a pipe that parses input with record.
// Capacity is rounded up to a power of two.
func NewPipe[I, O any](record Parser[I, O], input I, capacity int) *Pipe[I, O] {
	if capacity <= 0 {
		capacity = DefaultPipeCapacity
	}
	p := &Pipe[I, O]{parser: record, input: input}
	p.q.Init(1 << bits.Len(uint(capacity-1)))
	return p
}

// Produce parses records until the input is exhausted or a record fails to
// parse, enqueueing each one. Must be called from exactly one goroutine.
// Waits past a full queue with adaptive backoff (iox.Backoff).
// Returns the parse failure, if any; exhausting the input is not an error.
func (p *Pipe[I, O]) Produce() error {
	defer p.done.Add(1)
	var bo iox.Backoff
	for count := 0; ; count++ {
		before, measured := remainingAt(&p.input)
		if measured && before == 0 {
			return nil
		}
		if !measured && count >= IterationLimit {
			p.err = &Error{Msg: "iteration limit reached", Remaining: -1, Err: ErrNoProgress}
			return p.err
		}
		out, err := p.parser.Parse(&p.input)
		if err != nil {
			p.err = err
			return err
		}
		if after, ok := remainingAt(&p.input); measured && ok && after >= before {
			p.err = &Error{Msg: "record consumed no input", Remaining: before, Err: ErrNoProgress}
			return p.err
		}
		p.slot = out
		for p.q.Enqueue(&p.slot) != nil {
			bo.Wait()
		}
		bo.Reset()
	}
}

// Next returns the next record, waiting for the producer if the queue is
// empty. It returns false once the producer has finished and every record
// has been consumed. Must be called from exactly one goroutine.
func (p *Pipe[I, O]) Next() (O, bool) {
	var bo iox.Backoff
	for {
		if v, err := p.q.Dequeue(); err == nil {
			return v, true
		}
		if p.done.Load() != 0 {
			// The producer may have enqueued between the failed Dequeue and
			// the done check.
			if v, err := p.q.Dequeue(); err == nil {
				return v, true
			}
			var zero O
			return zero, false
		}
		bo.Wait()
	}
}

// Err returns the producer's parse failure.
// Valid once Next has returned false.
func (p *Pipe[I, O]) Err() error {
	return p.err
}

// Rest returns the input left unparsed by the producer.
// Valid once Next has returned false.
func (p *Pipe[I, O]) Rest() I {
	return p.input
}
