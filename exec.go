// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsing

import (
	"errors"

	"code.hybscloud.com/kont"
)

// parseDispatcher is the structural interface for grammar operations.
// DispatchParse runs against the input owned by the handler.
type parseDispatcher[I any] interface {
	DispatchParse(in *I) (kont.Resumed, error)
}

// grammarHandler handles both grammar and error effects.
// Grammar ops run against in. A failing grammar op or a Throw short-circuits
// with Left. Value type: passed to the evaluation loop on the stack.
type grammarHandler[I, A any] struct {
	in     *I
	errCtx *kont.ErrorContext[error]
}

// Dispatch implements kont.Handler for the composed Grammar+Error handler.
// Dispatch order: Grammar → Error.
func (h grammarHandler[I, A]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	if gop, ok := op.(parseDispatcher[I]); ok {
		v, err := gop.DispatchParse(h.in)
		if err != nil {
			return kont.Left[error, A](err), false
		}
		return v, true
	}
	if eop, ok := op.(interface {
		DispatchError(ctx *kont.ErrorContext[error]) (kont.Resumed, bool)
	}); ok {
		v, _ := eop.DispatchError(h.errCtx)
		if h.errCtx.HasErr {
			return kont.Left[error, A](h.errCtx.Err), false
		}
		return v, true
	}
	panic("parsing: unhandled effect in grammarHandler")
}

// DoParser is a sequential grammar declared as a kont computation.
// Returned from Do.
type DoParser[I, O any] struct {
	build func() kont.Eff[O]
}

// Do returns a parser that evaluates the computation built by build, running
// each Take against the input. build is called once per Parse, so the
// computation holds no state shared between calls.
//
// Outputs flowing through Take must not be nil interface values; wrap them in
// a concrete type if nil is meaningful.
//
//	kv := parsing.Do[string](func() kont.Eff[parsing.Pair[string, int]] {
//		return parsing.TakeBind(key, func(k string) kont.Eff[parsing.Pair[string, int]] {
//			return parsing.SkipThen(parsing.Lit[string]("="),
//				parsing.TakeBind(parsing.Int[string](), func(v int) kont.Eff[parsing.Pair[string, int]] {
//					return parsing.Done(parsing.Pair[string, int]{First: k, Second: v})
//				}))
//		})
//	})
func Do[I, O any](build func() kont.Eff[O]) DoParser[I, O] {
	return DoParser[I, O]{build: build}
}

// Parse evaluates the grammar. Any failing step restores *in to its state
// before the first step and is returned as the error.
func (d DoParser[I, O]) Parse(in *I) (O, error) {
	saved := *in
	result := exec[I, O](in, d.build())
	if err, ok := result.GetLeft(); ok {
		*in = saved
		var zero O
		switch {
		case err == nil:
			err = failf(*in, "grammar failed")
		case !errors.Is(err, ErrFailed):
			err = &Error{Msg: err.Error(), Remaining: remainingOrUnknown(*in), Err: err}
		}
		return zero, err
	}
	out, _ := result.GetRight()
	return out, nil
}

// exec runs a grammar computation against in.
// Returns Either[error, O]: Right on success, Left on the first failure.
func exec[I, O any](in *I, grammar kont.Eff[O]) kont.Either[error, O] {
	wrapped := kont.Map[kont.Resumed, O, kont.Either[error, O]](grammar, func(o O) kont.Either[error, O] {
		return kont.Right[error, O](o)
	})
	var errCtx kont.ErrorContext[error]
	h := grammarHandler[I, O]{in: in, errCtx: &errCtx}
	return kont.Handle(wrapped, h)
}

// ParseEither runs p on input and returns the output as Right,
// or the failure as Left.
func ParseEither[I, O any](p Parser[I, O], input I) kont.Either[error, O] {
	out, err := p.Parse(&input)
	if err != nil {
		return kont.Left[error, O](err)
	}
	return kont.Right[error, O](out)
}
