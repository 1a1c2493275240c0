// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsing

import (
	"code.hybscloud.com/kont"
)

// Take runs p on the grammar input and yields its output.
func Take[I, O any](p Parser[I, O]) kont.Eff[O] {
	return kont.Perform(TakeOp[I, O]{Parser: p})
}

// TakeBind runs p and passes its output to f.
// Fuses Perform(TakeOp{Parser: p}) + Bind.
func TakeBind[I, O, B any](p Parser[I, O], f func(O) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(Take(p), f)
}

// SkipThen runs p, discards its output, and continues with next.
// Fuses Perform(TakeOp{Parser: p}) + Then.
func SkipThen[I, O, B any](p Parser[I, O], next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(Take(p), next)
}

// PeekBind passes a snapshot of the remaining input to f without consuming it.
func PeekBind[I, B any](f func(I) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(PeekOp[I]{}), f)
}

// Done ends a grammar with a.
func Done[A any](a A) kont.Eff[A] {
	return kont.Pure(a)
}

// Reject fails the grammar with err wrapped as a parse failure.
func Reject[A any](err error) kont.Eff[A] {
	return kont.ThrowError[error, A](err)
}
