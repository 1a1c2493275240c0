// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsing

import (
	"code.hybscloud.com/kont"
)

// TakeOp is the effect operation for running a parser on the grammar input.
// Perform(TakeOp[I, O]{Parser: p}) resumes with p's output.
type TakeOp[I, O any] struct {
	kont.Phantom[O]
	Parser Parser[I, O]
}

// DispatchParse runs the parser against the handler's input.
// The parser restores *in on failure, so a failed Take leaves the input
// where the previous step ended.
func (t TakeOp[I, O]) DispatchParse(in *I) (kont.Resumed, error) {
	out, err := t.Parser.Parse(in)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PeekOp is the effect operation for inspecting the remaining input
// without consuming it. Perform(PeekOp[I]{}) resumes with a copy of the input.
type PeekOp[I any] struct {
	kont.Phantom[I]
}

// DispatchParse returns a snapshot of *in.
func (PeekOp[I]) DispatchParse(in *I) (kont.Resumed, error) {
	return *in, nil
}
