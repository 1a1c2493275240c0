// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsing

// Not is a negative lookahead.
// It succeeds with Void exactly when upstream fails, and never consumes input.
// Not is parse-only: it carries no output to print.
//
//	uncommented := parsing.Right(parsing.NewNot(parsing.Lit[string]("//")), parsing.UpTo[string]("\n"))
type Not[I, O any] struct {
	upstream Parser[I, O]
}

// NewNot returns a negative lookahead on upstream.
func NewNot[I, O any](upstream Parser[I, O]) Not[I, O] {
	return Not[I, O]{upstream: upstream}
}

// Parse attempts upstream and restores *in in both outcomes.
func (n Not[I, O]) Parse(in *I) (Void, error) {
	saved := *in
	_, err := n.upstream.Parse(in)
	*in = saved
	if err != nil {
		return Void{}, nil
	}
	return Void{}, failf(*in, "unexpected match")
}
