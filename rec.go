// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsing

import (
	"code.hybscloud.com/kont"
)

// Loop runs a data-dependent repetition inside a Do grammar.
// step returns Left(nextState) to continue or Right(result) to finish.
// Unlike Many, the number of iterations may depend on earlier outputs,
// as with a count prefix:
//
//	counted := parsing.Do[string](func() kont.Eff[[]int] {
//		return parsing.TakeBind(parsing.Int[string](), func(n int) kont.Eff[[]int] {
//			return parsing.Loop(make([]int, 0, n), func(acc []int) kont.Eff[kont.Either[[]int, []int]] {
//				if len(acc) == n {
//					return parsing.Done(kont.Right[[]int, []int](acc))
//				}
//				return parsing.SkipThen(parsing.Lit[string](" "),
//					parsing.TakeBind(parsing.Int[string](), func(v int) kont.Eff[kont.Either[[]int, []int]] {
//						return parsing.Done(kont.Left[[]int, []int](append(acc, v)))
//					}))
//			})
//		})
//	})
func Loop[S, A any](initial S, step func(S) kont.Eff[kont.Either[S, A]]) kont.Eff[A] {
	return kont.Bind(step(initial), func(e kont.Either[S, A]) kont.Eff[A] {
		if left, ok := e.GetLeft(); ok {
			return Loop(left, step)
		}
		right, _ := e.GetRight()
		return kont.Pure(right)
	})
}
