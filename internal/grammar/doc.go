// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package grammar holds domain grammars built only from the public
// combinators of package parsing: colon-separated fields, HTTP/1.1 request
// heads, comment-stripped lines, and a method+path router.
// grammar.ebnf documents them and is verified by [Describe].
package grammar
