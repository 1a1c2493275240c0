// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grammar

import "code.hybscloud.com/parsing"

var (
	lf      = parsing.Lit[string]("\n")
	comment = parsing.Skip(parsing.Take2(parsing.Lit[string]("#"), parsing.Through[string]("\n")))
)

// Line is one uncommented, newline-terminated line without its newline.
// Lines starting with "#" never match.
var Line = parsing.Right(parsing.NewNot(parsing.Lit[string]("#")), parsing.Left(parsing.UpTo[string]("\n"), lf))

// Comments skips a run of comment lines.
var Comments = parsing.NewMany(comment)

// Entry skips any comment lines and yields the next uncommented line.
var Entry = parsing.Right(Comments, Line)

// Uncommented collects every uncommented line, skipping trailing comments.
//
//	"# hosts\nalpha\n# beta\ngamma\n" → ["alpha", "gamma"]
var Uncommented = parsing.Left(parsing.NewMany(Entry), Comments)
