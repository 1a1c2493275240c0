// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grammar

import (
	"strings"

	"code.hybscloud.com/parsing"
)

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// IPv6Fields splits an IPv6 address into its colon-separated hex groups,
// keeping the empty group of a "::" run.
//
//	"2001:db8::2:1" → ["2001", "db8", "", "2", "1"]
var IPv6Fields = parsing.NewManyPrinter(parsing.While[string](isHexDigit)).
	Separator(parsing.Lit[string](":"))

// Fields returns a grammar splitting input on sep. Each field is the
// longest run of bytes that do not occur in sep; fields may be empty.
// An atMost of 0 or less leaves the count unbounded.
func Fields(sep string, atLeast, atMost int) parsing.ManyPrinter[string, string] {
	field := parsing.While[string](func(c byte) bool {
		return strings.IndexByte(sep, c) < 0
	})
	fields := parsing.NewManyPrinter(field).
		Separator(parsing.Lit[string](sep)).
		AtLeast(atLeast)
	if atMost > 0 {
		fields = fields.AtMost(atMost)
	}
	return fields
}

// Sum folds comma-separated ints.
//
//	"1,2,3,4,5" → 15
var Sum = parsing.NewReduce(parsing.Int[string](), 0, func(acc *int, n int) { *acc += n }).
	Separator(parsing.Lit[string](","))
