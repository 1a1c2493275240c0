// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parsing_test

import (
	"code.hybscloud.com/parsing"
)

// comma separates the int lists used across repetition tests.
var comma = parsing.Lit[string](",")

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// counting is an upstream that consumes n bytes and reports how often it ran.
type counting struct {
	n    int
	runs *int
}

func (c counting) Parse(in *string) (string, error) {
	*c.runs++
	if len(*in) < c.n {
		return "", &parsing.Error{Msg: "short", Remaining: len(*in)}
	}
	out := (*in)[:c.n]
	*in = (*in)[c.n:]
	return out, nil
}

// sloppy consumes one byte and then fails, without restoring its input.
type sloppy struct{}

func (sloppy) Parse(in *string) (int, error) {
	if len(*in) > 0 {
		*in = (*in)[1:]
	}
	return 0, parsing.ErrFailed
}

func isLower(c byte) bool { return 'a' <= c && c <= 'z' }

func itoa(n int) string {
	s, _ := parsing.Print[string, int](parsing.Int[string](), n)
	return s
}
