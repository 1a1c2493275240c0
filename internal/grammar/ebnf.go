// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grammar

import (
	_ "embed"
	"io"
	"strings"

	"golang.org/x/exp/ebnf"
)

//go:embed grammar.ebnf
var source string

// Start is the production from which every documented grammar is reachable.
const Start = "Grammars"

// EBNF returns the EBNF description of the grammars in this package.
// Character classes given as predicates in Go are written as ranges.
func EBNF() string { return source }

// Describe parses and verifies the EBNF description of this package.
func Describe() (ebnf.Grammar, error) {
	return Check("grammar.ebnf", strings.NewReader(source), Start)
}

// Check parses an EBNF grammar and verifies it from start.
// An empty start only checks the syntax.
func Check(filename string, r io.Reader, start string) (ebnf.Grammar, error) {
	g, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, err
	}
	if start == "" {
		return g, nil
	}
	if err := ebnf.Verify(g, start); err != nil {
		return nil, err
	}
	return g, nil
}
