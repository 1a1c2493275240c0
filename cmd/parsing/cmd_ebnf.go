// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"slices"

	"code.hybscloud.com/parsing/internal/grammar"
	"github.com/spf13/cobra"
)

func newEbnfCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ebnf",
		Short:         "EBNF descriptions of the example grammars",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newEbnfShowCmd())
	cmd.AddCommand(newEbnfCheckCmd())

	return cmd
}

func newEbnfShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "show",
		Short:         "Print the EBNF of the example grammars and list their productions",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grammar.Describe()
			if err != nil {
				printErrors(cmd.ErrOrStderr(), err)
				return err
			}
			names := make([]string, 0, len(g))
			for name := range g {
				names = append(names, name)
			}
			slices.Sort(names)
			log.Debugf("ebnf: %d productions: %v", len(names), names)
			fmt.Fprint(cmd.OutOrStdout(), grammar.EBNF())
			return nil
		},
	}
}

func newEbnfCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:           "check <file>",
		Short:         "Parse and verify an EBNF grammar file (use - for stdin)",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args[0])
			if err != nil {
				return err
			}
			g, err := grammar.Check(args[0], bytes.NewReader(data), startProduction)
			if err != nil {
				printErrors(cmd.ErrOrStderr(), err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d productions\n", len(g))
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start production for verification (if empty, only checks syntax)")

	return cmd
}

// printErrors prints each error of an ebnf error list on its own line.
func printErrors(w io.Writer, err error) {
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Fprintln(w, v.Index(i).Interface())
		}
	} else {
		fmt.Fprintln(w, err)
	}
}
