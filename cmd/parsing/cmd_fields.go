// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"

	"code.hybscloud.com/parsing"
	"code.hybscloud.com/parsing/internal/grammar"
	"github.com/spf13/cobra"
)

func newFieldsCmd() *cobra.Command {
	var (
		separator string
		atLeast   int
		atMost    int
	)

	cmd := &cobra.Command{
		Use:           "fields <text>",
		Short:         "Split text into separator-delimited fields and print it back",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if separator == "" {
				return errors.New("separator must not be empty")
			}
			var stats parsing.Stats
			g := grammar.Fields(separator, atLeast, atMost)
			fields, rest, err := parsing.Parse(parsing.Trace(g, &stats), args[0])
			log.Debugf("fields: attempts=%d failures=%d", stats.Attempts(), stats.Failures())
			if err != nil {
				log.Errorf("fields: %s", err)
				return err
			}
			for i, f := range fields {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%q\n", i, f)
			}
			if rest != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "rest\t%q\n", rest)
			}
			printed, err := parsing.Print(g, fields)
			if err != nil {
				return fmt.Errorf("print fields: %w", err)
			}
			log.Infof("fields: printed back as %q", printed)
			return nil
		},
	}

	cmd.Flags().StringVar(&separator, "separator", ":", "field separator")
	cmd.Flags().IntVar(&atLeast, "at-least", 0, "minimum number of fields")
	cmd.Flags().IntVar(&atMost, "at-most", 0, "maximum number of fields (0 for unbounded)")

	return cmd
}

func newSumCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "sum <ints>",
		Short:         "Sum comma-separated integers",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			total, rest, err := parsing.Parse(grammar.Sum, args[0])
			if err != nil {
				return err
			}
			if rest != "" {
				log.Warningf("sum: unparsed input %q", rest)
			}
			fmt.Fprintln(cmd.OutOrStdout(), total)
			return nil
		},
	}
}
