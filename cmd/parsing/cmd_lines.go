// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"code.hybscloud.com/parsing"
	"code.hybscloud.com/parsing/internal/grammar"
	"github.com/spf13/cobra"
)

func newLinesCmd() *cobra.Command {
	var capacity int

	cmd := &cobra.Command{
		Use:           "lines <file>",
		Short:         "Print the uncommented lines of a file (use - for stdin)",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args[0])
			if err != nil {
				return err
			}
			// A final line without a newline is still a line.
			if len(data) > 0 && data[len(data)-1] != '\n' {
				data = append(data, '\n')
			}
			pipe := parsing.NewPipe(grammar.Entry, string(data), capacity)
			go pipe.Produce()

			n := 0
			for line, ok := pipe.Next(); ok; line, ok = pipe.Next() {
				fmt.Fprintln(cmd.OutOrStdout(), line)
				n++
			}
			log.Debugf("lines: %d uncommented lines", n)
			if err := pipe.Err(); err != nil {
				// Trailing comments end the record stream without a final line.
				if _, cerr := parsing.ParseAll(grammar.Comments, pipe.Rest()); cerr != nil {
					return fmt.Errorf("lines: stopped with %d bytes left: %w", len(pipe.Rest()), err)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&capacity, "capacity", parsing.DefaultPipeCapacity, "record queue capacity")

	return cmd
}
