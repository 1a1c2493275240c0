// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"code.hybscloud.com/parsing"
	"code.hybscloud.com/parsing/internal/grammar"
	"github.com/spf13/cobra"
)

func newHTTPCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "http <file>",
		Short:         "Parse an HTTP/1.1 request head (use - for stdin)",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args[0])
			if err != nil {
				return err
			}
			head, rest, err := parsing.Parse(grammar.Request, data)
			if err != nil {
				log.Errorf("http: %s", err)
				return err
			}
			log.Debugf("http: %d headers, %d bytes of body", len(head.Headers), len(rest))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "method\t%s\nuri\t%s\nversion\t%s\n", head.Line.Method, head.Line.URI, head.Line.Version)
			for _, h := range head.Headers {
				fmt.Fprintf(out, "%s\t%s\n", h.Name, strings.Join(h.Value, " "))
			}
			return nil
		},
	}
}
