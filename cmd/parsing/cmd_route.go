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

func newRouteCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "route <method> <path>",
		Short:         "Route a request and print the canonical request back",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := grammar.NewRequestData(args[0], args[1])
			route, err := parsing.ParseAll(grammar.Router, req)
			if err != nil {
				log.Errorf("route: no route for %s: %s", req, err)
				return err
			}
			canonical, err := parsing.Print(grammar.Router, route)
			if err != nil {
				return fmt.Errorf("print route: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\tid=%d\t%s\n", route.Kind, route.ID, canonical)
			return nil
		},
	}
}
