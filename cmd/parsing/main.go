// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command parsing runs the example grammars over files and arguments.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("parsing")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose int

	rootCmd := &cobra.Command{
		Use:   "parsing",
		Short: "Parse and print with the example grammars",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbose, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newFieldsCmd())
	rootCmd.AddCommand(newSumCmd())
	rootCmd.AddCommand(newHTTPCmd())
	rootCmd.AddCommand(newRouteCmd())
	rootCmd.AddCommand(newLinesCmd())
	rootCmd.AddCommand(newEbnfCmd())

	return rootCmd
}
