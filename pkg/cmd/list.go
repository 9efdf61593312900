package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c9s/indicatorkit/pkg/batch"
)

var listCmd = &cobra.Command{
	Use:          "list",
	Short:        "list the indicator ids accepted by the config file",
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		for _, id := range batch.RegisteredIDs() {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
	},
}

func init() {
	RootCmd.AddCommand(listCmd)
}
