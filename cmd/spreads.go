package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arcanaland/tarotsim/internal/render"
	"github.com/arcanaland/tarotsim/internal/spread"
)

var spreadsCmd = &cobra.Command{
	Use:   "spreads",
	Short: "List the available spreads and their positions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		render.New(cmd.OutOrStdout(), current.bundle, 0).SpreadTable(spread.All())
	},
}

func init() {
	RootCmd.AddCommand(spreadsCmd)
}
