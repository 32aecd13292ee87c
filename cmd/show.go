package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arcanaland/tarotsim/internal/catalog"
	"github.com/arcanaland/tarotsim/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Display information about a specific card",
	Long: `Show displays the name, suit, element and meanings of a tarot card.
Use canonical card IDs like 'major_arcana.00' or 'minor_arcana.wands.ace'.

Examples:
  tarotsim show major_arcana.00
  tarotsim show minor_arcana.cups.queen --lang it`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := catalog.Lookup(current.cards, args[0])
		if err != nil {
			return err
		}

		render.New(cmd.OutOrStdout(), current.bundle, 0).CardInfo(c)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}
