package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arcanaland/tarotsim/internal/card"
	"github.com/arcanaland/tarotsim/internal/render"
)

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "List the cards of the deck",
	Long: `Cards lists the 78 cards with their canonical IDs, in deck order.
Use the IDs with 'tarotsim show'.

Examples:
  tarotsim cards --major
  tarotsim cards --suit cups --lang it`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		major, _ := cmd.Flags().GetBool("major")
		suitFlag, _ := cmd.Flags().GetString("suit")

		suit := card.NoSuit
		if suitFlag != "" {
			s, err := card.ParseSuit(suitFlag)
			if err != nil {
				return err
			}
			suit = s
		}

		var selected []card.Card
		for _, c := range current.cards {
			if major && !c.Major {
				continue
			}
			if suit != card.NoSuit && c.Suit != suit {
				continue
			}
			selected = append(selected, c)
		}

		render.New(cmd.OutOrStdout(), current.bundle, 0).Cards(selected)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(cardsCmd)

	cardsCmd.Flags().Bool("major", false, "Only list the Major Arcana")
	cardsCmd.Flags().String("suit", "", "Only list one suit (wands, cups, swords, pentacles)")
}
