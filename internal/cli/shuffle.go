package cli

import (
	"crypto/rand"

	"github.com/spf13/cobra"
)

// newShuffleCmd builds `pontifex shuffle [--iterations N] [<deck>]`.
func newShuffleCmd(flags *globalFlags) *cobra.Command {
	var iterations uint32

	cmd := &cobra.Command{
		Use:   "shuffle [deck]",
		Short: "shuffle a new or existing deck",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var arg string
			if len(args) == 1 {
				arg = args[0]
			}
			deck, err := resolveOptionalDeck(arg)
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			for i := uint32(0); i < iterations; i++ {
				if err := deck.Shuffle(rand.Reader); err != nil {
					return err
				}
				logger.Debug().Uint32("iteration", i+1).Msg("shuffled deck")
			}

			return printDeck(cmd.OutOrStdout(), flags, deck)
		},
	}

	cmd.Flags().Uint32VarP(&iterations, "iterations", "n", 7,
		"how many times to shuffle this deck")

	return cmd
}
