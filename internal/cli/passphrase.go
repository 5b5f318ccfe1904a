package cli

import (
	"github.com/spf13/cobra"
	"github.com/tvdburgt/pontifex"
)

// newPassphraseCmd builds `pontifex passphrase <phrase>`.
func newPassphraseCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "passphrase <phrase>",
		Short: "initialize a deck from a passphrase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deck := pontifex.NewDeckFromPassphrase(args[0])
			return printDeck(cmd.OutOrStdout(), flags, deck)
		},
	}
}
