// Package cli wires the pontifex cipher core into a cobra command tree:
// shuffle, passphrase, encrypt, and decrypt, plus the shared --ascii and
// --verbose flags.
package cli

import (
	"github.com/spf13/cobra"
)

// globalFlags holds the persistent flags shared by every subcommand.
type globalFlags struct {
	ascii     bool
	verbosity int
}

// NewRootCmd builds the pontifex root command and its four subcommands.
// It is called once from main.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:           "pontifex",
		Short:         "Bruce Schneier's Solitaire (Pontifex) encryption algorithm",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(cmd.ErrOrStderr(), flags.verbosity)
			cmd.SetContext(withLogger(cmd.Context(), logger))
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVar(&flags.ascii, "ascii", false,
		"emit ASCII suit glyphs (C D H S J) instead of Unicode suit symbols")
	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v",
		"increase logging verbosity (-v for info, -vv for debug)")

	rootCmd.AddCommand(
		newShuffleCmd(flags),
		newPassphraseCmd(flags),
		newEncryptCmd(),
		newDecryptCmd(),
	)

	return rootCmd
}
