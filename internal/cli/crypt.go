package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tvdburgt/pontifex"
)

// addCryptFlags registers the --deck/--passphrase flags shared by encrypt
// and decrypt, and enforces their mutual exclusion.
func addCryptFlags(cmd *cobra.Command, src *keySource) {
	cmd.Flags().StringVarP(&src.deckText, "deck", "d", "",
		"use this deck as the initial state")
	cmd.Flags().StringVarP(&src.passphrase, "passphrase", "p", "",
		"derive a fresh deck from this passphrase")
	cmd.MarkFlagsMutuallyExclusive("deck", "passphrase")
}

// newEncryptCmd builds `pontifex encrypt (--deck <deck> | --passphrase <phrase>) <message>`.
func newEncryptCmd() *cobra.Command {
	var src keySource

	cmd := &cobra.Command{
		Use:   "encrypt <message>",
		Short: "encrypt a message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deck, err := src.resolve()
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			logger.Debug().Int("message_len", len(args[0])).Msg("encrypting message")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), pontifex.Encrypt(deck, args[0]))
			return err
		},
	}

	addCryptFlags(cmd, &src)
	return cmd
}

// newDecryptCmd builds `pontifex decrypt (--deck <deck> | --passphrase <phrase>) <message>`.
func newDecryptCmd() *cobra.Command {
	var src keySource

	cmd := &cobra.Command{
		Use:   "decrypt <message>",
		Short: "decrypt a message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deck, err := src.resolve()
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			logger.Debug().Int("message_len", len(args[0])).Msg("decrypting message")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), pontifex.Decrypt(deck, args[0]))
			return err
		},
	}

	addCryptFlags(cmd, &src)
	return cmd
}
