package cli

import (
	"fmt"
	"io"

	"github.com/tvdburgt/pontifex"
)

// printDeck writes deck's canonical textual form to w, honoring the
// global --ascii flag.
func printDeck(w io.Writer, flags *globalFlags, deck *pontifex.Deck) error {
	s, err := deck.Format(flags.ascii)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

// resolveOptionalDeck parses an optional deck argument, as accepted by
// `shuffle`'s positional <deck> argument. An empty string yields a fresh
// sorted deck.
func resolveOptionalDeck(arg string) (*pontifex.Deck, error) {
	if arg == "" {
		return pontifex.NewDeck(), nil
	}
	return pontifex.ParseDeck(arg)
}

// keySource resolves the starting Deck for encrypt/decrypt from the
// mutually exclusive --deck and --passphrase flags, returning
// pontifex.ErrMissingKeySource if neither was supplied.
type keySource struct {
	deckText   string
	passphrase string
}

func (k keySource) resolve() (*pontifex.Deck, error) {
	if k.deckText != "" {
		return pontifex.ParseDeck(k.deckText)
	}
	if k.passphrase != "" {
		return pontifex.NewDeckFromPassphrase(k.passphrase), nil
	}
	return nil, pontifex.ErrMissingKeySource
}
