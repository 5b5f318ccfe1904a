// Command pontifex implements Bruce Schneier's Solitaire (Pontifex)
// hand-cipher: shuffle, key, encrypt, and decrypt using a 54-card deck as
// the cipher's internal state.
package main

import (
	"fmt"
	"os"

	"github.com/tvdburgt/pontifex/internal/cli"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "pontifex:", err)
		os.Exit(1)
	}
}
