package main

import (
	"fmt"
	"os"

	"github.com/paw-chain/pawdex/app"
	"github.com/paw-chain/pawdex/cmd/pawdex/cmd"
)

func main() {
	app.SetConfig()

	rootCmd := cmd.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}
