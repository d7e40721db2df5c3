package main

import (
	"os"

	"github.com/gen3tools/partyview/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
