// Package cli implements the partyview CLI commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gen3tools/partyview/internal/store"
	"github.com/spf13/cobra"
)

var (
	dbPath     string
	formatFlag string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "partyview",
	Short: "Inspect the party in a Gen-3 save file",
	Long:  "A viewer for the party stored in Gen-3 save files from CFRU-based ROM hacks. Point it at a .sav, get the team.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Settings database path (default: $PARTYVIEW_DB or ~/.partyview/settings.db)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "Output format: text or json")
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if env := os.Getenv("PARTYVIEW_DB"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".partyview", "settings.db")
}

func openStore() (*store.Store, error) {
	return store.New(getDBPath())
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
