package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gen3tools/partyview/internal/pokedex"
	"github.com/gen3tools/partyview/internal/sav"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "parse [file.sav]",
		Short: "Decode the party from a save file",
		Long:  "Decode the party from a save file. With no argument, the last opened file is parsed again.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runParse,
	}

	RootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open settings", err)
	}
	defer s.Close()

	var path string
	if len(args) > 0 {
		path = args[0]
	} else {
		path, err = s.LastPath(cmd.Context())
		if err != nil {
			exitErr("load last path", err)
		}
		if path == "" {
			exitErr("parse", fmt.Errorf("no save file given and none opened before"))
		}
	}

	// Remember the path before parsing, matching the open-file flow: a file
	// that fails to parse today is still the one to retry tomorrow.
	if err := s.SetLastPath(cmd.Context(), path); err != nil {
		exitErr("store last path", err)
	}

	party, err := sav.Parse(path, pokedex.Default())
	if err != nil {
		exitErr("parse", err)
	}

	if formatFlag == "json" {
		b, _ := json.MarshalIndent(party, "", "  ")
		fmt.Println(string(b))
		return
	}

	if len(party) == 0 {
		fmt.Println("(empty party)")
		return
	}
	blocks := make([]string, 0, len(party))
	for _, mon := range party {
		blocks = append(blocks, mon.DisplayText)
	}
	fmt.Println(strings.Join(blocks, "\n\n"))
}
