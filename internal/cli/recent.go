package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently opened save files",
		Run:   runRecent,
	}

	cmd.Flags().IntP("limit", "l", 0, "Maximum entries to show (default: all stored)")

	RootCmd.AddCommand(cmd)
}

func runRecent(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")

	s, err := openStore()
	if err != nil {
		exitErr("open settings", err)
	}
	defer s.Close()

	files, err := s.Recent(cmd.Context(), limit)
	if err != nil {
		exitErr("recent", err)
	}

	if formatFlag == "json" {
		b, _ := json.MarshalIndent(files, "", "  ")
		fmt.Println(string(b))
		return
	}

	for _, f := range files {
		fmt.Printf("%s  %s\n", f.OpenedAt.Format("2006-01-02 15:04"), f.Path)
	}
}
