package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "last",
		Short: "Print the last opened save file path",
		Run:   runLast,
	}

	RootCmd.AddCommand(cmd)
}

func runLast(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open settings", err)
	}
	defer s.Close()

	path, err := s.LastPath(cmd.Context())
	if err != nil {
		exitErr("last", err)
	}
	if path == "" {
		exitErr("last", fmt.Errorf("no save file opened yet"))
	}
	fmt.Println(path)
}
