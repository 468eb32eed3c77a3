package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rivalscomp/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all imported players",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	players, err := db.ListPlayers()
	if err != nil {
		return fmt.Errorf("list players: %w", err)
	}
	if len(players) == 0 {
		fmt.Fprintln(os.Stdout, "No players imported yet. Run 'rivalscomp import <export.json>' to add one.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-20s  %8s  %s\n", "PLAYER", "MATCHES", "LAST IMPORT")
	fmt.Fprintf(os.Stdout, "%-20s  %8s  %s\n", "────────────────────", "────────", "───────────")
	for _, p := range players {
		fmt.Fprintf(os.Stdout, "%-20s  %8d  %s\n", p.Name, p.Records, p.LastImport)
	}
	return nil
}
