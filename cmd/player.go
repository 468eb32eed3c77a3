package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rivalscomp/internal/report"
	"rivalscomp/internal/storage"
)

var playerMinGames int

// playerCmd prints per-player hero breakdowns.
var playerCmd = &cobra.Command{
	Use:   "player [name]...",
	Short: "Show hero breakdowns for one or more players",
	Long:  "Print each player's best heroes per role. With no arguments, every imported player is shown.",
	RunE:  runPlayer,
}

func init() {
	playerCmd.Flags().IntVar(&playerMinGames, "min-games", 2, "minimum games on a hero to include it")
}

func runPlayer(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	profiles, err := loadProfiles(db)
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		fmt.Fprintln(os.Stdout, "No players imported yet. Run 'rivalscomp import <export.json>' to add one.")
		return nil
	}

	if len(args) > 0 {
		byName := make(map[string]int, len(profiles))
		for i, p := range profiles {
			byName[p.Name] = i
		}
		for _, name := range args {
			i, ok := byName[name]
			if !ok {
				fmt.Fprintf(os.Stderr, "No data found for player %q\n", name)
				continue
			}
			report.PrintPlayerReport(os.Stdout, profiles[i], playerMinGames)
		}
		return nil
	}

	for _, p := range profiles {
		report.PrintPlayerReport(os.Stdout, p, playerMinGames)
	}
	return nil
}
