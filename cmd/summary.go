package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rivalscomp/internal/report"
	"rivalscomp/internal/storage"
)

// summaryCmd prints squad-wide statistics and role coverage.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a squad-wide overview",
	Long: `Display aggregate statistics across all imported players: combined
games and win rate, MVP/SVP totals, and which roles the squad can cover.`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
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

	report.PrintSquadSummary(os.Stdout, profiles, 3)
	return nil
}
