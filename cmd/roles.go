package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rivalscomp/internal/report"
	"rivalscomp/internal/storage"
)

var rolesMinGames int

// rolesCmd prints which role each player should queue for.
var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Show role recommendations per player",
	Args:  cobra.NoArgs,
	RunE:  runRoles,
}

func init() {
	rolesCmd.Flags().IntVar(&rolesMinGames, "min-games", 2, "minimum games on a hero to count it")
}

func runRoles(cmd *cobra.Command, args []string) error {
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

	report.PrintRoleRecommendations(os.Stdout, profiles, rolesMinGames)
	return nil
}
