package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rivalscomp/internal/lineup"
	"rivalscomp/internal/report"
	"rivalscomp/internal/storage"
)

var (
	compsMinGames int
	compsTopN     int
)

// compsCmd runs the composition search across all imported players.
var compsCmd = &cobra.Command{
	Use:   "comps",
	Short: "Search for the best squad compositions",
	Long: `Search role-distribution templates and role-to-player permutations for
the highest-scoring five-player hero assignments. The sixth slot is a random
teammate and is left unscored.`,
	Args: cobra.NoArgs,
	RunE: runComps,
}

func init() {
	compsCmd.Flags().IntVar(&compsMinGames, "min-games", 2, "minimum games on a hero to consider it")
	compsCmd.Flags().IntVar(&compsTopN, "top", lineup.DefaultTopN, "number of compositions to show")
}

func runComps(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	profiles, err := loadProfiles(db)
	if err != nil {
		return err
	}
	if len(profiles) != lineup.SquadSize {
		fmt.Fprintf(os.Stderr, "Composition search needs exactly %d players; %d imported.\n",
			lineup.SquadSize, len(profiles))
		return nil
	}

	candidates := lineup.Search(profiles, compsMinGames, compsTopN)
	report.PrintCompositions(os.Stdout, candidates)
	return nil
}
