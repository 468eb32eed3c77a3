package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rivalscomp/internal/storage"
)

// removeCmd deletes single players; drop nukes the whole database.
var removeCmd = &cobra.Command{
	Use:   "remove <player>...",
	Short: "Remove a player's imported data",
	Long: `Delete all match records and import history for the named players.
The same exports can be re-imported afterwards.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	for _, name := range args {
		n, err := db.DeletePlayer(name)
		if err != nil {
			return fmt.Errorf("remove %s: %w", name, err)
		}
		if n == 0 {
			fmt.Fprintf(os.Stderr, "No data found for player %q\n", name)
			continue
		}
		fmt.Fprintf(os.Stdout, "Removed %d matches for %s\n", n, name)
	}
	return nil
}
