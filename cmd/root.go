package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"rivalscomp/internal/aggregator"
	"rivalscomp/internal/heroes"
	"rivalscomp/internal/model"
	"rivalscomp/internal/storage"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "rivalscomp",
	Short: "Marvel Rivals squad composition tool",
	Long:  "Import tracker.gg match-history exports and compute optimal squad compositions.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultDB := filepath.Join(mustUserHome(), ".rivalscomp", "rivals.db")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "path to SQLite database")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(rolesCmd)
	rootCmd.AddCommand(compsCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(dropCmd)
}

func mustUserHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// loadProfiles builds one profile per imported player, in stored player
// order. The role table is constructed once here and injected downward.
func loadProfiles(db *storage.DB) ([]*model.PlayerProfile, error) {
	players, err := db.ListPlayers()
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	table := heroes.Standard()
	profiles := make([]*model.PlayerProfile, 0, len(players))
	for _, p := range players {
		records, err := db.GetMatchRecords(p.Name)
		if err != nil {
			return nil, fmt.Errorf("load records for %s: %w", p.Name, err)
		}
		profile, err := aggregator.BuildProfile(p.Name, records, table)
		if err != nil {
			return nil, fmt.Errorf("aggregate %s: %w", p.Name, err)
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}
