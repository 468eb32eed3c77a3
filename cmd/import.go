package cmd

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"rivalscomp/internal/storage"
	"rivalscomp/internal/tracker"
)

var importCmd = &cobra.Command{
	Use:   "import <export.json>...",
	Short: "Import tracker.gg match-history exports",
	Long: `Parse one or more tracker.gg Marvel Rivals export files and store the
per-match records. Re-importing the same file is a no-op (detected by
content hash). The player handle is read from the export itself; the file
name is only a fallback.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}

	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	for _, path := range args {
		if err := importOne(db, path); err != nil {
			return err
		}
	}
	return nil
}

func importOne(db *storage.DB, path string) error {
	hash, err := fileHash(path)
	if err != nil {
		return fmt.Errorf("hash %s: %w", path, err)
	}

	exists, err := db.ImportExists(hash)
	if err != nil {
		return fmt.Errorf("check import: %w", err)
	}
	if exists {
		fmt.Fprintf(os.Stdout, "%s already imported, skipping.\n", filepath.Base(path))
		return nil
	}

	nameHint := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	export, err := tracker.ParseFile(path, nameHint)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if len(export.Records) == 0 {
		fmt.Fprintf(os.Stderr, "%s: no overview records for %s, skipping.\n",
			filepath.Base(path), export.Player)
		return nil
	}

	if err := db.InsertMatchRecords(export.Player, export.Records); err != nil {
		return fmt.Errorf("store records: %w", err)
	}
	if err := db.InsertImport(storage.ImportRecord{
		ID:          uuid.NewString(),
		FileHash:    hash,
		SourceFile:  path,
		PlayerName:  export.Player,
		RecordCount: len(export.Records),
		ImportedAt:  time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		return fmt.Errorf("store import: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Imported %d matches for %s from %s\n",
		len(export.Records), export.Player, filepath.Base(path))
	return nil
}

func fileHash(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
