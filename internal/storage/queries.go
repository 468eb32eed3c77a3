package storage

import (
	"fmt"

	"rivalscomp/internal/model"
)

// ImportRecord is the provenance row stored for each imported export file.
type ImportRecord struct {
	ID          string
	FileHash    string
	SourceFile  string
	PlayerName  string
	RecordCount int
	ImportedAt  string
}

// PlayerSummary is a lightweight row for the list command.
type PlayerSummary struct {
	Name       string
	Records    int
	LastImport string
}

// ImportExists returns true if an export with the given file hash was
// already imported.
func (db *DB) ImportExists(fileHash string) (bool, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM imports WHERE file_hash = ?", fileHash).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InsertImport inserts an import provenance row.
func (db *DB) InsertImport(imp ImportRecord) error {
	_, err := db.conn.Exec(`
		INSERT INTO imports(id, file_hash, source_file, player_name, record_count, imported_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		imp.ID, imp.FileHash, imp.SourceFile, imp.PlayerName, imp.RecordCount, imp.ImportedAt,
	)
	return err
}

// InsertMatchRecords bulk-inserts a player's match records in a transaction.
func (db *DB) InsertMatchRecords(player string, records []model.MatchRecord) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO match_records(
			player_name, hero,
			kills, deaths, assists,
			damage_dealt, healing_done, damage_blocked,
			time_played_ms, won, is_mvp, is_svp
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		_, err = stmt.Exec(
			player, r.Hero,
			r.Kills, r.Deaths, r.Assists,
			r.DamageDealt, r.HealingDone, r.DamageBlocked,
			r.TimePlayedMs, boolInt(r.Won), boolInt(r.IsMVP), boolInt(r.IsSVP),
		)
		if err != nil {
			return fmt.Errorf("insert match_records for %s: %w", player, err)
		}
	}
	return tx.Commit()
}

// ListPlayers returns every imported player with record counts, ordered by
// name.
func (db *DB) ListPlayers() ([]PlayerSummary, error) {
	rows, err := db.conn.Query(`
		SELECT m.player_name,
		       COUNT(*),
		       COALESCE((SELECT MAX(i.imported_at) FROM imports i WHERE i.player_name = m.player_name), '')
		FROM match_records m
		GROUP BY m.player_name
		ORDER BY m.player_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PlayerSummary
	for rows.Next() {
		var s PlayerSummary
		if err := rows.Scan(&s.Name, &s.Records, &s.LastImport); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// DeletePlayer removes a player's match records and import rows. Returns the
// number of match records deleted; zero with a nil error means the player was
// not found.
func (db *DB) DeletePlayer(name string) (int64, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec("DELETE FROM match_records WHERE player_name = ?", name)
	if err != nil {
		return 0, fmt.Errorf("delete match_records for %s: %w", name, err)
	}
	if _, err := tx.Exec("DELETE FROM imports WHERE player_name = ?", name); err != nil {
		return 0, fmt.Errorf("delete imports for %s: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, tx.Commit()
}

// GetMatchRecords returns a player's match records in insertion order.
func (db *DB) GetMatchRecords(player string) ([]model.MatchRecord, error) {
	rows, err := db.conn.Query(`
		SELECT hero, kills, deaths, assists,
		       damage_dealt, healing_done, damage_blocked,
		       time_played_ms, won, is_mvp, is_svp
		FROM match_records
		WHERE player_name = ?
		ORDER BY id`, player)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.MatchRecord
	for rows.Next() {
		var r model.MatchRecord
		var won, mvp, svp int
		if err := rows.Scan(
			&r.Hero, &r.Kills, &r.Deaths, &r.Assists,
			&r.DamageDealt, &r.HealingDone, &r.DamageBlocked,
			&r.TimePlayedMs, &won, &mvp, &svp,
		); err != nil {
			return nil, err
		}
		r.Won = won != 0
		r.IsMVP = mvp != 0
		r.IsSVP = svp != 0
		out = append(out, r)
	}
	return out, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
