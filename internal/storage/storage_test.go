package storage

import (
	"testing"

	"rivalscomp/internal/model"
)

func openMemDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestImportExists(t *testing.T) {
	db := openMemDB(t)

	exists, err := db.ImportExists("abc123")
	if err != nil {
		t.Fatalf("ImportExists: %v", err)
	}
	if exists {
		t.Error("fresh db: want no import")
	}

	err = db.InsertImport(ImportRecord{
		ID:          "imp-1",
		FileHash:    "abc123",
		SourceFile:  "cap.json",
		PlayerName:  "cap",
		RecordCount: 2,
		ImportedAt:  "2026-08-23T10:00:00Z",
	})
	if err != nil {
		t.Fatalf("InsertImport: %v", err)
	}

	exists, err = db.ImportExists("abc123")
	if err != nil {
		t.Fatalf("ImportExists: %v", err)
	}
	if !exists {
		t.Error("want import found after insert")
	}
}

func TestMatchRecords_RoundTrip(t *testing.T) {
	db := openMemDB(t)

	records := []model.MatchRecord{
		{
			Hero:          "Thor",
			Kills:         12,
			Deaths:        4,
			Assists:       7,
			DamageDealt:   8150.5,
			DamageBlocked: 21300,
			TimePlayedMs:  612000,
			Won:           true,
			IsMVP:         true,
		},
		{
			Hero:         "Luna Snow",
			Kills:        3,
			Deaths:       8,
			Assists:      15,
			HealingDone:  9400,
			TimePlayedMs: 540000,
			IsSVP:        true,
		},
	}
	if err := db.InsertMatchRecords("cap", records); err != nil {
		t.Fatalf("InsertMatchRecords: %v", err)
	}

	got, err := db.GetMatchRecords("cap")
	if err != nil {
		t.Fatalf("GetMatchRecords: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 records, got %d", len(got))
	}

	// Insertion order is preserved.
	for i := range records {
		if got[i] != records[i] {
			t.Errorf("record %d: want %+v, got %+v", i, records[i], got[i])
		}
	}

	// Other players see nothing.
	other, err := db.GetMatchRecords("someone-else")
	if err != nil {
		t.Fatalf("GetMatchRecords: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("want no records for an unknown player, got %d", len(other))
	}
}

func TestListPlayers(t *testing.T) {
	db := openMemDB(t)

	one := model.MatchRecord{Hero: "Hela", Won: true}
	if err := db.InsertMatchRecords("zoe", []model.MatchRecord{one, one}); err != nil {
		t.Fatalf("InsertMatchRecords: %v", err)
	}
	if err := db.InsertMatchRecords("ana", []model.MatchRecord{one}); err != nil {
		t.Fatalf("InsertMatchRecords: %v", err)
	}
	err := db.InsertImport(ImportRecord{
		ID: "imp-1", FileHash: "h1", SourceFile: "ana.json",
		PlayerName: "ana", RecordCount: 1, ImportedAt: "2026-08-23T10:00:00Z",
	})
	if err != nil {
		t.Fatalf("InsertImport: %v", err)
	}

	players, err := db.ListPlayers()
	if err != nil {
		t.Fatalf("ListPlayers: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("want 2 players, got %d", len(players))
	}
	if players[0].Name != "ana" || players[1].Name != "zoe" {
		t.Errorf("want name order [ana zoe], got [%s %s]", players[0].Name, players[1].Name)
	}
	if players[0].Records != 1 || players[1].Records != 2 {
		t.Errorf("record counts: want 1/2, got %d/%d", players[0].Records, players[1].Records)
	}
	if players[0].LastImport != "2026-08-23T10:00:00Z" {
		t.Errorf("ana last import: got %q", players[0].LastImport)
	}
	if players[1].LastImport != "" {
		t.Errorf("zoe has no import row: want empty last import, got %q", players[1].LastImport)
	}
}

func TestDeletePlayer(t *testing.T) {
	db := openMemDB(t)

	one := model.MatchRecord{Hero: "Hela", Won: true}
	if err := db.InsertMatchRecords("cap", []model.MatchRecord{one, one, one}); err != nil {
		t.Fatalf("InsertMatchRecords: %v", err)
	}
	if err := db.InsertMatchRecords("ana", []model.MatchRecord{one}); err != nil {
		t.Fatalf("InsertMatchRecords: %v", err)
	}
	err := db.InsertImport(ImportRecord{ID: "imp-1", FileHash: "h1", SourceFile: "cap.json", PlayerName: "cap"})
	if err != nil {
		t.Fatalf("InsertImport: %v", err)
	}

	n, err := db.DeletePlayer("cap")
	if err != nil {
		t.Fatalf("DeletePlayer: %v", err)
	}
	if n != 3 {
		t.Errorf("want 3 records deleted, got %d", n)
	}

	// The import row is gone too, so the same file can be re-imported.
	exists, err := db.ImportExists("h1")
	if err != nil {
		t.Fatalf("ImportExists: %v", err)
	}
	if exists {
		t.Error("cap's import row must be deleted with the player")
	}

	players, err := db.ListPlayers()
	if err != nil {
		t.Fatalf("ListPlayers: %v", err)
	}
	if len(players) != 1 || players[0].Name != "ana" {
		t.Errorf("want only ana left, got %+v", players)
	}

	n, err = db.DeletePlayer("nobody")
	if err != nil {
		t.Fatalf("DeletePlayer: %v", err)
	}
	if n != 0 {
		t.Errorf("unknown player: want 0 deletions, got %d", n)
	}
}

func TestDuplicateFileHashRejected(t *testing.T) {
	db := openMemDB(t)

	imp := ImportRecord{ID: "imp-1", FileHash: "same", SourceFile: "a.json", PlayerName: "cap"}
	if err := db.InsertImport(imp); err != nil {
		t.Fatalf("InsertImport: %v", err)
	}
	imp.ID = "imp-2"
	if err := db.InsertImport(imp); err == nil {
		t.Error("want a unique-constraint error for a repeated file hash")
	}
}
