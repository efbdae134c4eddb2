package database

import (
	"path/filepath"
	"testing"
)

func TestOpenMemoryCreatesRecordsTable(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(`INSERT INTO records (key, value) VALUES ('k', 'v')`); err != nil {
		t.Fatalf("insert into records: %v", err)
	}
	var got string
	if err := db.QueryRow(`SELECT value FROM records WHERE key = 'k'`).Scan(&got); err != nil {
		t.Fatalf("select: %v", err)
	}
	if got != "v" {
		t.Errorf("value = %q, want %q", got, "v")
	}
}

func TestOpenFileIsReopenable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO records (key, value) VALUES ('tt_settings', '{}')`); err != nil {
		t.Fatalf("insert: %v", err)
	}
	db.Close()

	// Migrations must be idempotent across restarts.
	db, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()

	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM records`).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}
}
