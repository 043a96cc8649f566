package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ogurasousui/gymledger/internal/platform/config"
)

func TestOpen_CreatesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "ledger.db")
	db, err := Open(context.Background(), config.DatabaseConfig{Path: path, BusyTimeout: time.Second})
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected database file to be created: %v", err)
	}

	var timeout int
	if err := db.QueryRow(`PRAGMA busy_timeout`).Scan(&timeout); err != nil {
		t.Fatalf("read busy_timeout: %v", err)
	}
	if timeout != 1000 {
		t.Fatalf("expected busy_timeout 1000, got %d", timeout)
	}

	if got := db.Stats().MaxOpenConnections; got != 1 {
		t.Fatalf("expected a single connection, got %d", got)
	}
}

func TestOpen_RequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), config.DatabaseConfig{}); err == nil {
		t.Fatal("expected error for empty path")
	}
}
