package database_test

import (
	"context"
	"errors"
	"testing"

	"catalog-api/pkg/database"
)

func TestConnectAndMigrate(t *testing.T) {
	db, err := database.Connect(context.Background(), database.Config{
		Driver: database.DriverSQLite,
		DSN:    ":memory:",
	})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	// second run is a no-op
	if err := database.Migrate(db); err != nil {
		t.Fatalf("Migrate again: %v", err)
	}

	for _, table := range []string{"countries", "companies", "products", "files"} {
		var n int
		if err := db.Get(&n, "SELECT COUNT(*) FROM "+table); err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestConnectUnsupportedDriver(t *testing.T) {
	_, err := database.Connect(context.Background(), database.Config{Driver: "oracle"})
	if !errors.Is(err, database.ErrUnsupportedDriver) {
		t.Errorf("expected ErrUnsupportedDriver, got %v", err)
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	db, err := database.Connect(context.Background(), database.Config{Driver: database.DriverSQLite, DSN: ":memory:"})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer db.Close()

	var on int
	if err := db.Get(&on, "PRAGMA foreign_keys"); err != nil {
		t.Fatalf("pragma: %v", err)
	}
	if on != 1 {
		t.Errorf("foreign keys should be enabled")
	}
}
