package sqlite

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"testing"
)

func TestDriverInfo(t *testing.T) {
	info := GetInfo()

	if info.DriverName == "" {
		t.Error("DriverName should not be empty")
	}
	if info.DriverType == "" {
		t.Error("DriverType should not be empty")
	}
	if info.Package == "" {
		t.Error("Package should not be empty")
	}

	if info.DriverName != DriverName() {
		t.Errorf("DriverName mismatch: info=%s, func=%s", info.DriverName, DriverName())
	}
	if info.DriverType != DriverType() {
		t.Errorf("DriverType mismatch: info=%s, func=%s", info.DriverType, DriverType())
	}
	if info.IsCGO != IsCGO() {
		t.Errorf("IsCGO mismatch: info=%v, func=%v", info.IsCGO, IsCGO())
	}

	t.Logf("SQLite driver: %s (%s) from %s", info.DriverName, info.DriverType, info.Package)
}

func TestOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE test (id INTEGER PRIMARY KEY, value TEXT)`); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO test (value) VALUES (?)`, "hello"); err != nil {
		t.Fatalf("failed to insert: %v", err)
	}

	var value string
	if err := db.QueryRow(`SELECT value FROM test WHERE id = 1`).Scan(&value); err != nil {
		t.Fatalf("failed to query: %v", err)
	}
	if value != "hello" {
		t.Errorf("expected 'hello', got '%s'", value)
	}
}

func TestOpenReadOnly(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if _, err := db.Exec(`CREATE TABLE test (id INTEGER PRIMARY KEY, value TEXT)`); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO test (value) VALUES (?)`, "readonly"); err != nil {
		t.Fatalf("failed to insert: %v", err)
	}
	db.Close()

	rodb, err := OpenReadOnly(dbPath)
	if err != nil {
		t.Fatalf("failed to open read-only: %v", err)
	}
	defer rodb.Close()

	var value string
	if err := rodb.QueryRow(`SELECT value FROM test WHERE id = 1`).Scan(&value); err != nil {
		t.Fatalf("failed to query: %v", err)
	}
	if value != "readonly" {
		t.Errorf("expected 'readonly', got '%s'", value)
	}

	if _, err := rodb.Exec(`INSERT INTO test (value) VALUES (?)`, "nope"); err == nil {
		t.Error("expected write to read-only database to fail")
	}
}

func TestDSN(t *testing.T) {
	tests := []struct {
		path   string
		params url.Values
		want   string
	}{
		{path: "/data/nt.db", want: "file:/data/nt.db"},
		{path: "nt.db", want: "file:nt.db"},
		{path: "data/user?info.db", want: "file:data/user%3Finfo.db"},
		{path: "/tmp/a#b.db", want: "file:/tmp/a%23b.db"},
		{path: "/tmp/100%.db", want: "file:/tmp/100%25.db"},
		{path: "/tmp/my db.db", want: "file:/tmp/my%20db.db"},
		{path: "/tmp/a?b.db", params: url.Values{"mode": {"ro"}}, want: "file:/tmp/a%3Fb.db?mode=ro"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := DSN(tt.path, tt.params); got != tt.want {
				t.Errorf("DSN(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestOpen_SpecialCharacters(t *testing.T) {
	for _, name := range []string{"user?info.db", "a#b.db", "100%.db", "file:x.db", "my db.db"} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			dbPath := filepath.Join(dir, name)

			db, err := Open(dbPath)
			if err != nil {
				t.Fatalf("Open(%q) error = %v", dbPath, err)
			}
			if _, err := db.Exec(`CREATE TABLE test (id INTEGER PRIMARY KEY)`); err != nil {
				t.Fatalf("failed to create table: %v", err)
			}
			db.Close()

			if _, err := os.Stat(dbPath); err != nil {
				t.Fatalf("database not written at %s: %v", dbPath, err)
			}
			entries, err := os.ReadDir(dir)
			if err != nil {
				t.Fatal(err)
			}
			for _, e := range entries {
				if e.Name() != name && e.Name() != name+"-journal" {
					t.Errorf("unexpected file %q next to %q", e.Name(), name)
				}
			}

			rodb, err := OpenReadOnly(dbPath)
			if err != nil {
				t.Fatalf("OpenReadOnly(%q) error = %v", dbPath, err)
			}
			defer rodb.Close()
			ok, err := TableExists(context.Background(), rodb, "test")
			if err != nil || !ok {
				t.Errorf("read-only reopen: TableExists = %v, %v", ok, err)
			}
		})
	}
}

func TestMustOpen(t *testing.T) {
	db := MustOpen(filepath.Join(t.TempDir(), "test.db"))
	db.Close()
}

func TestCatalogHelpers(t *testing.T) {
	ctx := context.Background()
	db := MustOpen(filepath.Join(t.TempDir(), "catalog.db"))
	defer db.Close()

	names, err := TableNames(ctx, db)
	if err != nil {
		t.Fatalf("TableNames() error = %v", err)
	}
	if len(names) != 0 {
		t.Errorf("TableNames() on empty db = %v, want none", names)
	}

	_, err = db.Exec(`
		CREATE TABLE zeta (id INTEGER PRIMARY KEY);
		CREATE TABLE alpha (id INTEGER PRIMARY KEY, v TEXT);
		INSERT INTO alpha (v) VALUES ('a'), ('b'), ('c');
	`)
	if err != nil {
		t.Fatalf("failed to create tables: %v", err)
	}

	names, err = TableNames(ctx, db)
	if err != nil {
		t.Fatalf("TableNames() error = %v", err)
	}
	if len(names) != 2 || names[0] != "alpha" || names[1] != "zeta" {
		t.Errorf("TableNames() = %v, want [alpha zeta]", names)
	}

	ok, err := TableExists(ctx, db, "alpha")
	if err != nil || !ok {
		t.Errorf("TableExists(alpha) = %v, %v; want true, nil", ok, err)
	}
	ok, err = TableExists(ctx, db, "missing")
	if err != nil || ok {
		t.Errorf("TableExists(missing) = %v, %v; want false, nil", ok, err)
	}

	count, err := CountRows(ctx, db, "alpha")
	if err != nil {
		t.Fatalf("CountRows() error = %v", err)
	}
	if count != 3 {
		t.Errorf("CountRows(alpha) = %d, want 3", count)
	}

	if _, err := CountRows(ctx, db, "missing"); err == nil {
		t.Error("CountRows(missing) should fail")
	}

	schema, err := SchemaSQL(ctx, db)
	if err != nil {
		t.Fatalf("SchemaSQL() error = %v", err)
	}
	if len(schema) != 2 || schema["alpha"] == "" {
		t.Errorf("SchemaSQL() = %v", schema)
	}
}

func TestDriverTypeConsistency(t *testing.T) {
	switch DriverType() {
	case "purego":
		if IsCGO() {
			t.Error("IsCGO() should be false for purego driver")
		}
		if DriverName() != "sqlite" {
			t.Errorf("purego driver should use 'sqlite' name, got '%s'", DriverName())
		}
	case "cgo":
		if !IsCGO() {
			t.Error("IsCGO() should be true for cgo driver")
		}
		if DriverName() != "sqlite3" {
			t.Errorf("cgo driver should use 'sqlite3' name, got '%s'", DriverName())
		}
	default:
		t.Errorf("unknown driver type: %s", DriverType())
	}
}
