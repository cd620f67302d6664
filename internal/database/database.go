// Package database manages the SQLite connections behind the file-based
// session formats: scoped open/close, strict schema validation, and atomic
// write staging. Session files are SQLite databases whose exact table and
// column sets are a compatibility contract with other client implementations.
package database

import (
	"fmt"
	"os"
	"sort"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nazar220160/TGConvertor/internal/session"
)

// Open opens a SQLite database at path, creating the file if needed.
// Callers must release the connection with Close.
func Open(path string) (*gorm.DB, error) {
	return open(path)
}

// OpenExisting opens an existing session file read-only. A missing file is a
// resource error, not a validation error.
func OpenExisting(path string) (*gorm.DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("session file not readable: %w", err)
	}
	return open("file:" + path + "?mode=ro")
}

func open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}
	return db, nil
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}

// ValidateSchema checks that the database holds exactly the expected tables
// and that every table holds exactly the expected columns. Any deviation,
// including a file that is not a SQLite database at all, fails closed as a
// validation error; there is no partial recovery from a foreign database.
func ValidateSchema(db *gorm.DB, expected map[string][]string) error {
	var tables []string
	err := db.Raw("SELECT name FROM sqlite_master WHERE type = 'table'").Scan(&tables).Error
	if err != nil {
		return session.Validationf("not a session database: %v", err)
	}

	want := make([]string, 0, len(expected))
	for name := range expected {
		want = append(want, name)
	}
	if !sameSet(tables, want) {
		return session.Validationf("unexpected table set %v, want %v", sorted(tables), sorted(want))
	}

	for table, wantCols := range expected {
		var cols []string
		err := db.Raw("SELECT name FROM pragma_table_info(?)", table).Scan(&cols).Error
		if err != nil {
			return session.Validationf("cannot inspect table %q: %v", table, err)
		}
		if !sameSet(cols, wantCols) {
			return session.Validationf("table %q has unexpected columns %v, want %v",
				table, sorted(cols), sorted(wantCols))
		}
	}
	return nil
}

// ExecAll runs DDL statements one by one, failing on the first error.
func ExecAll(db *gorm.DB, stmts []string) error {
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create session schema: %w", err)
		}
	}
	return nil
}

// WriteAtomic stages a file write through a uniquely named sibling path and
// renames it into place only after write succeeds, so a failed export never
// leaves a half-written session file at path.
func WriteAtomic(path string, write func(tmp string) error) error {
	tmp := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())
	if err := write(tmp); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to move session file into place: %w", err)
	}
	return nil
}

func sameSet(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	seen := make(map[string]bool, len(got))
	for _, s := range got {
		seen[s] = true
	}
	for _, s := range want {
		if !seen[s] {
			return false
		}
	}
	return true
}

func sorted(in []string) []string {
	out := append([]string(nil), in...)
	sort.Strings(out)
	return out
}
