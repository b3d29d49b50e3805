// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() to ensure tests run against
// the authoritative schema, preventing drift between test and production.
//
// DO NOT hardcode CREATE TABLE statements in test files. Instead, use
// setupTestDB() and the seed* helpers.
package sqlite_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/vouch/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
// This is the single shared test database setup function for all repository tests.
// Uses db.GetSchemaSQL() to prevent test schemas from drifting.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	// The in-memory database exists per connection; a second connection
	// would see an empty schema.
	testDB.SetMaxOpenConns(1)

	// Use the authoritative schema from schema.go
	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// setupFileTestDB creates a file-backed database for concurrency tests,
// where multiple connections must observe the same data.
func setupFileTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "vouch_test.db")
	testDB, err := sql.Open("sqlite3", "file:"+path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedCheck inserts a test background check and returns its origin ID.
func seedCheck(t *testing.T, db *sql.DB, originID, status string) string {
	t.Helper()
	if originID == "" {
		originID = "origin-001"
	}
	if status == "" {
		status = "unset"
	}
	_, err := db.Exec(
		`INSERT INTO background_checks (origin_id, origin_channel_id, candidate, recommender_id, status)
		 VALUES (?, 'review', 'alice', 'bob', ?)`,
		originID, status,
	)
	if err != nil {
		t.Fatalf("failed to seed background check: %v", err)
	}
	return originID
}

// seedObservation inserts a test report into a slot.
func seedObservation(t *testing.T, db *sql.DB, originID string, slot int, authorID string) {
	t.Helper()
	if authorID == "" {
		authorID = "carol"
	}
	_, err := db.Exec(
		`INSERT INTO observations (origin_id, slot_index, observed_on, notes, author_id)
		 VALUES (?, ?, '2026-08-20', 'test notes', ?)`,
		originID, slot, authorID,
	)
	if err != nil {
		t.Fatalf("failed to seed observation: %v", err)
	}
}

// seedSurfaceMessage inserts a rendered message and returns its message ID.
func seedSurfaceMessage(t *testing.T, db *sql.DB, channelID, messageID, content string) string {
	t.Helper()
	if messageID == "" {
		messageID = "msg-001"
	}
	_, err := db.Exec(
		"INSERT INTO surface_messages (channel_id, message_id, content) VALUES (?, ?, ?)",
		channelID, messageID, content,
	)
	if err != nil {
		t.Fatalf("failed to seed surface message: %v", err)
	}
	return messageID
}
