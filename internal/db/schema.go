package db

// SchemaSQL is the complete schema for fresh vouch installs.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All tests use
// this schema via GetSchemaSQL(): if repository code references a column that
// doesn't exist here, tests fail immediately with "no such column" instead of
// drifting against a hand-copied schema.
const SchemaSQL = `
-- Background checks (one per candidate recommendation, keyed by the
-- message identity of the original posting)
CREATE TABLE IF NOT EXISTS background_checks (
	origin_id TEXT PRIMARY KEY,
	origin_channel_id TEXT NOT NULL,
	candidate TEXT NOT NULL,
	recommender_id TEXT NOT NULL,
	recommend_note TEXT,
	status TEXT NOT NULL CHECK(status IN ('unset', 'pass', 'fail')) DEFAULT 'unset',
	selected_keys TEXT NOT NULL DEFAULT '',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Observation reports (write-once slots; the composite primary key is the
-- uniqueness constraint that makes the first durable writer win)
CREATE TABLE IF NOT EXISTS observations (
	origin_id TEXT NOT NULL,
	slot_index INTEGER NOT NULL,
	observed_on TEXT NOT NULL,
	notes TEXT NOT NULL,
	issues TEXT,
	author_id TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (origin_id, slot_index),
	FOREIGN KEY (origin_id) REFERENCES background_checks(origin_id)
);

-- Replica registry (every rendered surface mirroring an origin record;
-- membership is append-only, the PK deduplicates re-registration)
CREATE TABLE IF NOT EXISTS replica_refs (
	origin_id TEXT NOT NULL,
	surface_channel_id TEXT NOT NULL,
	surface_message_id TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (origin_id, surface_channel_id, surface_message_id),
	FOREIGN KEY (origin_id) REFERENCES background_checks(origin_id)
);

-- Poll mirror claims (at most one mirror per origin; racing completions
-- contend on the primary key, the loser's insert fails)
CREATE TABLE IF NOT EXISTS poll_mirrors (
	origin_id TEXT PRIMARY KEY,
	claimed_by TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (origin_id) REFERENCES background_checks(origin_id)
);

-- Rendered message surfaces (local chat emulation backing the Messenger
-- port so the CLI works end-to-end without a chat backend)
CREATE TABLE IF NOT EXISTS surface_messages (
	channel_id TEXT NOT NULL,
	message_id TEXT NOT NULL,
	content TEXT NOT NULL,
	reactions TEXT NOT NULL DEFAULT '',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (channel_id, message_id)
);

-- Workflow audit log
CREATE TABLE IF NOT EXISTS workflow_logs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	actor_id TEXT NOT NULL,
	entity_type TEXT NOT NULL,
	entity_id TEXT NOT NULL,
	action TEXT NOT NULL,
	detail TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// GetSchemaSQL returns the authoritative schema SQL.
// Test code uses this instead of hardcoding CREATE TABLE statements.
func GetSchemaSQL() string {
	return SchemaSQL
}

// InitSchema creates all tables if they don't exist.
func InitSchema() error {
	database, err := GetDB()
	if err != nil {
		return err
	}

	if _, err := database.Exec(SchemaSQL); err != nil {
		return err
	}

	return nil
}
