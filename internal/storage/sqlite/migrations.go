package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
//
// The UNIQUE (list_id, text) constraint on items is load-bearing: it is the
// final arbiter of per-list item uniqueness when concurrent writers race
// past the application-level duplicate check.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    email TEXT PRIMARY KEY,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS lists (
    id TEXT PRIMARY KEY,
    owner_email TEXT,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (owner_email) REFERENCES users(email) ON DELETE SET NULL
);

CREATE TABLE IF NOT EXISTS items (
    id TEXT PRIMARY KEY,
    list_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    text TEXT NOT NULL,
    UNIQUE (list_id, text),
    FOREIGN KEY (list_id) REFERENCES lists(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS list_sharees (
    list_id TEXT NOT NULL,
    email TEXT NOT NULL,
    PRIMARY KEY (list_id, email),
    FOREIGN KEY (list_id) REFERENCES lists(id) ON DELETE CASCADE,
    FOREIGN KEY (email) REFERENCES users(email) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS tokens (
    uid TEXT PRIMARY KEY,
    email TEXT NOT NULL,
    issued_at INTEGER NOT NULL,
    redeemed_at INTEGER
);

CREATE INDEX IF NOT EXISTS idx_items_list_id ON items(list_id);
CREATE INDEX IF NOT EXISTS idx_lists_owner_email ON lists(owner_email);
CREATE INDEX IF NOT EXISTS idx_list_sharees_email ON list_sharees(email);
CREATE INDEX IF NOT EXISTS idx_tokens_email ON tokens(email);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
