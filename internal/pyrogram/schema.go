package pyrogram

// The .session file schema is shared with Pyrogram itself; other clients read
// these files directly, so the DDL below is reproduced verbatim rather than
// auto-migrated.
var schemaDDL = []string{
	`CREATE TABLE sessions (
    dc_id     INTEGER PRIMARY KEY,
    api_id    INTEGER,
    test_mode INTEGER,
    auth_key  BLOB,
    date      INTEGER NOT NULL,
    user_id   INTEGER,
    is_bot    INTEGER
)`,
	`CREATE TABLE peers (
    id             INTEGER PRIMARY KEY,
    access_hash    INTEGER,
    type           INTEGER NOT NULL,
    username       TEXT,
    phone_number   TEXT,
    last_update_on INTEGER NOT NULL DEFAULT (CAST(STRFTIME('%s', 'now') AS INTEGER))
)`,
	`CREATE TABLE version (
    number INTEGER PRIMARY KEY
)`,
	`CREATE INDEX idx_peers_id ON peers (id)`,
	`CREATE INDEX idx_peers_username ON peers (username)`,
	`CREATE INDEX idx_peers_phone_number ON peers (phone_number)`,
	`CREATE TRIGGER trg_peers_last_update_on
    AFTER UPDATE
    ON peers
BEGIN
    UPDATE peers
    SET last_update_on = CAST(STRFTIME('%s', 'now') AS INTEGER)
    WHERE id = NEW.id;
END`,
}

// schemaVersion is the stamp Pyrogram writes into the version table.
const schemaVersion = 5

// expectedTables is the strict validation contract: a file qualifies as a
// Pyrogram session only when its table and column sets match exactly.
var expectedTables = map[string][]string{
	"sessions": {"dc_id", "api_id", "test_mode", "auth_key", "date", "user_id", "is_bot"},
	"peers":    {"id", "access_hash", "type", "username", "phone_number", "last_update_on"},
	"version":  {"number"},
}
