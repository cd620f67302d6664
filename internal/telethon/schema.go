package telethon

// Telethon's own .session schema, reproduced verbatim: the column names and
// types are read directly by Telethon clients.
var schemaDDL = []string{
	`CREATE TABLE version (version integer primary key)`,
	`CREATE TABLE sessions (
    dc_id integer primary key,
    server_address text,
    port integer,
    auth_key blob,
    takeout_id integer
)`,
	`CREATE TABLE entities (
    id integer primary key,
    hash integer not null,
    username text,
    phone integer,
    name text,
    date integer
)`,
	`CREATE TABLE sent_files (
    md5_digest blob,
    file_size integer,
    type integer,
    id integer,
    hash integer,
    primary key(md5_digest, file_size, type)
)`,
	`CREATE TABLE update_state (
    id integer primary key,
    pts integer,
    qts integer,
    date integer,
    seq integer
)`,
}

// schemaVersion is the stamp Telethon writes into the version table.
const schemaVersion = 7

var expectedTables = map[string][]string{
	"sessions":     {"dc_id", "server_address", "port", "auth_key", "takeout_id"},
	"entities":     {"id", "hash", "username", "phone", "name", "date"},
	"sent_files":   {"md5_digest", "file_size", "type", "id", "hash"},
	"update_state": {"id", "pts", "qts", "date", "seq"},
	"version":      {"version"},
}
