// Package db persists discovered homophone links in SQLite. The store is a
// monotonically growing discovery log: rows are inserted if absent and
// never updated or deleted.
package db

import (
	"database/sql"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

const migrationsSQL = `
CREATE TABLE IF NOT EXISTS words (
	id INTEGER PRIMARY KEY,
	word TEXT UNIQUE NOT NULL
);
CREATE TABLE IF NOT EXISTS homophone_links (
	word_id INTEGER,
	homophone_id INTEGER,
	source TEXT NOT NULL,
	FOREIGN KEY (word_id) REFERENCES words(id),
	FOREIGN KEY (homophone_id) REFERENCES words(id),
	PRIMARY KEY (word_id, homophone_id, source)
)`

// InitDB runs migrations on the given DB connection using the embedded SQL.
func InitDB(db *sql.DB) error {
	stmts := strings.Split(migrationsSQL, ";")
	for _, s := range stmts {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}
