package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/rgilles/homofo/pkg/respell"
)

// DBExecutor is an interface that allows methods to accept either *sql.DB or *sql.Tx
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// CreateOrGetWord returns the existing id for word or inserts a new row and
// returns its id. The insert is INSERT OR IGNORE, so concurrent discovery
// of the same word is harmless.
func CreateOrGetWord(db DBExecutor, word string) (int64, error) {
	trimmed := strings.TrimSpace(word)
	if trimmed == "" {
		return 0, fmt.Errorf("word must be non-empty")
	}
	if _, err := db.Exec(`INSERT OR IGNORE INTO words (word) VALUES (?)`, trimmed); err != nil {
		return 0, fmt.Errorf("insert word: %w", err)
	}
	var id int64
	if err := db.QueryRow(`SELECT id FROM words WHERE word = ?`, trimmed).Scan(&id); err != nil {
		return 0, fmt.Errorf("select word id: %w", err)
	}
	return id, nil
}

// AddLink records that homophoneID is a candidate for wordID with the given
// provenance. Re-adding an existing link is a no-op, never an error.
func AddLink(db DBExecutor, wordID, homophoneID int64, source string) error {
	if wordID <= 0 || homophoneID <= 0 {
		return fmt.Errorf("word ids must be positive")
	}
	if source == "" {
		return fmt.Errorf("source must be non-empty")
	}
	_, err := db.Exec(
		`INSERT OR IGNORE INTO homophone_links (word_id, homophone_id, source) VALUES (?, ?, ?)`,
		wordID, homophoneID, source,
	)
	return err
}

// LinksFor returns every candidate ever discovered for word, with its
// provenance tag.
func LinksFor(db DBExecutor, word string) ([]respell.Candidate, error) {
	rows, err := db.Query(`
		SELECT w2.word, hl.source FROM words w1
		JOIN homophone_links hl ON w1.id = hl.word_id
		JOIN words w2 ON w2.id = hl.homophone_id
		WHERE w1.word = ?`, word)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []respell.Candidate
	for rows.Next() {
		var c respell.Candidate
		if err := rows.Scan(&c.Word, &c.Source); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Store adapts a SQLite connection to the resolver's LinkStore interface.
type Store struct {
	conn *sql.DB
}

// NewStore wraps an open connection. The caller keeps ownership of conn.
func NewStore(conn *sql.DB) *Store { return &Store{conn: conn} }

// Links implements respell.LinkStore.
func (s *Store) Links(word string) ([]respell.Candidate, error) {
	return LinksFor(s.conn, word)
}

// AddLinks persists candidates for word with the given provenance inside a
// single transaction. An empty candidate list is a no-op.
func (s *Store) AddLinks(word string, candidates []string, source string) error {
	if len(candidates) == 0 {
		return nil
	}
	tx, err := s.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin link tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	wordID, err := CreateOrGetWord(tx, word)
	if err != nil {
		return err
	}
	for _, cand := range candidates {
		candID, err := CreateOrGetWord(tx, cand)
		if err != nil {
			return err
		}
		if err := AddLink(tx, wordID, candID, source); err != nil {
			return fmt.Errorf("link %q -> %q: %w", word, cand, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit links: %w", err)
	}
	return nil
}
