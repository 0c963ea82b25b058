package db

import (
	"database/sql"
	"testing"

	"github.com/rgilles/homofo/pkg/respell"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory db: %v", err)
	}
	// :memory: databases exist per connection; keep a single one.
	conn.SetMaxOpenConns(1)
	if err := InitDB(conn); err != nil {
		t.Fatalf("failed to init db: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestInitDBCreatesSchema(t *testing.T) {
	conn := setupTestDB(t)
	for _, table := range []string{"words", "homophone_links"} {
		var name string
		err := conn.QueryRow(
			`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %q missing after InitDB: %v", table, err)
		}
	}
	// Running migrations again must be harmless.
	if err := InitDB(conn); err != nil {
		t.Errorf("second InitDB failed: %v", err)
	}
}

func TestCreateOrGetWordIdempotent(t *testing.T) {
	conn := setupTestDB(t)

	id1, err := CreateOrGetWord(conn, "fare")
	if err != nil {
		t.Fatalf("CreateOrGetWord: %v", err)
	}
	id2, err := CreateOrGetWord(conn, "fare")
	if err != nil {
		t.Fatalf("CreateOrGetWord (repeat): %v", err)
	}
	if id1 != id2 {
		t.Errorf("same word got ids %d and %d", id1, id2)
	}

	if _, err := CreateOrGetWord(conn, "  "); err == nil {
		t.Error("blank word accepted")
	}
}

func TestAddLinkIdempotent(t *testing.T) {
	conn := setupTestDB(t)
	a, _ := CreateOrGetWord(conn, "fare")
	b, _ := CreateOrGetWord(conn, "fair")

	for i := 0; i < 3; i++ {
		if err := AddLink(conn, a, b, "cmu"); err != nil {
			t.Fatalf("AddLink #%d: %v", i+1, err)
		}
	}
	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM homophone_links`).Scan(&n); err != nil {
		t.Fatalf("count links: %v", err)
	}
	if n != 1 {
		t.Errorf("link count = %d, want 1", n)
	}

	if err := AddLink(conn, 0, b, "cmu"); err == nil {
		t.Error("zero word id accepted")
	}
	if err := AddLink(conn, a, b, ""); err == nil {
		t.Error("empty source accepted")
	}
}

func TestStoreRoundTrip(t *testing.T) {
	conn := setupTestDB(t)
	store := NewStore(conn)

	if err := store.AddLinks("fare", []string{"fair", "fayre"}, respell.SourceStrict); err != nil {
		t.Fatalf("AddLinks strict: %v", err)
	}
	if err := store.AddLinks("fare", []string{"fairy"}, respell.SourceFuzzy); err != nil {
		t.Fatalf("AddLinks fuzzy: %v", err)
	}
	// No-op writes must not fail or add rows.
	if err := store.AddLinks("fare", nil, respell.SourceStrict); err != nil {
		t.Fatalf("AddLinks empty: %v", err)
	}

	links, err := store.Links("fare")
	if err != nil {
		t.Fatalf("Links: %v", err)
	}
	got := make(map[string]string, len(links))
	for _, c := range links {
		got[c.Word] = c.Source
	}
	want := map[string]string{
		"fair":  respell.SourceStrict,
		"fayre": respell.SourceStrict,
		"fairy": respell.SourceFuzzy,
	}
	if len(got) != len(want) {
		t.Fatalf("Links returned %v, want %v", got, want)
	}
	for w, src := range want {
		if got[w] != src {
			t.Errorf("link %q has source %q, want %q", w, got[w], src)
		}
	}

	// Re-adding existing links leaves the row count unchanged.
	if err := store.AddLinks("fare", []string{"fair", "fayre"}, respell.SourceStrict); err != nil {
		t.Fatalf("AddLinks repeat: %v", err)
	}
	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM homophone_links`).Scan(&n); err != nil {
		t.Fatalf("count links: %v", err)
	}
	if n != 3 {
		t.Errorf("link count after repeat = %d, want 3", n)
	}
}

func TestLinksUnknownWord(t *testing.T) {
	store := NewStore(setupTestDB(t))
	links, err := store.Links("flurble")
	if err != nil {
		t.Fatalf("Links: %v", err)
	}
	if len(links) != 0 {
		t.Errorf("Links(flurble) = %v, want empty", links)
	}
}
