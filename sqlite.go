package naglasak

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

const sqliteDriverName = "sqlite"

const lexiconSchema = `CREATE TABLE IF NOT EXISTS entries (
  key TEXT NOT NULL,
  homonym INTEGER NOT NULL DEFAULT 0,
  info TEXT NOT NULL,
  kind TEXT NOT NULL,
  translation TEXT NOT NULL DEFAULT '',
  irregulars TEXT NOT NULL DEFAULT '',
  PRIMARY KEY (key, homonym)
)`

// storedIrregulars is the JSON held in the irregulars column.
type storedIrregulars struct {
	Replacements map[string][]string `json:"replacements,omitempty"`
	Amendments   map[string][]string `json:"amendments,omitempty"`
}

func openLexiconDB(path string) (*sql.DB, error) {
	cleanPath := strings.TrimSpace(path)
	if cleanPath == "" {
		return nil, fmt.Errorf("lexicon database path must not be empty")
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", cleanPath)
	db, err := sql.Open(sqliteDriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open lexicon database %q: %w", cleanPath, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping lexicon database %q: %w", cleanPath, err)
	}
	return db, nil
}

// OpenSQLite loads the entries table of the database at path. The lexicon
// is read once into memory and the database is closed.
func OpenSQLite(ctx context.Context, path string) (Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("lexicon database: %w", err)
	}
	db, err := openLexiconDB(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT key, homonym, info, kind, translation, irregulars
FROM entries ORDER BY key, homonym`)
	if err != nil {
		return nil, fmt.Errorf("query lexicon: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e          Entry
			kind, irrs string
		)
		if err := rows.Scan(&e.Key, &e.Homonym, &e.Info, &kind, &e.Translation, &irrs); err != nil {
			return nil, fmt.Errorf("scan lexicon row: %w", err)
		}
		if e.Kind, err = ParseKind(kind); err != nil {
			return nil, fmt.Errorf("entry %q: %w", e.FullKey(), err)
		}
		if irrs != "" {
			var si storedIrregulars
			if err := json.Unmarshal([]byte(irrs), &si); err != nil {
				return nil, fmt.Errorf("entry %q irregulars: %w", e.FullKey(), err)
			}
			e.Replacements, e.Amendments = si.Replacements, si.Amendments
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read lexicon rows: %w", err)
	}
	return newMemStore(entries), nil
}

// WriteSQLite stores every entry of s into the database at path, creating
// the file and the entries table if needed.
func WriteSQLite(ctx context.Context, path string, s Store) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create lexicon directory %q: %w", dir, err)
		}
	}
	db, err := openLexiconDB(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, lexiconSchema); err != nil {
		return fmt.Errorf("create entries table: %w", err)
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin lexicon write: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO entries
(key, homonym, info, kind, translation, irregulars) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare lexicon insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range Entries(s) {
		irrs := ""
		if len(e.Replacements) > 0 || len(e.Amendments) > 0 {
			b, err := json.Marshal(storedIrregulars{Replacements: e.Replacements, Amendments: e.Amendments})
			if err != nil {
				return fmt.Errorf("entry %q irregulars: %w", e.FullKey(), err)
			}
			irrs = string(b)
		}
		if _, err := stmt.ExecContext(ctx, e.Key, e.Homonym, e.Info, e.Kind.String(), e.Translation, irrs); err != nil {
			return fmt.Errorf("insert %q: %w", e.FullKey(), err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit lexicon write: %w", err)
	}
	return nil
}

// Entries lists every entry of s, key by key.
func Entries(s Store) []Entry {
	var out []Entry
	for _, k := range s.Keys() {
		es, err := s.Get(k)
		if err != nil {
			continue
		}
		out = append(out, es...)
	}
	return out
}
