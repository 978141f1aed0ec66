// Package store provides dictionary stores for the lexipack codec.
//
// The primary implementation is SQLite-backed (pure Go driver, no cgo) and
// holds one words table keyed by (id, lang) with a secondary index on
// (word, lang). MemStore offers the same contract in memory, and Cached
// wraps any store with a read-through LRU.
package store

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/Neumenon/lexipack/lexipack"
)

const schema = `
CREATE TABLE IF NOT EXISTS words (
	id   INTEGER NOT NULL,
	word TEXT    NOT NULL,
	lang INTEGER NOT NULL,
	PRIMARY KEY (id, lang)
);
CREATE INDEX IF NOT EXISTS idx_words_word_lang ON words (word, lang);
`

// Bind-variable ceiling per statement. SQLite allows far more, but keeping
// chunks modest bounds statement size for huge batches.
const maxBindVars = 512

// DB is a persistent dictionary store backed by a SQLite database file.
// It is safe for concurrent readers; Load is expected to run before readers
// start.
type DB struct {
	db *sql.DB
}

var _ lexipack.Store = (*DB)(nil)

// Open opens (creating if needed) the dictionary database at path.
// Use ":memory:" for an ephemeral database.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	if path == ":memory:" {
		// Each pooled connection would otherwise get its own empty
		// in-memory database.
		db.SetMaxOpenConns(1)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: init schema: %w", err)
	}
	return &DB{db: db}, nil
}

// Close releases the underlying database handle.
func (d *DB) Close() error {
	return d.db.Close()
}

// Load upserts entries in a single transaction. Words are lowercased; a row
// with the same (id, lang) is replaced. Loading the same entries twice is a
// no-op for observable state.
func (d *DB) Load(entries []lexipack.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("store: load: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO words (id, word, lang) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("store: load: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.Exec(e.ID, strings.ToLower(e.Word), uint16(e.Lang)); err != nil {
			return fmt.Errorf("store: load id=%d: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: load: %w", err)
	}
	return nil
}

// LookupWords resolves words to ids for one language with a single IN query
// per chunk. Absent words and ids outside the codec's 16-bit range are
// omitted from the result.
func (d *DB) LookupWords(words []string, lang lexipack.Language) (map[string]uint32, error) {
	result := make(map[string]uint32, len(words))

	for _, chunk := range chunkStrings(words, maxBindVars) {
		query := fmt.Sprintf(
			`SELECT word, id FROM words WHERE lang = ? AND id < %d AND word IN (%s)`,
			lexipack.MaxCodecID, placeholders(len(chunk)),
		)
		args := make([]any, 0, len(chunk)+1)
		args = append(args, uint16(lang))
		for _, w := range chunk {
			args = append(args, w)
		}

		rows, err := d.db.Query(query, args...)
		if err != nil {
			return nil, fmt.Errorf("store: lookup words: %w", err)
		}
		if err := scanWordRows(rows, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// LookupIDs resolves ids to words for one language with a single IN query
// per chunk. Absent ids are omitted.
func (d *DB) LookupIDs(ids []uint32, lang lexipack.Language) (map[uint32]string, error) {
	result := make(map[uint32]string, len(ids))

	for _, chunk := range chunkIDs(ids, maxBindVars) {
		query := fmt.Sprintf(
			`SELECT id, word FROM words WHERE lang = ? AND id IN (%s)`,
			placeholders(len(chunk)),
		)
		args := make([]any, 0, len(chunk)+1)
		args = append(args, uint16(lang))
		for _, id := range chunk {
			args = append(args, id)
		}

		rows, err := d.db.Query(query, args...)
		if err != nil {
			return nil, fmt.Errorf("store: lookup ids: %w", err)
		}
		if err := scanIDRows(rows, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func scanWordRows(rows *sql.Rows, into map[string]uint32) error {
	defer rows.Close()
	for rows.Next() {
		var word string
		var id uint32
		if err := rows.Scan(&word, &id); err != nil {
			return fmt.Errorf("store: scan word row: %w", err)
		}
		into[word] = id
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("store: lookup words: %w", err)
	}
	return nil
}

func scanIDRows(rows *sql.Rows, into map[uint32]string) error {
	defer rows.Close()
	for rows.Next() {
		var id uint32
		var word string
		if err := rows.Scan(&id, &word); err != nil {
			return fmt.Errorf("store: scan id row: %w", err)
		}
		into[id] = word
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("store: lookup ids: %w", err)
	}
	return nil
}

// placeholders returns "?, ?, ..." with n slots.
func placeholders(n int) string {
	if n == 0 {
		return ""
	}
	return strings.Repeat("?, ", n-1) + "?"
}

func chunkStrings(values []string, size int) [][]string {
	var chunks [][]string
	for len(values) > size {
		chunks = append(chunks, values[:size])
		values = values[size:]
	}
	if len(values) > 0 {
		chunks = append(chunks, values)
	}
	return chunks
}

func chunkIDs(values []uint32, size int) [][]uint32 {
	var chunks [][]uint32
	for len(values) > size {
		chunks = append(chunks, values[:size])
		values = values[size:]
	}
	if len(values) > 0 {
		chunks = append(chunks, values)
	}
	return chunks
}
