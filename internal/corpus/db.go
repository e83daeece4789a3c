package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/verte-zerg/tokitype/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// DB is a SQLite cache of corpus records.
type DB struct {
	db *sql.DB
}

// OpenDB opens or creates the SQLite corpus cache and applies migrations.
func OpenDB(path string) (*DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	cache := &DB{db: db}
	if err := cache.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return cache, nil
}

// Close closes the underlying database.
func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS words (
			id TEXT PRIMARY KEY,
			seq INTEGER NOT NULL,
			usage_category TEXT NOT NULL,
			word TEXT NOT NULL,
			deprecated INTEGER NOT NULL,
			has_ku INTEGER NOT NULL,
			has_pu INTEGER NOT NULL,
			commentary TEXT,
			definitions TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS word_ku (
			word_id TEXT NOT NULL,
			key TEXT NOT NULL,
			count INTEGER NOT NULL,
			PRIMARY KEY (word_id, key)
		);`,
		`CREATE TABLE IF NOT EXISTS word_pu (
			word_id TEXT NOT NULL,
			key TEXT NOT NULL,
			text TEXT NOT NULL,
			PRIMARY KEY (word_id, key)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_words_seq ON words(seq);`,
	}
	for _, stmt := range stmts {
		if _, err := d.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Replace stores the records, discarding any previous contents.
func (d *DB) Replace(ctx context.Context, records []model.WordRecord) (err error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	for _, stmt := range []string{`DELETE FROM word_ku`, `DELETE FROM word_pu`, `DELETE FROM words`} {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	wordStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO words (id, seq, usage_category, word, deprecated, has_ku, has_pu, commentary, definitions)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer closeStmt(wordStmt)
	kuStmt, err := tx.PrepareContext(ctx, `INSERT INTO word_ku (word_id, key, count) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer closeStmt(kuStmt)
	puStmt, err := tx.PrepareContext(ctx, `INSERT INTO word_pu (word_id, key, text) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer closeStmt(puStmt)

	for i, r := range records {
		if _, err = wordStmt.ExecContext(ctx,
			r.ID, i, r.Tier.String(), r.Word, r.Deprecated,
			r.KUData != nil, r.PUVerbatim != nil,
			nullString(r.Commentary), nullString(r.Definitions),
		); err != nil {
			return fmt.Errorf("failed to insert %q: %w", r.ID, err)
		}
		for key, count := range r.KUData {
			if _, err = kuStmt.ExecContext(ctx, r.ID, key, count); err != nil {
				return err
			}
		}
		for key, text := range r.PUVerbatim {
			if _, err = puStmt.ExecContext(ctx, r.ID, key, text); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// Records reads every stored record in insertion order.
func (d *DB) Records(ctx context.Context) ([]model.WordRecord, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT id, usage_category, word, deprecated, has_ku, has_pu, commentary, definitions
		 FROM words ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer closeRows(rows)

	var records []model.WordRecord
	index := map[string]int{}
	for rows.Next() {
		var (
			r           model.WordRecord
			tier        string
			hasKU       bool
			hasPU       bool
			commentary  sql.NullString
			definitions sql.NullString
		)
		if err := rows.Scan(&r.ID, &tier, &r.Word, &r.Deprecated, &hasKU, &hasPU, &commentary, &definitions); err != nil {
			return nil, err
		}
		if r.Tier, err = model.ParseUsageTier(tier); err != nil {
			return nil, err
		}
		if hasKU {
			r.KUData = map[string]uint16{}
		}
		if hasPU {
			r.PUVerbatim = map[string]string{}
		}
		if commentary.Valid {
			r.Commentary = &commentary.String
		}
		if definitions.Valid {
			r.Definitions = &definitions.String
		}
		index[r.ID] = len(records)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := d.loadKU(ctx, records, index); err != nil {
		return nil, err
	}
	if err := d.loadPU(ctx, records, index); err != nil {
		return nil, err
	}
	return records, nil
}

func (d *DB) loadKU(ctx context.Context, records []model.WordRecord, index map[string]int) error {
	rows, err := d.db.QueryContext(ctx, `SELECT word_id, key, count FROM word_ku`)
	if err != nil {
		return err
	}
	defer closeRows(rows)
	for rows.Next() {
		var (
			id    string
			key   string
			count uint16
		)
		if err := rows.Scan(&id, &key, &count); err != nil {
			return err
		}
		if i, ok := index[id]; ok && records[i].KUData != nil {
			records[i].KUData[key] = count
		}
	}
	return rows.Err()
}

func (d *DB) loadPU(ctx context.Context, records []model.WordRecord, index map[string]int) error {
	rows, err := d.db.QueryContext(ctx, `SELECT word_id, key, text FROM word_pu`)
	if err != nil {
		return err
	}
	defer closeRows(rows)
	for rows.Next() {
		var id, key, text string
		if err := rows.Scan(&id, &key, &text); err != nil {
			return err
		}
		if i, ok := index[id]; ok && records[i].PUVerbatim != nil {
			records[i].PUVerbatim[key] = text
		}
	}
	return rows.Err()
}

func loadDB(ctx context.Context, path string) (*Corpus, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to stat corpus cache: %w", err)
	}
	db, err := OpenDB(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus cache: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close for read-only use.
			_ = cerr
		}
	}()
	records, err := db.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus cache: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmpty
	}
	return New(path, records), nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func closeStmt(stmt *sql.Stmt) {
	if cerr := stmt.Close(); cerr != nil {
		// Best-effort statement close.
		_ = cerr
	}
}

func closeRows(rows *sql.Rows) {
	if cerr := rows.Close(); cerr != nil {
		// Best-effort rows close.
		_ = cerr
	}
}
