package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver

	"github.com/viant/cbir/feature"
)

// Open opens a SQLite database using the modernc.org/sqlite driver.
//
// For file-based databases, pass a path like "./features.sqlite". For
// in-memory databases, pass ":memory:".
func Open(dsn string) (*sql.DB, error) { return sql.Open("sqlite", dsn) }

const featuresSchema = `
CREATE TABLE IF NOT EXISTS features (
    id     TEXT NOT NULL,
    kind   TEXT NOT NULL,
    vector BLOB NOT NULL,
    PRIMARY KEY(id, kind)
);
`

// EnsureSchema creates the features table in the provided database if it does
// not already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(featuresSchema)
	return err
}

// Record pairs an image identifier with its feature vector.
type Record struct {
	ID     string
	Vector feature.Vector
}

// Store is a SQLite-backed feature database. One image may carry one vector
// per extractor kind; vectors of different kinds are never compared, so the
// kind tag is part of the key.
type Store struct {
	db *sql.DB
}

// New creates a feature store on the provided database, ensuring the schema
// exists.
func New(db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("store: db is nil")
	}
	if err := EnsureSchema(db); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Put inserts or replaces the vector for (id, kind).
func (s *Store) Put(ctx context.Context, id, kind string, vec feature.Vector) error {
	if id == "" {
		return fmt.Errorf("store: Put called with empty id")
	}
	if len(vec) == 0 {
		return fmt.Errorf("store: Put called with empty vector for %q", id)
	}
	blob, err := EncodeVector(vec)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO features(id, kind, vector) VALUES(?, ?, ?)
ON CONFLICT(id, kind) DO UPDATE SET vector = excluded.vector`, id, kind, blob)
	return err
}

// PutAll inserts records of one kind in a single transaction.
func (s *Store) PutAll(ctx context.Context, kind string, records []Record) error {
	if len(records) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO features(id, kind, vector) VALUES(?, ?, ?)
ON CONFLICT(id, kind) DO UPDATE SET vector = excluded.vector`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		if r.ID == "" {
			return fmt.Errorf("store: record with empty id")
		}
		blob, err := EncodeVector(r.Vector)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, r.ID, kind, blob); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Get returns the vector stored for (id, kind). A missing row surfaces as
// sql.ErrNoRows.
func (s *Store) Get(ctx context.Context, id, kind string) (feature.Vector, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx, `SELECT vector FROM features WHERE id = ? AND kind = ?`, id, kind).Scan(&blob)
	if err != nil {
		return nil, err
	}
	return DecodeVector(blob)
}

// List returns all records of the given kind ordered by id.
func (s *Store) List(ctx context.Context, kind string) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, vector FROM features WHERE kind = ? ORDER BY id`, kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		var blob []byte
		if err := rows.Scan(&r.ID, &blob); err != nil {
			return nil, err
		}
		if r.Vector, err = DecodeVector(blob); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Remove deletes the vector for (id, kind).
func (s *Store) Remove(ctx context.Context, id, kind string) error {
	if id == "" {
		return fmt.Errorf("store: Remove called with empty id")
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM features WHERE id = ? AND kind = ?`, id, kind)
	return err
}
