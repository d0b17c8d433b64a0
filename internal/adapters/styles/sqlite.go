// Package styles persists named colour values.
package styles

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/hugo-lorenzo-mato/swatch/internal/codec"
	"github.com/hugo-lorenzo-mato/swatch/internal/core"
)

//go:embed migrations/001_initial_schema.sql
var migrationV1 string

// Style is a named colour value.
type Style struct {
	ID        string
	Name      string
	Value     core.Value
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SQLiteStore keeps styles in a SQLite database. Values are stored as codec
// records so gradients survive exactly.
type SQLiteStore struct {
	dbPath string
	db     *sql.DB
	mu     sync.RWMutex
	now    func() time.Time
}

// SQLiteStoreOption configures the store.
type SQLiteStoreOption func(*SQLiteStore)

// WithClock overrides the time source for timestamps.
func WithClock(now func() time.Time) SQLiteStoreOption {
	return func(s *SQLiteStore) {
		s.now = now
	}
}

// NewSQLiteStore opens or creates the database at dbPath.
func NewSQLiteStore(dbPath string, opts ...SQLiteStoreOption) (*SQLiteStore, error) {
	s := &SQLiteStore{
		dbPath: dbPath,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	s.db = db

	if err := s.migrate(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("running migrations: %w (close error: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string {
	return s.dbPath
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) migrate() error {
	var version int
	err := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version)
	if err != nil {
		// no schema yet
		version = 0
	}
	if version < 1 {
		if _, err := s.db.Exec(migrationV1); err != nil {
			return fmt.Errorf("applying migration v1: %w", err)
		}
	}
	return nil
}

// Save stores v under name, replacing any existing style of that name. The
// ID and creation time of a replaced style are kept.
func (s *SQLiteStore) Save(ctx context.Context, name string, v core.Value) (*Style, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, core.ErrValidation(core.CodeInvalidRecord, "style name is required")
	}
	if _, err := uuid.Parse(name); err == nil {
		return nil, core.ErrValidation(core.CodeInvalidRecord, "style name must not be a UUID")
	}

	rec := codec.EncodeRecord(v)
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshaling record: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	style := &Style{ID: uuid.NewString(), Name: name, Value: v, CreatedAt: now, UpdatedAt: now}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var existingID string
	var createdAt time.Time
	err = tx.QueryRowContext(ctx, "SELECT id, created_at FROM styles WHERE name = ?", name).Scan(&existingID, &createdAt)
	switch {
	case err == nil:
		style.ID, style.CreatedAt = existingID, createdAt
	case !errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("checking existing style: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO styles (id, name, kind, record, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			kind = excluded.kind,
			record = excluded.record,
			updated_at = excluded.updated_at
	`, style.ID, style.Name, rec.Kind, string(data), style.CreatedAt, style.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upserting style: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing style: %w", err)
	}
	return style, nil
}

// Get returns the style with the given ID, or failing that the given name.
func (s *SQLiteStore) Get(ctx context.Context, nameOrID string) (*Style, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, record, created_at, updated_at
		FROM styles WHERE id = ? OR name = ?
		ORDER BY id = ? DESC LIMIT 1
	`, nameOrID, nameOrID, nameOrID)
	style, err := scanStyle(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrNotFound(core.CodeStyleNotFound, "style", nameOrID)
	}
	return style, err
}

// List returns every style ordered by name. A non-empty kind filters by
// record kind.
func (s *SQLiteStore) List(ctx context.Context, kind string) ([]*Style, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := "SELECT id, name, record, created_at, updated_at FROM styles"
	var args []any
	if kind != "" {
		query += " WHERE kind = ?"
		args = append(args, kind)
	}
	query += " ORDER BY name"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing styles: %w", err)
	}
	defer rows.Close()

	var out []*Style
	for rows.Next() {
		style, err := scanStyle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, style)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating styles: %w", err)
	}
	return out, nil
}

// Delete removes the style with the given ID, or failing that the given
// name. At most one style is removed.
func (s *SQLiteStore) Delete(ctx context.Context, nameOrID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `
		DELETE FROM styles WHERE id = (
			SELECT id FROM styles WHERE id = ? OR name = ?
			ORDER BY id = ? DESC LIMIT 1
		)
	`, nameOrID, nameOrID, nameOrID)
	if err != nil {
		return fmt.Errorf("deleting style: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if n == 0 {
		return core.ErrNotFound(core.CodeStyleNotFound, "style", nameOrID)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanStyle(row scanner) (*Style, error) {
	var (
		style Style
		data  string
	)
	if err := row.Scan(&style.ID, &style.Name, &data, &style.CreatedAt, &style.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning style: %w", err)
	}

	var rec codec.Record
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, fmt.Errorf("decoding style %s: %w", style.Name, err)
	}
	v, err := codec.DecodeRecord(rec)
	if err != nil {
		return nil, fmt.Errorf("decoding style %s: %w", style.Name, err)
	}
	style.Value = v
	return &style, nil
}
