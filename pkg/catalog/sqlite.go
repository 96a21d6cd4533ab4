package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/gsingh93/gdl-parser/pkg/config"
)

// SchemaVersion is the current database schema version.
const SchemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS entries (
    id            TEXT PRIMARY KEY,
    name          TEXT NOT NULL UNIQUE,
    path          TEXT,
    source_hash   TEXT NOT NULL,
    canonical     TEXT NOT NULL,
    ast           TEXT NOT NULL,
    clause_count  INTEGER NOT NULL,
    rule_count    INTEGER NOT NULL,
    created_at    TIMESTAMP NOT NULL,
    updated_at    TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_entries_name ON entries(name);
CREATE INDEX IF NOT EXISTS idx_entries_source_hash ON entries(source_hash);

CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY
);
`

// SQLiteStore implements Store using SQLite via the pure-Go modernc driver.
// It enables WAL mode for better concurrency and versions its schema.
type SQLiteStore struct {
	db     *sql.DB
	config *config.CatalogConfig
	logger *slog.Logger
}

// NewSQLiteStore opens (creating if necessary) a SQLite-backed catalog at the
// configured path.
func NewSQLiteStore(cfg *config.CatalogConfig) (*SQLiteStore, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	s := &SQLiteStore{
		db:     db,
		config: cfg,
		logger: slog.Default().With("component", "catalog.sqlite"),
	}

	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	s.logger.Info("catalog opened",
		"path", cfg.Path,
		"wal_mode", cfg.WALMode,
	)

	return s, nil
}

// initialize sets up the database schema and pragmas.
func (s *SQLiteStore) initialize() error {
	if s.config.WALMode {
		if _, err := s.db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
			return fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	busyTimeoutMs := s.config.BusyTimeout.Milliseconds()
	if _, err := s.db.Exec(fmt.Sprintf("PRAGMA busy_timeout=%d;", busyTimeoutMs)); err != nil {
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if _, err := s.db.Exec(
		"INSERT OR IGNORE INTO schema_version (version) VALUES (?)", SchemaVersion,
	); err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}

	var version int
	err := s.db.QueryRow("SELECT MAX(version) FROM schema_version").Scan(&version)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version != SchemaVersion {
		return fmt.Errorf("schema version mismatch: expected %d, got %d", SchemaVersion, version)
	}

	return nil
}

// Put inserts or replaces an entry. If an entry with the same name exists,
// its ID and creation time are preserved.
func (s *SQLiteStore) Put(ctx context.Context, entry *Entry) error {
	prev, err := s.Get(ctx, entry.Name)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}

	stored := *entry
	if prev != nil {
		stored.ID = prev.ID
		stored.CreatedAt = prev.CreatedAt
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO entries
			(id, name, path, source_hash, canonical, ast, clause_count, rule_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			path = excluded.path,
			source_hash = excluded.source_hash,
			canonical = excluded.canonical,
			ast = excluded.ast,
			clause_count = excluded.clause_count,
			rule_count = excluded.rule_count,
			updated_at = excluded.updated_at`,
		stored.ID, stored.Name, stored.Path, stored.SourceHash, stored.Canonical,
		string(stored.AST), stored.ClauseCount, stored.RuleCount,
		stored.CreatedAt, stored.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to store entry %q: %w", entry.Name, err)
	}
	return nil
}

// Get returns the entry with the given name, or ErrNotFound.
func (s *SQLiteStore) Get(ctx context.Context, name string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, path, source_hash, canonical, ast, clause_count, rule_count, created_at, updated_at
		FROM entries WHERE name = ?`, name)

	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load entry %q: %w", name, err)
	}
	return entry, nil
}

// List returns all entries ordered by name.
func (s *SQLiteStore) List(ctx context.Context) ([]*Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, path, source_hash, canonical, ast, clause_count, rule_count, created_at, updated_at
		FROM entries ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	var results []*Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		results = append(results, entry)
	}
	return results, rows.Err()
}

// Delete removes the entry with the given name, or returns ErrNotFound.
func (s *SQLiteStore) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM entries WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("failed to delete entry %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of stored entries.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM entries").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return n, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*Entry, error) {
	var entry Entry
	var astText string
	var createdAt, updatedAt time.Time
	err := row.Scan(
		&entry.ID, &entry.Name, &entry.Path, &entry.SourceHash, &entry.Canonical,
		&astText, &entry.ClauseCount, &entry.RuleCount, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	entry.AST = []byte(astText)
	entry.CreatedAt = createdAt
	entry.UpdatedAt = updatedAt
	return &entry, nil
}

// Open creates the catalog store selected by the configuration: "sqlite" or
// "memory".
func Open(cfg *config.CatalogConfig) (Store, error) {
	switch cfg.Backend {
	case "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return NewSQLiteStore(cfg)
	}
	return nil, fmt.Errorf("unknown catalog backend %q", cfg.Backend)
}
