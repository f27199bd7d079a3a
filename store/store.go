// Package store persists saved tracks in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
	_ "modernc.org/sqlite"

	"github.com/thomasahle/trainbox/store/migrations"
)

// ErrNotFound is returned when no snapshot matches a query.
var ErrNotFound = errors.New("snapshot not found")

// Snapshot is a saved track for a level. Track holds the msgpack encoding
// produced by level.Encode.
type Snapshot struct {
	ID        uuid.UUID
	Level     string
	Track     []byte
	Arrived   []int
	CreatedAt time.Time
}

// Store persists snapshots in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite store at path and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// SaveSnapshot inserts snap. A zero ID is replaced by a new UUID and a zero
// CreatedAt by the current time; the stored snapshot is returned.
func (s *Store) SaveSnapshot(ctx context.Context, snap Snapshot) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	if s == nil || s.sqlDB == nil {
		return Snapshot{}, fmt.Errorf("storage is not configured")
	}
	snap.Level = strings.TrimSpace(snap.Level)
	if snap.Level == "" {
		return Snapshot{}, fmt.Errorf("level is required")
	}
	if len(snap.Track) == 0 {
		return Snapshot{}, fmt.Errorf("track is required")
	}
	if snap.ID == uuid.Nil {
		snap.ID = uuid.New()
	}
	if snap.CreatedAt.IsZero() {
		snap.CreatedAt = time.Now()
	}
	snap.CreatedAt = snap.CreatedAt.UTC().Truncate(time.Millisecond)

	arrived, err := msgpack.Marshal(snap.Arrived)
	if err != nil {
		return Snapshot{}, fmt.Errorf("encode arrivals: %w", err)
	}
	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO snapshots (id, level, track, arrived, created_at) VALUES (?, ?, ?, ?, ?)`,
		snap.ID.String(),
		snap.Level,
		snap.Track,
		arrived,
		snap.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return Snapshot{}, fmt.Errorf("insert snapshot: %w", err)
	}
	return snap, nil
}

// LatestSnapshot returns the most recent snapshot for level.
func (s *Store) LatestSnapshot(ctx context.Context, level string) (Snapshot, error) {
	snaps, err := s.query(ctx, level, 1)
	if err != nil {
		return Snapshot{}, err
	}
	if len(snaps) == 0 {
		return Snapshot{}, ErrNotFound
	}
	return snaps[0], nil
}

// ListSnapshots returns every snapshot for level, newest first.
func (s *Store) ListSnapshots(ctx context.Context, level string) ([]Snapshot, error) {
	return s.query(ctx, level, -1)
}

func (s *Store) query(ctx context.Context, level string, limit int) ([]Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, level, track, arrived, created_at FROM snapshots
		 WHERE level = ? ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		strings.TrimSpace(level), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		var (
			id, lvl        string
			track, arrived []byte
			createdAt      int64
		)
		if err := rows.Scan(&id, &lvl, &track, &arrived, &createdAt); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("parse snapshot id %q: %w", id, err)
		}
		var cargos []int
		if err := msgpack.Unmarshal(arrived, &cargos); err != nil {
			return nil, fmt.Errorf("parse snapshot %s arrivals: %w", id, err)
		}
		out = append(out, Snapshot{
			ID:        parsed,
			Level:     lvl,
			Track:     track,
			Arrived:   cargos,
			CreatedAt: time.UnixMilli(createdAt).UTC(),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snapshots: %w", err)
	}
	return out, nil
}

// applyMigrations runs each embedded .sql file once, recording applied files
// in schema_migrations.
func applyMigrations(sqlDB *sql.DB, migrationFS fs.FS) error {
	entries, err := fs.ReadDir(migrationFS, ".")
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	if _, err := sqlDB.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		name TEXT PRIMARY KEY,
		applied_at INTEGER NOT NULL
	)`); err != nil {
		return fmt.Errorf("ensure migration table: %w", err)
	}

	for _, name := range files {
		var applied int
		if err := sqlDB.QueryRow(`SELECT COUNT(1) FROM schema_migrations WHERE name = ?`, name).Scan(&applied); err != nil {
			return fmt.Errorf("check migration %s: %w", name, err)
		}
		if applied > 0 {
			continue
		}
		content, err := fs.ReadFile(migrationFS, name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}

		tx, err := sqlDB.BeginTx(context.Background(), nil)
		if err != nil {
			return fmt.Errorf("begin migration %s: %w", name, err)
		}
		if _, err := tx.Exec(upSection(string(content))); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("exec migration %s: %w", name, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations (name, applied_at) VALUES (?, ?)`,
			name, time.Now().UTC().UnixMilli()); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %s: %w", name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %s: %w", name, err)
		}
	}
	return nil
}

// upSection returns the SQL between "-- +migrate Up" and "-- +migrate Down".
func upSection(content string) string {
	const up, down = "-- +migrate Up", "-- +migrate Down"
	if i := strings.Index(content, up); i >= 0 {
		content = content[i+len(up):]
	}
	if i := strings.Index(content, down); i >= 0 {
		content = content[:i]
	}
	return content
}
