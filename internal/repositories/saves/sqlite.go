package saves

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/KirkDiggler/rpg-adventure/internal/errors"
	"github.com/KirkDiggler/rpg-adventure/internal/pkg/clock"
)

const (
	createSavesTable = `CREATE TABLE IF NOT EXISTS saves (
		slot INTEGER PRIMARY KEY,
		data TEXT NOT NULL,
		saved_at INTEGER NOT NULL
	);`

	upsertSave = `INSERT INTO saves (slot, data, saved_at) VALUES (?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET data = excluded.data, saved_at = excluded.saved_at`

	selectSave = `SELECT data FROM saves WHERE slot = ?`
	deleteSave = `DELETE FROM saves WHERE slot = ?`
)

// OpenSQLite opens the database at path, creating its directory and the
// saves table as needed.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		return nil, errors.InvalidArgument("database path cannot be empty")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrapf(err, "failed to create database directory %s", dir)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite database")
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to ping sqlite database")
	}

	if _, err := db.ExecContext(ctx, createSavesTable); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "failed to create saves table")
	}

	return db, nil
}

type sqliteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// SQLiteConfig contains configuration for the SQLite save repository.
type SQLiteConfig struct {
	// DB must already have the saves table; see OpenSQLite
	DB    *sql.DB
	Clock clock.Clock
}

// Validate validates the SQLiteConfig.
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DB == nil {
		return errors.InvalidArgument("db cannot be nil")
	}
	return nil
}

// NewSQLite creates a new SQLite-backed save repository
func NewSQLite(cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &sqliteRepository{
		db:    cfg.DB,
		clock: c,
	}, nil
}

func (r *sqliteRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal save data")
	}

	if _, err := r.db.ExecContext(ctx, upsertSave, input.Slot, string(data), r.clock.Now().Unix()); err != nil {
		return nil, errors.Wrapf(err, "failed to save slot %d", input.Slot)
	}

	return &SaveOutput{Location: fmt.Sprintf("saves/%d", input.Slot)}, nil
}

func (r *sqliteRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if err := validateSlot(input.Slot); err != nil {
		return nil, err
	}

	var raw string
	err := r.db.QueryRowContext(ctx, selectSave, input.Slot).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("save slot %d is empty", input.Slot)
		}
		return nil, errors.Wrapf(err, "failed to load slot %d", input.Slot)
	}

	data, err := decode(input.Slot, []byte(raw))
	if err != nil {
		return nil, err
	}

	return &LoadOutput{Data: data}, nil
}

func (r *sqliteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateSlot(input.Slot); err != nil {
		return nil, err
	}

	result, err := r.db.ExecContext(ctx, deleteSave, input.Slot)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete slot %d", input.Slot)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete slot %d", input.Slot)
	}
	if affected == 0 {
		return nil, errors.NotFoundf("save slot %d is empty", input.Slot)
	}

	return &DeleteOutput{}, nil
}
