package saves_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-adventure/internal/errors"
	"github.com/KirkDiggler/rpg-adventure/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-adventure/internal/repositories/saves"
)

func TestSQLiteRecordsSaveTime(t *testing.T) {
	ctx := context.Background()
	db, err := saves.OpenSQLite(ctx, filepath.Join(t.TempDir(), "saves.db"))
	require.NoError(t, err)
	defer db.Close()

	at := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	repo, err := saves.NewSQLite(&saves.SQLiteConfig{DB: db, Clock: &clock.Fixed{At: at}})
	require.NoError(t, err)

	_, err = repo.Save(ctx, saves.SaveInput{Slot: 1, Data: map[string]any{"player_name": "Arthur"}})
	require.NoError(t, err)

	var savedAt int64
	require.NoError(t, db.QueryRowContext(ctx, "SELECT saved_at FROM saves WHERE slot = ?", 1).Scan(&savedAt))
	assert.Equal(t, at.Unix(), savedAt)
}

func TestSQLiteCorruptSlot(t *testing.T) {
	ctx := context.Background()
	db, err := saves.OpenSQLite(ctx, filepath.Join(t.TempDir(), "saves.db"))
	require.NoError(t, err)
	defer db.Close()

	_, err = db.ExecContext(ctx, "INSERT INTO saves (slot, data, saved_at) VALUES (?, ?, ?)", 1, "{oops", time.Now().Unix())
	require.NoError(t, err)

	repo, err := saves.NewSQLite(&saves.SQLiteConfig{DB: db})
	require.NoError(t, err)

	_, err = repo.Load(ctx, saves.LoadInput{Slot: 1})
	assert.True(t, errors.IsDataLoss(err))
}

func TestOpenSQLiteRequiresPath(t *testing.T) {
	_, err := saves.OpenSQLite(context.Background(), "")
	assert.True(t, errors.IsInvalidArgument(err))
}
