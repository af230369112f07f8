package persistence

import (
	"context"
	"testing"

	"github.com/medigas/backend/internal/domain/settings"
	"github.com/medigas/backend/internal/domain/shared"
	"github.com/medigas/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()

	db, err := NewDatabase(&config.DatabaseConfig{Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestGormSettingsRepository_LoadMissing(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormSettingsRepository(db.DB, settings.StorageKey)

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormSettingsRepository_SaveAndLoad(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormSettingsRepository(db.DB, settings.StorageKey)
	ctx := context.Background()

	doc := []byte(`{"darkMode":true,"fontSize":"large","animationsEnabled":false}`)
	require.NoError(t, repo.Save(ctx, doc))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestGormSettingsRepository_SaveOverwrites(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormSettingsRepository(db.DB, settings.StorageKey)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, []byte(`{"darkMode":false}`)))
	require.NoError(t, repo.Save(ctx, []byte(`{"darkMode":true}`)))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"darkMode":true}`, string(got))
}

func TestGormSettingsRepository_KeysAreIsolated(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()

	a := NewGormSettingsRepository(db.DB, "appSettings")
	b := NewGormSettingsRepository(db.DB, "otherSettings")

	require.NoError(t, a.Save(ctx, []byte(`{"fontSize":"small"}`)))

	_, err := b.Load(ctx)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
