package persistence

import (
	"testing"

	"github.com/medigas/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabase(t *testing.T) {
	db, err := NewDatabase(&config.DatabaseConfig{Path: ":memory:"})
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, db.Ping())
}

func TestDatabase_Migrate(t *testing.T) {
	db := newTestDatabase(t)

	assert.True(t, db.DB.Migrator().HasTable("settings_records"))
}

func TestDatabase_Close(t *testing.T) {
	db, err := NewDatabase(&config.DatabaseConfig{Path: ":memory:"})
	require.NoError(t, err)

	require.NoError(t, db.Close())
	assert.Error(t, db.Ping())
}
