package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medigas/backend/internal/domain/shared"
)

func defaultStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewDefaultStore()
	require.NoError(t, err)
	return store
}

func TestDefaultStoreSeed(t *testing.T) {
	store := defaultStore(t)
	require.Equal(t, 5, store.Len())

	// Insertion order is the catalog order
	all := store.All()
	assert.Equal(t, "Medical Oxygen Cylinder 6.8 m³", all[0].SelectionKey())
	assert.Equal(t, "Medical Oxygen Cylinder 1.5 m³", all[1].SelectionKey())
	assert.Equal(t, "Oxygen Concentrator 5 L/min", all[2].SelectionKey())
	assert.Equal(t, "Refill Service 1.5 m³ Cylinder", all[3].SelectionKey())
	assert.Equal(t, "Refill Service 6.8 m³ Cylinder", all[4].SelectionKey())
}

func TestStoreFilter(t *testing.T) {
	store := defaultStore(t)

	tests := []struct {
		filter string
		want   int
	}{
		{"all", 5},
		{"cylinder", 2},
		{"equipment", 1},
		{"service", 2},
		{"consumable", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			got := store.Filter(tt.filter)
			assert.Len(t, got, tt.want)
			for _, p := range got {
				if tt.filter != FilterAll {
					assert.Equal(t, tt.filter, p.Type.String())
				}
			}
		})
	}
}

func TestStoreFilterPreservesOrder(t *testing.T) {
	store := defaultStore(t)
	services := store.Filter("service")
	require.Len(t, services, 2)
	assert.Equal(t, "1.5 m³ Cylinder", services[0].Capacity)
	assert.Equal(t, "6.8 m³ Cylinder", services[1].Capacity)
}

func TestStoreFindByKey(t *testing.T) {
	store := defaultStore(t)

	t.Run("existing key", func(t *testing.T) {
		p, err := store.FindByKey("Oxygen Concentrator 5 L/min")
		require.NoError(t, err)
		assert.Equal(t, ProductTypeEquipment, p.Type)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := store.FindByKey("Nitrogen Cylinder 10 m³")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestStoreFindByID(t *testing.T) {
	store := defaultStore(t)

	first := store.All()[0]
	p, err := store.FindByID(first.ID)
	require.NoError(t, err)
	assert.Same(t, first, p)

	_, err = store.FindByID(uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
