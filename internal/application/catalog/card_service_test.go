package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medigas/backend/internal/domain/catalog"
)

func newCardService(t *testing.T) *CardService {
	t.Helper()
	store, err := catalog.NewDefaultStore()
	require.NoError(t, err)
	return NewCardService(store)
}

func TestRenderCardsAll(t *testing.T) {
	svc := newCardService(t)
	grid := svc.RenderCards("all")

	require.Len(t, grid.Cards, 5)
	assert.Empty(t, grid.Placeholder)

	// Stable catalog order
	assert.Equal(t, "Medical Oxygen Cylinder", grid.Cards[0].Name)
	assert.Equal(t, "6.8 m³", grid.Cards[0].Capacity)
	assert.Equal(t, "KES 15,000", grid.Cards[0].Price)
	assert.Equal(t, "Medical Oxygen Cylinder 6.8 m³", grid.Cards[0].OrderKey)
	assert.Equal(t, "Refill Service", grid.Cards[4].Name)
}

func TestRenderCardsByType(t *testing.T) {
	svc := newCardService(t)

	tests := []struct {
		filter string
		count  int
	}{
		{"cylinder", 2},
		{"equipment", 1},
		{"service", 2},
	}

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			grid := svc.RenderCards(tt.filter)
			assert.Len(t, grid.Cards, tt.count)
			assert.Empty(t, grid.Placeholder)
			assert.Equal(t, tt.filter, grid.Filter)
		})
	}
}

func TestRenderCardsUnmatchedFilter(t *testing.T) {
	svc := newCardService(t)

	for _, filter := range []string{"consumable", "ALL", ""} {
		t.Run(filter, func(t *testing.T) {
			grid := svc.RenderCards(filter)
			assert.Empty(t, grid.Cards)
			assert.Equal(t, NoProductsPlaceholder, grid.Placeholder)
		})
	}
}

func TestRenderCardsReplacesPriorRender(t *testing.T) {
	svc := newCardService(t)

	first := svc.RenderCards("service")
	second := svc.RenderCards("cylinder")

	// Each render is a full rebuild, independent of the previous one
	require.Len(t, first.Cards, 2)
	require.Len(t, second.Cards, 2)
	assert.NotEqual(t, first.Cards[0].OrderKey, second.Cards[0].OrderKey)
}
