package catalog

import (
	"github.com/medigas/backend/internal/domain/catalog"
)

// CardService projects the catalog store into rendered card grids
type CardService struct {
	store *catalog.Store
}

// NewCardService creates a CardService over the given store
func NewCardService(store *catalog.Store) *CardService {
	return &CardService{store: store}
}

// RenderCards produces the card grid for the given type filter, one
// card per matching product in catalog order. The filter is matched by
// exact equality against the product type; only the literal "all"
// sentinel selects the whole catalog.
func (s *CardService) RenderCards(filter string) Grid {
	matched := s.store.Filter(filter)
	if len(matched) == 0 {
		return Grid{Filter: filter, Cards: []Card{}, Placeholder: NoProductsPlaceholder}
	}

	cards := make([]Card, 0, len(matched))
	for _, p := range matched {
		cards = append(cards, Card{
			ProductID:   p.ID,
			Name:        p.Name,
			Capacity:    p.Capacity,
			Description: p.Description,
			Price:       p.Price.Format(),
			Image:       p.Image,
			OrderKey:    p.SelectionKey(),
		})
	}
	return Grid{Filter: filter, Cards: cards}
}
