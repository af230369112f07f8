package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/medigas/backend/internal/application/catalog"
	"github.com/medigas/backend/internal/domain/catalog"
)

// CatalogHandler handles product catalog endpoints
type CatalogHandler struct {
	BaseHandler
	cards *catalogapp.CardService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(cards *catalogapp.CardService) *CatalogHandler {
	return &CatalogHandler{cards: cards}
}

// ListProducts renders the card grid for the requested type filter.
// The filter defaults to "all"; an unknown filter is not an error, it
// simply renders the empty-category placeholder.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	filter := c.DefaultQuery("filter", catalog.FilterAll)
	h.Success(c, h.cards.RenderCards(filter))
}

// RegisterRoutes registers catalog routes
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/catalog")
	{
		products.GET("/products", h.ListProducts)
	}
}
