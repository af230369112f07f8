package handler

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	orderapp "github.com/medigas/backend/internal/application/order"
	"github.com/medigas/backend/internal/domain/page"
)

// PageHandler handles page chrome endpoints: metadata, the FAQ
// accordion and the mobile menu toggle
type PageHandler struct {
	BaseHandler
	appName string
	orders  *orderapp.Service
	now     func() time.Time

	mu        sync.Mutex
	accordion *page.Accordion
	menu      *page.MenuToggle
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(appName string, orders *orderapp.Service) *PageHandler {
	return &PageHandler{
		appName:   appName,
		orders:    orders,
		now:       time.Now,
		accordion: page.NewAccordion(page.DefaultFAQ()),
		menu:      &page.MenuToggle{},
	}
}

// FAQToggleRequest selects the accordion item to flip
type FAQToggleRequest struct {
	Index *int `json:"index" binding:"required"`
}

// Meta returns the page initialization data: the footer year and the
// customer id the form shows before any submission
func (h *PageHandler) Meta(c *gin.Context) {
	h.Success(c, gin.H{
		"app_name":    h.appName,
		"year":        h.now().Year(),
		"customer_id": h.orders.CurrentCustomerID(),
	})
}

// ListFAQ returns the accordion items with their open state
func (h *PageHandler) ListFAQ(c *gin.Context) {
	h.mu.Lock()
	items := h.accordion.Items()
	h.mu.Unlock()
	h.Success(c, items)
}

// ToggleFAQ flips one accordion item, closing any other open one
func (h *PageHandler) ToggleFAQ(c *gin.Context) {
	var req FAQToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	h.mu.Lock()
	err := h.accordion.Toggle(*req.Index)
	items := h.accordion.Items()
	h.mu.Unlock()

	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// ToggleMenu flips the mobile menu and returns its state and glyph
func (h *PageHandler) ToggleMenu(c *gin.Context) {
	h.mu.Lock()
	active := h.menu.Toggle()
	glyph := h.menu.Glyph()
	h.mu.Unlock()

	h.Success(c, gin.H{"active": active, "glyph": glyph})
}

// RegisterRoutes registers page routes
func (h *PageHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/page")
	{
		group.GET("/meta", h.Meta)
		group.GET("/faq", h.ListFAQ)
		group.POST("/faq/toggle", h.ToggleFAQ)
		group.POST("/menu/toggle", h.ToggleMenu)
	}
}
