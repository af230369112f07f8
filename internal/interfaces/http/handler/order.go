package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	orderapp "github.com/medigas/backend/internal/application/order"
	"github.com/medigas/backend/internal/domain/order"
	"github.com/medigas/backend/internal/domain/shared"
	"github.com/medigas/backend/internal/interfaces/http/dto"
)

// OrderHandler handles order form endpoints
type OrderHandler struct {
	BaseHandler
	orders *orderapp.Service
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orders *orderapp.Service) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// ValidateFieldRequest asks for a single form field check, mirroring
// the live per-field validation of the order form
type ValidateFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// ListOptions returns the product selector options
func (h *OrderHandler) ListOptions(c *gin.Context) {
	h.Success(c, h.orders.ProductOptions())
}

// ValidateField validates one form field and returns its result
func (h *OrderHandler) ValidateField(c *gin.Context) {
	var req ValidateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	h.Success(c, h.orders.ValidateField(req.Field, req.Value))
}

// Submit accepts an order submission. A valid form is acknowledged
// with 202 while the simulated processing delay runs; an invalid one
// returns every failed field so the page can mark them all at once.
func (h *OrderHandler) Submit(c *gin.Context) {
	var req orderapp.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	receipt, results, err := h.orders.Submit(req)
	if err != nil {
		var domainErr *shared.DomainError
		if errors.Is(err, shared.ErrValidationFailed) && errors.As(err, &domainErr) {
			h.ValidationError(c, domainErr.Message, failedFields(results))
			return
		}
		h.HandleError(c, err)
		return
	}

	h.Accepted(c, receipt)
}

// Status reports the submission state machine position
func (h *OrderHandler) Status(c *gin.Context) {
	h.Success(c, gin.H{
		"status":      h.orders.Status(),
		"customer_id": h.orders.CurrentCustomerID(),
	})
}

// Confirmation returns the most recent order confirmation
func (h *OrderHandler) Confirmation(c *gin.Context) {
	confirmation, ok := h.orders.Confirmation()
	if !ok {
		h.NotFound(c, "No order has been confirmed yet")
		return
	}
	h.Success(c, gin.H{
		"confirmation": confirmation,
		"summary":      confirmation.Summary(),
	})
}

// CancelPending stops a pending submission, if any
func (h *OrderHandler) CancelPending(c *gin.Context) {
	if !h.orders.Cancel() {
		h.NotFound(c, "No submission is pending")
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers order routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.GET("/options", h.ListOptions)
		orders.GET("/status", h.Status)
		orders.GET("/confirmation", h.Confirmation)
		orders.POST("/fields/validate", h.ValidateField)
		orders.POST("", h.Submit)
		orders.DELETE("/pending", h.CancelPending)
	}
}

// failedFields projects invalid field results into response details
func failedFields(results []order.FieldResult) []dto.ValidationDetail {
	details := make([]dto.ValidationDetail, 0, len(results))
	for _, r := range results {
		if !r.Valid {
			details = append(details, dto.ValidationDetail{Field: r.Field, Message: r.Message})
		}
	}
	return details
}
