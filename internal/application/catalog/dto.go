package catalog

import "github.com/google/uuid"

// Card is the view-model for one rendered product card
type Card struct {
	ProductID   uuid.UUID `json:"product_id"`
	Name        string    `json:"name"`
	Capacity    string    `json:"capacity"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Image       string    `json:"image"`
	OrderKey    string    `json:"order_key"`
}

// Grid is a full card rendering. Each render replaces the previous one
// wholesale; when nothing matches the filter the grid carries a single
// placeholder instead of an empty card list.
type Grid struct {
	Filter      string `json:"filter"`
	Cards       []Card `json:"cards"`
	Placeholder string `json:"placeholder,omitempty"`
}

// NoProductsPlaceholder is shown when a filter matches nothing
const NoProductsPlaceholder = "No products found in this category"
