package order

import (
	"time"

	"github.com/google/uuid"
)

// ProductOption is one entry of the order form's product selector.
// The leading placeholder option has an empty value and carries no price.
type ProductOption struct {
	Value     string    `json:"value"`
	Label     string    `json:"label"`
	Price     int64     `json:"price,omitempty"`
	ProductID uuid.UUID `json:"product_id,omitempty"`
}

// SubmitRequest carries the raw order form fields. Quantity stays a
// string on the wire and is parsed explicitly during submission.
type SubmitRequest struct {
	FullName     string `json:"fullname"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Product      string `json:"product"`
	Quantity     string `json:"quantity"`
	Address      string `json:"address"`
	DeliveryDate string `json:"delivery_date"`
}

// SubmitReceipt acknowledges an accepted submission while the simulated
// processing delay runs
type SubmitReceipt struct {
	CustomerID string    `json:"customer_id"`
	Status     string    `json:"status"`
	ReadyAt    time.Time `json:"ready_at"`
}

// Submission status values
const (
	StatusIdle       = "idle"
	StatusProcessing = "processing"
	StatusConfirmed  = "confirmed"
)
