package order

import (
	"fmt"
	"strconv"
	"time"

	"github.com/medigas/backend/internal/domain/shared"
	"github.com/medigas/backend/internal/domain/shared/valueobject"
)

// Draft is an order reconstructed from form fields at submit time.
// It is ephemeral: it lives only until its confirmation is surfaced and
// is never written to storage.
type Draft struct {
	CustomerID   string
	CustomerName string
	Email        string
	Phone        string
	ProductKey   string
	Quantity     int64
	UnitPrice    valueobject.Money
	Total        valueobject.Money
	Address      string
	DeliveryDate time.Time
}

// NewDraft assembles a draft from already-validated form values.
// Quantity arrives as the raw form string and is parsed explicitly;
// malformed or non-positive input is rejected rather than coerced.
func NewDraft(customerID, customerName, email, phone, productKey, rawQuantity string, unitPrice valueobject.Money, address string, deliveryDate time.Time) (*Draft, error) {
	if customerID == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_ID", "Customer id cannot be empty")
	}
	if productKey == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "A product must be selected")
	}
	quantity, err := ParseQuantity(rawQuantity)
	if err != nil {
		return nil, err
	}

	return &Draft{
		CustomerID:   customerID,
		CustomerName: customerName,
		Email:        email,
		Phone:        phone,
		ProductKey:   productKey,
		Quantity:     quantity,
		UnitPrice:    unitPrice,
		Total:        unitPrice.MulInt(quantity),
		Address:      address,
		DeliveryDate: deliveryDate,
	}, nil
}

// Confirmation is the summary surfaced once the simulated processing
// delay has elapsed
type Confirmation struct {
	CustomerID   string    `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	Product      string    `json:"product"`
	Quantity     int64     `json:"quantity"`
	Total        string    `json:"total"`
	DeliveryDate string    `json:"delivery_date"`
	ConfirmedAt  time.Time `json:"confirmed_at"`
}

// Confirm produces the confirmation summary for the draft
func (d *Draft) Confirm(at time.Time) Confirmation {
	return Confirmation{
		CustomerID:   d.CustomerID,
		CustomerName: d.CustomerName,
		Product:      d.ProductKey,
		Quantity:     d.Quantity,
		Total:        d.Total.Format(),
		DeliveryDate: d.DeliveryDate.Format(DeliveryDateLayout),
		ConfirmedAt:  at,
	}
}

// Summary renders the confirmation in the page's notice format
func (c Confirmation) Summary() string {
	return fmt.Sprintf(
		"Order Confirmation #%s\n"+
			"----------------------------\n"+
			"Customer: %s\n"+
			"Product: %s\n"+
			"Quantity: %d\n"+
			"Total: %s\n"+
			"Delivery Date: %s\n\n"+
			"Thank you for your order!",
		c.CustomerID, c.CustomerName, c.Product, c.Quantity, c.Total, c.DeliveryDate,
	)
}

// ParseQuantity parses a raw quantity form value, rejecting malformed
// or non-positive input
func ParseQuantity(raw string) (int64, error) {
	quantity, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be a whole number")
	}
	if quantity <= 0 {
		return 0, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	return quantity, nil
}
