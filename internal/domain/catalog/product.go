package catalog

import (
	"net/url"

	"github.com/medigas/backend/internal/domain/shared"
	"github.com/medigas/backend/internal/domain/shared/valueobject"
)

// ProductType classifies a catalog entry
type ProductType string

const (
	ProductTypeCylinder  ProductType = "cylinder"
	ProductTypeEquipment ProductType = "equipment"
	ProductTypeService   ProductType = "service"
)

// FilterAll is the sentinel filter value that matches every product.
// Any other value is compared by exact equality against the product type,
// so an unknown filter simply matches nothing.
const FilterAll = "all"

// IsValid checks if the type is a known ProductType
func (t ProductType) IsValid() bool {
	switch t {
	case ProductTypeCylinder, ProductTypeEquipment, ProductTypeService:
		return true
	}
	return false
}

// String returns the string representation of ProductType
func (t ProductType) String() string {
	return string(t)
}

// Product represents one catalog entry. The catalog is defined at build
// time and never mutated at runtime, so products carry no update methods.
type Product struct {
	shared.BaseEntity
	Name        string
	Capacity    string
	Price       valueobject.Money
	Type        ProductType
	Image       string
	Description string
}

// NewProduct creates a catalog product. Each product gets a surrogate
// uuid identity; the name+capacity selection key is kept only for
// correlating cards with form options and is not guaranteed unique.
func NewProduct(name, capacity string, price int64, productType ProductType, image, description string) (*Product, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if capacity == "" {
		return nil, shared.NewDomainError("INVALID_CAPACITY", "Product capacity cannot be empty")
	}
	if price < 0 {
		return nil, shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}
	if !productType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Unknown product type")
	}
	if image != "" {
		if _, err := url.ParseRequestURI(image); err != nil {
			return nil, shared.NewDomainError("INVALID_IMAGE", "Product image must be a valid URL")
		}
	}

	return &Product{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Capacity:    capacity,
		Price:       valueobject.NewMoneyKESFromInt(price),
		Type:        productType,
		Image:       image,
		Description: description,
	}, nil
}

// SelectionKey returns the composite name+capacity key the page uses to
// correlate a catalog card with its order-form option
func (p *Product) SelectionKey() string {
	return p.Name + " " + p.Capacity
}

// Matches reports whether the product passes the given type filter
func (p *Product) Matches(filter string) bool {
	return filter == FilterAll || string(p.Type) == filter
}
