package catalog

import "fmt"

// seedEntry describes one build-time catalog record
type seedEntry struct {
	name        string
	capacity    string
	price       int64
	productType ProductType
	image       string
	description string
}

var defaultSeed = []seedEntry{
	{
		name:        "Medical Oxygen Cylinder",
		capacity:    "6.8 m³",
		price:       15000,
		productType: ProductTypeCylinder,
		image:       "https://images.unsplash.com/photo-1581595219315-a187dd40c322?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
		description: "Large capacity cylinder for hospital use",
	},
	{
		name:        "Medical Oxygen Cylinder",
		capacity:    "1.5 m³",
		price:       6500,
		productType: ProductTypeCylinder,
		image:       "https://images.unsplash.com/photo-1584473457407-1d529d59c91b?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
		description: "Portable cylinder for home therapy",
	},
	{
		name:        "Oxygen Concentrator",
		capacity:    "5 L/min",
		price:       45000,
		productType: ProductTypeEquipment,
		image:       "https://images.unsplash.com/photo-1585435557343-3b0783433541?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
		description: "Continuous oxygen supply system",
	},
	{
		name:        "Refill Service",
		capacity:    "1.5 m³ Cylinder",
		price:       1000,
		productType: ProductTypeService,
		image:       "https://images.unsplash.com/photo-1581093450022-4b1d3c4a24e5?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
		description: "Professional cylinder refilling",
	},
	{
		name:        "Refill Service",
		capacity:    "6.8 m³ Cylinder",
		price:       2500,
		productType: ProductTypeService,
		image:       "https://images.unsplash.com/photo-1581094271901-8022df4466f9?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
		description: "Professional cylinder refilling",
	},
}

// NewDefaultStore builds the store over the fixed MediGas catalog
func NewDefaultStore() (*Store, error) {
	products := make([]*Product, 0, len(defaultSeed))
	for _, e := range defaultSeed {
		p, err := NewProduct(e.name, e.capacity, e.price, e.productType, e.image, e.description)
		if err != nil {
			return nil, fmt.Errorf("seed catalog entry %q: %w", e.name, err)
		}
		products = append(products, p)
	}
	return NewStore(products), nil
}
