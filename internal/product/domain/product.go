package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Product is a catalog item. Price is DECIMAL(10,2) in storage and serialized
// as a JSON string to avoid float drift.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// Validate validates the product for persistence.
func (p *Product) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	if p.Description == "" {
		return errors.New("description is required")
	}
	if p.Price.IsNegative() {
		return errors.New("price must not be negative")
	}
	if p.Quantity < 0 {
		return errors.New("quantity must not be negative")
	}
	return nil
}
