package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestProduct_Validate(t *testing.T) {
	price := decimal.NewFromFloat(2499.00)
	testCases := []struct {
		name    string
		product Product
		err     bool
	}{
		{"valid", Product{Name: "MacBook Pro", Description: "Laptop", Price: price, Quantity: 25}, false},
		{"missing name", Product{Description: "Laptop", Price: price, Quantity: 25}, true},
		{"missing description", Product{Name: "MacBook Pro", Price: price, Quantity: 25}, true},
		{"negative price", Product{Name: "MacBook Pro", Description: "Laptop", Price: decimal.NewFromInt(-1), Quantity: 25}, true},
		{"zero price", Product{Name: "Freebie", Description: "Giveaway", Price: decimal.Zero, Quantity: 1}, false},
		{"negative quantity", Product{Name: "MacBook Pro", Description: "Laptop", Price: price, Quantity: -1}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.product.Validate()
			if tc.err && err == nil {
				t.Error("Validate should return error")
			}
			if !tc.err && err != nil {
				t.Errorf("Validate: %v", err)
			}
		})
	}
}

func TestProduct_PriceJSON(t *testing.T) {
	p := Product{ID: 1, Name: "Headphones", Description: "Wireless", Price: decimal.RequireFromString("399.00"), Quantity: 120}
	b, err := json.Marshal(&p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(b), `"price":"399"`) {
		t.Errorf("JSON = %s, price should serialize as a string", b)
	}
}
