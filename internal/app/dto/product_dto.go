package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// Prices go over the wire as JSON numbers; strings are still accepted on input
	decimal.MarshalJSONWithoutQuotes = true
}

// ProductDto is the payload for creating or updating a product
type ProductDto struct {
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// InfoProductDto is the read view of a product
type InfoProductDto struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// CreatedProductResponse carries the identifier of a newly created product
type CreatedProductResponse struct {
	ID uuid.UUID `json:"id"`
}
