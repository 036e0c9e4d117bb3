package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents the product entity
type Product struct {
	ID          uuid.UUID
	Name        string
	Description *string
	Price       decimal.Decimal
	CreatedAt   time.Time
}

// HasID reports whether the repository has already assigned an identifier
func (p Product) HasID() bool {
	return p.ID != uuid.Nil
}

// Clone returns a copy that shares no memory with p
func (p Product) Clone() Product {
	if p.Description != nil {
		description := *p.Description
		p.Description = &description
	}
	return p
}
