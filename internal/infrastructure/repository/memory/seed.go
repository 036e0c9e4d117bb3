package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mrops-br/product-catalog-api/internal/domain"
)

// DemoProductID identifies the product that SeedProducts provides
var DemoProductID = uuid.MustParse("76a4a999-92d7-452f-9a7b-34607ecb688e")

// SeedProducts returns the demo catalog loaded when CATALOG_SEED is enabled
func SeedProducts() []domain.Product {
	description := "Multi-colored printing."
	return []domain.Product{
		{
			ID:          DemoProductID,
			Name:        "Printer",
			Description: &description,
			Price:       decimal.NewFromInt(5),
			CreatedAt:   time.Date(2023, 10, 27, 18, 30, 0, 0, time.UTC),
		},
	}
}
