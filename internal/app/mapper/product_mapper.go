// Package mapper converts between domain products and their transfer objects.
package mapper

import (
	"github.com/mrops-br/product-catalog-api/internal/app/dto"
	"github.com/mrops-br/product-catalog-api/internal/domain"
)

// ProductMapper is stateless; the zero value is ready to use
type ProductMapper struct{}

// NewProductMapper creates a new product mapper
func NewProductMapper() ProductMapper {
	return ProductMapper{}
}

// ToProduct builds an entity from an input DTO.
// ID and CreatedAt stay unset until the repository saves the product.
func (ProductMapper) ToProduct(in *dto.ProductDto) *domain.Product {
	if in == nil {
		return nil
	}

	return &domain.Product{
		Name:        in.Name,
		Description: copyString(in.Description),
		Price:       in.Price,
	}
}

// ToInfoProductDto projects an entity onto its read view
func (ProductMapper) ToInfoProductDto(p *domain.Product) *dto.InfoProductDto {
	if p == nil {
		return nil
	}

	return &dto.InfoProductDto{
		ID:          p.ID,
		Name:        p.Name,
		Description: copyString(p.Description),
		Price:       p.Price,
	}
}

// ToInfoProductDtos maps a list of entities; the result is never nil
func (m ProductMapper) ToInfoProductDtos(products []domain.Product) []*dto.InfoProductDto {
	out := make([]*dto.InfoProductDto, len(products))
	for i := range products {
		out[i] = m.ToInfoProductDto(&products[i])
	}
	return out
}

// Merge returns a copy of p with name, description and price taken from in.
// Every field of in overwrites, empty or not. ID and CreatedAt are kept.
// A nil in returns p unchanged.
func (ProductMapper) Merge(p *domain.Product, in *dto.ProductDto) *domain.Product {
	if in == nil || p == nil {
		return p
	}

	merged := p.Clone()
	merged.Name = in.Name
	merged.Description = copyString(in.Description)
	merged.Price = in.Price

	return &merged
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
