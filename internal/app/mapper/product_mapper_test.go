package mapper

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mrops-br/product-catalog-api/internal/app/dto"
	"github.com/mrops-br/product-catalog-api/internal/domain"
)

var (
	printerID      = uuid.MustParse("76a4a999-92d7-452f-9a7b-34607ecb688e")
	printerCreated = time.Date(2023, 10, 27, 18, 30, 0, 0, time.UTC)
)

func strPtr(v string) *string {
	return &v
}

func printer() *domain.Product {
	return &domain.Product{
		ID:          printerID,
		Name:        "Printer",
		Description: strPtr("Provides multi-colored printing."),
		Price:       decimal.NewFromInt(5),
		CreatedAt:   printerCreated,
	}
}

func mfuDto() *dto.ProductDto {
	return &dto.ProductDto{
		Name:        "MFU",
		Description: strPtr("Provides multi-color printing and document scanning."),
		Price:       decimal.NewFromInt(7),
	}
}

func assertDescription(t *testing.T, got, want *string) {
	t.Helper()
	switch {
	case got == nil && want == nil:
	case got == nil || want == nil:
		t.Fatalf("description mismatch: got %v, want %v", got, want)
	case *got != *want:
		t.Fatalf("description mismatch: got %q, want %q", *got, *want)
	}
}

func TestToProduct(t *testing.T) {
	m := NewProductMapper()

	tests := []struct {
		name string
		in   *dto.ProductDto
	}{
		{name: "all fields", in: &dto.ProductDto{Name: "Printer", Description: strPtr("Provides multi-colored printing."), Price: decimal.NewFromInt(5)}},
		{name: "nil description", in: &dto.ProductDto{Name: "Printer", Price: decimal.NewFromInt(5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.ToProduct(tt.in)
			if got == nil {
				t.Fatal("expected product, got nil")
			}
			if got.HasID() {
				t.Errorf("id must stay unset, got %s", got.ID)
			}
			if !got.CreatedAt.IsZero() {
				t.Errorf("created must stay unset, got %v", got.CreatedAt)
			}
			if got.Name != tt.in.Name || !got.Price.Equal(tt.in.Price) {
				t.Errorf("unexpected product %+v", got)
			}
			assertDescription(t, got.Description, tt.in.Description)
		})
	}
}

func TestToProductNil(t *testing.T) {
	if got := NewProductMapper().ToProduct(nil); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestToInfoProductDto(t *testing.T) {
	got := NewProductMapper().ToInfoProductDto(printer())

	if got.ID != printerID || got.Name != "Printer" || !got.Price.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("unexpected dto %+v", got)
	}
	assertDescription(t, got.Description, strPtr("Provides multi-colored printing."))
}

func TestToInfoProductDtoKeepsEmptyDescription(t *testing.T) {
	p := printer()
	p.Description = strPtr("")

	got := NewProductMapper().ToInfoProductDto(p)
	if got.Description == nil {
		t.Fatal("empty description must not become nil")
	}
	if *got.Description != "" {
		t.Fatalf("expected empty description, got %q", *got.Description)
	}
}

func TestToInfoProductDtoNil(t *testing.T) {
	if got := NewProductMapper().ToInfoProductDto(nil); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestToInfoProductDtosEmpty(t *testing.T) {
	got := NewProductMapper().ToInfoProductDtos(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestMerge(t *testing.T) {
	m := NewProductMapper()
	original := printer()

	got := m.Merge(original, mfuDto())

	if got.ID != printerID || !got.CreatedAt.Equal(printerCreated) {
		t.Fatalf("merge must keep id and created, got %+v", got)
	}
	if got.Name != "MFU" || !got.Price.Equal(decimal.NewFromInt(7)) {
		t.Fatalf("merge must take dto fields, got %+v", got)
	}
	assertDescription(t, got.Description, strPtr("Provides multi-color printing and document scanning."))

	if original.Name != "Printer" {
		t.Fatalf("merge must not mutate its input, got name %q", original.Name)
	}
}

func TestMergeOverwritesEmptyFields(t *testing.T) {
	got := NewProductMapper().Merge(printer(), &dto.ProductDto{})

	if got.Name != "" || got.Description != nil || !got.Price.IsZero() {
		t.Fatalf("empty dto fields must overwrite, got %+v", got)
	}
	if got.ID != printerID || !got.CreatedAt.Equal(printerCreated) {
		t.Fatalf("merge must keep id and created, got %+v", got)
	}
}

func TestMergeNilDto(t *testing.T) {
	original := printer()
	got := NewProductMapper().Merge(original, nil)

	if got != original {
		t.Fatalf("nil dto must return the entity as-is")
	}
	want := printer()
	if got.ID != want.ID || got.Name != want.Name || !got.Price.Equal(want.Price) || !got.CreatedAt.Equal(want.CreatedAt) {
		t.Fatalf("entity changed: %+v", got)
	}
	assertDescription(t, got.Description, want.Description)
}

func TestRoundTripThroughEntity(t *testing.T) {
	m := NewProductMapper()
	in := mfuDto()

	got := m.ToInfoProductDto(m.ToProduct(in))

	if got.Name != in.Name || !got.Price.Equal(in.Price) {
		t.Fatalf("round trip lost fields: %+v", got)
	}
	assertDescription(t, got.Description, in.Description)
}
