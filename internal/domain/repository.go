package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductNotFoundError is returned when no product has the requested ID
type ProductNotFoundError struct {
	ID uuid.UUID
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product with id %s not found", e.ID)
}

// Is lets errors.Is match the ErrProductNotFound sentinel
func (e *ProductNotFoundError) Is(target error) bool {
	return target == ErrProductNotFound
}

// ProductRepository defines the contract for product storage.
// Absence is reported through the boolean result, never as an error.
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (Product, bool)
	FindAll(ctx context.Context) []Product
	Save(ctx context.Context, product Product) Product
	Delete(ctx context.Context, id uuid.UUID)
}
