package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/mrops-br/product-catalog-api/internal/domain"
)

// ProductRepository is an in-memory implementation of domain.ProductRepository.
// Products are keyed by ID and guarded by a single RWMutex.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[uuid.UUID]domain.Product
	newID    func() uuid.UUID
	now      func() time.Time
	tracer   trace.Tracer
	logger   *slog.Logger
}

// NewProductRepository creates a new in-memory product repository holding seed
func NewProductRepository(tracer trace.Tracer, logger *slog.Logger, seed ...domain.Product) *ProductRepository {
	r := &ProductRepository{
		products: make(map[uuid.UUID]domain.Product, len(seed)),
		newID:    uuid.New,
		now:      time.Now,
		tracer:   tracer,
		logger:   logger,
	}

	for _, p := range seed {
		r.products[p.ID] = p.Clone()
	}

	return r
}

// FindByID retrieves a product by ID
func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.Product, bool) {
	ctx, span := r.tracer.Start(ctx, "ProductRepository.FindByID")
	defer span.End()

	span.SetAttributes(attribute.String("product.id", id.String()))

	r.mu.RLock()
	product, exists := r.products[id]
	r.mu.RUnlock()

	span.SetAttributes(attribute.Bool("product.found", exists))

	if !exists {
		r.logger.DebugContext(ctx, "Product absent from repository",
			slog.String("product_id", id.String()),
		)
		return domain.Product{}, false
	}

	r.logger.DebugContext(ctx, "Product found in repository",
		slog.String("product_id", id.String()),
		slog.String("product_name", product.Name),
	)

	span.SetStatus(codes.Ok, "Product found")
	return product.Clone(), true
}

// FindAll returns a snapshot of all products ordered by creation time, then ID
func (r *ProductRepository) FindAll(ctx context.Context) []domain.Product {
	ctx, span := r.tracer.Start(ctx, "ProductRepository.FindAll")
	defer span.End()

	r.mu.RLock()
	products := make([]domain.Product, 0, len(r.products))
	for _, product := range r.products {
		products = append(products, product.Clone())
	}
	r.mu.RUnlock()

	// Map iteration order is random, keep listings stable
	sort.Slice(products, func(i, j int) bool {
		if !products[i].CreatedAt.Equal(products[j].CreatedAt) {
			return products[i].CreatedAt.Before(products[j].CreatedAt)
		}
		return products[i].ID.String() < products[j].ID.String()
	})

	span.SetAttributes(attribute.Int("product.count", len(products)))

	r.logger.DebugContext(ctx, "Products retrieved from repository",
		slog.Int("count", len(products)),
	)

	span.SetStatus(codes.Ok, "Products retrieved successfully")
	return products
}

// Save stores product, assigning an ID and creation time when they are unset.
// A product whose ID is already stored is replaced in place.
func (r *ProductRepository) Save(ctx context.Context, product domain.Product) domain.Product {
	ctx, span := r.tracer.Start(ctx, "ProductRepository.Save")
	defer span.End()

	product = product.Clone()

	// Assign identifier and creation time if absent
	generated := false
	if !product.HasID() {
		product.ID = r.newID()
		generated = true
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = r.now()
	}

	span.SetAttributes(
		attribute.String("product.id", product.ID.String()),
		attribute.String("product.name", product.Name),
		attribute.Bool("product.id_generated", generated),
	)

	// Insert or replace under the write lock
	r.mu.Lock()
	_, replaced := r.products[product.ID]
	r.products[product.ID] = product
	r.mu.Unlock()

	r.logger.InfoContext(ctx, "Product saved in repository",
		slog.String("product_id", product.ID.String()),
		slog.String("product_name", product.Name),
		slog.Bool("replaced", replaced),
	)

	span.SetStatus(codes.Ok, "Product saved successfully")
	return product.Clone()
}

// Delete removes the product with the given ID; unknown IDs are ignored
func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) {
	ctx, span := r.tracer.Start(ctx, "ProductRepository.Delete")
	defer span.End()

	span.SetAttributes(attribute.String("product.id", id.String()))

	r.mu.Lock()
	_, existed := r.products[id]
	delete(r.products, id)
	r.mu.Unlock()

	span.SetAttributes(attribute.Bool("product.existed", existed))

	r.logger.InfoContext(ctx, "Product deleted from repository",
		slog.String("product_id", id.String()),
		slog.Bool("existed", existed),
	)

	span.SetStatus(codes.Ok, "Product deleted")
}

// Count returns the number of stored products
func (r *ProductRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products)
}
