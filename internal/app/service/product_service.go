package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/mrops-br/product-catalog-api/internal/app/dto"
	"github.com/mrops-br/product-catalog-api/internal/app/mapper"
	"github.com/mrops-br/product-catalog-api/internal/domain"
)

const (
	resultSuccess  = "success"
	resultNotFound = "not_found"
)

// ProductService handles product use cases
type ProductService struct {
	repo                  domain.ProductRepository
	mapper                mapper.ProductMapper
	tracer                trace.Tracer
	logger                *slog.Logger
	productCreatedCounter metric.Int64Counter
	productDeletedCounter metric.Int64Counter
	productOperations     metric.Int64Counter
}

// NewProductService creates a new product service
func NewProductService(
	repo domain.ProductRepository,
	productMapper mapper.ProductMapper,
	tracer trace.Tracer,
	meter metric.Meter,
	logger *slog.Logger,
) *ProductService {
	// Initialize metrics
	productCreatedCounter, _ := meter.Int64Counter(
		"products.created.total",
		metric.WithDescription("Total number of products created"),
	)

	productDeletedCounter, _ := meter.Int64Counter(
		"products.deleted.total",
		metric.WithDescription("Total number of product delete requests"),
	)

	productOperations, _ := meter.Int64Counter(
		"products.operations",
		metric.WithDescription("Total number of product operations"),
	)

	return &ProductService{
		repo:                  repo,
		mapper:                productMapper,
		tracer:                tracer,
		logger:                logger,
		productCreatedCounter: productCreatedCounter,
		productDeletedCounter: productDeletedCounter,
		productOperations:     productOperations,
	}
}

// Get retrieves a product by ID
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*dto.InfoProductDto, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.Get")
	defer span.End()

	span.SetAttributes(attribute.String("product.id", id.String()))

	// Look up the product
	product, ok := s.repo.FindByID(ctx, id)
	if !ok {
		err := &domain.ProductNotFoundError{ID: id}
		span.RecordError(err)
		span.SetStatus(codes.Error, "Product not found")
		s.logger.WarnContext(ctx, "Product not found",
			slog.String("product_id", id.String()),
		)
		s.record(ctx, "read", resultNotFound)
		return nil, err
	}

	// Record metrics
	s.record(ctx, "read", resultSuccess)

	s.logger.InfoContext(ctx, "Product retrieved successfully",
		slog.String("product_id", id.String()),
	)

	span.SetStatus(codes.Ok, "Product retrieved successfully")
	return s.mapper.ToInfoProductDto(&product), nil
}

// GetAll retrieves all products
func (s *ProductService) GetAll(ctx context.Context) []*dto.InfoProductDto {
	ctx, span := s.tracer.Start(ctx, "ProductService.GetAll")
	defer span.End()

	products := s.repo.FindAll(ctx)

	span.SetAttributes(attribute.Int("product.count", len(products)))
	s.record(ctx, "list", resultSuccess)

	s.logger.InfoContext(ctx, "Products listed successfully",
		slog.Int("count", len(products)),
	)

	span.SetStatus(codes.Ok, "Products listed successfully")
	return s.mapper.ToInfoProductDtos(products)
}

// Create stores a new product and returns its assigned ID
func (s *ProductService) Create(ctx context.Context, in dto.ProductDto) uuid.UUID {
	ctx, span := s.tracer.Start(ctx, "ProductService.Create")
	defer span.End()

	span.SetAttributes(
		attribute.String("product.name", in.Name),
		attribute.String("product.price", in.Price.String()),
	)

	s.logger.InfoContext(ctx, "Creating product",
		slog.String("name", in.Name),
		slog.String("price", in.Price.String()),
	)

	// Map payload to entity; the repository assigns ID and creation time
	saved := s.repo.Save(ctx, *s.mapper.ToProduct(&in))

	span.SetAttributes(attribute.String("product.id", saved.ID.String()))

	// Record metrics
	s.productCreatedCounter.Add(ctx, 1)
	s.record(ctx, "create", resultSuccess)

	s.logger.InfoContext(ctx, "Product created successfully",
		slog.String("product_id", saved.ID.String()),
	)

	span.SetStatus(codes.Ok, "Product created successfully")
	return saved.ID
}

// Update overwrites name, description and price of an existing product
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, in dto.ProductDto) error {
	ctx, span := s.tracer.Start(ctx, "ProductService.Update")
	defer span.End()

	span.SetAttributes(attribute.String("product.id", id.String()))

	product, ok := s.repo.FindByID(ctx, id)
	if !ok {
		err := &domain.ProductNotFoundError{ID: id}
		span.RecordError(err)
		span.SetStatus(codes.Error, "Product not found")
		s.logger.WarnContext(ctx, "Product to update not found",
			slog.String("product_id", id.String()),
		)
		s.record(ctx, "update", resultNotFound)
		return err
	}

	// Overwrite the editable fields, ID and creation time are kept
	s.repo.Save(ctx, *s.mapper.Merge(&product, &in))

	s.record(ctx, "update", resultSuccess)

	s.logger.InfoContext(ctx, "Product updated successfully",
		slog.String("product_id", id.String()),
	)

	span.SetStatus(codes.Ok, "Product updated successfully")
	return nil
}

// Delete removes a product; unknown IDs are ignored
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) {
	ctx, span := s.tracer.Start(ctx, "ProductService.Delete")
	defer span.End()

	span.SetAttributes(attribute.String("product.id", id.String()))

	s.repo.Delete(ctx, id)

	// Counted even when nothing was stored under id
	s.productDeletedCounter.Add(ctx, 1)
	s.record(ctx, "delete", resultSuccess)

	s.logger.InfoContext(ctx, "Product deleted",
		slog.String("product_id", id.String()),
	)

	span.SetStatus(codes.Ok, "Product deleted")
}

func (s *ProductService) record(ctx context.Context, operation, result string) {
	s.productOperations.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("result", result),
		),
	)
}
