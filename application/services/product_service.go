package services

import (
	"context"

	"catalog-backend/application/ports"
	"catalog-backend/domain/catalog"
	"catalog-backend/pkg/errors"
	"catalog-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateProductInput is the validated input for creating a product. Price
// and Count are pointers so that an explicit zero is distinguishable from a
// missing field.
type CreateProductInput struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Count       *int     `json:"count" validate:"omitempty,gte=0"`
}

// ProductService implements the catalog read and write operations
type ProductService struct {
	products ports.ProductRepository
	stock    ports.StockRepository
	logger   *zap.Logger
}

// NewProductService creates a new product service
func NewProductService(
	products ports.ProductRepository,
	stock ports.StockRepository,
	logger *zap.Logger,
) *ProductService {
	return &ProductService{
		products: products,
		stock:    stock,
		logger:   logger,
	}
}

// Create validates the input, generates an identifier and writes the
// product and its stock row. No transaction spans the two writes; a crash
// in between leaves a product without stock, which the read side tolerates
// by defaulting the count to zero.
func (s *ProductService) Create(ctx context.Context, input CreateProductInput) (catalog.ProductView, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return catalog.ProductView{}, errors.NewValidationError(err.Error())
	}

	product := catalog.Product{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Price:       *input.Price,
	}

	count := 0
	if input.Count != nil {
		count = *input.Count
	}

	if err := s.products.Save(ctx, product); err != nil {
		return catalog.ProductView{}, errors.Wrap(err, "failed to save product")
	}

	if err := s.stock.Save(ctx, catalog.Stock{ProductID: product.ID, Count: count}); err != nil {
		return catalog.ProductView{}, errors.Wrap(err, "failed to save stock")
	}

	s.logger.Info("Product created",
		zap.String("productID", product.ID),
		zap.String("title", product.Title),
		zap.Int("count", count),
	)

	return product.WithCount(count), nil
}

// Get returns one product joined with its stock count
func (s *ProductService) Get(ctx context.Context, id string) (catalog.ProductView, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return catalog.ProductView{}, errors.Wrap(err, "failed to load product")
	}
	if product == nil {
		return catalog.ProductView{}, errors.NewNotFoundError("product")
	}

	count := 0
	stock, err := s.stock.GetByProductID(ctx, id)
	if err != nil {
		return catalog.ProductView{}, errors.Wrap(err, "failed to load stock")
	}
	if stock != nil {
		count = stock.Count
	}

	return product.WithCount(count), nil
}

// List returns every product joined with its stock count
func (s *ProductService) List(ctx context.Context) ([]catalog.ProductView, error) {
	products, err := s.products.GetAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan products")
	}

	counts, err := s.stock.GetAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan stock")
	}

	views := make([]catalog.ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, product.WithCount(counts[product.ID]))
	}

	return views, nil
}

// Delete removes a product and its stock row. Unknown ids are an
// idempotent success.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}
	if err := s.stock.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete stock")
	}

	s.logger.Info("Product deleted", zap.String("productID", id))
	return nil
}
