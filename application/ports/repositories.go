package ports

import (
	"context"

	"catalog-backend/domain/catalog"
)

// ProductRepository defines the interface for product persistence.
// This is a port in hexagonal architecture - the application doesn't know
// about the implementation.
type ProductRepository interface {
	// Save persists a product. Saving an existing ID is a blind overwrite.
	Save(ctx context.Context, product catalog.Product) error

	// GetByID retrieves a product by its ID. Returns (nil, nil) when no
	// product exists for the ID.
	GetByID(ctx context.Context, id string) (*catalog.Product, error)

	// GetAll retrieves every product in the store
	GetAll(ctx context.Context) ([]catalog.Product, error)

	// Delete removes a product. Deleting an absent ID is a no-op.
	Delete(ctx context.Context, id string) error
}

// StockRepository defines the interface for stock persistence
type StockRepository interface {
	// Save persists a stock row
	Save(ctx context.Context, stock catalog.Stock) error

	// GetByProductID retrieves the stock row for a product. Returns
	// (nil, nil) when no row exists; callers default the count to zero.
	GetByProductID(ctx context.Context, productID string) (*catalog.Stock, error)

	// GetAll retrieves every stock row, keyed by product ID
	GetAll(ctx context.Context) (map[string]int, error)

	// Delete removes the stock row for a product. Deleting an absent row
	// is a no-op.
	Delete(ctx context.Context, productID string) error
}
