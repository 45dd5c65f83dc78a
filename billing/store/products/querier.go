package products

import (
	"context"
)

type Querier interface {
	CreateProduct(ctx context.Context, arg CreateProductParams) (Product, error)
	GetProduct(ctx context.Context, id string) (Product, error)
	// GetProductsForUpdate row-locks the given products in id order and
	// returns them; ids with no matching row are absent from the result.
	GetProductsForUpdate(ctx context.Context, ids []string) ([]Product, error)
	ListProducts(ctx context.Context) ([]Product, error)
	UpdateProduct(ctx context.Context, arg UpdateProductParams) (Product, error)
	UpdateProductQuantity(ctx context.Context, arg UpdateProductQuantityParams) error
	DeleteProduct(ctx context.Context, id string) (int64, error)
}

var _ Querier = (*Queries)(nil)
