package product

import (
	"context"

	"github.com/google/uuid"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/store/products"
)

// Create assigns a fresh id and persists the product.
func (b *business) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	dbProduct, err := b.productRepo.CreateProduct(ctx, products.CreateProductParams{
		ID:           uuid.NewString(),
		Name:         product.Name,
		Price:        product.Price,
		Quantity:     product.Quantity,
		ReorderLevel: product.ReorderLevel,
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create product"}
	}

	return convertDBProductToModel(dbProduct), nil
}
