package product

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/store/products"
)

// Update applies the non-nil patch fields to the stored product. Bills keep
// their own name/price snapshots, so past invoices are unaffected.
func (b *business) Update(ctx context.Context, id string, patch *model.ProductPatch) (*model.Product, bool, error) {
	current, err := b.productRepo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, &errs.Error{Code: errs.NotFound, Message: "product not found"}
		}
		return nil, false, &errs.Error{Code: errs.Internal, Message: "failed to get product"}
	}

	params := products.UpdateProductParams{
		ID:           current.ID,
		Name:         current.Name,
		Price:        current.Price,
		Quantity:     current.Quantity,
		ReorderLevel: current.ReorderLevel,
	}
	if patch.Name != nil {
		params.Name = *patch.Name
	}
	if patch.Price != nil {
		params.Price = *patch.Price
	}
	if patch.Quantity != nil {
		params.Quantity = *patch.Quantity
	}
	if patch.ReorderLevel != nil {
		params.ReorderLevel = *patch.ReorderLevel
	}

	updated, err := b.productRepo.UpdateProduct(ctx, params)
	if err != nil {
		return nil, false, &errs.Error{Code: errs.Internal, Message: "failed to update product"}
	}

	restocked := updated.Quantity > current.Quantity && updated.Quantity > updated.ReorderLevel
	return convertDBProductToModel(updated), restocked, nil
}
