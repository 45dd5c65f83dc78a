package product

import (
	"context"

	"encore.dev/beta/errs"
)

// Delete removes the product from the catalog. Bills that reference it
// keep their snapshots; only future fulfillment is affected.
func (b *business) Delete(ctx context.Context, id string) error {
	deleted, err := b.productRepo.DeleteProduct(ctx, id)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to delete product"}
	}
	if deleted == 0 {
		return &errs.Error{Code: errs.NotFound, Message: "product not found"}
	}
	return nil
}
