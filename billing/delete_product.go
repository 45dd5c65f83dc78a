package billing

import (
	"context"

	"encore.dev/beta/errs"
)

// DeleteProduct removes a product from the catalog. Existing bills keep
// their name and price snapshots.
//
//encore:api auth path=/v1/products/:id method=DELETE
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if id == "" {
		return &errs.Error{Code: errs.InvalidArgument, Message: "product id is required"}
	}
	return s.products.Delete(ctx, id)
}
