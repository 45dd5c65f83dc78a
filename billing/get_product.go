package billing

import (
	"context"

	"encore.dev/beta/errs"
)

// GetProduct returns a single product.
//
//encore:api public path=/v1/products/:id method=GET
func (s *Service) GetProduct(ctx context.Context, id string) (*ProductResponse, error) {
	if id == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "product id is required"}
	}

	p, err := s.products.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ProductResponse{Product: *p}, nil
}
