package billing

import (
	"context"

	"encore.app/billing/model"
)

type ListProductsResponse struct {
	Data []model.Product `json:"data"`
}

// ListProducts returns the full product catalog.
//
//encore:api public path=/v1/products method=GET
func (s *Service) ListProducts(ctx context.Context) (*ListProductsResponse, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	data := make([]model.Product, 0, len(products))
	for _, p := range products {
		data = append(data, *p)
	}
	return &ListProductsResponse{Data: data}, nil
}
