package billing

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
)

type CreateProductRequest struct {
	Name         string  `json:"name" validate:"required,max=255"`
	Price        float64 `json:"price" validate:"gte=0"`
	Quantity     int32   `json:"quantity" validate:"gte=0"`
	ReorderLevel int32   `json:"reorder_level" validate:"gte=0"`
}

func (r *CreateProductRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

type ProductResponse struct {
	Product model.Product `json:"product"`
}

// CreateProduct adds a product to the catalog.
//
//encore:api auth path=/v1/products method=POST
func (s *Service) CreateProduct(ctx context.Context, req *CreateProductRequest) (*ProductResponse, error) {
	p, err := s.products.Create(ctx, &model.Product{
		Name:         req.Name,
		Price:        req.Price,
		Quantity:     req.Quantity,
		ReorderLevel: req.ReorderLevel,
	})
	if err != nil {
		return nil, err
	}
	return &ProductResponse{Product: *p}, nil
}
