package billing

import (
	"context"
	"fmt"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
	"encore.app/billing/workflow"
)

type UpdateProductRequest struct {
	Name         *string  `json:"name" validate:"omitempty,max=255"`
	Price        *float64 `json:"price" validate:"omitempty,gte=0"`
	Quantity     *int32   `json:"quantity" validate:"omitempty,gte=0"`
	ReorderLevel *int32   `json:"reorder_level" validate:"omitempty,gte=0"`
}

func (r *UpdateProductRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

// UpdateProduct patches a product. A quantity increase that lifts the
// product above its reorder level signals any running restock workflow.
//
//encore:api auth path=/v1/products/:id method=PUT
func (s *Service) UpdateProduct(ctx context.Context, id string, req *UpdateProductRequest) (*ProductResponse, error) {
	if id == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "product id is required"}
	}

	p, restocked, err := s.products.Update(ctx, id, &model.ProductPatch{
		Name:         req.Name,
		Price:        req.Price,
		Quantity:     req.Quantity,
		ReorderLevel: req.ReorderLevel,
	})
	if err != nil {
		return nil, err
	}

	if restocked {
		s.signalRestock(p)
	}

	return &ProductResponse{Product: *p}, nil
}

// signalRestock notifies a running restock workflow that stock was raised.
// No workflow running is the common case and not an error worth surfacing.
func (s *Service) signalRestock(p *model.Product) {
	quantity := p.Quantity
	productID := p.ID

	runAsync("signal-restock-workflow", func(ctx context.Context) error {
		workflowID := fmt.Sprintf("restock-%s", productID)
		signal := workflow.RestockSignal{Quantity: quantity}

		if err := s.temporal.SignalWorkflow(ctx, workflowID, "", workflow.RestockSignalName, signal); err != nil {
			rlog.Debug("could not signal restock workflow", "product_id", productID, "error", err)
			return nil
		}

		rlog.Info("signaled restock workflow", "product_id", productID, "quantity", quantity)
		return nil
	})
}
