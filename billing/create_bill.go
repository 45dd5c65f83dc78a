package billing

import (
	"context"
	"fmt"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"encore.app/billing/model"
	"encore.app/billing/workflow"
)

type BillItemRequest struct {
	ProductID string  `json:"id" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Price     float64 `json:"price" validate:"gte=0"`
	Quantity  int32   `json:"quantity" validate:"required,gt=0"`
}

type CreateBillRequest struct {
	IdempotencyKey string            `header:"X-Idempotency-Key" json:"-"`
	Items          []BillItemRequest `json:"items" validate:"required,min=1,dive"`
	Gst            float64           `json:"gst"`
	Discount       float64           `json:"discount"`
	// Strict rejects the whole request if any item cannot be fulfilled,
	// instead of skipping that item.
	Strict bool `json:"strict"`
}

func (r *CreateBillRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

type BillResponse struct {
	Bill    model.Bill          `json:"bill"`
	Skipped []model.SkippedItem `json:"skipped,omitempty"`
}

// CreateBill generates a bill from the requested items, deducting stock
// atomically. Items that cannot be fulfilled are skipped and reported
// unless strict mode is set.
//
//encore:api auth path=/v1/bills method=POST tag:idempotency
func (s *Service) CreateBill(ctx context.Context, req *CreateBillRequest) (*BillResponse, error) {
	draft := &model.BillDraft{
		Items:          make([]model.LineItem, 0, len(req.Items)),
		Gst:            req.Gst,
		Discount:       req.Discount,
		Strict:         req.Strict,
		IdempotencyKey: req.IdempotencyKey,
	}
	for _, item := range req.Items {
		draft.Items = append(draft.Items, model.LineItem{
			ProductRef: item.ProductID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   item.Quantity,
		})
	}

	b, report, err := s.bills.CreateBill(ctx, draft)
	if err != nil {
		return nil, err
	}

	for _, p := range report.LowStock {
		s.startRestockWorkflow(p)
	}

	return &BillResponse{
		Bill:    *b,
		Skipped: report.Skipped,
	}, nil
}

// startRestockWorkflow launches a restock tracker for a product that fell
// to or below its reorder level. Failures are logged, never surfaced; the
// bill is already committed.
func (s *Service) startRestockWorkflow(p model.Product) {
	runAsync("start-restock-workflow", func(ctx context.Context) error {
		options := client.StartWorkflowOptions{
			ID:        fmt.Sprintf("restock-%s", p.ID),
			TaskQueue: taskQueue,
		}
		params := workflow.RestockWorkflowParams{
			ProductID:    p.ID,
			Quantity:     p.Quantity,
			ReorderLevel: p.ReorderLevel,
		}

		_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.Restock, params)
		if err != nil {
			if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
				rlog.Debug("restock workflow already running", "product_id", p.ID)
				return nil
			}
			return err
		}

		rlog.Info("started restock workflow", "product_id", p.ID, "quantity", p.Quantity)
		return nil
	})
}
