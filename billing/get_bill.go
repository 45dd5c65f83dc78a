package billing

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
)

// GetBill returns a single bill with its line items.
//
//encore:api auth path=/v1/bills/:id method=GET
func (s *Service) GetBill(ctx context.Context, id string) (*model.Bill, error) {
	if id == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "bill id is required"}
	}
	return s.bills.GetBill(ctx, id)
}
