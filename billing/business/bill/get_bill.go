package bill

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/store/bills"
)

// GetBill retrieves a bill by id with its line items in request order.
// Stored amounts are returned verbatim, never recomputed.
func (b *business) GetBill(ctx context.Context, id string) (*model.Bill, error) {
	dbBill, err := b.billRepo.GetBill(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "bill not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get bill"}
	}

	items, err := b.billRepo.GetBillItems(ctx, id)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get bill items"}
	}

	bill := convertDBBillToModel(dbBill)
	bill.Items = convertDBItemsToModel(items)
	return bill, nil
}

func convertDBItemsToModel(items []bills.BillItem) []model.LineItem {
	result := make([]model.LineItem, len(items))
	for i, item := range items {
		result[i] = model.LineItem{
			ProductRef: item.ProductRef,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   item.Quantity,
		}
	}
	return result
}
