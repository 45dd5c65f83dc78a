package bill

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/store/bills"
)

// ListBills returns the page of bills whose line items match the
// case-insensitive name filter, most recent first, plus the total match
// count before pagination. Pages beyond the result set yield empty data.
func (b *business) ListBills(ctx context.Context, nameFilter string, page, limit int32) ([]*model.Bill, int64, error) {
	dbBills, err := b.billRepo.ListBills(ctx, bills.ListBillsParams{
		NameFilter: nameFilter,
		Limit:      limit,
		Offset:     (page - 1) * limit,
	})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to list bills"}
	}

	total, err := b.billRepo.CountBills(ctx, nameFilter)
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to count bills"}
	}

	billList := make([]*model.Bill, len(dbBills))
	for i, dbBill := range dbBills {
		items, err := b.billRepo.GetBillItems(ctx, dbBill.ID)
		if err != nil {
			return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to get bill items"}
		}
		billList[i] = convertDBBillToModel(dbBill)
		billList[i].Items = convertDBItemsToModel(items)
	}

	return billList, total, nil
}
