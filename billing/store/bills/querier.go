package bills

import (
	"context"
)

type Querier interface {
	CreateBill(ctx context.Context, arg CreateBillParams) (Bill, error)
	CreateBillItem(ctx context.Context, arg CreateBillItemParams) (BillItem, error)
	GetBill(ctx context.Context, id string) (Bill, error)
	GetBillItems(ctx context.Context, billID string) ([]BillItem, error)
	ListBills(ctx context.Context, arg ListBillsParams) ([]Bill, error)
	CountBills(ctx context.Context, nameFilter string) (int64, error)
}

var _ Querier = (*Queries)(nil)
