package bill

import (
	"context"

	"encore.app/billing/domain"
	"encore.app/billing/model"
	"encore.app/billing/store/bills"
)

type Business interface {
	// CreateBill reconciles the draft against live stock and persists the
	// outcome atomically. The report lists skipped items and products left
	// at or below their reorder level.
	CreateBill(ctx context.Context, draft *model.BillDraft) (*model.Bill, *model.FulfillmentReport, error)
	GetBill(ctx context.Context, id string) (*model.Bill, error)
	ListBills(ctx context.Context, nameFilter string, page, limit int32) ([]*model.Bill, int64, error)
}

// business handles business logic for bills
type business struct {
	billRepo   bills.Querier
	reconciler domain.Reconciler
}

// NewBillBusiness creates the bill business layer
func NewBillBusiness(billRepo bills.Querier, reconciler domain.Reconciler) Business {
	return &business{
		billRepo:   billRepo,
		reconciler: reconciler,
	}
}
