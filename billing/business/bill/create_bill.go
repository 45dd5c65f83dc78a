package bill

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/billing/domain"
	"encore.app/billing/invoice"
	"encore.app/billing/model"
	"encore.app/billing/store/bills"
	"encore.app/billing/store/products"
)

// CreateBill is the stock reconciliation engine. Inside one transaction it
// walks the requested items in request order against row-locked stock,
// drops what cannot be fulfilled (or rejects everything in strict mode),
// deducts the rest, prices the fulfilled items and persists the bill.
// Stock deduction and bill append commit together or not at all.
func (b *business) CreateBill(ctx context.Context, draft *model.BillDraft) (*model.Bill, *model.FulfillmentReport, error) {
	refs := make([]string, 0, len(draft.Items))
	for _, item := range draft.Items {
		refs = append(refs, item.ProductRef)
	}

	var bill *model.Bill
	report := &model.FulfillmentReport{}

	err := b.reconciler.WithProductLock(ctx, refs, func(tx domain.TxStore, locked []products.Product) error {
		remaining := make(map[string]int32, len(locked))
		for _, p := range locked {
			remaining[p.ID] = p.Quantity
		}

		// Later duplicates of a ref observe the stock as depleted by
		// earlier entries of the same request. Starts empty, not nil, so an
		// all-skipped request still yields a bill with an empty item list.
		fulfilled := make([]model.LineItem, 0, len(draft.Items))
		for _, item := range draft.Items {
			have, ok := remaining[item.ProductRef]
			switch {
			case !ok:
				report.Skipped = append(report.Skipped, model.SkippedItem{
					ProductRef: item.ProductRef,
					Quantity:   item.Quantity,
					Reason:     model.SkipReasonUnknownProduct,
				})
			case have < item.Quantity:
				report.Skipped = append(report.Skipped, model.SkippedItem{
					ProductRef: item.ProductRef,
					Quantity:   item.Quantity,
					Reason:     model.SkipReasonInsufficientStock,
				})
			default:
				remaining[item.ProductRef] = have - item.Quantity
				fulfilled = append(fulfilled, item)
			}
		}

		if draft.Strict && len(report.Skipped) > 0 {
			return &errs.Error{Code: errs.FailedPrecondition, Message: "one or more items cannot be fulfilled"}
		}

		for _, p := range locked {
			left := remaining[p.ID]
			if left == p.Quantity {
				continue
			}
			err := tx.Products.UpdateProductQuantity(ctx, products.UpdateProductQuantityParams{
				ID:       p.ID,
				Quantity: left,
			})
			if err != nil {
				return &errs.Error{Code: errs.Internal, Message: "failed to update product stock"}
			}
			if left <= p.ReorderLevel {
				report.LowStock = append(report.LowStock, model.Product{
					ID:           p.ID,
					Name:         p.Name,
					Price:        p.Price,
					Quantity:     left,
					ReorderLevel: p.ReorderLevel,
				})
			}
		}

		amounts := invoice.Calculate(fulfilled, draft.Gst, draft.Discount)

		dbBill, err := tx.Bills.CreateBill(ctx, bills.CreateBillParams{
			ID:             uuid.NewString(),
			BillDate:       pgtype.Timestamptz{Time: time.Now().UTC(), Valid: true},
			Gst:            draft.Gst,
			Discount:       draft.Discount,
			Subtotal:       amounts.Subtotal,
			Total:          amounts.Total,
			IdempotencyKey: pgtype.Text{String: draft.IdempotencyKey, Valid: draft.IdempotencyKey != ""},
		})
		if err != nil {
			var e *pgconn.PgError
			if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
				return &errs.Error{Code: errs.AlreadyExists, Message: "bill is duplicated"}
			}
			return &errs.Error{Code: errs.Internal, Message: "failed to create bill"}
		}

		for i, item := range fulfilled {
			_, err := tx.Bills.CreateBillItem(ctx, bills.CreateBillItemParams{
				BillID:     dbBill.ID,
				Position:   int32(i),
				ProductRef: item.ProductRef,
				Name:       item.Name,
				Price:      item.Price,
				Quantity:   item.Quantity,
			})
			if err != nil {
				return &errs.Error{Code: errs.Internal, Message: "failed to create bill items"}
			}
		}

		bill = convertDBBillToModel(dbBill)
		bill.Items = fulfilled
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return bill, report, nil
}

// convertDBBillToModel converts a database Bill to a domain model Bill
func convertDBBillToModel(dbBill bills.Bill) *model.Bill {
	return &model.Bill{
		ID:        dbBill.ID,
		Date:      dbBill.BillDate.Time,
		Subtotal:  dbBill.Subtotal,
		Gst:       dbBill.Gst,
		Discount:  dbBill.Discount,
		Total:     dbBill.Total,
		CreatedAt: dbBill.CreatedAt.Time,
	}
}
