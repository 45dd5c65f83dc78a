package bill

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/billing/mocks/store/bill_store"
	"encore.app/billing/store/bills"
)

func TestGetBill(t *testing.T) {
	now := time.Now().UTC()

	dbBill := bills.Bill{
		ID:        "bill-1",
		BillDate:  pgtype.Timestamptz{Time: now, Valid: true},
		Gst:       18,
		Discount:  10,
		Subtotal:  200,
		Total:     216,
		CreatedAt: pgtype.Timestamptz{Time: now, Valid: true},
	}
	dbItems := []bills.BillItem{
		{ID: 1, BillID: "bill-1", Position: 0, ProductRef: "p1", Name: "Pen", Price: 100, Quantity: 1},
		{ID: 2, BillID: "bill-1", Position: 1, ProductRef: "p2", Name: "Notebook", Price: 50, Quantity: 2},
	}

	testCases := []struct {
		name          string
		billID        string
		getBillErr    error
		getItemsErr   error
		expectedCode  errs.ErrCode
		expectedError string
	}{
		{
			name:   "successful_retrieval",
			billID: "bill-1",
		},
		{
			name:          "bill_not_found",
			billID:        "missing",
			getBillErr:    pgx.ErrNoRows,
			expectedCode:  errs.NotFound,
			expectedError: "bill not found",
		},
		{
			name:          "database_error",
			billID:        "bill-1",
			getBillErr:    errors.New("connection refused"),
			expectedCode:  errs.Internal,
			expectedError: "failed to get bill",
		},
		{
			name:          "items_fetch_error",
			billID:        "bill-1",
			getItemsErr:   errors.New("connection refused"),
			expectedCode:  errs.Internal,
			expectedError: "failed to get bill items",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBills := bill_store.NewMockQuerier(ctrl)

			if tc.getBillErr != nil {
				mockBills.EXPECT().GetBill(gomock.Any(), tc.billID).Return(bills.Bill{}, tc.getBillErr)
			} else {
				mockBills.EXPECT().GetBill(gomock.Any(), tc.billID).Return(dbBill, nil)
				if tc.getItemsErr != nil {
					mockBills.EXPECT().GetBillItems(gomock.Any(), tc.billID).Return(nil, tc.getItemsErr)
				} else {
					mockBills.EXPECT().GetBillItems(gomock.Any(), tc.billID).Return(dbItems, nil)
				}
			}

			b := NewBillBusiness(mockBills, &stubReconciler{})

			bill, err := b.GetBill(context.Background(), tc.billID)

			if tc.expectedCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, bill)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "bill-1", bill.ID)
			assert.InDelta(t, 200.0, bill.Subtotal, 1e-9)
			assert.InDelta(t, 216.0, bill.Total, 1e-9)
			assert.Len(t, bill.Items, 2)
			assert.Equal(t, "Pen", bill.Items[0].Name)
			assert.Equal(t, "Notebook", bill.Items[1].Name)
		})
	}
}

// Reading the same bill twice yields identical records; amounts come from
// storage, not recomputation.
func TestGetBillRepeatedReadsAreStable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now().UTC()
	dbBill := bills.Bill{
		ID:       "bill-1",
		BillDate: pgtype.Timestamptz{Time: now, Valid: true},
		Subtotal: 70,
		Total:    75.6,
		Gst:      18,
		Discount: 10,
	}
	dbItems := []bills.BillItem{
		{ID: 1, BillID: "bill-1", Position: 0, ProductRef: "p1", Name: "Pen", Price: 10, Quantity: 2},
	}

	mockBills := bill_store.NewMockQuerier(ctrl)
	mockBills.EXPECT().GetBill(gomock.Any(), "bill-1").Return(dbBill, nil).Times(2)
	mockBills.EXPECT().GetBillItems(gomock.Any(), "bill-1").Return(dbItems, nil).Times(2)

	b := NewBillBusiness(mockBills, &stubReconciler{})

	first, err := b.GetBill(context.Background(), "bill-1")
	assert.NoError(t, err)
	second, err := b.GetBill(context.Background(), "bill-1")
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}
