package bill

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/billing/mocks/store/bill_store"
	"encore.app/billing/store/bills"
)

func TestListBills(t *testing.T) {
	now := time.Now().UTC()

	dbBills := []bills.Bill{
		{ID: "bill-2", BillDate: pgtype.Timestamptz{Time: now, Valid: true}, Subtotal: 50, Total: 50},
		{ID: "bill-1", BillDate: pgtype.Timestamptz{Time: now.Add(-time.Hour), Valid: true}, Subtotal: 30, Total: 30},
	}

	testCases := []struct {
		name         string
		nameFilter   string
		page         int32
		limit        int32
		wantOffset   int32
		listErr      error
		countErr     error
		expectedCode errs.ErrCode
	}{
		{
			name:       "first_page",
			page:       1,
			limit:      10,
			wantOffset: 0,
		},
		{
			name:       "later_page_offsets",
			page:       3,
			limit:      5,
			wantOffset: 10,
		},
		{
			name:       "name_filter_passed_through",
			nameFilter: "pen",
			page:       1,
			limit:      10,
			wantOffset: 0,
		},
		{
			name:         "list_error",
			page:         1,
			limit:        10,
			wantOffset:   0,
			listErr:      errors.New("connection refused"),
			expectedCode: errs.Internal,
		},
		{
			name:         "count_error",
			page:         1,
			limit:        10,
			wantOffset:   0,
			countErr:     errors.New("connection refused"),
			expectedCode: errs.Internal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBills := bill_store.NewMockQuerier(ctrl)

			expectedParams := bills.ListBillsParams{
				NameFilter: tc.nameFilter,
				Limit:      tc.limit,
				Offset:     tc.wantOffset,
			}

			if tc.listErr != nil {
				mockBills.EXPECT().ListBills(gomock.Any(), expectedParams).Return(nil, tc.listErr)
			} else {
				mockBills.EXPECT().ListBills(gomock.Any(), expectedParams).Return(dbBills, nil)
				if tc.countErr != nil {
					mockBills.EXPECT().CountBills(gomock.Any(), tc.nameFilter).Return(int64(0), tc.countErr)
				} else {
					mockBills.EXPECT().CountBills(gomock.Any(), tc.nameFilter).Return(int64(12), nil)
					mockBills.EXPECT().GetBillItems(gomock.Any(), "bill-2").Return([]bills.BillItem{
						{BillID: "bill-2", ProductRef: "p2", Name: "Notebook", Price: 50, Quantity: 1},
					}, nil)
					mockBills.EXPECT().GetBillItems(gomock.Any(), "bill-1").Return([]bills.BillItem{
						{BillID: "bill-1", ProductRef: "p1", Name: "Pen", Price: 10, Quantity: 3},
					}, nil)
				}
			}

			b := NewBillBusiness(mockBills, &stubReconciler{})

			result, total, err := b.ListBills(context.Background(), tc.nameFilter, tc.page, tc.limit)

			if tc.expectedCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				assert.Nil(t, result)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(12), total)
			assert.Len(t, result, 2)
			assert.Equal(t, "bill-2", result[0].ID)
			assert.Equal(t, "bill-1", result[1].ID)
			assert.Equal(t, "Notebook", result[0].Items[0].Name)
		})
	}
}

func TestListBillsEmptyPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBills := bill_store.NewMockQuerier(ctrl)
	mockBills.EXPECT().
		ListBills(gomock.Any(), bills.ListBillsParams{Limit: 10, Offset: 90}).
		Return(nil, nil)
	mockBills.EXPECT().CountBills(gomock.Any(), "").Return(int64(12), nil)

	b := NewBillBusiness(mockBills, &stubReconciler{})

	result, total, err := b.ListBills(context.Background(), "", 10, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Empty(t, result)
}
