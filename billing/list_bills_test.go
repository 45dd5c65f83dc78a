package billing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	"encore.app/billing/mocks/business/bill_business"
	"encore.app/billing/model"
)

func TestListBills(t *testing.T) {
	testCases := []struct {
		name          string
		request       *ListBillsRequest
		expectedPage  int32
		expectedLimit int32
	}{
		{
			name:          "defaults_applied",
			request:       &ListBillsRequest{},
			expectedPage:  1,
			expectedLimit: 10,
		},
		{
			name:          "explicit_page_and_limit",
			request:       &ListBillsRequest{Page: 3, Limit: 25},
			expectedPage:  3,
			expectedLimit: 25,
		},
		{
			name:          "limit_capped",
			request:       &ListBillsRequest{Page: 1, Limit: 500},
			expectedPage:  1,
			expectedLimit: 100,
		},
		{
			name:          "negative_values_fall_back_to_defaults",
			request:       &ListBillsRequest{Page: -1, Limit: -5},
			expectedPage:  1,
			expectedLimit: 10,
		},
		{
			name:          "filter_passed_through",
			request:       &ListBillsRequest{Product: "pen"},
			expectedPage:  1,
			expectedLimit: 10,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBusiness := bill_business.NewMockBusiness(ctrl)
			mockTemporal := mocks.NewClient(t)

			service := &Service{
				bills:    mockBusiness,
				temporal: mockTemporal,
			}

			returned := []*model.Bill{
				{ID: "bill-2", Total: 50},
				{ID: "bill-1", Total: 30},
			}

			mockBusiness.EXPECT().
				ListBills(gomock.Any(), tc.request.Product, tc.expectedPage, tc.expectedLimit).
				Return(returned, int64(42), nil)

			response, err := service.ListBills(context.Background(), tc.request)

			assert.NoError(t, err)
			assert.Equal(t, int64(42), response.Total)
			assert.Equal(t, tc.expectedPage, response.Page)
			assert.Equal(t, tc.expectedLimit, response.Limit)
			assert.Len(t, response.Data, 2)
			assert.Equal(t, "bill-2", response.Data[0].ID)
		})
	}
}
