package billing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/billing/mocks/business/product_business"
	"encore.app/billing/model"
)

func ptr[T any](v T) *T { return &v }

func TestUpdateProduct(t *testing.T) {
	testCases := []struct {
		name          string
		productID     string
		request       *UpdateProductRequest
		mockReturn    *model.Product
		mockRestocked bool
		mockError     error
		expectedError string
		expectCall    bool
		expectSignal  bool
	}{
		{
			name:      "plain_update_no_signal",
			productID: "p1",
			request:   &UpdateProductRequest{Name: ptr("Gel Pen")},
			mockReturn: &model.Product{
				ID: "p1", Name: "Gel Pen", Price: 10, Quantity: 2, ReorderLevel: 5,
			},
			expectCall: true,
		},
		{
			name:      "restock_signals_workflow",
			productID: "p1",
			request:   &UpdateProductRequest{Quantity: ptr(int32(50))},
			mockReturn: &model.Product{
				ID: "p1", Name: "Pen", Price: 10, Quantity: 50, ReorderLevel: 5,
			},
			mockRestocked: true,
			expectCall:    true,
			expectSignal:  true,
		},
		{
			name:          "empty_id_rejected",
			productID:     "",
			request:       &UpdateProductRequest{},
			expectedError: "product id is required",
		},
		{
			name:          "not_found",
			productID:     "missing",
			request:       &UpdateProductRequest{},
			mockError:     &errs.Error{Code: errs.NotFound, Message: "product not found"},
			expectedError: "product not found",
			expectCall:    true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockProducts := product_business.NewMockBusiness(ctrl)
			mockTemporal := mocks.NewClient(t)

			service := &Service{
				products: mockProducts,
				temporal: mockTemporal,
			}

			originalRunAsync := runAsync
			runAsync = func(op string, fn func(ctx context.Context) error) { _ = fn(context.Background()) }
			defer func() { runAsync = originalRunAsync }()

			if tc.expectCall {
				mockProducts.EXPECT().
					Update(gomock.Any(), tc.productID, gomock.Any()).
					Return(tc.mockReturn, tc.mockRestocked, tc.mockError)
			}

			if tc.expectSignal {
				mockTemporal.On("SignalWorkflow",
					mock.Anything, // context
					"restock-p1",  // workflow ID
					"",            // run ID
					mock.Anything, // signal name
					mock.Anything, // signal payload
				).Return(nil)
			}

			response, err := service.UpdateProduct(context.Background(), tc.productID, tc.request)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, response)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, *tc.mockReturn, response.Product)
			mockTemporal.AssertExpectations(t)
		})
	}
}

func TestUpdateProductRequest_Validation(t *testing.T) {
	testCases := []struct {
		name          string
		request       *UpdateProductRequest
		expectedError string
	}{
		{name: "empty_patch_valid", request: &UpdateProductRequest{}},
		{name: "valid_fields", request: &UpdateProductRequest{Name: ptr("Pen"), Price: ptr(1.5)}},
		{name: "negative_price", request: &UpdateProductRequest{Price: ptr(-1.0)}, expectedError: "Price"},
		{name: "negative_quantity", request: &UpdateProductRequest{Quantity: ptr(int32(-3))}, expectedError: "Quantity"},
		{name: "negative_reorder_level", request: &UpdateProductRequest{ReorderLevel: ptr(int32(-1))}, expectedError: "ReorderLevel"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.request.Validate()
			if tc.expectedError == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectedError)
		})
	}
}
