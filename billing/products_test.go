package billing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/billing/mocks/business/product_business"
	"encore.app/billing/model"
)

func TestCreateProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProducts := product_business.NewMockBusiness(ctrl)
	mockTemporal := mocks.NewClient(t)

	service := &Service{
		products: mockProducts,
		temporal: mockTemporal,
	}

	mockProducts.EXPECT().
		Create(gomock.Any(), &model.Product{Name: "Pen", Price: 10, Quantity: 100, ReorderLevel: 5}).
		Return(&model.Product{ID: "p1", Name: "Pen", Price: 10, Quantity: 100, ReorderLevel: 5}, nil)

	response, err := service.CreateProduct(context.Background(), &CreateProductRequest{
		Name:         "Pen",
		Price:        10,
		Quantity:     100,
		ReorderLevel: 5,
	})

	assert.NoError(t, err)
	assert.Equal(t, "p1", response.Product.ID)
	assert.Equal(t, "Pen", response.Product.Name)
}

func TestCreateProductRequest_Validation(t *testing.T) {
	testCases := []struct {
		name          string
		request       *CreateProductRequest
		expectedError string
	}{
		{name: "valid", request: &CreateProductRequest{Name: "Pen", Price: 10, Quantity: 1}},
		{name: "zero_price_and_quantity_valid", request: &CreateProductRequest{Name: "Pen"}},
		{name: "missing_name", request: &CreateProductRequest{Price: 10}, expectedError: "Name"},
		{name: "negative_price", request: &CreateProductRequest{Name: "Pen", Price: -1}, expectedError: "Price"},
		{name: "negative_quantity", request: &CreateProductRequest{Name: "Pen", Quantity: -1}, expectedError: "Quantity"},
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
			assert.Equal(t, errs.InvalidArgument, errs.Code(err))
		})
	}
}

func TestListProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProducts := product_business.NewMockBusiness(ctrl)
	mockTemporal := mocks.NewClient(t)

	service := &Service{
		products: mockProducts,
		temporal: mockTemporal,
	}

	mockProducts.EXPECT().List(gomock.Any()).Return([]*model.Product{
		{ID: "p1", Name: "Pen"},
		{ID: "p2", Name: "Notebook"},
	}, nil)

	response, err := service.ListProducts(context.Background())

	assert.NoError(t, err)
	assert.Len(t, response.Data, 2)
	assert.Equal(t, "Pen", response.Data[0].Name)
}

func TestGetProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProducts := product_business.NewMockBusiness(ctrl)
	mockTemporal := mocks.NewClient(t)

	service := &Service{
		products: mockProducts,
		temporal: mockTemporal,
	}

	mockProducts.EXPECT().Get(gomock.Any(), "p1").Return(&model.Product{ID: "p1", Name: "Pen"}, nil)

	response, err := service.GetProduct(context.Background(), "p1")
	assert.NoError(t, err)
	assert.Equal(t, "Pen", response.Product.Name)

	_, err = service.GetProduct(context.Background(), "")
	assert.Equal(t, errs.InvalidArgument, errs.Code(err))
}

func TestDeleteProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProducts := product_business.NewMockBusiness(ctrl)
	mockTemporal := mocks.NewClient(t)

	service := &Service{
		products: mockProducts,
		temporal: mockTemporal,
	}

	mockProducts.EXPECT().Delete(gomock.Any(), "p1").Return(nil)

	assert.NoError(t, service.DeleteProduct(context.Background(), "p1"))

	err := service.DeleteProduct(context.Background(), "")
	assert.Equal(t, errs.InvalidArgument, errs.Code(err))
}
