package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"encore.app/billing/model"
)

func TestCalculate(t *testing.T) {
	testCases := []struct {
		name     string
		items    []model.LineItem
		gst      float64
		discount float64
		expected Amounts
	}{
		{
			name: "single_item_no_tax_no_discount",
			items: []model.LineItem{
				{ProductRef: "p1", Name: "Pen", Price: 10, Quantity: 3},
			},
			expected: Amounts{Subtotal: 30, Total: 30},
		},
		{
			name: "gst_and_discount_applied_to_subtotal",
			items: []model.LineItem{
				{ProductRef: "p1", Name: "Pen", Price: 100, Quantity: 1},
				{ProductRef: "p2", Name: "Notebook", Price: 50, Quantity: 2},
			},
			gst:      18,
			discount: 10,
			expected: Amounts{
				Subtotal:       200,
				GstAmount:      36,
				DiscountAmount: 20,
				Total:          216,
			},
		},
		{
			name:     "no_items_yields_zero_amounts",
			items:    nil,
			gst:      18,
			discount: 5,
			expected: Amounts{},
		},
		{
			name: "discount_exceeding_subtotal_goes_negative",
			items: []model.LineItem{
				{ProductRef: "p1", Name: "Pen", Price: 10, Quantity: 1},
			},
			discount: 150,
			expected: Amounts{
				Subtotal:       10,
				DiscountAmount: 15,
				Total:          -5,
			},
		},
		{
			name: "fractional_prices",
			items: []model.LineItem{
				{ProductRef: "p1", Name: "Eraser", Price: 2.5, Quantity: 4},
			},
			gst: 10,
			expected: Amounts{
				Subtotal:  10,
				GstAmount: 1,
				Total:     11,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Calculate(tc.items, tc.gst, tc.discount)
			assert.InDelta(t, tc.expected.Subtotal, got.Subtotal, 1e-9)
			assert.InDelta(t, tc.expected.GstAmount, got.GstAmount, 1e-9)
			assert.InDelta(t, tc.expected.DiscountAmount, got.DiscountAmount, 1e-9)
			assert.InDelta(t, tc.expected.Total, got.Total, 1e-9)
		})
	}
}

func TestAmountIdentity(t *testing.T) {
	items := []model.LineItem{
		{ProductRef: "p1", Name: "Pen", Price: 12.75, Quantity: 3},
		{ProductRef: "p2", Name: "Notebook", Price: 99.99, Quantity: 2},
	}

	got := Calculate(items, 12.5, 7.25)
	assert.InDelta(t, got.Subtotal+got.GstAmount-got.DiscountAmount, got.Total, 1e-9)
}
