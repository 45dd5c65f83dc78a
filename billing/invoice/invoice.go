// Package invoice holds the invoice arithmetic. It is the single source of
// truth for bill amounts: the bill creation engine computes stored totals
// through Calculate, and the document renderers derive displayed tax and
// discount amounts from stored subtotals through the same helpers.
package invoice

import (
	"encore.app/billing/model"
)

// Amounts is the result of pricing a set of line items.
type Amounts struct {
	Subtotal       float64 `json:"subtotal"`
	GstAmount      float64 `json:"gst_amount"`
	DiscountAmount float64 `json:"discount_amount"`
	Total          float64 `json:"total"`
}

// Calculate prices the given line items with the given GST and discount
// percents. It has no side effects and no error conditions; percents are
// taken as provided.
func Calculate(items []model.LineItem, gst, discount float64) Amounts {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}

	gstAmount := GstAmount(subtotal, gst)
	discountAmount := DiscountAmount(subtotal, discount)

	return Amounts{
		Subtotal:       subtotal,
		GstAmount:      gstAmount,
		DiscountAmount: discountAmount,
		Total:          subtotal + gstAmount - discountAmount,
	}
}

// GstAmount returns the GST portion for a subtotal at the given percent.
func GstAmount(subtotal, gst float64) float64 {
	return subtotal * gst / 100
}

// DiscountAmount returns the discount portion for a subtotal at the given percent.
func DiscountAmount(subtotal, discount float64) float64 {
	return subtotal * discount / 100
}
