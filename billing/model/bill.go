package model

import (
	"time"
)

// LineItem is one product-and-quantity entry within a bill. Name and price
// are a snapshot taken at billing time; later product edits never alter them.
type LineItem struct {
	ProductRef string  `json:"product_ref"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int32   `json:"quantity"`
}

// Bill is a finalized invoice record. Subtotal and total are computed once
// at creation and stored verbatim; the record is immutable afterwards.
type Bill struct {
	ID        string     `json:"id"`
	Date      time.Time  `json:"date"`
	Items     []LineItem `json:"items"`
	Subtotal  float64    `json:"subtotal"`
	Gst       float64    `json:"gst"`
	Discount  float64    `json:"discount"`
	Total     float64    `json:"total"`
	CreatedAt time.Time  `json:"created_at"`
}

// BillDraft is the input to the bill creation engine: the requested line
// items in request order plus the tax/discount percents to apply.
type BillDraft struct {
	Items          []LineItem
	Gst            float64
	Discount       float64
	Strict         bool
	IdempotencyKey string
}

type SkipReason string

const (
	SkipReasonUnknownProduct    SkipReason = "unknown_product"
	SkipReasonInsufficientStock SkipReason = "insufficient_stock"
)

// SkippedItem records a requested line item the engine could not fulfill.
type SkippedItem struct {
	ProductRef string     `json:"product_ref"`
	Quantity   int32      `json:"quantity"`
	Reason     SkipReason `json:"reason"`
}

// FulfillmentReport is the engine's account of what happened besides the
// bill itself: items it dropped and products left at or below their
// reorder level after the deduction.
type FulfillmentReport struct {
	Skipped  []SkippedItem `json:"skipped,omitempty"`
	LowStock []Product     `json:"-"`
}
