package model

import (
	"time"
)

type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	Quantity     int32     `json:"quantity"`
	ReorderLevel int32     `json:"reorder_level"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProductPatch carries the fields of a product update request.
// Nil fields are left unchanged.
type ProductPatch struct {
	Name         *string
	Price        *float64
	Quantity     *int32
	ReorderLevel *int32
}
