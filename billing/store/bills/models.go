package bills

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Bill struct {
	ID             string
	BillDate       pgtype.Timestamptz
	Gst            float64
	Discount       float64
	Subtotal       float64
	Total          float64
	IdempotencyKey pgtype.Text
	CreatedAt      pgtype.Timestamptz
}

type BillItem struct {
	ID         int64
	BillID     string
	Position   int32
	ProductRef string
	Name       string
	Price      float64
	Quantity   int32
}
