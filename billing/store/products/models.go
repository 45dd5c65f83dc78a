package products

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Product struct {
	ID           string
	Name         string
	Price        float64
	Quantity     int32
	ReorderLevel int32
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}
