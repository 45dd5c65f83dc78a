package store

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/billing/store/bills"
	"encore.app/billing/store/products"
)

// Store combines all domain-specific queriers
type Store struct {
	Products products.Querier
	Bills    bills.Querier
}

// NewStore creates a new Store with all domain queriers
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		Products: products.New(db),
		Bills:    bills.New(db),
	}
}
