// Package domain owns the transaction boundaries of the billing service.
package domain

import (
	"context"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"

	"encore.dev/beta/errs"

	"encore.app/billing/store/bills"
	"encore.app/billing/store/products"
)

// TxStore exposes transaction-bound queriers to a reconciliation callback.
type TxStore struct {
	Products products.Querier
	Bills    bills.Querier
}

// Reconciler serializes stock mutations against the inventory store.
type Reconciler interface {
	// WithProductLock runs fn inside a single transaction after row-locking
	// the referenced products. The locked rows are passed in id order;
	// refs that resolve to no product are simply absent. Everything fn
	// writes through the TxStore commits together or not at all.
	WithProductLock(ctx context.Context, refs []string, fn func(tx TxStore, locked []products.Product) error) error
}

// StockReconciler is the pgx-backed Reconciler used in production.
type StockReconciler struct {
	db          *pgxpool.Pool
	productRepo *products.Queries
	billRepo    *bills.Queries
}

func NewStockReconciler(db *pgxpool.Pool) *StockReconciler {
	return &StockReconciler{
		db:          db,
		productRepo: products.New(db),
		billRepo:    bills.New(db),
	}
}

// WithProductLock implements Reconciler. Lock acquisition is in sorted id
// order so two concurrent bill creations touching the same products cannot
// deadlock; they serialize on the first shared row instead.
func (r *StockReconciler) WithProductLock(ctx context.Context, refs []string, fn func(tx TxStore, locked []products.Product) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to start transaction"}
	}
	defer tx.Rollback(ctx)

	txStore := TxStore{
		Products: r.productRepo.WithTx(tx),
		Bills:    r.billRepo.WithTx(tx),
	}

	var locked []products.Product
	if ids := dedupeSorted(refs); len(ids) > 0 {
		locked, err = txStore.Products.GetProductsForUpdate(ctx, ids)
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to lock products"}
		}
	}

	if err := fn(txStore, locked); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to commit"}
	}
	return nil
}

func dedupeSorted(refs []string) []string {
	seen := make(map[string]struct{}, len(refs))
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		if _, ok := seen[ref]; ok {
			continue
		}
		seen[ref] = struct{}{}
		ids = append(ids, ref)
	}
	sort.Strings(ids)
	return ids
}
