package bills

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx alike.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

const createBill = `
INSERT INTO bills (id, bill_date, gst, discount, subtotal, total, idempotency_key)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, bill_date, gst, discount, subtotal, total, idempotency_key, created_at
`

type CreateBillParams struct {
	ID             string
	BillDate       pgtype.Timestamptz
	Gst            float64
	Discount       float64
	Subtotal       float64
	Total          float64
	IdempotencyKey pgtype.Text
}

func (q *Queries) CreateBill(ctx context.Context, arg CreateBillParams) (Bill, error) {
	row := q.db.QueryRow(ctx, createBill,
		arg.ID, arg.BillDate, arg.Gst, arg.Discount, arg.Subtotal, arg.Total, arg.IdempotencyKey)
	var b Bill
	err := row.Scan(&b.ID, &b.BillDate, &b.Gst, &b.Discount, &b.Subtotal, &b.Total, &b.IdempotencyKey, &b.CreatedAt)
	return b, err
}

const createBillItem = `
INSERT INTO bill_items (bill_id, line_no, product_ref, name, price, quantity)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, bill_id, line_no, product_ref, name, price, quantity
`

type CreateBillItemParams struct {
	BillID     string
	Position   int32
	ProductRef string
	Name       string
	Price      float64
	Quantity   int32
}

func (q *Queries) CreateBillItem(ctx context.Context, arg CreateBillItemParams) (BillItem, error) {
	row := q.db.QueryRow(ctx, createBillItem,
		arg.BillID, arg.Position, arg.ProductRef, arg.Name, arg.Price, arg.Quantity)
	var i BillItem
	err := row.Scan(&i.ID, &i.BillID, &i.Position, &i.ProductRef, &i.Name, &i.Price, &i.Quantity)
	return i, err
}

const getBill = `
SELECT id, bill_date, gst, discount, subtotal, total, idempotency_key, created_at
FROM bills
WHERE id = $1
`

func (q *Queries) GetBill(ctx context.Context, id string) (Bill, error) {
	row := q.db.QueryRow(ctx, getBill, id)
	var b Bill
	err := row.Scan(&b.ID, &b.BillDate, &b.Gst, &b.Discount, &b.Subtotal, &b.Total, &b.IdempotencyKey, &b.CreatedAt)
	return b, err
}

const getBillItems = `
SELECT id, bill_id, line_no, product_ref, name, price, quantity
FROM bill_items
WHERE bill_id = $1
ORDER BY line_no
`

func (q *Queries) GetBillItems(ctx context.Context, billID string) ([]BillItem, error) {
	rows, err := q.db.Query(ctx, getBillItems, billID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BillItem
	for rows.Next() {
		var i BillItem
		if err := rows.Scan(&i.ID, &i.BillID, &i.Position, &i.ProductRef, &i.Name, &i.Price, &i.Quantity); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listBills = `
SELECT id, bill_date, gst, discount, subtotal, total, idempotency_key, created_at
FROM bills b
WHERE $1 = '' OR EXISTS (
    SELECT 1 FROM bill_items i
    WHERE i.bill_id = b.id AND i.name ILIKE '%' || $1 || '%'
)
ORDER BY b.bill_date DESC, b.id DESC
LIMIT $2 OFFSET $3
`

type ListBillsParams struct {
	NameFilter string
	Limit      int32
	Offset     int32
}

func (q *Queries) ListBills(ctx context.Context, arg ListBillsParams) ([]Bill, error) {
	rows, err := q.db.Query(ctx, listBills, arg.NameFilter, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Bill
	for rows.Next() {
		var b Bill
		if err := rows.Scan(&b.ID, &b.BillDate, &b.Gst, &b.Discount, &b.Subtotal, &b.Total, &b.IdempotencyKey, &b.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

const countBills = `
SELECT count(*)
FROM bills b
WHERE $1 = '' OR EXISTS (
    SELECT 1 FROM bill_items i
    WHERE i.bill_id = b.id AND i.name ILIKE '%' || $1 || '%'
)
`

func (q *Queries) CountBills(ctx context.Context, nameFilter string) (int64, error) {
	row := q.db.QueryRow(ctx, countBills, nameFilter)
	var count int64
	err := row.Scan(&count)
	return count, err
}
