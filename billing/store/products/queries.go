package products

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

const createProduct = `
INSERT INTO products (id, name, price, quantity, reorder_level)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, name, price, quantity, reorder_level, created_at, updated_at
`

type CreateProductParams struct {
	ID           string
	Name         string
	Price        float64
	Quantity     int32
	ReorderLevel int32
}

func (q *Queries) CreateProduct(ctx context.Context, arg CreateProductParams) (Product, error) {
	row := q.db.QueryRow(ctx, createProduct, arg.ID, arg.Name, arg.Price, arg.Quantity, arg.ReorderLevel)
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Quantity, &p.ReorderLevel, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

const getProduct = `
SELECT id, name, price, quantity, reorder_level, created_at, updated_at
FROM products
WHERE id = $1
`

func (q *Queries) GetProduct(ctx context.Context, id string) (Product, error) {
	row := q.db.QueryRow(ctx, getProduct, id)
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Quantity, &p.ReorderLevel, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

const getProductsForUpdate = `
SELECT id, name, price, quantity, reorder_level, created_at, updated_at
FROM products
WHERE id = ANY($1::text[])
ORDER BY id
FOR UPDATE
`

func (q *Queries) GetProductsForUpdate(ctx context.Context, ids []string) ([]Product, error) {
	rows, err := q.db.Query(ctx, getProductsForUpdate, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Quantity, &p.ReorderLevel, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

const listProducts = `
SELECT id, name, price, quantity, reorder_level, created_at, updated_at
FROM products
ORDER BY created_at, id
`

func (q *Queries) ListProducts(ctx context.Context) ([]Product, error) {
	rows, err := q.db.Query(ctx, listProducts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Quantity, &p.ReorderLevel, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

const updateProduct = `
UPDATE products
SET name = $2, price = $3, quantity = $4, reorder_level = $5, updated_at = now()
WHERE id = $1
RETURNING id, name, price, quantity, reorder_level, created_at, updated_at
`

type UpdateProductParams struct {
	ID           string
	Name         string
	Price        float64
	Quantity     int32
	ReorderLevel int32
}

func (q *Queries) UpdateProduct(ctx context.Context, arg UpdateProductParams) (Product, error) {
	row := q.db.QueryRow(ctx, updateProduct, arg.ID, arg.Name, arg.Price, arg.Quantity, arg.ReorderLevel)
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Quantity, &p.ReorderLevel, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

const updateProductQuantity = `
UPDATE products
SET quantity = $2, updated_at = now()
WHERE id = $1
`

type UpdateProductQuantityParams struct {
	ID       string
	Quantity int32
}

func (q *Queries) UpdateProductQuantity(ctx context.Context, arg UpdateProductQuantityParams) error {
	_, err := q.db.Exec(ctx, updateProductQuantity, arg.ID, arg.Quantity)
	return err
}

const deleteProduct = `
DELETE FROM products
WHERE id = $1
`

func (q *Queries) DeleteProduct(ctx context.Context, id string) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteProduct, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
