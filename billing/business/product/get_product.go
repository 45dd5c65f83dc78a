package product

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
)

func (b *business) Get(ctx context.Context, id string) (*model.Product, error) {
	dbProduct, err := b.productRepo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "product not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get product"}
	}

	return convertDBProductToModel(dbProduct), nil
}

func (b *business) List(ctx context.Context) ([]*model.Product, error) {
	dbProducts, err := b.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list products"}
	}

	result := make([]*model.Product, len(dbProducts))
	for i, p := range dbProducts {
		result[i] = convertDBProductToModel(p)
	}
	return result, nil
}
