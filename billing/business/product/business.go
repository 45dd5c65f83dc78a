package product

import (
	"context"

	"encore.app/billing/model"
	"encore.app/billing/store/products"
)

type Business interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	Get(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context) ([]*model.Product, error)
	// Update applies the patch and reports whether the product was
	// restocked above its reorder level by the change.
	Update(ctx context.Context, id string, patch *model.ProductPatch) (*model.Product, bool, error)
	Delete(ctx context.Context, id string) error
}

// business handles business logic for the product catalog
type business struct {
	productRepo products.Querier
}

// NewProductBusiness creates the product business layer
func NewProductBusiness(productRepo products.Querier) Business {
	return &business{
		productRepo: productRepo,
	}
}

func convertDBProductToModel(p products.Product) *model.Product {
	return &model.Product{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price,
		Quantity:     p.Quantity,
		ReorderLevel: p.ReorderLevel,
		CreatedAt:    p.CreatedAt.Time,
		UpdatedAt:    p.UpdatedAt.Time,
	}
}
