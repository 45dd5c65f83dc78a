package workflow

import (
	"context"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"encore.app/billing/business/product"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	ProductBusiness product.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(productBusiness product.Business) {
	activityDeps = &ActivityDependencies{
		ProductBusiness: productBusiness,
	}
}

// CheckStockActivity returns the live stock quantity for a product
func CheckStockActivity(ctx context.Context, productID string) (int32, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Checking stock", "productID", productID)

	if activityDeps == nil || activityDeps.ProductBusiness == nil {
		logger.Error("Activity dependencies not set")
		return 0, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	p, err := activityDeps.ProductBusiness.Get(ctx, productID)
	if err != nil {
		logger.Error("Failed to get product", "productID", productID, "error", err)
		return 0, err
	}

	return p.Quantity, nil
}

// LowStockAlertActivity reports a product sitting at or below its reorder
// level. The alert sink is the structured log stream.
func LowStockAlertActivity(ctx context.Context, productID string) error {
	logger := activity.GetLogger(ctx)

	if activityDeps == nil || activityDeps.ProductBusiness == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	p, err := activityDeps.ProductBusiness.Get(ctx, productID)
	if err != nil {
		logger.Error("Failed to get product for low stock alert", "productID", productID, "error", err)
		return err
	}

	logger.Warn("Product stock at or below reorder level",
		"productID", p.ID, "name", p.Name, "quantity", p.Quantity, "reorderLevel", p.ReorderLevel)
	return nil
}
