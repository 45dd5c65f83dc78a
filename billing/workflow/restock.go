package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// RestockWorkflowParams contains parameters for starting the restock workflow
type RestockWorkflowParams struct {
	ProductID    string `json:"product_id"`
	Quantity     int32  `json:"quantity"`
	ReorderLevel int32  `json:"reorder_level"`
}

// escalationInterval is how long a product may sit below its reorder
// level before the alert is repeated.
const escalationInterval = 24 * time.Hour

// Restock tracks a product whose stock fell to or below its reorder level.
// It alerts immediately, then waits for restock signals; each signal
// re-checks live stock and the workflow completes once the product is back
// above its reorder level. An escalation timer repeats the alert while the
// product stays low.
func Restock(ctx workflow.Context, params RestockWorkflowParams) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting restock workflow", "productID", params.ProductID, "quantity", params.Quantity, "reorderLevel", params.ReorderLevel)

	if err := alertLowStock(ctx, params.ProductID); err != nil {
		logger.Error("Failed to send low stock alert", "productID", params.ProductID, "error", err)
		return err
	}

	restockCh := workflow.GetSignalChannel(ctx, RestockSignalName)

	replenished := false
	for !replenished {
		timer := workflow.NewTimer(ctx, escalationInterval)
		selector := workflow.NewSelector(ctx)

		selector.AddReceive(restockCh, func(c workflow.ReceiveChannel, more bool) {
			var signal RestockSignal
			c.Receive(ctx, &signal)
			logger.Info("Received restock signal", "productID", params.ProductID, "signalQuantity", signal.Quantity)

			stock, err := checkStock(ctx, params.ProductID)
			if err != nil {
				logger.Error("Failed to check stock after restock signal", "productID", params.ProductID, "error", err)
				return
			}
			if stock > params.ReorderLevel {
				logger.Info("Product replenished", "productID", params.ProductID, "quantity", stock)
				replenished = true
			}
		})

		selector.AddFuture(timer, func(f workflow.Future) {
			logger.Info("Escalating low stock alert", "productID", params.ProductID)
			if err := alertLowStock(ctx, params.ProductID); err != nil {
				logger.Error("Failed to escalate low stock alert", "productID", params.ProductID, "error", err)
			}
		})

		selector.Select(ctx)
	}

	logger.Info("Restock workflow completed", "productID", params.ProductID)
	return nil
}

// alertLowStock executes the LowStockAlert activity
func alertLowStock(ctx workflow.Context, productID string) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    15 * time.Second,
			MaximumAttempts:    6,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, LowStockAlertActivity, productID).Get(ctx, nil)
}

// checkStock executes the CheckStock activity and returns the live quantity
func checkStock(ctx workflow.Context, productID string) (int32, error) {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    500 * time.Millisecond,
			BackoffCoefficient: 2.0,
			MaximumInterval:    5 * time.Second,
			MaximumAttempts:    4,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)

	var quantity int32
	err := workflow.ExecuteActivity(activityCtx, CheckStockActivity, productID).Get(ctx, &quantity)
	return quantity, err
}
