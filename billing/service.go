// Service billing manages the product catalog and generates bills.
// Bill creation deducts stock atomically; products that drop to their
// reorder level get a restock workflow started on Temporal.
package billing

import (
	"context"
	"fmt"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"encore.app/billing/business/bill"
	"encore.app/billing/business/product"
	"encore.app/billing/domain"
	"encore.app/billing/store"
	"encore.app/billing/workflow"
)

var billingDB = sqldb.NewDatabase("billing", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

const taskQueue = "billing-restock"

var validate = validator.New()

//encore:service
type Service struct {
	bills    bill.Business
	products product.Business
	temporal client.Client
	worker   worker.Worker
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver[*pgxpool.Pool](billingDB)
	st := store.NewStore(pgxdb)

	reconciler := domain.NewStockReconciler(pgxdb)
	productBusiness := product.NewProductBusiness(st.Products)
	billBusiness := bill.NewBillBusiness(st.Bills, reconciler)

	c, err := client.Dial(client.Options{})
	if err != nil {
		return nil, fmt.Errorf("create temporal client: %v", err)
	}

	w := worker.New(c, taskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.Restock)
	w.RegisterActivity(workflow.CheckStockActivity)
	w.RegisterActivity(workflow.LowStockAlertActivity)
	workflow.SetActivityDependencies(productBusiness)

	if err := w.Start(); err != nil {
		c.Close()
		return nil, fmt.Errorf("start temporal worker: %v", err)
	}

	return &Service{
		bills:    billBusiness,
		products: productBusiness,
		temporal: c,
		worker:   w,
	}, nil
}

func (s *Service) Shutdown(force context.Context) {
	rlog.Info("shutting down billing service")
	s.worker.Stop()
	s.temporal.Close()
}
