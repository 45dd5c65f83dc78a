package billing

import (
	"net/http"

	"encore.dev"
	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/render"
)

// PrintBill serves a printable HTML invoice for the bill.
//
//encore:api auth raw path=/v1/bills/:id/print method=GET
func (s *Service) PrintBill(w http.ResponseWriter, req *http.Request) {
	id := encore.CurrentRequest().PathParams.Get("id")

	b, err := s.bills.GetBill(req.Context(), id)
	if err != nil {
		errs.HTTPError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.HTML(w, b); err != nil {
		rlog.Error("failed to render bill html", "bill_id", id, "error", err)
	}
}
