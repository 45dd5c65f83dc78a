package billing

import (
	"fmt"
	"net/http"

	"encore.dev"
	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/render"
)

// DownloadBill serves the bill as a PDF attachment.
//
//encore:api auth raw path=/v1/bills/:id/pdf method=GET
func (s *Service) DownloadBill(w http.ResponseWriter, req *http.Request) {
	id := encore.CurrentRequest().PathParams.Get("id")

	b, err := s.bills.GetBill(req.Context(), id)
	if err != nil {
		errs.HTTPError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=bill-%s.pdf", b.ID))
	if err := render.PDF(w, b); err != nil {
		rlog.Error("failed to render bill pdf", "bill_id", id, "error", err)
	}
}
