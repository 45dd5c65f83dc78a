package billing

import (
	"context"

	"encore.app/billing/model"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

type ListBillsRequest struct {
	// Product filters bills to those containing a line item whose name
	// includes the given substring, case-insensitively.
	Product string `query:"product"`
	Page    int32  `query:"page"`
	Limit   int32  `query:"limit"`
}

type ListBillsResponse struct {
	Total int64        `json:"total"`
	Page  int32        `json:"page"`
	Limit int32        `json:"limit"`
	Data  []model.Bill `json:"data"`
}

// ListBills returns bills newest first, optionally filtered by line item
// name, with page/limit pagination.
//
//encore:api auth path=/v1/bills method=GET
func (s *Service) ListBills(ctx context.Context, req *ListBillsRequest) (*ListBillsResponse, error) {
	page := req.Page
	if page < 1 {
		page = defaultPage
	}
	limit := req.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	bills, total, err := s.bills.ListBills(ctx, req.Product, page, limit)
	if err != nil {
		return nil, err
	}

	data := make([]model.Bill, 0, len(bills))
	for _, b := range bills {
		data = append(data, *b)
	}

	return &ListBillsResponse{
		Total: total,
		Page:  page,
		Limit: limit,
		Data:  data,
	}, nil
}
