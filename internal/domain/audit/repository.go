package audit

import "context"

type ListFilter struct {
	AccountID *string
	Entity    *string
	Limit     int
	Offset    int
}

type AuditRepository interface {
	Record(ctx context.Context, e Entry) error
	List(ctx context.Context, companyID string, filter ListFilter) ([]Entry, int64, error)
}
