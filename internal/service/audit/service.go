package audit

import (
	"context"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/audit"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/identity"
)

type AuditServiceImpl struct {
	entries audit.AuditRepository
}

func NewAuditService(entries audit.AuditRepository) audit.AuditService {
	return &AuditServiceImpl{entries: entries}
}

// List implements audit.AuditService. Always scoped to the actor's current
// company; cross-tenant reads are not a thing here.
func (s *AuditServiceImpl) List(ctx context.Context, actor identity.Actor, filter audit.ListFilter) ([]audit.Entry, int64, error) {
	if filter.Limit <= 0 || filter.Limit > 200 {
		filter.Limit = 50
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.entries.List(ctx, actor.CompanyID, filter)
}
