package audit

import (
	"context"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/identity"
)

type AuditService interface {
	List(ctx context.Context, actor identity.Actor, filter ListFilter) ([]Entry, int64, error)
}
