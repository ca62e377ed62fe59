package company

import (
	"context"
	"io"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/identity"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/membership"
)

// CompanyService authorizes every path-addressed company against the
// actor's membership in that company; superusers bypass.
type CompanyService interface {
	// Create makes the new company and grants the creator an owner
	// membership in the same transaction. Superusers only.
	Create(ctx context.Context, actor identity.Actor, req CreateCompanyRequest) (CompanyResponse, error)
	Get(ctx context.Context, actor identity.Actor, id string) (CompanyResponse, error)
	List(ctx context.Context, limit, offset int) ([]CompanyResponse, int64, error)
	Update(ctx context.Context, actor identity.Actor, id string, req UpdateCompanyRequest) (CompanyResponse, error)
	UploadLogo(ctx context.Context, actor identity.Actor, id string, file io.Reader, filename, contentType string) (CompanyResponse, error)

	AddMember(ctx context.Context, actor identity.Actor, companyID string, req membership.AddMemberRequest) (membership.MembershipResponse, error)
	ListMembers(ctx context.Context, actor identity.Actor, companyID string) ([]membership.MembershipResponse, error)
	UpdateMemberRole(ctx context.Context, actor identity.Actor, companyID, accountID string, req membership.UpdateMemberRoleRequest) error
	RemoveMember(ctx context.Context, actor identity.Actor, companyID, accountID string) error
}
