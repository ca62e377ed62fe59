package identity

// PortalDecision is the single destination a session should land on.
type PortalDecision string

const (
	PortalLogin            PortalDecision = "login"
	PortalOnboarding       PortalDecision = "onboarding"
	PortalUnauthorized     PortalDecision = "unauthorized"
	PortalCompanySelection PortalDecision = "company_selection"
	PortalSelection        PortalDecision = "portal_selection"
	PortalAdmin            PortalDecision = "admin"
	PortalEmployee         PortalDecision = "employee"
)

// PortalInput is the already-resolved session state the decision runs over.
type PortalInput struct {
	Authenticated     bool
	IsSuperuser       bool
	Companies         []CompanyRef
	CurrentCompanyID  *string
	IsAdmin           bool
	HasEmployeeAccess bool
}

// DecidePortal picks the portal destination for a session. Rules are
// evaluated in order, first match wins; the function is pure and idempotent,
// so every gatekeeping layer routes through this one decision table instead
// of re-implementing it.
func DecidePortal(in PortalInput) PortalDecision {
	if !in.Authenticated {
		return PortalLogin
	}

	if len(in.Companies) == 0 {
		if in.IsSuperuser {
			return PortalOnboarding
		}
		return PortalUnauthorized
	}

	// A single company needs no explicit selection step
	if len(in.Companies) == 1 {
		return routeByAccess(in.Companies[0].IsAdmin, in.HasEmployeeAccess)
	}

	if in.CurrentCompanyID == nil || *in.CurrentCompanyID == "" {
		return PortalCompanySelection
	}

	if in.IsAdmin && in.HasEmployeeAccess {
		return PortalSelection
	}

	return routeByAccess(in.IsAdmin, in.HasEmployeeAccess)
}

func routeByAccess(isAdmin, hasEmployeeAccess bool) PortalDecision {
	switch {
	case isAdmin && hasEmployeeAccess:
		return PortalSelection
	case isAdmin:
		return PortalAdmin
	case hasEmployeeAccess:
		return PortalEmployee
	default:
		return PortalUnauthorized
	}
}
