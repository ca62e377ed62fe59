package account

import "time"

type Role string

const (
	RoleOwner    Role = "owner"    // Company owner - full access
	RoleHR       Role = "hr"       // HR staff - full access
	RoleManager  Role = "manager"  // Can approve timesheets/leave
	RoleEmployee Role = "employee" // Regular employee
)

// ValidRoles lists every assignable role.
var ValidRoles = []Role{RoleOwner, RoleHR, RoleManager, RoleEmployee}

func (r Role) Valid() bool {
	for _, v := range ValidRoles {
		if r == v {
			return true
		}
	}
	return false
}

// Account is the tenant-independent identity record. Accounts are never
// deleted, only deactivated.
type Account struct {
	ID               string
	Email            string
	PasswordHash     *string
	FirstName        string
	LastName         string
	Role             Role
	IsActive         bool
	IsSuperuser      bool
	CurrentCompanyID *string
	OAuthProvider    *string
	OAuthProviderID  *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (a *Account) FullName() string {
	if a.FirstName == "" {
		return a.LastName
	}
	if a.LastName == "" {
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}
