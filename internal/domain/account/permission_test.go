package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Can must be total and deterministic over the closed enumerations.
func TestCan_TotalAndDeterministic(t *testing.T) {
	roles := append([]Role{}, ValidRoles...)
	roles = append(roles, Role("unknown"))

	for _, role := range roles {
		for _, entity := range AllEntities {
			for _, action := range AllActions {
				first := Can(role, action, entity)
				second := Can(role, action, entity)
				assert.Equal(t, first, second,
					"Can(%s, %s, %s) must be deterministic", role, action, entity)
			}
		}
	}
}

// Owner and HR bypass the table and are always allowed.
func TestCan_OwnerAndHRAlwaysAllowed(t *testing.T) {
	for _, role := range []Role{RoleOwner, RoleHR} {
		for _, entity := range AllEntities {
			for _, action := range AllActions {
				assert.True(t, Can(role, action, entity),
					"Can(%s, %s, %s) must be allowed", role, action, entity)
			}
		}
	}
}

func TestCan_EmployeePermissions(t *testing.T) {
	// Employees file their own timesheets and leave requests
	assert.True(t, Can(RoleEmployee, ActionWrite, EntityTimesheet))
	assert.True(t, Can(RoleEmployee, ActionWrite, EntityLeave))

	// But cannot touch employee records or payroll
	assert.False(t, Can(RoleEmployee, ActionWrite, EntityEmployee))
	assert.False(t, Can(RoleEmployee, ActionWrite, EntityPayroll))

	// And never approve or administer anything
	for _, entity := range AllEntities {
		assert.False(t, Can(RoleEmployee, ActionApprove, entity))
		assert.False(t, Can(RoleEmployee, ActionAdmin, entity))
		assert.False(t, Can(RoleEmployee, ActionDelete, entity))
	}
}

func TestCan_ManagerApproves(t *testing.T) {
	assert.True(t, Can(RoleManager, ActionApprove, EntityTimesheet))
	assert.True(t, Can(RoleManager, ActionApprove, EntityLeave))
	assert.False(t, Can(RoleManager, ActionApprove, EntityPayroll))
	assert.False(t, Can(RoleManager, ActionWrite, EntityEmployee))
	assert.False(t, Can(RoleManager, ActionAdmin, EntityCompany))
}

// Unknown roles and unlisted entities deny by default.
func TestCan_DefaultDeny(t *testing.T) {
	assert.False(t, Can(Role("intern"), ActionRead, EntityEmployee))
	assert.False(t, Can(RoleEmployee, ActionRead, EntityAudit))
	assert.False(t, Can(RoleManager, ActionRead, EntitySettings))
}
