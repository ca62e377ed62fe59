package account

// Action is something a role may do to an entity.
type Action string

const (
	ActionRead    Action = "read"
	ActionWrite   Action = "write"
	ActionDelete  Action = "delete"
	ActionApprove Action = "approve"
	ActionAdmin   Action = "admin"
)

// Entity is a permission-guarded resource class.
type Entity string

const (
	EntityEmployee  Entity = "employee"
	EntityTimesheet Entity = "timesheet"
	EntityLeave     Entity = "leave"
	EntityPayroll   Entity = "payroll"
	EntityCompany   Entity = "company"
	EntitySettings  Entity = "settings"
	EntityAudit     Entity = "audit"
)

// AllActions and AllEntities close the enumerations for exhaustive checks.
var AllActions = []Action{ActionRead, ActionWrite, ActionDelete, ActionApprove, ActionAdmin}

var AllEntities = []Entity{
	EntityEmployee, EntityTimesheet, EntityLeave, EntityPayroll,
	EntityCompany, EntitySettings, EntityAudit,
}

// permissionTable maps roles to the actions they may perform per entity.
// Owner and HR are not listed: Can short-circuits them to allow.
var permissionTable = map[Role]map[Entity][]Action{
	RoleManager: {
		EntityEmployee:  {ActionRead},
		EntityTimesheet: {ActionRead, ActionWrite, ActionApprove},
		EntityLeave:     {ActionRead, ActionApprove},
		EntityPayroll:   {ActionRead},
		EntityCompany:   {ActionRead},
	},
	RoleEmployee: {
		EntityEmployee:  {ActionRead},
		EntityTimesheet: {ActionRead, ActionWrite},
		EntityLeave:     {ActionRead, ActionWrite},
		EntityPayroll:   {ActionRead},
		EntityCompany:   {ActionRead},
	},
}

// Can reports whether role may perform action on entity.
//
// Owner and HR bypass the table entirely and are always allowed; this keeps
// the historical behavior where those two roles never hit a deny. Everything
// not granted by the table is denied.
func Can(role Role, action Action, entity Entity) bool {
	if role == RoleOwner || role == RoleHR {
		return true
	}

	entities, ok := permissionTable[role]
	if !ok {
		return false
	}

	actions, ok := entities[entity]
	if !ok {
		return false
	}

	for _, a := range actions {
		if a == action {
			return true
		}
	}

	return false
}
