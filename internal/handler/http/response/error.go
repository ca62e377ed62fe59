package response

import (
	"errors"
	"net/http"

	"github.com/payfitlite/nesthr-backend-go/internal/domain/account"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/auth"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/company"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/employee"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/identity"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/leave"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/membership"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/payroll"
	"github.com/payfitlite/nesthr-backend-go/internal/domain/timesheet"
	"github.com/payfitlite/nesthr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrAccountDeactivated):
		Forbidden(w, "Account deactivated")
	case errors.Is(err, auth.ErrOAuthNotConfigured):
		NotFound(w, "Google login is not enabled")
	case errors.Is(err, auth.ErrOAuthEmailUnknown):
		Unauthorized(w, "No account registered for this Google email")

	// Account domain errors
	case errors.Is(err, account.ErrAccountNotFound):
		NotFound(w, "Account not found")
	case errors.Is(err, account.ErrAccountEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, account.ErrAccountInactive):
		Forbidden(w, "Account is deactivated")
	case errors.Is(err, account.ErrSuperuserRequired):
		Forbidden(w, "Superuser privilege required")
	case errors.Is(err, account.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, account.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")
	case errors.Is(err, account.ErrCompanyIDRequired):
		BadRequest(w, "Select a company first", nil)
	case errors.Is(err, account.ErrCannotDeactivateSelf):
		Conflict(w, "Cannot deactivate own account")

	// Company and membership
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrCompanyNameExists):
		Conflict(w, "Company name already exists")
	case errors.Is(err, company.ErrNoCurrentCompany):
		BadRequest(w, "No current company selected", nil)
	case errors.Is(err, membership.ErrMembershipNotFound):
		NotFound(w, "Membership not found")
	case errors.Is(err, membership.ErrMembershipExists):
		Conflict(w, "Account is already a member of this company")
	case errors.Is(err, identity.ErrAccessDenied):
		Forbidden(w, "No access to this company")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeEmailExists):
		Conflict(w, "Email already registered in this company")
	case errors.Is(err, employee.ErrAccountAlreadyLinked):
		Conflict(w, "Account already linked to an employee in this company")
	case errors.Is(err, employee.ErrManagerNotFound):
		BadRequest(w, "Manager not found in this company", nil)

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrTimesheetNotFound):
		NotFound(w, "Timesheet not found")
	case errors.Is(err, timesheet.ErrTimesheetAlreadyProcessed):
		Conflict(w, "Timesheet already processed")
	case errors.Is(err, timesheet.ErrTimesheetNotSubmitted):
		Conflict(w, "Timesheet is not awaiting review")
	case errors.Is(err, timesheet.ErrTimesheetNotEditable):
		Conflict(w, "Only draft or rejected timesheets can be edited")
	case errors.Is(err, timesheet.ErrPeriodOverlap):
		Conflict(w, "Timesheet period overlaps an existing one")
	case errors.Is(err, timesheet.ErrNotTimesheetOwner):
		Forbidden(w, "Timesheet belongs to another employee")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrLeaveRequestNotSubmitted):
		Conflict(w, "Leave request is not awaiting review")
	case errors.Is(err, leave.ErrLeaveRequestNotEditable):
		Conflict(w, "Only draft or rejected leave requests can be edited")
	case errors.Is(err, leave.ErrNotLeaveRequestOwner):
		Forbidden(w, "Leave request belongs to another employee")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrCycleNotFound):
		NotFound(w, "Payroll cycle not found")
	case errors.Is(err, payroll.ErrCycleExists):
		Conflict(w, "Payroll cycle already exists for this period")
	case errors.Is(err, payroll.ErrCycleNotUploaded):
		Conflict(w, "Payroll cycle is not awaiting approval")
	case errors.Is(err, payroll.ErrCycleNotApproved):
		Conflict(w, "Only approved payroll cycles can be archived")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)
	case errors.Is(err, payroll.ErrDocumentTooLarge):
		BadRequest(w, "Payroll document exceeds the size limit", nil)
	case errors.Is(err, payroll.ErrUnsupportedFormat):
		BadRequest(w, "Unsupported payroll document format", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
