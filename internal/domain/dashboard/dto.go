package dashboard

// PendingActions aggregates everything awaiting someone's attention in the
// current company. Approver counts cover the whole company; the employee
// block covers only the caller's own records.
type PendingActions struct {
	SubmittedTimesheets int64 `json:"submitted_timesheets"`
	SubmittedLeave      int64 `json:"submitted_leave"`
	UploadedPayroll     int64 `json:"uploaded_payroll"`
	Total               int64 `json:"total"`
}

// EmployeePending is the employee-portal variant of the aggregation.
type EmployeePending struct {
	DraftTimesheets     int64 `json:"draft_timesheets"`
	SubmittedTimesheets int64 `json:"submitted_timesheets"`
	DraftLeave          int64 `json:"draft_leave"`
	SubmittedLeave      int64 `json:"submitted_leave"`
	RejectedItems       int64 `json:"rejected_items"`
}
