package leave

import "time"

type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
)

type Type string

const (
	TypeVacation Type = "vacation"
	TypeSick     Type = "sick"
	TypeUnpaid   Type = "unpaid"
	TypeParental Type = "parental"
	TypeOther    Type = "other"
)

var ValidTypes = []Type{TypeVacation, TypeSick, TypeUnpaid, TypeParental, TypeOther}

func (t Type) Valid() bool {
	for _, v := range ValidTypes {
		if t == v {
			return true
		}
	}
	return false
}

type LeaveRequest struct {
	ID              string
	CompanyID       string
	EmployeeID      string
	LeaveType       Type
	StartDate       time.Time
	EndDate         time.Time
	Reason          *string
	Status          Status
	SubmittedAt     *time.Time
	ReviewedBy      *string
	ReviewedAt      *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined for listings
	EmployeeName *string
}

// Days is the inclusive calendar-day span of the request.
func (l *LeaveRequest) Days() int {
	return int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1
}

func (l *LeaveRequest) CanSubmit() bool {
	return l.Status == StatusDraft || l.Status == StatusRejected
}

func (l *LeaveRequest) CanReview() bool {
	return l.Status == StatusSubmitted
}
