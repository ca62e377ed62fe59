package audit

import "time"

// Entry is one append-only audit record. Every privileged mutation writes
// one, including mutations allowed through the owner/HR permission bypass.
type Entry struct {
	ID        string
	CompanyID *string
	AccountID string
	Action    string
	Entity    string
	EntityID  *string
	Detail    *string
	CreatedAt time.Time
}
