package leave

import "time"

type Status string

const (
	// StatusPending is the initial state; the only one transitions leave.
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// IsTerminal reports whether no further transition is defined from s.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

type Type string

const (
	TypeAnnual Type = "annual"
	TypeSick   Type = "sick"
	TypeUnpaid Type = "unpaid"
	TypeOther  Type = "other"
)

var ValidTypes = []string{
	string(TypeAnnual),
	string(TypeSick),
	string(TypeUnpaid),
	string(TypeOther),
}

type LeaveRequest struct {
	ID         string
	EmployeeID string
	Type       Type
	StartDate  time.Time
	EndDate    time.Time
	Reason     *string

	Status               Status
	ApprovedByEmployeeID *string
	ApprovedAt           *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for responses
	EmployeeName *string
}
