package activitylog

import "time"

// Entry is append-only: once written it is never updated or deleted, and no
// repository method exists to do either.
type Entry struct {
	ID             string
	ActorAccountID string
	ActorEmail     string
	Action         string
	Target         string
	CreatedAt      time.Time
}

// Actions recorded by the mutating surfaces.
const (
	ActionEmployeeCreated   = "employee.created"
	ActionEmployeeUpdated   = "employee.updated"
	ActionEmployeeDeleted   = "employee.deleted"
	ActionPasswordReset     = "employee.password_reset"
	ActionDepartmentCreated = "department.created"
	ActionDepartmentUpdated = "department.updated"
	ActionDepartmentDeleted = "department.deleted"
	ActionLeaveApproved     = "leave.approved"
	ActionLeaveRejected     = "leave.rejected"
)

type EntryResponse struct {
	ID         string `json:"id"`
	ActorID    string `json:"actorId"`
	ActorEmail string `json:"actorEmail"`
	Action     string `json:"action"`
	Target     string `json:"target"`
	CreatedAt  string `json:"createdAt"`
}

func (e Entry) ToResponse() EntryResponse {
	return EntryResponse{
		ID:         e.ID,
		ActorID:    e.ActorAccountID,
		ActorEmail: e.ActorEmail,
		Action:     e.Action,
		Target:     e.Target,
		CreatedAt:  e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
