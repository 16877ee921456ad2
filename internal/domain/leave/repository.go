package leave

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	ListByStatus(ctx context.Context, status Status) ([]LeaveRequest, error)
	Create(ctx context.Context, newRequest LeaveRequest) (LeaveRequest, error)
	// UpdateStatus moves a request out of PENDING. The WHERE clause repeats
	// the PENDING guard so two concurrent approvals cannot both win.
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (LeaveRequest, error)
}

type UpdateStatusRequest struct {
	ID                   string
	Status               Status
	ApprovedByEmployeeID string
}
