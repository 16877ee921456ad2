package leave

import (
	"context"

	"github.com/staffhub/ems-backend-go/internal/domain/auth"
)

type Service interface {
	Create(ctx context.Context, principal auth.Principal, req CreateLeaveRequestRequest) (LeaveRequest, error)
	// MyRequests returns an empty list when the principal has no employee
	// link; self-service reads stay soft while writes report the condition.
	MyRequests(ctx context.Context, principal auth.Principal) ([]LeaveRequest, error)
	Pending(ctx context.Context) ([]LeaveRequest, error)
	Approve(ctx context.Context, principal auth.Principal, requestID string) (LeaveRequest, error)
	Reject(ctx context.Context, principal auth.Principal, requestID string) (LeaveRequest, error)
}
