package attendance

import (
	"context"

	"github.com/staffhub/ems-backend-go/internal/domain/auth"
)

type Service interface {
	// CheckIn and CheckOut resolve the principal's employee record first
	// and fail with the no-employee-link condition when none exists.
	CheckIn(ctx context.Context, principal auth.Principal, req CheckRequest) (AttendanceRecord, error)
	CheckOut(ctx context.Context, principal auth.Principal, req CheckRequest) (int64, error)
	// ListMine returns an empty list for principals without an employee
	// link, newest date first.
	ListMine(ctx context.Context, principal auth.Principal) ([]AttendanceRecord, error)
}
