package attendance

import (
	"context"
	"time"
)

type Repository interface {
	ListByEmployee(ctx context.Context, employeeID string) ([]AttendanceRecord, error)
	Create(ctx context.Context, newRecord AttendanceRecord) (AttendanceRecord, error)
	// SetCheckOut stamps check_out_time on the matching record and returns
	// the number of rows touched; zero is not an error.
	SetCheckOut(ctx context.Context, employeeID string, date time.Time, checkOut time.Time) (int64, error)
}
