package attendance

import "time"

// AttendanceRecord is keyed by (employee, date); the schema enforces the
// uniqueness so a second check-in on the same day cannot insert a duplicate.
type AttendanceRecord struct {
	ID           string
	EmployeeID   string
	Date         time.Time
	CheckInTime  *time.Time
	CheckOutTime *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
