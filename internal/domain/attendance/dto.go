package attendance

import (
	"github.com/staffhub/ems-backend-go/internal/pkg/validator"
)

// CheckRequest covers both check-in and check-out. Date is optional and
// defaults to today (server time, UTC).
type CheckRequest struct {
	Date *string `json:"date,omitempty"`
}

func (r *CheckRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "must be a date in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceRecordResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employeeId"`
	Date         string  `json:"date"`
	CheckInTime  *string `json:"checkInTime,omitempty"`
	CheckOutTime *string `json:"checkOutTime,omitempty"`
}

func (a AttendanceRecord) ToResponse() AttendanceRecordResponse {
	resp := AttendanceRecordResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date.Format("2006-01-02"),
	}
	if a.CheckInTime != nil {
		s := a.CheckInTime.Format("2006-01-02T15:04:05Z07:00")
		resp.CheckInTime = &s
	}
	if a.CheckOutTime != nil {
		s := a.CheckOutTime.Format("2006-01-02T15:04:05Z07:00")
		resp.CheckOutTime = &s
	}
	return resp
}
