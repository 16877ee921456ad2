package leave

import (
	"github.com/staffhub/ems-backend-go/internal/pkg/validator"
)

// CreateLeaveRequestRequest opens a new request in PENDING. EmployeeID is
// optional: omitted means "for myself" (resolved from the principal); only
// ADMIN and HR may set it to another employee.
type CreateLeaveRequestRequest struct {
	EmployeeID *string `json:"employeeId,omitempty"`
	LeaveType  string  `json:"leaveTypeId"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	Reason     *string `json:"reason,omitempty"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID != nil && !validator.IsValidUUID(*r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "must be a valid id",
		})
	}

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leaveTypeId",
			Message: "leaveTypeId is required",
		})
	} else if !validator.IsInSlice(r.LeaveType, ValidTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "leaveTypeId",
			Message: "leaveTypeId must be one of annual, sick, unpaid, other",
		})
	}

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "must be a date in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate is required",
		})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "must be a date in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveRequestResponse struct {
	ID                   string  `json:"id"`
	EmployeeID           string  `json:"employeeId"`
	EmployeeName         *string `json:"employeeName,omitempty"`
	LeaveType            string  `json:"leaveTypeId"`
	StartDate            string  `json:"startDate"`
	EndDate              string  `json:"endDate"`
	Reason               *string `json:"reason,omitempty"`
	Status               string  `json:"status"`
	ApprovedByEmployeeID *string `json:"approvedByEmployeeId,omitempty"`
	ApprovedAt           *string `json:"approvedAt,omitempty"`
}

func (l LeaveRequest) ToResponse() LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:                   l.ID,
		EmployeeID:           l.EmployeeID,
		EmployeeName:         l.EmployeeName,
		LeaveType:            string(l.Type),
		StartDate:            l.StartDate.Format("2006-01-02"),
		EndDate:              l.EndDate.Format("2006-01-02"),
		Reason:               l.Reason,
		Status:               string(l.Status),
		ApprovedByEmployeeID: l.ApprovedByEmployeeID,
	}
	if l.ApprovedAt != nil {
		s := l.ApprovedAt.Format("2006-01-02T15:04:05Z07:00")
		resp.ApprovedAt = &s
	}
	return resp
}
