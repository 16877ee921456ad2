package employee

import (
	"github.com/staffhub/ems-backend-go/internal/domain/account"
	"github.com/staffhub/ems-backend-go/internal/pkg/validator"
)

// CreateEmployeeRequest creates an employee together with its login account.
// Password defaults server-side when omitted; role defaults to EMPLOYEE.
type CreateEmployeeRequest struct {
	EmployeeCode  string  `json:"employeeCode"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Email         string  `json:"email"`
	Password      *string `json:"password,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	DateOfJoining string  `json:"dateOfJoining"`
	DepartmentID  string  `json:"departmentId"`
	Designation   string  `json:"designation"`
	ManagerID     *string `json:"managerId,omitempty"`
	Status        string  `json:"status"`
	Role          *string `json:"role,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeCode",
			Message: "employeeCode is required",
		})
	} else if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeCode",
			Message: "invalid employee code format",
		})
	}

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "firstName",
			Message: "firstName is required",
		})
	}

	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "lastName",
			Message: "lastName is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if r.Password != nil && len(*r.Password) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		})
	}

	if validator.IsEmpty(r.DateOfJoining) {
		errs = append(errs, validator.ValidationError{
			Field:   "dateOfJoining",
			Message: "dateOfJoining is required",
		})
	} else if _, ok := validator.IsValidDate(r.DateOfJoining); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "dateOfJoining",
			Message: "must be a date in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "departmentId",
			Message: "departmentId is required",
		})
	} else if !validator.IsValidUUID(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "departmentId",
			Message: "must be a valid id",
		})
	}

	if r.ManagerID != nil && !validator.IsValidUUID(*r.ManagerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "managerId",
			Message: "must be a valid id",
		})
	}

	if validator.IsEmpty(r.Designation) {
		errs = append(errs, validator.ValidationError{
			Field:   "designation",
			Message: "designation is required",
		})
	}

	if !validator.IsInSlice(r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be ACTIVE or INACTIVE",
		})
	}

	if r.Role != nil && !validator.IsInSlice(*r.Role, account.ValidRoles) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "invalid role",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEmployeeRequest represents a partial employee update. Email, role and
// password changes cascade into the linked account within one transaction.
type UpdateEmployeeRequest struct {
	ID            string  `json:"-"`
	EmployeeCode  *string `json:"employeeCode,omitempty"`
	FirstName     *string `json:"firstName,omitempty"`
	LastName      *string `json:"lastName,omitempty"`
	Email         *string `json:"email,omitempty"`
	Password      *string `json:"password,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	DateOfJoining *string `json:"dateOfJoining,omitempty"`
	DepartmentID  *string `json:"departmentId,omitempty"`
	Designation   *string `json:"designation,omitempty"`
	ManagerID     *string `json:"managerId,omitempty"`
	Status        *string `json:"status,omitempty"`
	Role          *string `json:"role,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeCode != nil && !validator.IsValidEmployeeCode(*r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeCode",
			Message: "invalid employee code format",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if r.Password != nil && len(*r.Password) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		})
	}

	if r.DateOfJoining != nil {
		if _, ok := validator.IsValidDate(*r.DateOfJoining); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "dateOfJoining",
				Message: "must be a date in YYYY-MM-DD format",
			})
		}
	}

	if r.DepartmentID != nil && !validator.IsValidUUID(*r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "departmentId",
			Message: "must be a valid id",
		})
	}

	if r.ManagerID != nil && !validator.IsValidUUID(*r.ManagerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "managerId",
			Message: "must be a valid id",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be ACTIVE or INACTIVE",
		})
	}

	if r.Role != nil && !validator.IsInSlice(*r.Role, account.ValidRoles) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "invalid role",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ResetPasswordRequest struct {
	ID       string `json:"-"`
	Password string `json:"password"`
}

func (r *ResetPasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// EmployeeResponse represents employee data in API responses.
type EmployeeResponse struct {
	ID             string  `json:"id"`
	AccountID      *string `json:"accountId,omitempty"`
	EmployeeCode   string  `json:"employeeCode"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Email          string  `json:"email"`
	Phone          *string `json:"phone,omitempty"`
	Designation    string  `json:"designation"`
	DepartmentID   string  `json:"departmentId"`
	DepartmentName *string `json:"departmentName,omitempty"`
	ManagerID      *string `json:"managerId,omitempty"`
	DateOfJoining  string  `json:"dateOfJoining"`
	Status         string  `json:"status"`
	Role           *string `json:"role,omitempty"`
}

func (e Employee) ToResponse() EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		AccountID:      e.AccountID,
		EmployeeCode:   e.EmployeeCode,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Email:          e.Email,
		Phone:          e.Phone,
		Designation:    e.Designation,
		DepartmentID:   e.DepartmentID,
		DepartmentName: e.DepartmentName,
		ManagerID:      e.ManagerID,
		DateOfJoining:  e.DateOfJoining.Format("2006-01-02"),
		Status:         string(e.Status),
		Role:           e.AccountRole,
	}
}
