package employee

import "time"

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

type Employee struct {
	ID            string
	AccountID     *string
	EmployeeCode  string
	FirstName     string
	LastName      string
	Email         string
	Phone         *string
	Designation   string
	DepartmentID  string
	ManagerID     *string
	DateOfJoining time.Time
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined for responses
	DepartmentName *string
	AccountRole    *string
}
