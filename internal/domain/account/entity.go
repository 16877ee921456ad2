package account

import "time"

type Role string

const (
	RoleAdmin    Role = "ADMIN"    // Full access
	RoleHR       Role = "HR"       // Same surface as admin
	RoleManager  Role = "MANAGER"  // Can approve or reject leave
	RoleEmployee Role = "EMPLOYEE" // Self-service only
)

// ValidRoles lists every role an account may carry.
var ValidRoles = []string{
	string(RoleAdmin),
	string(RoleHR),
	string(RoleManager),
	string(RoleEmployee),
}

// Account is a login identity. It is created together with its employee
// record and deleted in the same transaction that removes the employee.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
