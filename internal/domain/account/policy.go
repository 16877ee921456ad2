package account

// Operation names a guarded API surface. Every role check in the server goes
// through the single policy table below so server guards and any client-side
// conditional rendering cannot drift apart.
type Operation string

const (
	// Self Service
	OperationAttendanceSelf Operation = "attendance.self"
	OperationLeaveViewOwn   Operation = "leave.view_own"
	OperationLeaveCreate    Operation = "leave.create"

	// Directory reads
	OperationEmployeeRead   Operation = "employee.read"
	OperationDepartmentRead Operation = "department.read"

	// Employee Management
	OperationEmployeeManage        Operation = "employee.manage"
	OperationEmployeePasswordReset Operation = "employee.password_reset"

	// Department Management
	OperationDepartmentManage Operation = "department.manage"

	// Leave Moderation
	OperationLeaveModerate Operation = "leave.moderate"

	// Audit
	OperationActivityLogRead Operation = "activity_log.read"
)

var anyAuthenticated = []Role{RoleAdmin, RoleHR, RoleManager, RoleEmployee}

// OperationRoles maps operations to the roles allowed to perform them.
var OperationRoles = map[Operation][]Role{
	OperationAttendanceSelf: anyAuthenticated,
	OperationLeaveViewOwn:   anyAuthenticated,
	OperationLeaveCreate:    anyAuthenticated,
	OperationEmployeeRead:   anyAuthenticated,
	OperationDepartmentRead: anyAuthenticated,

	OperationEmployeeManage:        {RoleAdmin, RoleHR},
	OperationEmployeePasswordReset: {RoleAdmin, RoleHR},
	OperationDepartmentManage:      {RoleAdmin, RoleHR},

	OperationLeaveModerate: {RoleAdmin, RoleHR, RoleManager},

	OperationActivityLogRead: {RoleAdmin, RoleHR},
}

// Allowed checks if a role may perform an operation
func Allowed(role Role, operation Operation) bool {
	roles, exists := OperationRoles[operation]
	if !exists {
		return false
	}

	for _, r := range roles {
		if r == role {
			return true
		}
	}

	return false
}
