package account

import "testing"

func TestAllowed(t *testing.T) {
	cases := []struct {
		role      Role
		operation Operation
		want      bool
	}{
		{RoleEmployee, OperationAttendanceSelf, true},
		{RoleEmployee, OperationLeaveCreate, true},
		{RoleEmployee, OperationEmployeeRead, true},
		{RoleEmployee, OperationEmployeeManage, false},
		{RoleEmployee, OperationLeaveModerate, false},
		{RoleEmployee, OperationActivityLogRead, false},

		{RoleManager, OperationLeaveModerate, true},
		{RoleManager, OperationEmployeeManage, false},
		{RoleManager, OperationDepartmentManage, false},
		{RoleManager, OperationActivityLogRead, false},

		{RoleHR, OperationEmployeeManage, true},
		{RoleHR, OperationEmployeePasswordReset, true},
		{RoleHR, OperationDepartmentManage, true},
		{RoleHR, OperationLeaveModerate, true},
		{RoleHR, OperationActivityLogRead, true},

		{RoleAdmin, OperationEmployeeManage, true},
		{RoleAdmin, OperationActivityLogRead, true},
		{RoleAdmin, OperationAttendanceSelf, true},
	}

	for _, c := range cases {
		got := Allowed(c.role, c.operation)
		if got != c.want {
			t.Errorf("Allowed(%s, %s) = %v, want %v", c.role, c.operation, got, c.want)
		}
	}
}

func TestAllowedUnknownOperation(t *testing.T) {
	if Allowed(RoleAdmin, Operation("payroll.run")) {
		t.Error("Allowed returned true for an operation missing from the policy table")
	}
}

func TestAllowedUnknownRole(t *testing.T) {
	for op := range OperationRoles {
		if Allowed(Role("SUPERUSER"), op) {
			t.Errorf("Allowed(SUPERUSER, %s) = true, want false", op)
		}
	}
}

func TestEveryOperationHasRoles(t *testing.T) {
	for op, roles := range OperationRoles {
		if len(roles) == 0 {
			t.Errorf("operation %s has no allowed roles", op)
		}
	}
}
