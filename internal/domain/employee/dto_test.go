package employee

import (
	"errors"
	"testing"

	"github.com/staffhub/ems-backend-go/internal/pkg/validator"
)

func validCreateRequest() CreateEmployeeRequest {
	return CreateEmployeeRequest{
		EmployeeCode:  "EMP-001",
		FirstName:     "Ada",
		LastName:      "Lovelace",
		Email:         "ada@example.com",
		DateOfJoining: "2025-01-06",
		DepartmentID:  "33333333-3333-3333-3333-333333333333",
		Designation:   "Engineer",
		Status:        "ACTIVE",
	}
}

func TestCreateEmployeeRequestValidate(t *testing.T) {
	req := validCreateRequest()
	if err := req.Validate(); err != nil {
		t.Fatalf("valid request failed validation: %v", err)
	}
}

func TestCreateEmployeeRequestValidateFailures(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*CreateEmployeeRequest)
		wantKey string
	}{
		{
			name:    "missing employee code",
			mutate:  func(r *CreateEmployeeRequest) { r.EmployeeCode = "" },
			wantKey: "employeeCode",
		},
		{
			name:    "bad employee code format",
			mutate:  func(r *CreateEmployeeRequest) { r.EmployeeCode = "emp 001" },
			wantKey: "employeeCode",
		},
		{
			name:    "bad email",
			mutate:  func(r *CreateEmployeeRequest) { r.Email = "not-an-email" },
			wantKey: "email",
		},
		{
			name: "short password",
			mutate: func(r *CreateEmployeeRequest) {
				pw := "abc"
				r.Password = &pw
			},
			wantKey: "password",
		},
		{
			name:    "malformed joining date",
			mutate:  func(r *CreateEmployeeRequest) { r.DateOfJoining = "06/01/2025" },
			wantKey: "dateOfJoining",
		},
		{
			name:    "malformed department id",
			mutate:  func(r *CreateEmployeeRequest) { r.DepartmentID = "not-a-uuid" },
			wantKey: "departmentId",
		},
		{
			name: "malformed manager id",
			mutate: func(r *CreateEmployeeRequest) {
				id := "not-a-uuid"
				r.ManagerID = &id
			},
			wantKey: "managerId",
		},
		{
			name:    "unknown status",
			mutate:  func(r *CreateEmployeeRequest) { r.Status = "PAUSED" },
			wantKey: "status",
		},
		{
			name: "unknown role",
			mutate: func(r *CreateEmployeeRequest) {
				role := "SUPERUSER"
				r.Role = &role
			},
			wantKey: "role",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := validCreateRequest()
			c.mutate(&req)

			err := req.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}

			var errs validator.ValidationErrors
			if !errors.As(err, &errs) {
				t.Fatalf("expected ValidationErrors, got %T", err)
			}

			found := false
			for _, e := range errs {
				if e.Field == c.wantKey {
					found = true
				}
			}
			if !found {
				t.Errorf("expected an error on %q, got %v", c.wantKey, errs)
			}
		})
	}
}

func TestUpdateEmployeeRequestValidateFailures(t *testing.T) {
	str := func(s string) *string { return &s }

	cases := []struct {
		name    string
		req     UpdateEmployeeRequest
		wantKey string
	}{
		{
			name:    "bad email",
			req:     UpdateEmployeeRequest{Email: str("nope")},
			wantKey: "email",
		},
		{
			name:    "malformed department id",
			req:     UpdateEmployeeRequest{DepartmentID: str("not-a-uuid")},
			wantKey: "departmentId",
		},
		{
			name:    "malformed manager id",
			req:     UpdateEmployeeRequest{ManagerID: str("not-a-uuid")},
			wantKey: "managerId",
		},
		{
			name:    "unknown status",
			req:     UpdateEmployeeRequest{Status: str("PAUSED")},
			wantKey: "status",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}

			var errs validator.ValidationErrors
			if !errors.As(err, &errs) {
				t.Fatalf("expected ValidationErrors, got %T", err)
			}
			if errs[0].Field != c.wantKey {
				t.Errorf("expected an error on %q, got %v", c.wantKey, errs)
			}
		})
	}
}
