package leave

import (
	"errors"
	"testing"
	"time"

	"github.com/staffhub/ems-backend-go/internal/pkg/validator"
)

func validCreateRequest() CreateLeaveRequestRequest {
	return CreateLeaveRequestRequest{
		LeaveType: "annual",
		StartDate: "2025-07-01",
		EndDate:   "2025-07-05",
	}
}

func TestCreateLeaveRequestValidate(t *testing.T) {
	req := validCreateRequest()
	if err := req.Validate(); err != nil {
		t.Fatalf("valid request failed validation: %v", err)
	}
}

func TestCreateLeaveRequestValidateFailures(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*CreateLeaveRequestRequest)
		wantKey string
	}{
		{
			name:    "missing leave type",
			mutate:  func(r *CreateLeaveRequestRequest) { r.LeaveType = "" },
			wantKey: "leaveTypeId",
		},
		{
			name:    "unknown leave type",
			mutate:  func(r *CreateLeaveRequestRequest) { r.LeaveType = "sabbatical" },
			wantKey: "leaveTypeId",
		},
		{
			name:    "missing start date",
			mutate:  func(r *CreateLeaveRequestRequest) { r.StartDate = "" },
			wantKey: "startDate",
		},
		{
			name:    "malformed start date",
			mutate:  func(r *CreateLeaveRequestRequest) { r.StartDate = "01/07/2025" },
			wantKey: "startDate",
		},
		{
			name:    "malformed end date",
			mutate:  func(r *CreateLeaveRequestRequest) { r.EndDate = "2025-02-30" },
			wantKey: "endDate",
		},
		{
			name: "malformed employee id",
			mutate: func(r *CreateLeaveRequestRequest) {
				target := "not-a-uuid"
				r.EmployeeID = &target
			},
			wantKey: "employeeId",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := validCreateRequest()
			c.mutate(&req)

			err := req.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}

			var errs validator.ValidationErrors
			if !errors.As(err, &errs) {
				t.Fatalf("expected ValidationErrors, got %T", err)
			}
			if _, ok := errs.ToMap()[c.wantKey]; !ok {
				t.Errorf("expected error on field %q, got %v", c.wantKey, errs.ToMap())
			}
		})
	}
}

func TestStatusIsTerminal(t *testing.T) {
	if StatusPending.IsTerminal() {
		t.Error("PENDING should not be terminal")
	}
	if !StatusApproved.IsTerminal() {
		t.Error("APPROVED should be terminal")
	}
	if !StatusRejected.IsTerminal() {
		t.Error("REJECTED should be terminal")
	}
}

func TestToResponseFormatsDates(t *testing.T) {
	approvedAt := time.Date(2025, 7, 2, 10, 30, 0, 0, time.UTC)
	approver := "approver-id"

	request := LeaveRequest{
		ID:                   "req-id",
		EmployeeID:           "emp-id",
		Type:                 TypeAnnual,
		StartDate:            time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:              time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC),
		Status:               StatusApproved,
		ApprovedByEmployeeID: &approver,
		ApprovedAt:           &approvedAt,
	}

	resp := request.ToResponse()
	if resp.StartDate != "2025-07-01" || resp.EndDate != "2025-07-05" {
		t.Errorf("unexpected date formatting: %s / %s", resp.StartDate, resp.EndDate)
	}
	if resp.ApprovedAt == nil || *resp.ApprovedAt != "2025-07-02T10:30:00Z" {
		t.Errorf("unexpected approvedAt: %v", resp.ApprovedAt)
	}
	if resp.Status != "APPROVED" {
		t.Errorf("unexpected status: %s", resp.Status)
	}
}
