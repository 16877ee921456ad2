package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/staffhub/ems-backend-go/internal/domain/account"
	"github.com/staffhub/ems-backend-go/internal/domain/activitylog"
	"github.com/staffhub/ems-backend-go/internal/domain/auth"
	"github.com/staffhub/ems-backend-go/internal/domain/employee"
	"github.com/staffhub/ems-backend-go/internal/domain/leave"
	"github.com/staffhub/ems-backend-go/internal/pkg/database"
	"github.com/staffhub/ems-backend-go/internal/repository/postgresql"
	activitylogService "github.com/staffhub/ems-backend-go/internal/service/activitylog"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.Repository
	employees employee.Repository
	activity  *activitylogService.Service
}

func NewLeaveService(db *database.DB, leaveRepository leave.Repository, employeeRepository employee.Repository, activityService *activitylogService.Service) leave.Service {
	return &LeaveServiceImpl{
		db:         db,
		Repository: leaveRepository,
		employees:  employeeRepository,
		activity:   activityService,
	}
}

// Create implements leave.Service. A request always starts PENDING. Creating
// on behalf of another employee requires an admin-level role; everyone else
// creates for their own resolved employee record.
func (s *LeaveServiceImpl) Create(ctx context.Context, principal auth.Principal, req leave.CreateLeaveRequestRequest) (leave.LeaveRequest, error) {
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to parse start date: %w", err)
	}

	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	if endDate.Before(startDate) {
		return leave.LeaveRequest{}, leave.ErrInvalidDateRange
	}

	own, err := s.employees.GetByAccountOrEmail(ctx, principal.AccountID, principal.Email)

	employeeID := ""
	switch {
	case req.EmployeeID != nil && (err != nil || *req.EmployeeID != own.ID):
		// Explicit target that is not the caller's own record.
		if !account.Allowed(principal.Role, account.OperationEmployeeManage) {
			return leave.LeaveRequest{}, leave.ErrForbiddenTarget
		}
		if _, err := s.employees.GetByID(ctx, *req.EmployeeID); err != nil {
			return leave.LeaveRequest{}, err
		}
		employeeID = *req.EmployeeID
	case err != nil:
		return leave.LeaveRequest{}, err
	default:
		employeeID = own.ID
	}

	created, err := s.Repository.Create(ctx, leave.LeaveRequest{
		EmployeeID: employeeID,
		Type:       leave.Type(req.LeaveType),
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return created, nil
}

// MyRequests implements leave.Service. No employee link resolves to an empty
// list, not an error.
func (s *LeaveServiceImpl) MyRequests(ctx context.Context, principal auth.Principal) ([]leave.LeaveRequest, error) {
	own, err := s.employees.GetByAccountOrEmail(ctx, principal.AccountID, principal.Email)
	if err != nil {
		if err == employee.ErrNoEmployeeLink {
			return []leave.LeaveRequest{}, nil
		}
		return nil, err
	}

	return s.Repository.ListByEmployee(ctx, own.ID)
}

// Pending implements leave.Service.
func (s *LeaveServiceImpl) Pending(ctx context.Context) ([]leave.LeaveRequest, error) {
	return s.Repository.ListByStatus(ctx, leave.StatusPending)
}

// Approve implements leave.Service.
func (s *LeaveServiceImpl) Approve(ctx context.Context, principal auth.Principal, requestID string) (leave.LeaveRequest, error) {
	return s.transition(ctx, principal, requestID, leave.StatusApproved, activitylog.ActionLeaveApproved)
}

// Reject implements leave.Service.
func (s *LeaveServiceImpl) Reject(ctx context.Context, principal auth.Principal, requestID string) (leave.LeaveRequest, error) {
	return s.transition(ctx, principal, requestID, leave.StatusRejected, activitylog.ActionLeaveRejected)
}

// transition moves a PENDING request to a terminal state and records the
// approver's resolved employee id. Status change and audit entry commit
// together or not at all.
func (s *LeaveServiceImpl) transition(ctx context.Context, principal auth.Principal, requestID string, target leave.Status, action string) (leave.LeaveRequest, error) {
	request, err := s.Repository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	if request.Status != leave.StatusPending {
		return leave.LeaveRequest{}, leave.ErrAlreadyProcessed
	}

	approver, err := s.employees.GetByAccountOrEmail(ctx, principal.AccountID, principal.Email)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	var updated leave.LeaveRequest
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		updated, err = s.Repository.UpdateStatus(txCtx, leave.UpdateStatusRequest{
			ID:                   requestID,
			Status:               target,
			ApprovedByEmployeeID: approver.ID,
		})
		if err != nil {
			return err
		}

		return s.activity.Record(txCtx, principal, action, requestID)
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return updated, nil
}
