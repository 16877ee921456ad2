package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/staffhub/ems-backend-go/internal/domain/leave"
	"github.com/staffhub/ems-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.Repository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveColumns = `
	l.id, l.employee_id, l.leave_type, l.start_date, l.end_date, l.reason,
	l.status, l.approved_by_employee_id, l.approved_at, l.created_at, l.updated_at,
	e.first_name || ' ' || e.last_name`

const leaveJoins = `
	FROM leave_requests l
	JOIN employees e ON e.id = l.employee_id`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var found leave.LeaveRequest
	err := row.Scan(
		&found.ID,
		&found.EmployeeID,
		&found.Type,
		&found.StartDate,
		&found.EndDate,
		&found.Reason,
		&found.Status,
		&found.ApprovedByEmployeeID,
		&found.ApprovedAt,
		&found.CreatedAt,
		&found.UpdatedAt,
		&found.EmployeeName,
	)
	return found, err
}

// GetByID implements leave.Repository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + leaveColumns + leaveJoins + `
		WHERE l.id = $1`

	found, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}

	return found, nil
}

// ListByEmployee implements leave.Repository.
func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + leaveColumns + leaveJoins + `
		WHERE l.employee_id = $1
		ORDER BY l.start_date DESC`

	return r.queryMany(ctx, q, query, employeeID)
}

// ListByStatus implements leave.Repository.
func (r *leaveRequestRepositoryImpl) ListByStatus(ctx context.Context, status leave.Status) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + leaveColumns + leaveJoins + `
		WHERE l.status = $1
		ORDER BY l.created_at`

	return r.queryMany(ctx, q, query, status)
}

func (r *leaveRequestRepositoryImpl) queryMany(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]leave.LeaveRequest, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	requests := []leave.LeaveRequest{}
	for rows.Next() {
		found, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, found)
	}

	return requests, rows.Err()
}

// Create implements leave.Repository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, newRequest leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (employee_id, leave_type, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newRequest.EmployeeID,
		newRequest.Type,
		newRequest.StartDate,
		newRequest.EndDate,
		newRequest.Reason,
		newRequest.Status,
	).Scan(&newRequest.ID, &newRequest.CreatedAt, &newRequest.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return newRequest, nil
}

// UpdateStatus implements leave.Repository. The PENDING guard in the WHERE
// clause makes the transition atomic: of two racing approvals only the first
// touches a row, the second sees ErrAlreadyProcessed.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, req leave.UpdateStatusRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1,
			approved_by_employee_id = $2,
			approved_at = NOW(),
			updated_at = NOW()
		WHERE id = $3 AND status = $4
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query, req.Status, req.ApprovedByEmployeeID, req.ID, leave.StatusPending).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either the id is unknown or the request left PENDING;
			// the service distinguishes via GetByID.
			return leave.LeaveRequest{}, leave.ErrAlreadyProcessed
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request status: %w", err)
	}

	return r.GetByID(ctx, id)
}
