package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/staffhub/ems-backend-go/internal/domain/attendance"
	"github.com/staffhub/ems-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepositoryImpl{db: db}
}

func scanAttendanceRecord(row pgx.Row) (attendance.AttendanceRecord, error) {
	var found attendance.AttendanceRecord
	err := row.Scan(
		&found.ID,
		&found.EmployeeID,
		&found.Date,
		&found.CheckInTime,
		&found.CheckOutTime,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	return found, err
}

// ListByEmployee implements attendance.Repository, newest date first.
func (r *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, check_in_time, check_out_time, created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	records := []attendance.AttendanceRecord{}
	for rows.Next() {
		found, err := scanAttendanceRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, found)
	}

	return records, rows.Err()
}

// Create implements attendance.Repository. The (employee_id, date) unique
// constraint turns a duplicate same-day check-in into ErrAlreadyCheckedIn.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, newRecord attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (employee_id, date, check_in_time)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newRecord.EmployeeID,
		newRecord.Date,
		newRecord.CheckInTime,
	).Scan(&newRecord.ID, &newRecord.CreatedAt, &newRecord.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return attendance.AttendanceRecord{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return newRecord, nil
}

// SetCheckOut implements attendance.Repository.
func (r *attendanceRepositoryImpl) SetCheckOut(ctx context.Context, employeeID string, date time.Time, checkOut time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET check_out_time = $1, updated_at = NOW()
		WHERE employee_id = $2 AND date = $3
	`

	tag, err := q.Exec(ctx, query, checkOut, employeeID, date)
	if err != nil {
		return 0, fmt.Errorf("failed to set check-out time: %w", err)
	}

	return tag.RowsAffected(), nil
}
