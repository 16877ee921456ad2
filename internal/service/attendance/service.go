package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/staffhub/ems-backend-go/internal/domain/attendance"
	"github.com/staffhub/ems-backend-go/internal/domain/auth"
	"github.com/staffhub/ems-backend-go/internal/domain/employee"
	"github.com/staffhub/ems-backend-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.Repository
	employees employee.Repository
}

func NewAttendanceService(db *database.DB, attendanceRepository attendance.Repository, employeeRepository employee.Repository) attendance.Service {
	return &AttendanceServiceImpl{
		db:         db,
		Repository: attendanceRepository,
		employees:  employeeRepository,
	}
}

// CheckIn implements attendance.Service. One record per (employee, date);
// a second check-in the same day fails instead of inserting a duplicate.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, principal auth.Principal, req attendance.CheckRequest) (attendance.AttendanceRecord, error) {
	own, err := s.employees.GetByAccountOrEmail(ctx, principal.AccountID, principal.Email)
	if err != nil {
		return attendance.AttendanceRecord{}, err
	}

	date, err := resolveDate(req.Date)
	if err != nil {
		return attendance.AttendanceRecord{}, err
	}

	now := time.Now().UTC()
	record, err := s.Repository.Create(ctx, attendance.AttendanceRecord{
		EmployeeID:  own.ID,
		Date:        date,
		CheckInTime: &now,
	})
	if err != nil {
		return attendance.AttendanceRecord{}, err
	}

	return record, nil
}

// CheckOut implements attendance.Service. Zero matched rows is reported as
// updated=0, a soft success, matching the check-in-less checkout behavior
// the clients already handle.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, principal auth.Principal, req attendance.CheckRequest) (int64, error) {
	own, err := s.employees.GetByAccountOrEmail(ctx, principal.AccountID, principal.Email)
	if err != nil {
		return 0, err
	}

	date, err := resolveDate(req.Date)
	if err != nil {
		return 0, err
	}

	return s.Repository.SetCheckOut(ctx, own.ID, date, time.Now().UTC())
}

// ListMine implements attendance.Service.
func (s *AttendanceServiceImpl) ListMine(ctx context.Context, principal auth.Principal) ([]attendance.AttendanceRecord, error) {
	own, err := s.employees.GetByAccountOrEmail(ctx, principal.AccountID, principal.Email)
	if err != nil {
		if err == employee.ErrNoEmployeeLink {
			return []attendance.AttendanceRecord{}, nil
		}
		return nil, err
	}

	return s.Repository.ListByEmployee(ctx, own.ID)
}

func resolveDate(dateStr *string) (time.Time, error) {
	if dateStr == nil {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	date, err := time.Parse("2006-01-02", *dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date: %w", err)
	}
	return date, nil
}
