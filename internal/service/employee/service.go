package employee

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffhub/ems-backend-go/internal/domain/account"
	"github.com/staffhub/ems-backend-go/internal/domain/activitylog"
	"github.com/staffhub/ems-backend-go/internal/domain/auth"
	"github.com/staffhub/ems-backend-go/internal/domain/employee"
	"github.com/staffhub/ems-backend-go/internal/pkg/database"
	"github.com/staffhub/ems-backend-go/internal/pkg/validator"
	"github.com/staffhub/ems-backend-go/internal/repository/postgresql"
	activitylogService "github.com/staffhub/ems-backend-go/internal/service/activitylog"
)

// DefaultPassword is assigned when an employee is onboarded without an
// explicit password.
const DefaultPassword = "Password123!"

type EmployeeServiceImpl struct {
	db *database.DB
	employee.Repository
	accounts account.Repository
	activity *activitylogService.Service
}

func NewEmployeeService(db *database.DB, employeeRepository employee.Repository, accountRepository account.Repository, activityService *activitylogService.Service) employee.Service {
	return &EmployeeServiceImpl{
		db:         db,
		Repository: employeeRepository,
		accounts:   accountRepository,
		activity:   activityService,
	}
}

// List implements employee.Service.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.Employee, error) {
	return s.Repository.List(ctx)
}

// Get implements employee.Service.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.Employee, error) {
	return s.Repository.GetByID(ctx, id)
}

// Create implements employee.Service. The employee and its login account are
// created in one transaction so onboarding can never leave one without the
// other.
func (s *EmployeeServiceImpl) Create(ctx context.Context, actor auth.Principal, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	password := DefaultPassword
	if req.Password != nil {
		password = *req.Password
	}
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := account.RoleEmployee
	if req.Role != nil {
		role = account.Role(*req.Role)
	}

	dateOfJoining, ok := validator.IsValidDate(req.DateOfJoining)
	if !ok {
		return employee.Employee{}, validator.ValidationErrors{{
			Field:   "dateOfJoining",
			Message: "must be a date in YYYY-MM-DD format",
		}}
	}

	var created employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		newAccount, err := s.accounts.Create(txCtx, account.Account{
			Email:        req.Email,
			PasswordHash: string(passwordHash),
			Role:         role,
		})
		if err != nil {
			return err
		}

		created, err = s.Repository.Create(txCtx, employee.Employee{
			AccountID:     &newAccount.ID,
			EmployeeCode:  req.EmployeeCode,
			FirstName:     req.FirstName,
			LastName:      req.LastName,
			Email:         req.Email,
			Phone:         req.Phone,
			Designation:   req.Designation,
			DepartmentID:  req.DepartmentID,
			ManagerID:     req.ManagerID,
			DateOfJoining: dateOfJoining,
			Status:        employee.Status(req.Status),
		})
		if err != nil {
			return err
		}

		return s.activity.Record(txCtx, actor, activitylog.ActionEmployeeCreated, created.ID)
	})
	if err != nil {
		return employee.Employee{}, err
	}

	return s.Repository.GetByID(ctx, created.ID)
}

// Update implements employee.Service. Email, role and password changes
// cascade into the linked account inside the same transaction.
func (s *EmployeeServiceImpl) Update(ctx context.Context, actor auth.Principal, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	current, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.Employee{}, err
	}

	var updated employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		updated, err = s.Repository.Update(txCtx, req)
		if err != nil {
			return err
		}

		if current.AccountID != nil && (req.Email != nil || req.Role != nil || req.Password != nil) {
			accountUpdate := account.UpdateAccountRequest{ID: *current.AccountID}
			accountUpdate.Email = req.Email
			if req.Role != nil {
				role := account.Role(*req.Role)
				accountUpdate.Role = &role
			}
			if req.Password != nil {
				hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
				if err != nil {
					return fmt.Errorf("failed to hash password: %w", err)
				}
				hashed := string(hash)
				accountUpdate.PasswordHash = &hashed
			}
			if err := s.accounts.Update(txCtx, accountUpdate); err != nil {
				return err
			}
		}

		return s.activity.Record(txCtx, actor, activitylog.ActionEmployeeUpdated, updated.ID)
	})
	if err != nil {
		return employee.Employee{}, err
	}

	return s.Repository.GetByID(ctx, updated.ID)
}

// Delete implements employee.Service. Removing the employee cascades to its
// leave and attendance rows; the login account goes in the same transaction.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, actor auth.Principal, id string) error {
	current, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.Repository.Delete(txCtx, id); err != nil {
			return err
		}

		if current.AccountID != nil {
			if err := s.accounts.Delete(txCtx, *current.AccountID); err != nil {
				return err
			}
		}

		return s.activity.Record(txCtx, actor, activitylog.ActionEmployeeDeleted, id)
	})
}

// ResetPassword implements employee.Service.
func (s *EmployeeServiceImpl) ResetPassword(ctx context.Context, actor auth.Principal, req employee.ResetPasswordRequest) error {
	current, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if current.AccountID == nil {
		return employee.ErrNoEmployeeLink
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.accounts.UpdatePassword(txCtx, *current.AccountID, string(hash)); err != nil {
			return err
		}

		return s.activity.Record(txCtx, actor, activitylog.ActionPasswordReset, current.ID)
	})
}
