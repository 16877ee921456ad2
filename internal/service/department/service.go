package department

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/staffhub/ems-backend-go/internal/domain/activitylog"
	"github.com/staffhub/ems-backend-go/internal/domain/auth"
	"github.com/staffhub/ems-backend-go/internal/domain/department"
	"github.com/staffhub/ems-backend-go/internal/pkg/database"
	"github.com/staffhub/ems-backend-go/internal/repository/postgresql"
	activitylogService "github.com/staffhub/ems-backend-go/internal/service/activitylog"
)

type DepartmentServiceImpl struct {
	db *database.DB
	department.Repository
	activity *activitylogService.Service
}

func NewDepartmentService(db *database.DB, departmentRepository department.Repository, activityService *activitylogService.Service) department.Service {
	return &DepartmentServiceImpl{
		db:         db,
		Repository: departmentRepository,
		activity:   activityService,
	}
}

// List implements department.Service.
func (s *DepartmentServiceImpl) List(ctx context.Context) ([]department.Department, error) {
	return s.Repository.List(ctx)
}

// Create implements department.Service.
func (s *DepartmentServiceImpl) Create(ctx context.Context, actor auth.Principal, req department.CreateDepartmentRequest) (department.Department, error) {
	var created department.Department
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		created, err = s.Repository.Create(txCtx, department.Department{
			Name:        req.Name,
			Description: req.Description,
		})
		if err != nil {
			return err
		}

		return s.activity.Record(txCtx, actor, activitylog.ActionDepartmentCreated, created.ID)
	})
	if err != nil {
		return department.Department{}, err
	}

	return created, nil
}

// Update implements department.Service.
func (s *DepartmentServiceImpl) Update(ctx context.Context, actor auth.Principal, req department.UpdateDepartmentRequest) (department.Department, error) {
	var updated department.Department
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		updated, err = s.Repository.Update(txCtx, req)
		if err != nil {
			return err
		}

		return s.activity.Record(txCtx, actor, activitylog.ActionDepartmentUpdated, updated.ID)
	})
	if err != nil {
		return department.Department{}, err
	}

	return updated, nil
}

// Delete implements department.Service. Departments with employees assigned
// are protected by the RESTRICT foreign key.
func (s *DepartmentServiceImpl) Delete(ctx context.Context, actor auth.Principal, id string) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.Repository.Delete(txCtx, id); err != nil {
			return err
		}

		return s.activity.Record(txCtx, actor, activitylog.ActionDepartmentDeleted, id)
	})
}
