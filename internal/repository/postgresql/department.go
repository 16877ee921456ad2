package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/staffhub/ems-backend-go/internal/domain/department"
	"github.com/staffhub/ems-backend-go/internal/pkg/database"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.Repository {
	return &departmentRepositoryImpl{db: db}
}

func scanDepartment(row pgx.Row) (department.Department, error) {
	var found department.Department
	err := row.Scan(
		&found.ID,
		&found.Name,
		&found.Description,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	return found, err
}

// List implements department.Repository.
func (r *departmentRepositoryImpl) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, created_at, updated_at
		FROM departments
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	departments := []department.Department{}
	for rows.Next() {
		found, err := scanDepartment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, found)
	}

	return departments, rows.Err()
}

// GetByID implements department.Repository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, created_at, updated_at
		FROM departments
		WHERE id = $1
	`

	found, err := scanDepartment(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, err
	}

	return found, nil
}

// Create implements department.Repository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, newDepartment department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (name, description)
		VALUES ($1, $2)
		RETURNING id, name, description, created_at, updated_at
	`

	created, err := scanDepartment(q.QueryRow(ctx, query, newDepartment.Name, newDepartment.Description))
	if err != nil {
		if isUniqueViolation(err) {
			return department.Department{}, department.ErrNameExists
		}
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return created, nil
}

// Update implements department.Repository.
func (r *departmentRepositoryImpl) Update(ctx context.Context, req department.UpdateDepartmentRequest) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE departments
		SET name = COALESCE($1, name),
			description = COALESCE($2, description),
			updated_at = NOW()
		WHERE id = $3
		RETURNING id, name, description, created_at, updated_at
	`

	updated, err := scanDepartment(q.QueryRow(ctx, query, req.Name, req.Description, req.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		if isUniqueViolation(err) {
			return department.Department{}, department.ErrNameExists
		}
		return department.Department{}, fmt.Errorf("failed to update department: %w", err)
	}

	return updated, nil
}

// Delete implements department.Repository. The employees FK is RESTRICT, so
// a department with members surfaces as ErrDepartmentInUse.
func (r *departmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return department.ErrDepartmentInUse
		}
		return fmt.Errorf("failed to delete department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}
