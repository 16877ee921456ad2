package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/staffhub/ems-backend-go/internal/domain/employee"
	"github.com/staffhub/ems-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.account_id, e.employee_code, e.first_name, e.last_name, e.email,
	e.phone, e.designation, e.department_id, e.manager_id, e.date_of_joining,
	e.status, e.created_at, e.updated_at, d.name, a.role`

const employeeJoins = `
	FROM employees e
	JOIN departments d ON d.id = e.department_id
	LEFT JOIN accounts a ON a.id = e.account_id`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var found employee.Employee
	err := row.Scan(
		&found.ID,
		&found.AccountID,
		&found.EmployeeCode,
		&found.FirstName,
		&found.LastName,
		&found.Email,
		&found.Phone,
		&found.Designation,
		&found.DepartmentID,
		&found.ManagerID,
		&found.DateOfJoining,
		&found.Status,
		&found.CreatedAt,
		&found.UpdatedAt,
		&found.DepartmentName,
		&found.AccountRole,
	)
	return found, err
}

// List implements employee.Repository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + employeeColumns + employeeJoins + `
		ORDER BY e.employee_code`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		found, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, found)
	}

	return employees, rows.Err()
}

// GetByID implements employee.Repository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + employeeColumns + employeeJoins + `
		WHERE e.id = $1`

	found, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return found, nil
}

// GetByAccountOrEmail implements employee.Repository. The account link wins
// over the email fallback when both could match.
func (r *employeeRepositoryImpl) GetByAccountOrEmail(ctx context.Context, accountID, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + employeeColumns + employeeJoins + `
		WHERE e.account_id = $1 OR e.email = $2
		ORDER BY (e.account_id = $1) DESC
		LIMIT 1`

	found, err := scanEmployee(q.QueryRow(ctx, query, accountID, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrNoEmployeeLink
		}
		return employee.Employee{}, err
	}

	return found, nil
}

// Create implements employee.Repository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			account_id, employee_code, first_name, last_name, email, phone,
			designation, department_id, manager_id, date_of_joining, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newEmployee.AccountID,
		newEmployee.EmployeeCode,
		newEmployee.FirstName,
		newEmployee.LastName,
		newEmployee.Email,
		newEmployee.Phone,
		newEmployee.Designation,
		newEmployee.DepartmentID,
		newEmployee.ManagerID,
		newEmployee.DateOfJoining,
		newEmployee.Status,
	).Scan(&newEmployee.ID, &newEmployee.CreatedAt, &newEmployee.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			if strings.Contains(err.Error(), "employee_code") {
				return employee.Employee{}, employee.ErrEmployeeCodeExists
			}
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return newEmployee, nil
}

// Update implements employee.Repository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET employee_code = COALESCE($1, employee_code),
			first_name = COALESCE($2, first_name),
			last_name = COALESCE($3, last_name),
			email = COALESCE($4, email),
			phone = COALESCE($5, phone),
			designation = COALESCE($6, designation),
			department_id = COALESCE($7, department_id),
			manager_id = COALESCE($8, manager_id),
			date_of_joining = COALESCE($9::date, date_of_joining),
			status = COALESCE($10, status),
			updated_at = NOW()
		WHERE id = $11
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		req.EmployeeCode,
		req.FirstName,
		req.LastName,
		req.Email,
		req.Phone,
		req.Designation,
		req.DepartmentID,
		req.ManagerID,
		req.DateOfJoining,
		req.Status,
		req.ID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		if isUniqueViolation(err) {
			if strings.Contains(err.Error(), "employee_code") {
				return employee.Employee{}, employee.ErrEmployeeCodeExists
			}
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return r.GetByID(ctx, id)
}

// Delete implements employee.Repository. Leave requests and attendance
// records go with the employee via ON DELETE CASCADE.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
