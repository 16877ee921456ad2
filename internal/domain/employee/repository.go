package employee

import "context"

type Repository interface {
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	// GetByAccountOrEmail resolves the employee a principal represents:
	// direct account link first, case-sensitive email match as fallback.
	// Returns ErrNoEmployeeLink when neither matches.
	GetByAccountOrEmail(ctx context.Context, accountID, email string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)
	Delete(ctx context.Context, id string) error
}
