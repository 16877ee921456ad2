package department

import (
	"context"

	"github.com/staffhub/ems-backend-go/internal/domain/auth"
)

type Service interface {
	List(ctx context.Context) ([]Department, error)
	Create(ctx context.Context, actor auth.Principal, req CreateDepartmentRequest) (Department, error)
	Update(ctx context.Context, actor auth.Principal, req UpdateDepartmentRequest) (Department, error)
	Delete(ctx context.Context, actor auth.Principal, id string) error
}
