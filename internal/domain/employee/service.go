package employee

import (
	"context"

	"github.com/staffhub/ems-backend-go/internal/domain/auth"
)

type Service interface {
	List(ctx context.Context) ([]Employee, error)
	Get(ctx context.Context, id string) (Employee, error)
	Create(ctx context.Context, actor auth.Principal, req CreateEmployeeRequest) (Employee, error)
	Update(ctx context.Context, actor auth.Principal, req UpdateEmployeeRequest) (Employee, error)
	Delete(ctx context.Context, actor auth.Principal, id string) error
	ResetPassword(ctx context.Context, actor auth.Principal, req ResetPasswordRequest) error
}
