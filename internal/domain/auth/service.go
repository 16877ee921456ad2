package auth

import (
	"context"

	"github.com/staffhub/ems-backend-go/internal/domain/account"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Me(ctx context.Context, accountID string) (account.Account, error)
	LoginWithGoogle(ctx context.Context, code string) (TokenResponse, error)
}
