package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/staffhub/ems-backend-go/internal/domain/account"
	"github.com/staffhub/ems-backend-go/internal/domain/auth"
	"github.com/staffhub/ems-backend-go/internal/pkg/database"
	"github.com/staffhub/ems-backend-go/internal/pkg/jwt"
	"github.com/staffhub/ems-backend-go/internal/pkg/oauth"
)

type AuthServiceImpl struct {
	db *database.DB
	account.Repository
	jwt.Service
	google oauth.GoogleService
}

func NewAuthService(db *database.DB, accountRepository account.Repository, jwtService jwt.Service, googleService oauth.GoogleService) auth.AuthService {
	return &AuthServiceImpl{
		db:         db,
		Repository: accountRepository,
		Service:    jwtService,
		google:     googleService,
	}
}

// Login implements auth.AuthService. Unknown email and wrong password are
// indistinguishable to the caller.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	accountData, err := a.Repository.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == account.ErrAccountNotFound {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(accountData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueToken(accountData)
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context, accountID string) (account.Account, error) {
	accountData, err := a.Repository.GetByID(ctx, accountID)
	if err != nil {
		if err == account.ErrAccountNotFound {
			return account.Account{}, err
		}
		return account.Account{}, fmt.Errorf("failed to get account by id: %w", err)
	}

	return accountData, nil
}

// LoginWithGoogle implements auth.AuthService. Only pre-provisioned accounts
// may sign in; the verified Google email must match an existing account.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, code string) (auth.TokenResponse, error) {
	if a.google == nil {
		return auth.TokenResponse{}, auth.ErrOAuthDisabled
	}

	token, err := a.google.VerifyToken(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to exchange oauth code: %w", err)
	}

	info, err := a.google.VerifyUser(ctx, token)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to fetch google user info: %w", err)
	}

	if !info.VerifiedEmail {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	accountData, err := a.Repository.GetByEmail(ctx, info.Email)
	if err != nil {
		if err == account.ErrAccountNotFound {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	return a.issueToken(accountData)
}

func (a *AuthServiceImpl) issueToken(accountData account.Account) (auth.TokenResponse, error) {
	token, expiresAt, err := a.Service.GenerateAccessToken(accountData.ID, accountData.Email, accountData.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.TokenResponse{Token: token, ExpiresAt: expiresAt}, nil
}
