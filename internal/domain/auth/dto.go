package auth

import (
	"github.com/staffhub/ems-backend-go/internal/domain/account"
	"github.com/staffhub/ems-backend-go/internal/pkg/validator"
)

// Principal is the authenticated identity making a request, derived from a
// verified token. It carries the account id, not an employee id; "my data"
// endpoints resolve the employee link per request.
type Principal struct {
	AccountID string
	Email     string
	Role      account.Role
}

// PrincipalFromClaims rebuilds a principal from verified JWT claims.
func PrincipalFromClaims(claims map[string]interface{}) (Principal, error) {
	accountID, ok := claims["user_id"].(string)
	if !ok || accountID == "" {
		return Principal{}, ErrInvalidToken
	}
	email, ok := claims["email"].(string)
	if !ok {
		return Principal{}, ErrInvalidToken
	}
	role, ok := claims["role"].(string)
	if !ok {
		return Principal{}, ErrInvalidToken
	}
	return Principal{AccountID: accountID, Email: email, Role: account.Role(role)}, nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}
