package auth

import (
	"errors"
	"testing"

	"github.com/staffhub/ems-backend-go/internal/domain/account"
	"github.com/staffhub/ems-backend-go/internal/pkg/validator"
)

func TestPrincipalFromClaims(t *testing.T) {
	claims := map[string]interface{}{
		"user_id": "account-id",
		"email":   "user@example.com",
		"role":    "MANAGER",
		"type":    "access",
	}

	principal, err := PrincipalFromClaims(claims)
	if err != nil {
		t.Fatalf("PrincipalFromClaims failed: %v", err)
	}
	if principal.AccountID != "account-id" {
		t.Errorf("unexpected account id: %s", principal.AccountID)
	}
	if principal.Role != account.RoleManager {
		t.Errorf("unexpected role: %s", principal.Role)
	}
}

func TestPrincipalFromClaimsMissingFields(t *testing.T) {
	cases := []map[string]interface{}{
		{},
		{"user_id": "", "email": "a@b.cd", "role": "ADMIN"},
		{"user_id": 42, "email": "a@b.cd", "role": "ADMIN"},
		{"user_id": "id", "role": "ADMIN"},
		{"user_id": "id", "email": "a@b.cd"},
	}

	for i, claims := range cases {
		if _, err := PrincipalFromClaims(claims); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("case %d: expected ErrInvalidToken, got %v", i, err)
		}
	}
}

func TestLoginRequestValidate(t *testing.T) {
	req := LoginRequest{Email: "admin@example.com", Password: "Password123!"}
	if err := req.Validate(); err != nil {
		t.Fatalf("valid login failed validation: %v", err)
	}

	cases := []struct {
		name    string
		req     LoginRequest
		wantKey string
	}{
		{"missing email", LoginRequest{Password: "Password123!"}, "email"},
		{"bad email", LoginRequest{Email: "not-an-email", Password: "Password123!"}, "email"},
		{"missing password", LoginRequest{Email: "a@b.cd"}, "password"},
		{"short password", LoginRequest{Email: "a@b.cd", Password: "12345"}, "password"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			var errs validator.ValidationErrors
			if !errors.As(err, &errs) {
				t.Fatalf("expected ValidationErrors, got %T", err)
			}
			if _, ok := errs.ToMap()[c.wantKey]; !ok {
				t.Errorf("expected error on field %q, got %v", c.wantKey, errs.ToMap())
			}
		})
	}
}
