package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/staffhub/ems-backend-go/internal/domain/account"
	"github.com/staffhub/ems-backend-go/internal/handler/http/response"
)

// Require gates a route group on the policy table: 401 when no verified
// identity is present, 403 when the identity's role is not allowed.
func Require(operation account.Operation) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, response.KindUnauthorized)
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok {
				response.Unauthorized(w, response.KindInvalidToken)
				return
			}

			if !account.Allowed(account.Role(roleStr), operation) {
				response.Forbidden(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
