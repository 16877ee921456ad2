package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/staffhub/ems-backend-go/internal/handler/http/response"
)

// AuthRequired rejects requests whose token is missing, unverifiable, or not
// an access token. Missing credentials and bad credentials stay distinct
// kinds so clients can tell re-login from retry-with-header.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				if r.Header.Get("Authorization") == "" {
					response.Unauthorized(w, response.KindUnauthorized)
					return
				}
				response.Unauthorized(w, response.KindInvalidToken)
				return
			}

			if token == nil {
				response.Unauthorized(w, response.KindUnauthorized)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.Unauthorized(w, response.KindInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.Unauthorized(w, response.KindInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
