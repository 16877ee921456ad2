package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub/ems-backend-go/internal/domain/account"
	"github.com/staffhub/ems-backend-go/internal/pkg/jwt"
)

const testSecret = "test-secret-key-for-jwt"

func testRouter(jwtService jwt.Service) *chi.Mux {
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
		r.Use(AuthRequired(jwtService.JWTAuth()))

		r.With(Require(account.OperationEmployeeManage)).
			Post("/employees", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
			})
		r.With(Require(account.OperationAttendanceSelf)).
			Get("/attendance/my", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
	})
	return r
}

func tokenFor(t *testing.T, jwtService jwt.Service, role account.Role) string {
	t.Helper()
	token, _, err := jwtService.GenerateAccessToken("account-id", "user@example.com", role)
	require.NoError(t, err)
	return token
}

func do(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func errorKind(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestMissingTokenIsUnauthorized(t *testing.T) {
	jwtService := jwt.NewJWTService(testSecret, "1h")
	r := testRouter(jwtService)

	rec := do(r, http.MethodGet, "/attendance/my", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthorized", errorKind(t, rec))
}

func TestBadTokenIsInvalidToken(t *testing.T) {
	jwtService := jwt.NewJWTService(testSecret, "1h")
	r := testRouter(jwtService)

	rec := do(r, http.MethodGet, "/attendance/my", "not-a-jwt")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid_token", errorKind(t, rec))
}

func TestTokenSignedWithOtherSecretIsRejected(t *testing.T) {
	jwtService := jwt.NewJWTService(testSecret, "1h")
	other := jwt.NewJWTService("another-secret", "1h")
	r := testRouter(jwtService)

	rec := do(r, http.MethodGet, "/attendance/my", tokenFor(t, other, account.RoleAdmin))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid_token", errorKind(t, rec))
}

func TestExpiredTokenIsRejected(t *testing.T) {
	jwtService := jwt.NewJWTService(testSecret, "1h")
	r := testRouter(jwtService)

	expired := jwtauth.New("HS256", []byte(testSecret), nil)
	claims := map[string]interface{}{
		"user_id": "account-id",
		"email":   "user@example.com",
		"role":    "ADMIN",
		"type":    "access",
		"exp":     time.Now().Add(-2 * time.Minute).Unix(),
	}
	_, tokenString, err := expired.Encode(claims)
	require.NoError(t, err)

	rec := do(r, http.MethodGet, "/attendance/my", tokenString)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid_token", errorKind(t, rec))
}

func TestRoleOutsidePolicyIsForbidden(t *testing.T) {
	jwtService := jwt.NewJWTService(testSecret, "1h")
	r := testRouter(jwtService)

	rec := do(r, http.MethodPost, "/employees", tokenFor(t, jwtService, account.RoleEmployee))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "forbidden", errorKind(t, rec))
}

func TestAllowedRolePasses(t *testing.T) {
	jwtService := jwt.NewJWTService(testSecret, "1h")
	r := testRouter(jwtService)

	rec := do(r, http.MethodPost, "/employees", tokenFor(t, jwtService, account.RoleHR))
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = do(r, http.MethodGet, "/attendance/my", tokenFor(t, jwtService, account.RoleEmployee))
	assert.Equal(t, http.StatusOK, rec.Code)
}

// Authorization is decided from the role claim inside the token, so a token
// minted before a role change keeps its old authority until it expires and a
// fresh login re-issues the claims.
func TestRoleClaimAuthorizesUntilReissue(t *testing.T) {
	jwtService := jwt.NewJWTService(testSecret, "1h")
	r := testRouter(jwtService)

	hrToken := tokenFor(t, jwtService, account.RoleHR)
	rec := do(r, http.MethodPost, "/employees", hrToken)
	require.Equal(t, http.StatusCreated, rec.Code)

	// The account was demoted; a re-issued token only carries EMPLOYEE.
	demotedToken := tokenFor(t, jwtService, account.RoleEmployee)
	rec = do(r, http.MethodPost, "/employees", demotedToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// The pre-demotion token still passes: the role is read from the
	// claim, not looked up per request.
	rec = do(r, http.MethodPost, "/employees", hrToken)
	assert.Equal(t, http.StatusCreated, rec.Code)
}
