package http

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/staffhub/ems-backend-go/internal/config"
	"github.com/staffhub/ems-backend-go/internal/pkg/jwt"
)

func newTestRouter() *chi.Mux {
	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.App.CORSOrigin = "http://localhost:3000"
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h")

	return NewRouter(cfg, jwtService, Handlers{
		Auth:        NewAuthHandler(nil, nil),
		Employee:    NewEmployeeHandler(nil),
		Department:  NewDepartmentHandler(nil),
		Leave:       NewLeaveHandler(nil),
		Attendance:  NewAttendanceHandler(nil),
		ActivityLog: NewActivityLogHandler(nil),
	})
}

func hasRoute(r chi.Routes, method, path string) bool {
	return r.Match(chi.NewRouteContext(), method, path)
}

func TestRouteTable(t *testing.T) {
	r := newTestRouter()

	registered := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/auth/login"},
		{http.MethodGet, "/api/auth/me"},

		{http.MethodGet, "/api/employees"},
		{http.MethodGet, "/api/employees/some-id"},
		{http.MethodPost, "/api/employees"},
		{http.MethodPut, "/api/employees/some-id"},
		{http.MethodDelete, "/api/employees/some-id"},
		{http.MethodPatch, "/api/employees/some-id/password"},

		{http.MethodGet, "/api/departments"},
		{http.MethodPost, "/api/departments"},
		{http.MethodPut, "/api/departments/some-id"},
		{http.MethodDelete, "/api/departments/some-id"},

		{http.MethodPost, "/api/leaves"},
		{http.MethodGet, "/api/leaves/my"},
		{http.MethodGet, "/api/leaves/pending"},
		{http.MethodPatch, "/api/leaves/some-id/approve"},
		{http.MethodPatch, "/api/leaves/some-id/reject"},

		{http.MethodPost, "/api/attendance/check-in"},
		{http.MethodPost, "/api/attendance/check-out"},
		{http.MethodGet, "/api/attendance/my"},

		{http.MethodGet, "/api/activity-logs"},
		{http.MethodGet, "/api/health"},
	}

	for _, route := range registered {
		assert.True(t, hasRoute(r, route.method, route.path),
			"expected %s %s to be routed", route.method, route.path)
	}
}

func TestStateChangingLeaveRoutesArePatch(t *testing.T) {
	r := newTestRouter()

	assert.False(t, hasRoute(r, http.MethodPost, "/api/leaves/some-id/approve"))
	assert.False(t, hasRoute(r, http.MethodPost, "/api/leaves/some-id/reject"))
	assert.False(t, hasRoute(r, http.MethodPost, "/api/employees/some-id/password"))
}
