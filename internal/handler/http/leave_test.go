package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub/ems-backend-go/internal/domain/auth"
	"github.com/staffhub/ems-backend-go/internal/domain/leave"
)

type stubLeaveService struct {
	request  leave.LeaveRequest
	requests []leave.LeaveRequest
}

func (s *stubLeaveService) Create(ctx context.Context, principal auth.Principal, req leave.CreateLeaveRequestRequest) (leave.LeaveRequest, error) {
	return s.request, nil
}

func (s *stubLeaveService) MyRequests(ctx context.Context, principal auth.Principal) ([]leave.LeaveRequest, error) {
	return s.requests, nil
}

func (s *stubLeaveService) Pending(ctx context.Context) ([]leave.LeaveRequest, error) {
	return s.requests, nil
}

func (s *stubLeaveService) Approve(ctx context.Context, principal auth.Principal, requestID string) (leave.LeaveRequest, error) {
	return s.request, nil
}

func (s *stubLeaveService) Reject(ctx context.Context, principal auth.Principal, requestID string) (leave.LeaveRequest, error) {
	return s.request, nil
}

// authedRequest builds a request carrying verified claims the way the
// Verifier middleware would have left them.
func authedRequest(t *testing.T, method, target, body string) *http.Request {
	t.Helper()

	tokenAuth := jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"user_id": "account-1",
		"email":   "hr@example.com",
		"role":    "HR",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	return req.WithContext(jwtauth.NewContext(req.Context(), token, nil))
}

func leaveFixture() leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:         "11111111-1111-1111-1111-111111111111",
		EmployeeID: "22222222-2222-2222-2222-222222222222",
		Type:       leave.TypeAnnual,
		StartDate:  time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		Status:     leave.StatusPending,
	}
}

func TestLeaveCreateBodyKeyedByRequest(t *testing.T) {
	h := NewLeaveHandler(&stubLeaveService{request: leaveFixture()})

	rec := httptest.NewRecorder()
	body := `{"leaveTypeId":"annual","startDate":"2025-03-03","endDate":"2025-03-05"}`
	h.Create(rec, authedRequest(t, http.MethodPost, "/api/leaves", body))

	require.Equal(t, http.StatusCreated, rec.Code)

	var got map[string]leave.LeaveRequestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	resp, ok := got["request"]
	require.True(t, ok, `create body should be keyed "request", got %s`, rec.Body.String())
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", resp.ID)
	assert.Equal(t, string(leave.StatusPending), resp.Status)
}

func TestLeaveListBodiesKeyedByRequests(t *testing.T) {
	h := NewLeaveHandler(&stubLeaveService{requests: []leave.LeaveRequest{leaveFixture()}})

	for _, handle := range []http.HandlerFunc{h.My, h.Pending} {
		rec := httptest.NewRecorder()
		handle(rec, authedRequest(t, http.MethodGet, "/api/leaves/my", ""))

		require.Equal(t, http.StatusOK, rec.Code)

		var got map[string][]leave.LeaveRequestResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		resp, ok := got["requests"]
		require.True(t, ok, `list body should be keyed "requests", got %s`, rec.Body.String())
		assert.Len(t, resp, 1)
	}
}
