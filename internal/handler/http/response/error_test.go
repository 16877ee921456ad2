package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub/ems-backend-go/internal/domain/attendance"
	"github.com/staffhub/ems-backend-go/internal/domain/auth"
	"github.com/staffhub/ems-backend-go/internal/domain/department"
	"github.com/staffhub/ems-backend-go/internal/domain/employee"
	"github.com/staffhub/ems-backend-go/internal/domain/leave"
	"github.com/staffhub/ems-backend-go/internal/pkg/validator"
)

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) ErrorBody {
	t.Helper()
	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHandleErrorMapping(t *testing.T) {
	cases := []struct {
		err        error
		wantStatus int
		wantKind   string
	}{
		{auth.ErrInvalidCredentials, http.StatusUnauthorized, KindInvalidCredentials},
		{auth.ErrInvalidToken, http.StatusUnauthorized, KindInvalidToken},
		{auth.ErrUnauthenticated, http.StatusUnauthorized, KindUnauthorized},
		{employee.ErrEmployeeNotFound, http.StatusNotFound, KindNotFound},
		{employee.ErrNoEmployeeLink, http.StatusNotFound, KindNoEmployeeLink},
		{employee.ErrEmployeeCodeExists, http.StatusConflict, KindConflict},
		{department.ErrDepartmentNotFound, http.StatusNotFound, KindNotFound},
		{department.ErrDepartmentInUse, http.StatusConflict, KindDepartmentInUse},
		{leave.ErrLeaveRequestNotFound, http.StatusNotFound, KindNotFound},
		{leave.ErrInvalidDateRange, http.StatusBadRequest, KindInvalidDateRange},
		{leave.ErrAlreadyProcessed, http.StatusConflict, KindInvalidStateTransition},
		{leave.ErrForbiddenTarget, http.StatusForbidden, KindForbidden},
		{attendance.ErrAlreadyCheckedIn, http.StatusConflict, KindAlreadyCheckedIn},
		{errors.New("database exploded"), http.StatusInternalServerError, KindInternalError},
	}

	for _, c := range cases {
		t.Run(c.wantKind+"/"+c.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, c.err)

			assert.Equal(t, c.wantStatus, rec.Code)
			assert.Equal(t, c.wantKind, decodeErrorBody(t, rec).Error)
		})
	}
}

func TestHandleErrorUnwrapsWrappedErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, fmt.Errorf("creating request: %w", leave.ErrInvalidDateRange))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, KindInvalidDateRange, decodeErrorBody(t, rec).Error)
}

func TestHandleErrorValidationDetails(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "email", Message: "email is required"},
	}

	rec := httptest.NewRecorder()
	HandleError(rec, errs)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Equal(t, KindInvalidInput, body.Error)
	assert.Equal(t, "email is required", body.Details["email"])
}

func TestInternalErrorBodyNeverLeaksCause(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, errors.New("pq: connection refused host=10.0.0.3"))

	assert.NotContains(t, rec.Body.String(), "10.0.0.3")
	assert.Equal(t, KindInternalError, decodeErrorBody(t, rec).Error)
}
