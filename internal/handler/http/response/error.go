package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/staffhub/ems-backend-go/internal/domain/account"
	"github.com/staffhub/ems-backend-go/internal/domain/attendance"
	"github.com/staffhub/ems-backend-go/internal/domain/auth"
	"github.com/staffhub/ems-backend-go/internal/domain/department"
	"github.com/staffhub/ems-backend-go/internal/domain/employee"
	"github.com/staffhub/ems-backend-go/internal/domain/leave"
	"github.com/staffhub/ems-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Anything unmapped is a
// 500 with a generic body; the cause is logged here and never leaks.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		InvalidInput(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, KindInvalidCredentials)
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, KindInvalidToken)
	case errors.Is(err, auth.ErrUnauthenticated):
		Unauthorized(w, KindUnauthorized)
	case errors.Is(err, auth.ErrOAuthDisabled):
		NotFound(w, KindNotFound)

	// Account domain errors
	case errors.Is(err, account.ErrAccountNotFound):
		NotFound(w, KindNotFound)
	case errors.Is(err, account.ErrEmailExists):
		Conflict(w, KindConflict)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, KindNotFound)
	case errors.Is(err, employee.ErrNoEmployeeLink):
		NotFound(w, KindNoEmployeeLink)
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, KindConflict)
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, KindConflict)

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, KindNotFound)
	case errors.Is(err, department.ErrDepartmentInUse):
		Conflict(w, KindDepartmentInUse)
	case errors.Is(err, department.ErrNameExists):
		Conflict(w, KindConflict)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, KindNotFound)
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, KindInvalidDateRange)
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, KindInvalidStateTransition)
	case errors.Is(err, leave.ErrForbiddenTarget):
		Forbidden(w)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, KindAlreadyCheckedIn)

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w)
	}
}
