package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrInvalidDateRange     = errors.New("end date is before start date")
	ErrForbiddenTarget      = errors.New("cannot create leave for another employee")

	// ErrAlreadyProcessed guards the terminal states: approve and reject
	// are valid from PENDING only and never overwrite a decision.
	ErrAlreadyProcessed = errors.New("leave request already processed")
)
