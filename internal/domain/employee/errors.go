package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeCodeExists = errors.New("employee code already exists")
	ErrEmailExists        = errors.New("email already registered")

	// ErrNoEmployeeLink means the authenticated account resolves to no
	// employee record, neither by direct link nor by email.
	ErrNoEmployeeLink = errors.New("no employee record linked to this account")
)
