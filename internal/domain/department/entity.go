package department

import "time"

// Department is shared master data; employees reference it and its lifetime
// is independent of theirs.
type Department struct {
	ID          string
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
