package activitylog

import "context"

type Repository interface {
	Append(ctx context.Context, entry Entry) error
	// List returns entries newest first.
	List(ctx context.Context) ([]Entry, error)
}
