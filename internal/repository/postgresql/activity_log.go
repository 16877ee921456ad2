package postgresql

import (
	"context"
	"fmt"

	"github.com/staffhub/ems-backend-go/internal/domain/activitylog"
	"github.com/staffhub/ems-backend-go/internal/pkg/database"
)

type activityLogRepositoryImpl struct {
	db *database.DB
}

func NewActivityLogRepository(db *database.DB) activitylog.Repository {
	return &activityLogRepositoryImpl{db: db}
}

// Append implements activitylog.Repository. Insert only; the table has no
// update or delete path anywhere in the codebase.
func (r *activityLogRepositoryImpl) Append(ctx context.Context, entry activitylog.Entry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO activity_logs (actor_account_id, actor_email, action, target)
		VALUES ($1, $2, $3, $4)
	`

	_, err := q.Exec(ctx, query, entry.ActorAccountID, entry.ActorEmail, entry.Action, entry.Target)
	if err != nil {
		return fmt.Errorf("failed to append activity log entry: %w", err)
	}

	return nil
}

// List implements activitylog.Repository, newest first.
func (r *activityLogRepositoryImpl) List(ctx context.Context) ([]activitylog.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, COALESCE(actor_account_id::text, ''), actor_email, action, target, created_at
		FROM activity_logs
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity log entries: %w", err)
	}
	defer rows.Close()

	entries := []activitylog.Entry{}
	for rows.Next() {
		var entry activitylog.Entry
		if err := rows.Scan(
			&entry.ID,
			&entry.ActorAccountID,
			&entry.ActorEmail,
			&entry.Action,
			&entry.Target,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan activity log entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
