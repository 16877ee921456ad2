package activitylog

import (
	"context"
	"fmt"

	"github.com/staffhub/ems-backend-go/internal/domain/activitylog"
	"github.com/staffhub/ems-backend-go/internal/domain/auth"
)

// Service records who did what to which resource. Record is called inside
// the same transaction as the mutation it describes, via the tx context.
type Service struct {
	activitylog.Repository
}

func NewActivityLogService(repository activitylog.Repository) *Service {
	return &Service{Repository: repository}
}

func (s *Service) Record(ctx context.Context, actor auth.Principal, action, target string) error {
	entry := activitylog.Entry{
		ActorAccountID: actor.AccountID,
		ActorEmail:     actor.Email,
		Action:         action,
		Target:         target,
	}

	if err := s.Repository.Append(ctx, entry); err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}

	return nil
}

func (s *Service) List(ctx context.Context) ([]activitylog.Entry, error) {
	return s.Repository.List(ctx)
}
