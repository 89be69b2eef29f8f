// backend-go/internal/service/activity_service.go
package service

import (
	"context"

	"github.com/freshserve/backend-go/internal/domain"
	"github.com/freshserve/backend-go/internal/repository"
)

type ActivityService struct {
	repo repository.ActivityRepository
}

func NewActivityService(repo repository.ActivityRepository) *ActivityService {
	return &ActivityService{repo: repo}
}

// LogActivity records a manually entered activity row. The caller's day type
// is kept as given (this is the only path that can carry the Holiday tag);
// when absent it is derived from the timestamp.
func (s *ActivityService) LogActivity(ctx context.Context, activity domain.DailyActivity) (domain.DailyActivity, error) {
	if activity.DayType == "" {
		activity.DayType = domain.DayTypeFor(activity.DateTime)
	}
	return s.repo.Append(ctx, activity)
}

func (s *ActivityService) ListActivities(ctx context.Context) ([]domain.DailyActivity, error) {
	return s.repo.List(ctx)
}
