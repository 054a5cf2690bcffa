package services

import (
	"context"
	"sync"
	"time"

	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/logger"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/models"
)

//go:generate mockgen -source=activity.go -destination=activity_mock.go -package=services

const (
	// DefaultActivityLimit is the page size of the activity feed.
	DefaultActivityLimit = 50
	// MaxActivityLimit caps the page size of the activity feed.
	MaxActivityLimit = 200

	activityWriteTimeout = 5 * time.Second
)

// ActivityWriter persists activity entries.
type ActivityWriter interface {
	Save(ctx context.Context, a models.Activity) error
}

// ActivityReader reads the activity feed.
type ActivityReader interface {
	List(ctx context.Context, limit int) ([]models.ActivityDB, error)
}

// ActivityService records the activity feed.
// Record is fire-and-forget: the write runs in its own goroutine and a failure is only logged.
type ActivityService struct {
	writer ActivityWriter
	reader ActivityReader
	wg     sync.WaitGroup
}

// NewActivityService creates a new ActivityService.
func NewActivityService(writer ActivityWriter, reader ActivityReader) *ActivityService {
	return &ActivityService{writer: writer, reader: reader}
}

// Record stores a in the background. It never blocks on the store and never reports an error.
func (s *ActivityService) Record(ctx context.Context, a models.Activity) {
	// Detached so the write survives the end of the request.
	bg := context.WithoutCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			if rec := recover(); rec != nil {
				logger.Log.Errorw("activity recording panicked", "type", a.Type, "panic", rec)
			}
		}()

		writeCtx, cancel := context.WithTimeout(bg, activityWriteTimeout)
		defer cancel()

		if err := s.writer.Save(writeCtx, a); err != nil {
			logger.Log.Errorw("failed to log activity", "userID", a.UserID, "type", a.Type, "error", err)
		}
	}()
}

// Wait blocks until every pending Record has finished.
func (s *ActivityService) Wait() {
	s.wg.Wait()
}

// ListActivities returns the newest activities. limit is clamped to [1, MaxActivityLimit].
func (s *ActivityService) ListActivities(ctx context.Context, limit int) ([]models.ActivityDB, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	if limit > MaxActivityLimit {
		limit = MaxActivityLimit
	}

	activities, err := s.reader.List(ctx, limit)
	if err != nil {
		logger.Log.Errorw("failed to list activities", "limit", limit, "error", err)
		return nil, err
	}
	return activities, nil
}
