package feedback

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventra/internal/domain"
	redisx "eventra/internal/redis"
	"eventra/internal/repository"
	postgresrepo "eventra/internal/repository/postgres"
	redisrepo "eventra/internal/repository/redis"
)

type Config struct {
	AverageRatingTTL time.Duration
}

type Service struct {
	store *postgresrepo.Store
	cache *redisrepo.Cache
	cfg   Config
}

func New(store *postgresrepo.Store, cache *redisrepo.Cache, cfg Config) *Service {
	if cfg.AverageRatingTTL <= 0 {
		cfg.AverageRatingTTL = 60 * time.Second
	}

	return &Service{
		store: store,
		cache: cache,
		cfg:   cfg,
	}
}

// ListByEvent returns the feedback of an event.
func (s *Service) ListByEvent(ctx context.Context, eventID int64) ([]domain.Feedback, error) {
	const op = "service.feedback.ListByEvent"

	out, err := s.store.Feedback().ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// AverageRating returns the cached average rating of an event.
func (s *Service) AverageRating(ctx context.Context, eventID int64) (*domain.AverageRating, error) {
	const op = "service.feedback.AverageRating"

	key := redisx.KeyEventAverageRating(eventID)

	avg, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		key,
		s.cfg.AverageRatingTTL,
		func(ctx context.Context) (domain.AverageRating, error) {
			a, err := s.store.Feedback().AverageRating(ctx, eventID)
			if err != nil {
				return domain.AverageRating{}, err
			}

			return *a, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return &avg, nil
}

// Submit stores a student's feedback for an event they attended.
//
// Returns:
//   - int64: the feedback ID.
//   - error: feedback.ErrInvalidRating if rating is outside 1..5.
//   - error: feedback.ErrAttendanceRequired if attendance was not marked.
//   - error: feedback.ErrDuplicateFeedback on a second submission.
func (s *Service) Submit(
	ctx context.Context,
	eventID, studentID int64,
	rating int,
	comments string,
) (int64, error) {
	const op = "service.feedback.Submit"

	if rating < 1 || rating > 5 {
		return 0, fmt.Errorf("%s:%w", op, ErrInvalidRating)
	}

	id, err := s.store.Feedback().Submit(ctx, eventID, studentID, rating, comments)
	if err != nil {
		switch {
		case errors.Is(err, postgresrepo.ErrAttendanceRequired):
			return 0, fmt.Errorf("%s:%w", op, ErrAttendanceRequired)
		case errors.Is(err, repository.ErrConflict):
			return 0, fmt.Errorf("%s:%w", op, ErrDuplicateFeedback)
		}

		return 0, fmt.Errorf("%s:%w", op, err)
	}

	_ = s.cache.Del(ctx, redisx.KeyEventAverageRating(eventID))

	return id, nil
}

