package registration

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"eventra/internal/domain"
	redisx "eventra/internal/redis"
	"eventra/internal/repository"
	postgresrepo "eventra/internal/repository/postgres"
	redisrepo "eventra/internal/repository/redis"
	"eventra/internal/uow"
)

type Service struct {
	store   *postgresrepo.Store
	cache   *redisrepo.Cache
	pubsub  EventNotifier
	limiter *redisrepo.SlidingWindowLimiter
	uow     *uow.UoW
}

// EventNotifier publishes event-changed notifications after commits.
type EventNotifier interface {
	PublishEventChanged(ctx context.Context, eventID int64) error
}

func New(
	store *postgresrepo.Store,
	cache *redisrepo.Cache,
	pubsub EventNotifier,
	limiter *redisrepo.SlidingWindowLimiter,
) *Service {
	return &Service{
		store:   store,
		cache:   cache,
		pubsub:  pubsub,
		limiter: limiter,
		uow:     uow.NewUoW(store),
	}
}

// Register books one ticket unit for a student. The whole operation runs
// in a single transaction; cache invalidation and the changed-event
// notification fire only after commit.
//
// Parameters:
//   - ctx: request-scoped context.
//   - eventID, studentID, ticketID: the registration triple.
//   - rlKey: rate-limit key, empty to skip limiting.
//
// Returns:
//   - uuid.UUID: the order ID.
//   - error: registration.ErrAlreadyRegistered, registration.ErrTicketNotFound
//     or registration.ErrSoldOut on the corresponding precondition failure.
func (s *Service) Register(
	ctx context.Context,
	eventID, studentID, ticketID int64,
	rlKey string,
) (uuid.UUID, error) {
	const op = "service.registration.Register"

	if eventID <= 0 || studentID <= 0 || ticketID <= 0 {
		return uuid.Nil, fmt.Errorf("%s: ids must be positive", op)
	}

	if s.limiter != nil && rlKey != "" {
		ok, _, retry, err := s.limiter.Allow(ctx, rlKey)
		if err != nil {
			return uuid.Nil, fmt.Errorf("%s:%w", op, err)
		}
		if !ok {
			return uuid.Nil, fmt.Errorf("%s: rate limited, retry in %s", op, retry)
		}
	}

	var orderID uuid.UUID

	err := s.uow.Do(ctx, func(
		ctx context.Context,
		tx postgresrepo.DB,
		after func(uow.AfterCommit),
	) error {
		oid, err := s.store.Registrations().
			With(tx).
			Register(ctx, eventID, studentID, ticketID)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrAlreadyRegistered):
				return fmt.Errorf("%s:%w", op, ErrAlreadyRegistered)
			case errors.Is(err, repository.ErrNotFound):
				return fmt.Errorf("%s:%w", op, ErrTicketNotFound)
			case errors.Is(err, repository.ErrSoldOut):
				return fmt.Errorf("%s:%w", op, ErrSoldOut)
			}

			return fmt.Errorf("%s:%w", op, err)
		}

		orderID = oid

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateEvent(ctx, eventID)
			_ = s.cache.InvalidateStudent(ctx, studentID)
			_ = s.pubsub.PublishEventChanged(ctx, eventID)
		})

		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return orderID, nil
}

// Cancel reverses a registration and restocks the ticket.
//
// Returns:
//   - error: registration.ErrRegistrationNotFound if the student is not
//     registered for the event.
func (s *Service) Cancel(ctx context.Context, eventID, studentID int64) error {
	const op = "service.registration.Cancel"

	if eventID <= 0 || studentID <= 0 {
		return fmt.Errorf("%s: ids must be positive", op)
	}

	return s.uow.Do(ctx, func(
		ctx context.Context,
		tx postgresrepo.DB,
		after func(uow.AfterCommit),
	) error {
		if _, err := s.store.Registrations().
			With(tx).
			Cancel(ctx, eventID, studentID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s:%w", op, ErrRegistrationNotFound)
			}

			return fmt.Errorf("%s:%w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateEvent(ctx, eventID)
			_ = s.cache.InvalidateStudent(ctx, studentID)
			_ = s.pubsub.PublishEventChanged(ctx, eventID)
		})

		return nil
	})
}

// MarkAttendance flags a participant as having attended.
//
// Returns:
//   - error: registration.ErrParticipantNotFound if there is no such
//     participation.
func (s *Service) MarkAttendance(ctx context.Context, eventID, studentID int64) error {
	const op = "service.registration.MarkAttendance"

	if eventID <= 0 || studentID <= 0 {
		return fmt.Errorf("%s: ids must be positive", op)
	}

	if err := s.store.Registrations().MarkAttendance(ctx, eventID, studentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%s:%w", op, ErrParticipantNotFound)
		}

		return fmt.Errorf("%s:%w", op, err)
	}

	_ = s.cache.InvalidateEvent(ctx, eventID)

	return nil
}

// ListParticipants returns the participants of an event through the cache.
func (s *Service) ListParticipants(ctx context.Context, eventID int64) ([]domain.Participant, error) {
	const op = "service.registration.ListParticipants"

	key := redisx.KeyEventParticipants(eventID)

	parts, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		key,
		15*time.Second,
		func(ctx context.Context) ([]domain.Participant, error) {
			return s.store.Registrations().ListParticipants(ctx, eventID)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return parts, nil
}

// ListAllParticipants returns every participation across events. Uncached;
// this is an occasional roster export, not a hot path.
func (s *Service) ListAllParticipants(ctx context.Context) ([]domain.Participant, error) {
	const op = "service.registration.ListAllParticipants"

	parts, err := s.store.Registrations().ListAllParticipants(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return parts, nil
}

// ListRegistrations returns a student's upcoming registrations through the
// cache.
func (s *Service) ListRegistrations(ctx context.Context, studentID int64) ([]domain.Registration, error) {
	const op = "service.registration.ListRegistrations"

	key := redisx.KeyStudentRegistrations(studentID)

	regs, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		key,
		15*time.Second,
		func(ctx context.Context) ([]domain.Registration, error) {
			return s.store.Registrations().ListRegistrations(ctx, studentID)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return regs, nil
}
