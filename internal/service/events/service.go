package events

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
	EventSummaryTTL time.Duration
	TicketsTTL      time.Duration
}

type Service struct {
	store *postgresrepo.Store
	cache *redisrepo.Cache
	cfg   Config
}

func New(store *postgresrepo.Store, cache *redisrepo.Cache, cfg Config) *Service {
	if cfg.EventSummaryTTL <= 0 {
		cfg.EventSummaryTTL = 60 * time.Second
	}

	if cfg.TicketsTTL <= 0 {
		cfg.TicketsTTL = 15 * time.Second
	}

	return &Service{
		store: store,
		cache: cache,
		cfg:   cfg,
	}
}

// List returns events filtered by schedule position.
func (s *Service) List(ctx context.Context, filter postgresrepo.EventFilter) ([]domain.Event, error) {
	const op = "service.events.List"

	out, err := s.store.Events().ListEvents(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// Get retrieves an event through the cache.
//
// Returns:
//   - error: events.ErrEventNotFound if the event does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Event, error) {
	const op = "service.events.Get"

	key := redisx.KeyEventSummary(id)

	event, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		key,
		s.cfg.EventSummaryTTL,
		func(ctx context.Context) (domain.Event, error) {
			e, err := s.store.Events().GetEvent(ctx, id)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return domain.Event{}, ErrEventNotFound
				}

				return domain.Event{}, err
			}

			return *e, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return &event, nil
}

// Create inserts a new event.
//
// Returns:
//   - error: events.ErrVenueNotFound if the venue or host reference is
//     broken.
func (s *Service) Create(
	ctx context.Context,
	name, description string,
	starts, ends time.Time,
	venueID, hostID int64,
	maxParticipants int,
) (int64, error) {
	const op = "service.events.Create"

	id, err := s.store.Events().CreateEvent(ctx, name, description, starts, ends, venueID, hostID, maxParticipants)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, fmt.Errorf("%s:%w", op, ErrVenueNotFound)
		}

		return 0, fmt.Errorf("%s:%w", op, err)
	}

	return id, nil
}

// Update applies a partial event update and drops the cached summary.
//
// Returns:
//   - error: events.ErrEventNotFound if the event does not exist.
//   - error: events.ErrNoFields if the patch is empty.
func (s *Service) Update(ctx context.Context, id int64, patch postgresrepo.EventPatch) error {
	const op = "service.events.Update"

	if err := s.store.Events().UpdateEvent(ctx, id, patch); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return fmt.Errorf("%s:%w", op, ErrEventNotFound)
		case errors.Is(err, repository.ErrNoFields):
			return fmt.Errorf("%s:%w", op, ErrNoFields)
		}

		return fmt.Errorf("%s:%w", op, err)
	}

	_ = s.cache.InvalidateEvent(ctx, id)

	return nil
}

// ListVenues returns venues, optionally only available ones.
func (s *Service) ListVenues(ctx context.Context, onlyAvailable bool) ([]domain.Venue, error) {
	const op = "service.events.ListVenues"

	out, err := s.store.Events().ListVenues(ctx, onlyAvailable)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// SetVenueAvailability flips a venue's availability flag.
//
// Returns:
//   - error: events.ErrVenueNotFound if the venue does not exist.
func (s *Service) SetVenueAvailability(ctx context.Context, id int64, available bool) error {
	const op = "service.events.SetVenueAvailability"

	if err := s.store.Events().SetVenueAvailability(ctx, id, available); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%s:%w", op, ErrVenueNotFound)
		}

		return fmt.Errorf("%s:%w", op, err)
	}

	return nil
}

// ListTickets returns the ticket tiers of an event through the cache.
func (s *Service) ListTickets(ctx context.Context, eventID int64) ([]domain.Ticket, error) {
	const op = "service.events.ListTickets"

	key := redisx.KeyEventTickets(eventID)

	tickets, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		key,
		s.cfg.TicketsTTL,
		func(ctx context.Context) ([]domain.Ticket, error) {
			return s.store.Events().ListTickets(ctx, eventID)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return tickets, nil
}

// CreateTicket adds a ticket tier to an event.
//
// Returns:
//   - error: events.ErrEventNotFound if the event does not exist.
func (s *Service) CreateTicket(
	ctx context.Context,
	eventID int64,
	ticketType string,
	priceCents int64,
	quantity int,
) (int64, error) {
	const op = "service.events.CreateTicket"

	id, err := s.store.Events().CreateTicket(ctx, eventID, ticketType, priceCents, quantity)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, fmt.Errorf("%s:%w", op, ErrEventNotFound)
		}

		return 0, fmt.Errorf("%s:%w", op, err)
	}

	_ = s.cache.Del(ctx, redisx.KeyEventTickets(eventID))

	return id, nil
}
