package resources

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventra/internal/domain"
	"eventra/internal/repository"
	postgresrepo "eventra/internal/repository/postgres"
)

type Service struct {
	store *postgresrepo.Store
}

func New(store *postgresrepo.Store) *Service {
	return &Service{store: store}
}

// Assign books units of a resource for an event over a time window.
//
// Parameters:
//   - ctx: request-scoped context.
//   - eventID, resourceID: the booking pair.
//   - quantity: units to book.
//   - start, end: the booking window; end must be after start.
//
// Returns:
//   - int64: the booking ID.
//   - error: resources.ErrInvalidWindow if end <= start.
//   - error: resources.ErrInvalidQuantity if quantity < 1.
//   - error: resources.ErrResourceNotFound if the resource does not exist.
//   - error: resources.ErrResourceUnavailable if the resource is under
//     maintenance or has too few units left.
func (s *Service) Assign(
	ctx context.Context,
	eventID, resourceID int64,
	quantity int,
	start, end time.Time,
) (int64, error) {
	const op = "service.resources.Assign"

	if !end.After(start) {
		return 0, fmt.Errorf("%s:%w", op, ErrInvalidWindow)
	}

	if quantity < 1 {
		return 0, fmt.Errorf("%s:%w", op, ErrInvalidQuantity)
	}

	bookingID, err := s.store.Resources().Assign(ctx, eventID, resourceID, quantity, start, end)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return 0, fmt.Errorf("%s:%w", op, ErrResourceNotFound)
		case errors.Is(err, repository.ErrResourceUnavailable):
			return 0, fmt.Errorf("%s:%w", op, ErrResourceUnavailable)
		}

		return 0, fmt.Errorf("%s:%w", op, err)
	}

	return bookingID, nil
}

// ScheduleMaintenance records a maintenance window for a resource.
//
// Returns:
//   - int64: the maintenance record ID.
//   - error: resources.ErrInvalidWindow if end <= start.
//   - error: resources.ErrResourceNotFound if the resource does not exist.
func (s *Service) ScheduleMaintenance(
	ctx context.Context,
	resourceID int64,
	start, end time.Time,
	description string,
) (int64, error) {
	const op = "service.resources.ScheduleMaintenance"

	if !end.After(start) {
		return 0, fmt.Errorf("%s:%w", op, ErrInvalidWindow)
	}

	id, err := s.store.Resources().ScheduleMaintenance(ctx, resourceID, start, end, description)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, fmt.Errorf("%s:%w", op, ErrResourceNotFound)
		}

		return 0, fmt.Errorf("%s:%w", op, err)
	}

	return id, nil
}

// Replenish restores the inventory of every booking whose window has
// passed. Safe to call from several goroutines or schedules at once.
//
// Returns:
//   - int64: the number of resource units restored.
func (s *Service) Replenish(ctx context.Context) (int64, error) {
	const op = "service.resources.Replenish"

	restored, err := s.store.Resources().Replenish(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s:%w", op, err)
	}

	return restored, nil
}

// List returns all resources.
func (s *Service) List(ctx context.Context) ([]domain.Resource, error) {
	const op = "service.resources.List"

	out, err := s.store.Resources().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// ListBookings returns the resource bookings of an event.
func (s *Service) ListBookings(ctx context.Context, eventID int64) ([]domain.ResourceBooking, error) {
	const op = "service.resources.ListBookings"

	out, err := s.store.Resources().ListBookings(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}
