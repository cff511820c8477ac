package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"eventra/internal/domain"
	"eventra/internal/repository"
)

type EventRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *EventRepo) With(db DB) *EventRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *EventRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// EventFilter selects which slice of the schedule a listing returns.
type EventFilter string

const (
	EventsScheduled EventFilter = "scheduled"
	EventsCompleted EventFilter = "completed"
	EventsAll       EventFilter = "all"
)

// EventPatch carries the optional fields of a partial event update. Only
// populated fields end up in the generated SET clause.
type EventPatch struct {
	Name        *string
	Description *string
	Starts      *time.Time
	Ends        *time.Time
	VenueID     *int64
	Status      *domain.EventStatus
}

const eventSelect = `
	SELECT e.id, e.name, COALESCE(e.description, ''),
	       e.starts_at, e.ends_at,
	       COALESCE(e.venue_id, 0), COALESCE(v.name, ''),
	       COALESCE(e.host_id, 0), COALESCE(h.name, ''),
	       e.status, e.max_participants
	  FROM events e
	  LEFT JOIN venues v ON e.venue_id = v.id
	  LEFT JOIN hosts h ON e.host_id = h.id`

// ListEvents returns events joined with their venue and host names.
// Scheduled means the event has not ended yet; completed means it has.
func (r *EventRepo) ListEvents(ctx context.Context, filter EventFilter) ([]domain.Event, error) {
	const op = "postgres.EventRepo.ListEvents"

	db := r.handle()

	query := eventSelect
	switch filter {
	case EventsScheduled:
		query += ` WHERE e.ends_at > now() ORDER BY e.starts_at`
	case EventsCompleted:
		query += ` WHERE e.ends_at <= now() ORDER BY e.starts_at DESC`
	default:
		query += ` ORDER BY e.starts_at DESC`
	}

	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.Event
	for rows.Next() {
		var e domain.Event
		var status string
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Description,
			&e.Starts, &e.Ends,
			&e.VenueID, &e.VenueName,
			&e.HostID, &e.HostName,
			&status, &e.MaxParticipants,
		); err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}
		e.Status = domain.EventStatus(status)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// GetEvent retrieves one event by ID.
//
// Returns:
//   - error: repository.ErrNotFound if the event does not exist.
func (r *EventRepo) GetEvent(ctx context.Context, id int64) (*domain.Event, error) {
	const op = "postgres.EventRepo.GetEvent"

	db := r.handle()

	var e domain.Event
	var status string
	err := db.QueryRow(ctx, eventSelect+` WHERE e.id = $1`, id).Scan(
		&e.ID, &e.Name, &e.Description,
		&e.Starts, &e.Ends,
		&e.VenueID, &e.VenueName,
		&e.HostID, &e.HostName,
		&status, &e.MaxParticipants,
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}
	e.Status = domain.EventStatus(status)

	return &e, nil
}

// CreateEvent inserts a new event in Scheduled status.
func (r *EventRepo) CreateEvent(
	ctx context.Context,
	name, description string,
	starts, ends time.Time,
	venueID, hostID int64,
	maxParticipants int,
) (int64, error) {
	const op = "postgres.EventRepo.CreateEvent"

	db := r.handle()

	var id int64
	if err := db.QueryRow(ctx,
		`INSERT INTO events(name, description, starts_at, ends_at, venue_id, host_id, status, max_participants)
         VALUES ($1, $2, $3, $4, $5, $6, 'Scheduled', $7)
         RETURNING id`,
		name, description, starts, ends, venueID, hostID, maxParticipants,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return id, nil
}

// UpdateEvent applies a partial update. The SET clause is assembled from
// the populated fields only; an empty patch is the caller's error.
//
// Returns:
//   - error: repository.ErrNotFound if the event does not exist.
func (r *EventRepo) UpdateEvent(ctx context.Context, id int64, patch EventPatch) error {
	const op = "postgres.EventRepo.UpdateEvent"

	db := r.handle()

	b := newUpdateBuilder("events")
	setClause(b, "name", patch.Name)
	setClause(b, "description", patch.Description)
	setClause(b, "starts_at", patch.Starts)
	setClause(b, "ends_at", patch.Ends)
	setClause(b, "venue_id", patch.VenueID)
	setClause(b, "status", patch.Status)

	query, args, err := b.Where("id", id)
	if err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}

	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", op, repository.ErrNotFound)
	}

	return nil
}

// ListVenues returns venues, optionally only the available ones.
func (r *EventRepo) ListVenues(ctx context.Context, onlyAvailable bool) ([]domain.Venue, error) {
	const op = "postgres.EventRepo.ListVenues"

	db := r.handle()

	query := `SELECT id, name, COALESCE(building, ''), capacity, is_available
                FROM venues ORDER BY name`
	if onlyAvailable {
		query = `SELECT id, name, COALESCE(building, ''), capacity, is_available
                   FROM venues WHERE is_available ORDER BY capacity DESC`
	}

	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.Venue
	for rows.Next() {
		var v domain.Venue
		if err := rows.Scan(&v.ID, &v.Name, &v.Building, &v.Capacity, &v.IsAvailable); err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// SetVenueAvailability flips the availability flag of a venue.
//
// Returns:
//   - error: repository.ErrNotFound if the venue does not exist.
func (r *EventRepo) SetVenueAvailability(ctx context.Context, id int64, available bool) error {
	const op = "postgres.EventRepo.SetVenueAvailability"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE venues SET is_available = $2 WHERE id = $1`,
		id, available,
	)
	if err != nil {
		return fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", op, repository.ErrNotFound)
	}

	return nil
}

// ListTickets returns the ticket tiers of an event.
func (r *EventRepo) ListTickets(ctx context.Context, eventID int64) ([]domain.Ticket, error) {
	const op = "postgres.EventRepo.ListTickets"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, event_id, ticket_type, price_cents, quantity
           FROM tickets
          WHERE event_id = $1
          ORDER BY price_cents`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.Ticket
	for rows.Next() {
		var t domain.Ticket
		if err := rows.Scan(&t.ID, &t.EventID, &t.Type, &t.Price, &t.Quantity); err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// CreateTicket adds a ticket tier to an event.
//
// Returns:
//   - error: repository.ErrNotFound if the event does not exist.
func (r *EventRepo) CreateTicket(
	ctx context.Context,
	eventID int64,
	ticketType string,
	priceCents int64,
	quantity int,
) (int64, error) {
	const op = "postgres.EventRepo.CreateTicket"

	db := r.handle()

	var id int64
	if err := db.QueryRow(ctx,
		`INSERT INTO tickets(event_id, ticket_type, price_cents, quantity)
         VALUES ($1, $2, $3, $4)
         RETURNING id`,
		eventID, ticketType, priceCents, quantity,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return id, nil
}
