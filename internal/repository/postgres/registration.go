package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"eventra/internal/domain"
	"eventra/internal/repository"
)

type RegistrationRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *RegistrationRepo) With(db DB) *RegistrationRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *RegistrationRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// Register books one unit of a ticket for a student, atomically.
//
// Inside a single transaction it checks for an existing participation,
// locks the ticket row, verifies remaining quantity, decrements it, and
// inserts the order and participant rows. The row lock is what keeps two
// concurrent registrations from both seeing quantity >= 1 and overselling.
//
// Returns:
//   - uuid.UUID: the order ID when successful.
//   - error: repository.ErrAlreadyRegistered if the student already holds
//     a participation for the event.
//   - error: repository.ErrNotFound if the ticket does not exist.
//   - error: repository.ErrSoldOut if no quantity remains.
func (r *RegistrationRepo) Register(
	ctx context.Context,
	eventID int64,
	studentID int64,
	ticketID int64,
) (uuid.UUID, error) {
	const op = "postgres.RegistrationRepo.Register"

	if r.db != nil {
		id, err := r.registerCore(ctx, r.db, eventID, studentID, ticketID)
		if err != nil {
			return uuid.Nil, fmt.Errorf("%s:%w", op, translateRegistrationErr(err))
		}
		return id, nil
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.ReadCommitted,
		AccessMode: pgx.ReadWrite,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer tx.Rollback(ctx)

	orderID, err := r.registerCore(ctx, tx, eventID, studentID, ticketID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s:%w", op, translateRegistrationErr(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return orderID, nil
}

// Cancel reverses a registration: restores ticket quantity, deletes the
// order and the participant row, all in one transaction.
//
// Returns:
//   - int64: the ticket ID that was restocked, or 0 when no order existed.
//   - error: repository.ErrNotFound if the student had no participation
//     for the event.
func (r *RegistrationRepo) Cancel(
	ctx context.Context,
	eventID int64,
	studentID int64,
) (int64, error) {
	const op = "postgres.RegistrationRepo.Cancel"

	if r.db != nil {
		tid, err := r.cancelCore(ctx, r.db, eventID, studentID)
		if err != nil {
			return 0, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}
		return tid, nil
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.ReadCommitted,
		AccessMode: pgx.ReadWrite,
	})
	if err != nil {
		return 0, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer tx.Rollback(ctx)

	ticketID, err := r.cancelCore(ctx, tx, eventID, studentID)
	if err != nil {
		return 0, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return ticketID, nil
}

// MarkAttendance flips the attendance flag for one participant.
//
// Returns:
//   - error: repository.ErrNotFound if the participation does not exist.
func (r *RegistrationRepo) MarkAttendance(ctx context.Context, eventID, studentID int64) error {
	const op = "postgres.RegistrationRepo.MarkAttendance"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE event_participants
            SET attended = TRUE
          WHERE event_id = $1 AND student_id = $2`,
		eventID, studentID,
	)
	if err != nil {
		return fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", op, repository.ErrNotFound)
	}

	return nil
}

// ListParticipants returns the participants of an event with student info.
func (r *RegistrationRepo) ListParticipants(ctx context.Context, eventID int64) ([]domain.Participant, error) {
	const op = "postgres.RegistrationRepo.ListParticipants"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT p.event_id, p.student_id, s.name, s.srn, p.registered_at, p.attended
           FROM event_participants p
           JOIN students s ON p.student_id = s.id
          WHERE p.event_id = $1
          ORDER BY p.registered_at`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.Participant
	for rows.Next() {
		var p domain.Participant
		if err := rows.Scan(
			&p.EventID, &p.StudentID, &p.StudentName, &p.SRN,
			&p.RegisteredAt, &p.Attended,
		); err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// ListAllParticipants returns every participation across events.
func (r *RegistrationRepo) ListAllParticipants(ctx context.Context) ([]domain.Participant, error) {
	const op = "postgres.RegistrationRepo.ListAllParticipants"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT p.event_id, p.student_id, s.name, s.srn, p.registered_at, p.attended
           FROM event_participants p
           JOIN students s ON p.student_id = s.id
          ORDER BY p.event_id, p.registered_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.Participant
	for rows.Next() {
		var p domain.Participant
		if err := rows.Scan(
			&p.EventID, &p.StudentID, &p.StudentName, &p.SRN,
			&p.RegisteredAt, &p.Attended,
		); err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// ListRegistrations returns a student's upcoming registrations.
func (r *RegistrationRepo) ListRegistrations(ctx context.Context, studentID int64) ([]domain.Registration, error) {
	const op = "postgres.RegistrationRepo.ListRegistrations"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT e.id, e.name, e.starts_at, COALESCE(v.name, '')
           FROM event_participants p
           JOIN events e ON p.event_id = e.id
           LEFT JOIN venues v ON e.venue_id = v.id
          WHERE p.student_id = $1 AND e.ends_at > now()
          ORDER BY e.starts_at`,
		studentID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.Registration
	for rows.Next() {
		var reg domain.Registration
		if err := rows.Scan(&reg.EventID, &reg.EventName, &reg.Starts, &reg.VenueName); err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}
		out = append(out, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

func (r *RegistrationRepo) registerCore(
	ctx context.Context,
	db DB,
	eventID int64,
	studentID int64,
	ticketID int64,
) (uuid.UUID, error) {
	const op = "postgres.RegistrationRepo.registerCore"

	var one int
	err := db.QueryRow(ctx,
		`SELECT 1 FROM event_participants
          WHERE event_id = $1 AND student_id = $2`,
		eventID, studentID,
	).Scan(&one)
	if err == nil {
		return uuid.Nil, fmt.Errorf("%s:%w", op, repository.ErrAlreadyRegistered)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, fmt.Errorf("%s:%w", op, err)
	}

	var quantity int
	err = db.QueryRow(ctx,
		`SELECT quantity FROM tickets
          WHERE id = $1 AND event_id = $2
            FOR UPDATE`,
		ticketID, eventID,
	).Scan(&quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, fmt.Errorf("%s:%w", op, repository.ErrNotFound)
		}
		return uuid.Nil, fmt.Errorf("%s:%w", op, err)
	}

	if quantity < 1 {
		return uuid.Nil, fmt.Errorf("%s:%w", op, repository.ErrSoldOut)
	}

	if _, err := db.Exec(ctx,
		`UPDATE tickets SET quantity = quantity - 1 WHERE id = $1`,
		ticketID,
	); err != nil {
		return uuid.Nil, fmt.Errorf("%s:%w", op, err)
	}

	now := time.Now()
	orderID := uuid.New()

	if _, err := db.Exec(ctx,
		`INSERT INTO orders(id, ticket_id, student_id, ordered_at, payment_status)
         VALUES ($1, $2, $3, $4, 'Completed')`,
		orderID, ticketID, studentID, now,
	); err != nil {
		return uuid.Nil, fmt.Errorf("%s:%w", op, err)
	}

	if _, err := db.Exec(ctx,
		`INSERT INTO event_participants(event_id, student_id, registered_at, attended)
         VALUES ($1, $2, $3, FALSE)`,
		eventID, studentID, now,
	); err != nil {
		return uuid.Nil, fmt.Errorf("%s:%w", op, err)
	}

	return orderID, nil
}

func (r *RegistrationRepo) cancelCore(
	ctx context.Context,
	db DB,
	eventID int64,
	studentID int64,
) (int64, error) {
	const op = "postgres.RegistrationRepo.cancelCore"

	// Lock every ticket row of the event so a concurrent Register cannot
	// race the order lookup below.
	rows, err := db.Query(ctx,
		`SELECT id FROM tickets WHERE event_id = $1 FOR UPDATE`,
		eventID,
	)
	if err != nil {
		return 0, fmt.Errorf("%s:%w", op, err)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("%s:%w", op, err)
	}

	var ticketID int64
	err = db.QueryRow(ctx,
		`SELECT o.ticket_id
           FROM orders o
           JOIN tickets t ON o.ticket_id = t.id
          WHERE o.student_id = $1 AND t.event_id = $2`,
		studentID, eventID,
	).Scan(&ticketID)
	orderFound := err == nil
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("%s:%w", op, err)
	}

	if orderFound {
		if _, err := db.Exec(ctx,
			`UPDATE tickets SET quantity = quantity + 1 WHERE id = $1`,
			ticketID,
		); err != nil {
			return 0, fmt.Errorf("%s:%w", op, err)
		}

		if _, err := db.Exec(ctx,
			`DELETE FROM orders WHERE student_id = $1 AND ticket_id = $2`,
			studentID, ticketID,
		); err != nil {
			return 0, fmt.Errorf("%s:%w", op, err)
		}
	}

	// A participant row without an order is stale upstream data; it is
	// still cleaned up here rather than refused.
	tag, err := db.Exec(ctx,
		`DELETE FROM event_participants
          WHERE event_id = $1 AND student_id = $2`,
		eventID, studentID,
	)
	if err != nil {
		return 0, fmt.Errorf("%s:%w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return 0, fmt.Errorf("%s:%w", op, repository.ErrNotFound)
	}

	return ticketID, nil
}

// translateRegistrationErr keeps the engine's own sentinels intact and maps
// everything else through translateDBErr. A unique violation on the
// participant insert means two registrations raced; it reads as a duplicate.
func translateRegistrationErr(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, repository.ErrAlreadyRegistered),
		errors.Is(err, repository.ErrSoldOut),
		errors.Is(err, repository.ErrNotFound):
		return err
	}

	translated := translateDBErr(err)
	if errors.Is(translated, repository.ErrConflict) {
		return repository.ErrAlreadyRegistered
	}

	return translated
}
