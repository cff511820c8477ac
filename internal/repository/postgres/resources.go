package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"eventra/internal/domain"
	"eventra/internal/repository"
)

type ResourceRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *ResourceRepo) With(db DB) *ResourceRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *ResourceRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// Assign books quantity units of a resource for an event over a time
// window. The resource row is locked first; the booking is refused when
// the resource is under maintenance or not enough units remain. The
// booked units are subtracted from the pool and credited back by
// Replenish once the window has passed.
//
// Returns:
//   - int64: the booking ID when successful.
//   - error: repository.ErrNotFound if the resource does not exist.
//   - error: repository.ErrResourceUnavailable if the resource is under
//     maintenance or quantity is insufficient.
func (r *ResourceRepo) Assign(
	ctx context.Context,
	eventID int64,
	resourceID int64,
	quantity int,
	start, end time.Time,
) (int64, error) {
	const op = "postgres.ResourceRepo.Assign"

	if r.db != nil {
		id, err := r.assignCore(ctx, r.db, eventID, resourceID, quantity, start, end)
		if err != nil {
			return 0, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}
		return id, nil
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.ReadCommitted,
		AccessMode: pgx.ReadWrite,
	})
	if err != nil {
		return 0, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer tx.Rollback(ctx)

	bookingID, err := r.assignCore(ctx, tx, eventID, resourceID, quantity, start, end)
	if err != nil {
		return 0, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return bookingID, nil
}

// ScheduleMaintenance records a maintenance window for a resource.
//
// Returns:
//   - int64: the maintenance record ID.
//   - error: repository.ErrNotFound if the resource does not exist.
func (r *ResourceRepo) ScheduleMaintenance(
	ctx context.Context,
	resourceID int64,
	start, end time.Time,
	description string,
) (int64, error) {
	const op = "postgres.ResourceRepo.ScheduleMaintenance"

	db := r.handle()

	var id int64
	err := db.QueryRow(ctx,
		`INSERT INTO resource_maintenance(resource_id, maintenance_start, maintenance_end, description)
         VALUES ($1, $2, $3, $4)
         RETURNING id`,
		resourceID, start, end, description,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return id, nil
}

// Replenish credits back the quantity of every booking whose window has
// passed and which has not been reconciled yet. The reconciled flag makes
// the pass idempotent: the flagging UPDATE locks the expired rows, so a
// concurrent pass either waits and then sees nothing to do, or picks up a
// disjoint set. Returns the number of resource units restored.
func (r *ResourceRepo) Replenish(ctx context.Context) (int64, error) {
	const op = "postgres.ResourceRepo.Replenish"

	if r.db != nil {
		n, err := r.replenishCore(ctx, r.db)
		if err != nil {
			return 0, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}
		return n, nil
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.ReadCommitted,
		AccessMode: pgx.ReadWrite,
	})
	if err != nil {
		return 0, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer tx.Rollback(ctx)

	restored, err := r.replenishCore(ctx, tx)
	if err != nil {
		return 0, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return restored, nil
}

// List returns all resources ordered by name.
func (r *ResourceRepo) List(ctx context.Context) ([]domain.Resource, error) {
	const op = "postgres.ResourceRepo.List"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, name, type, quantity, maintenance_status
           FROM resources
          ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.Resource
	for rows.Next() {
		var res domain.Resource
		var status string
		if err := rows.Scan(&res.ID, &res.Name, &res.Type, &res.Quantity, &status); err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}
		res.Status = domain.ResourceStatus(status)
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// ListBookings returns the bookings of an event, newest window first.
func (r *ResourceRepo) ListBookings(ctx context.Context, eventID int64) ([]domain.ResourceBooking, error) {
	const op = "postgres.ResourceRepo.ListBookings"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, event_id, resource_id, quantity_booked, booking_start, booking_end, reconciled
           FROM event_resources
          WHERE event_id = $1
          ORDER BY booking_start DESC`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.ResourceBooking
	for rows.Next() {
		var b domain.ResourceBooking
		if err := rows.Scan(
			&b.ID,
			&b.EventID,
			&b.ResourceID,
			&b.Quantity,
			&b.Starts,
			&b.Ends,
			&b.Reconciled,
		); err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

func (r *ResourceRepo) assignCore(
	ctx context.Context,
	db DB,
	eventID int64,
	resourceID int64,
	quantity int,
	start, end time.Time,
) (int64, error) {
	const op = "postgres.ResourceRepo.assignCore"

	var available int
	var status string
	err := db.QueryRow(ctx,
		`SELECT quantity, maintenance_status FROM resources
          WHERE id = $1
            FOR UPDATE`,
		resourceID,
	).Scan(&available, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%s:%w", op, repository.ErrNotFound)
		}
		return 0, fmt.Errorf("%s:%w", op, err)
	}

	if domain.ResourceStatus(status) != domain.ResourceAvailable || available < quantity {
		return 0, fmt.Errorf("%s:%w", op, repository.ErrResourceUnavailable)
	}

	if _, err := db.Exec(ctx,
		`UPDATE resources SET quantity = quantity - $2 WHERE id = $1`,
		resourceID, quantity,
	); err != nil {
		return 0, fmt.Errorf("%s:%w", op, err)
	}

	var bookingID int64
	if err := db.QueryRow(ctx,
		`INSERT INTO event_resources(event_id, resource_id, quantity_booked, booking_start, booking_end, reconciled)
         VALUES ($1, $2, $3, $4, $5, FALSE)
         RETURNING id`,
		eventID, resourceID, quantity, start, end,
	).Scan(&bookingID); err != nil {
		return 0, fmt.Errorf("%s:%w", op, err)
	}

	return bookingID, nil
}

func (r *ResourceRepo) replenishCore(ctx context.Context, db DB) (int64, error) {
	const op = "postgres.ResourceRepo.replenishCore"

	rows, err := db.Query(ctx,
		`UPDATE event_resources
            SET reconciled = TRUE
          WHERE booking_end <= now() AND reconciled = FALSE
          RETURNING resource_id, quantity_booked`,
	)
	if err != nil {
		return 0, fmt.Errorf("%s:%w", op, err)
	}

	defer rows.Close()

	credits := make(map[int64]int)
	for rows.Next() {
		var resourceID int64
		var qty int
		if err := rows.Scan(&resourceID, &qty); err != nil {
			return 0, fmt.Errorf("%s:%w", op, err)
		}
		credits[resourceID] += qty
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("%s:%w", op, err)
	}

	var restored int64
	for resourceID, qty := range credits {
		if _, err := db.Exec(ctx,
			`UPDATE resources SET quantity = quantity + $2 WHERE id = $1`,
			resourceID, qty,
		); err != nil {
			return 0, fmt.Errorf("%s:%w", op, err)
		}
		restored += int64(qty)
	}

	return restored, nil
}
