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

// ErrAttendanceRequired is returned when feedback is submitted for an
// event the student did not attend.
var ErrAttendanceRequired = errors.New("attendance not marked")

type FeedbackRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *FeedbackRepo) With(db DB) *FeedbackRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *FeedbackRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// ListByEvent returns the feedback of an event, newest first.
func (r *FeedbackRepo) ListByEvent(ctx context.Context, eventID int64) ([]domain.Feedback, error) {
	const op = "postgres.FeedbackRepo.ListByEvent"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT f.id, f.event_id, f.student_id,
                COALESCE(s.name, ''), COALESCE(s.srn, ''),
                f.rating, COALESCE(f.comments, ''), f.submitted_at
           FROM event_feedback f
           LEFT JOIN students s ON f.student_id = s.id
          WHERE f.event_id = $1
          ORDER BY f.submitted_at DESC`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.Feedback
	for rows.Next() {
		var f domain.Feedback
		if err := rows.Scan(
			&f.ID, &f.EventID, &f.StudentID,
			&f.StudentName, &f.SRN,
			&f.Rating, &f.Comments, &f.SubmittedAt,
		); err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// AverageRating computes the average rating and review count of an event.
func (r *FeedbackRepo) AverageRating(ctx context.Context, eventID int64) (*domain.AverageRating, error) {
	const op = "postgres.FeedbackRepo.AverageRating"

	db := r.handle()

	avg := domain.AverageRating{EventID: eventID}
	err := db.QueryRow(ctx,
		`SELECT COALESCE(AVG(rating), 0), COUNT(*)
           FROM event_feedback
          WHERE event_id = $1`,
		eventID,
	).Scan(&avg.Average, &avg.Total)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return &avg, nil
}

// Submit records feedback after verifying the student attended the event
// and has not reviewed it before. Both checks run in the same transaction
// as the insert.
//
// Returns:
//   - int64: the feedback ID when successful.
//   - error: ErrAttendanceRequired if attendance was never marked.
//   - error: repository.ErrConflict if feedback already exists.
func (r *FeedbackRepo) Submit(
	ctx context.Context,
	eventID, studentID int64,
	rating int,
	comments string,
) (int64, error) {
	const op = "postgres.FeedbackRepo.Submit"

	if r.db != nil {
		id, err := r.submitCore(ctx, r.db, eventID, studentID, rating, comments)
		if err != nil {
			return 0, fmt.Errorf("%s:%w", op, translateFeedbackErr(err))
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

	id, err := r.submitCore(ctx, tx, eventID, studentID, rating, comments)
	if err != nil {
		return 0, fmt.Errorf("%s:%w", op, translateFeedbackErr(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return id, nil
}

func (r *FeedbackRepo) submitCore(
	ctx context.Context,
	db DB,
	eventID, studentID int64,
	rating int,
	comments string,
) (int64, error) {
	const op = "postgres.FeedbackRepo.submitCore"

	var attended bool
	err := db.QueryRow(ctx,
		`SELECT attended FROM event_participants
          WHERE event_id = $1 AND student_id = $2`,
		eventID, studentID,
	).Scan(&attended)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("%s:%w", op, err)
	}
	if err != nil || !attended {
		return 0, fmt.Errorf("%s:%w", op, ErrAttendanceRequired)
	}

	var exists int
	err = db.QueryRow(ctx,
		`SELECT 1 FROM event_feedback
          WHERE event_id = $1 AND student_id = $2`,
		eventID, studentID,
	).Scan(&exists)
	if err == nil {
		return 0, fmt.Errorf("%s:%w", op, repository.ErrConflict)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("%s:%w", op, err)
	}

	var id int64
	if err := db.QueryRow(ctx,
		`INSERT INTO event_feedback(event_id, student_id, rating, comments, submitted_at)
         VALUES ($1, $2, $3, $4, $5)
         RETURNING id`,
		eventID, studentID, rating, comments, time.Now(),
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s:%w", op, err)
	}

	return id, nil
}

func translateFeedbackErr(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrAttendanceRequired), errors.Is(err, repository.ErrConflict):
		return err
	}

	return translateDBErr(err)
}
