package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"eventra/internal/domain"
)

type DirectoryRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *DirectoryRepo) With(db DB) *DirectoryRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *DirectoryRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

func (r *DirectoryRepo) ListStudents(ctx context.Context) ([]domain.Student, error) {
	const op = "postgres.DirectoryRepo.ListStudents"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, srn, name, semester, section FROM students ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.Student
	for rows.Next() {
		var s domain.Student
		if err := rows.Scan(&s.ID, &s.SRN, &s.Name, &s.Semester, &s.Section); err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// GetStudent retrieves one student.
//
// Returns:
//   - error: repository.ErrNotFound if the student does not exist.
func (r *DirectoryRepo) GetStudent(ctx context.Context, id int64) (*domain.Student, error) {
	const op = "postgres.DirectoryRepo.GetStudent"

	db := r.handle()

	var s domain.Student
	err := db.QueryRow(ctx,
		`SELECT id, srn, name, semester, section FROM students WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.SRN, &s.Name, &s.Semester, &s.Section)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return &s, nil
}

// CreateStudent inserts a student.
//
// Returns:
//   - error: repository.ErrConflict if the SRN is already taken.
func (r *DirectoryRepo) CreateStudent(
	ctx context.Context,
	srn, name string,
	semester int,
	section string,
) (int64, error) {
	const op = "postgres.DirectoryRepo.CreateStudent"

	db := r.handle()

	var id int64
	if err := db.QueryRow(ctx,
		`INSERT INTO students(srn, name, semester, section)
         VALUES ($1, $2, $3, $4)
         RETURNING id`,
		srn, name, semester, section,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return id, nil
}

func (r *DirectoryRepo) ListHosts(ctx context.Context) ([]domain.Host, error) {
	const op = "postgres.DirectoryRepo.ListHosts"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, name, COALESCE(department, ''), COALESCE(role, '')
           FROM hosts ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.Host
	for rows.Next() {
		var h domain.Host
		if err := rows.Scan(&h.ID, &h.Name, &h.Department, &h.Role); err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}
