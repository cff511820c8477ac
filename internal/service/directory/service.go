package directory

import (
	"context"
	"errors"
	"fmt"

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

func (s *Service) ListStudents(ctx context.Context) ([]domain.Student, error) {
	const op = "service.directory.ListStudents"

	out, err := s.store.Directory().ListStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// GetStudent retrieves one student.
//
// Returns:
//   - error: directory.ErrStudentNotFound if the student does not exist.
func (s *Service) GetStudent(ctx context.Context, id int64) (*domain.Student, error) {
	const op = "service.directory.GetStudent"

	st, err := s.store.Directory().GetStudent(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrStudentNotFound)
		}

		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return st, nil
}

// CreateStudent inserts a student record.
//
// Returns:
//   - error: directory.ErrSRNTaken if the SRN already exists.
func (s *Service) CreateStudent(
	ctx context.Context,
	srn, name string,
	semester int,
	section string,
) (int64, error) {
	const op = "service.directory.CreateStudent"

	id, err := s.store.Directory().CreateStudent(ctx, srn, name, semester, section)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return 0, fmt.Errorf("%s:%w", op, ErrSRNTaken)
		}

		return 0, fmt.Errorf("%s:%w", op, err)
	}

	return id, nil
}

func (s *Service) ListHosts(ctx context.Context) ([]domain.Host, error) {
	const op = "service.directory.ListHosts"

	out, err := s.store.Directory().ListHosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}
