package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"eventra/internal/repository"
)

func TestTranslateDBErr(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{
			name: "nil passes through",
			in:   nil,
			want: nil,
		},
		{
			name: "no rows becomes not found",
			in:   pgx.ErrNoRows,
			want: repository.ErrNotFound,
		},
		{
			name: "wrapped no rows becomes not found",
			in:   fmt.Errorf("query: %w", pgx.ErrNoRows),
			want: repository.ErrNotFound,
		},
		{
			name: "unique violation becomes conflict",
			in:   &pgconn.PgError{Code: "23505"},
			want: repository.ErrConflict,
		},
		{
			name: "foreign key violation becomes not found",
			in:   &pgconn.PgError{Code: "23503"},
			want: repository.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, translateDBErr(tt.in))
		})
	}
}

func TestTranslateDBErr_Passthrough(t *testing.T) {
	err := errors.New("connection reset")

	assert.Equal(t, err, translateDBErr(err))
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(&pgconn.PgError{Code: "40001"}))
	assert.True(t, IsRetryable(&pgconn.PgError{Code: "40P01"}))
	assert.False(t, IsRetryable(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsRetryable(errors.New("timeout")))
	assert.False(t, IsRetryable(nil))
}
