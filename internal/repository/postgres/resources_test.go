package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventra/internal/domain"
	"eventra/internal/repository"
)

func TestAssign_BooksAndDecrements(t *testing.T) {
	f := newFakeDB()
	f.seedResource(1, 5, string(domain.ResourceAvailable))
	repo := (&ResourceRepo{}).With(f)

	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	bookingID, err := repo.Assign(context.Background(), 10, 1, 3, start, end)
	require.NoError(t, err)

	assert.NotZero(t, bookingID)
	assert.Equal(t, 2, f.resources[1].quantity)
	require.Len(t, f.bookings, 1)
	assert.False(t, f.bookings[0].reconciled)
	assert.Equal(t, 3, f.bookings[0].quantity)
}

func TestAssign_InsufficientQuantity(t *testing.T) {
	f := newFakeDB()
	f.seedResource(1, 2, string(domain.ResourceAvailable))
	repo := (&ResourceRepo{}).With(f)

	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	_, err := repo.Assign(context.Background(), 10, 1, 3, start, start.Add(time.Hour))

	assert.ErrorIs(t, err, repository.ErrResourceUnavailable)
	assert.Equal(t, 2, f.resources[1].quantity)
	assert.Empty(t, f.bookings)
}

func TestAssign_UnderMaintenance(t *testing.T) {
	f := newFakeDB()
	f.seedResource(1, 5, string(domain.ResourceUnderMaintenance))
	repo := (&ResourceRepo{}).With(f)

	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	_, err := repo.Assign(context.Background(), 10, 1, 1, start, start.Add(time.Hour))

	assert.ErrorIs(t, err, repository.ErrResourceUnavailable)
	assert.Equal(t, 5, f.resources[1].quantity)
	assert.Empty(t, f.bookings)
}

func TestAssign_ResourceNotFound(t *testing.T) {
	f := newFakeDB()
	repo := (&ResourceRepo{}).With(f)

	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	_, err := repo.Assign(context.Background(), 10, 99, 1, start, start.Add(time.Hour))

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestReplenish_CreditsExpiredOnce(t *testing.T) {
	f := newFakeDB()
	f.seedResource(1, 2, string(domain.ResourceAvailable))
	f.seedBooking(1, 3, time.Now().Add(-time.Minute))
	repo := (&ResourceRepo{}).With(f)
	ctx := context.Background()

	restored, err := repo.Replenish(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), restored)
	assert.Equal(t, 5, f.resources[1].quantity)
	assert.True(t, f.bookings[0].reconciled)

	// a second pass sees nothing unreconciled
	restored, err = repo.Replenish(ctx)
	require.NoError(t, err)
	assert.Zero(t, restored)
	assert.Equal(t, 5, f.resources[1].quantity)
}

func TestReplenish_IgnoresActiveBookings(t *testing.T) {
	f := newFakeDB()
	f.seedResource(1, 2, string(domain.ResourceAvailable))
	f.seedBooking(1, 3, time.Now().Add(time.Hour))
	repo := (&ResourceRepo{}).With(f)

	restored, err := repo.Replenish(context.Background())

	require.NoError(t, err)
	assert.Zero(t, restored)
	assert.Equal(t, 2, f.resources[1].quantity)
	assert.False(t, f.bookings[0].reconciled)
}

func TestReplenish_AccumulatesPerResource(t *testing.T) {
	f := newFakeDB()
	f.seedResource(1, 0, string(domain.ResourceAvailable))
	f.seedResource(2, 1, string(domain.ResourceAvailable))
	expired := time.Now().Add(-time.Minute)
	f.seedBooking(1, 2, expired)
	f.seedBooking(1, 1, expired)
	f.seedBooking(2, 4, expired)
	repo := (&ResourceRepo{}).With(f)

	restored, err := repo.Replenish(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(7), restored)
	assert.Equal(t, 3, f.resources[1].quantity)
	assert.Equal(t, 5, f.resources[2].quantity)
}
