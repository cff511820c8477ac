package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventra/internal/repository"
)

func TestRegister_SellsOutExactly(t *testing.T) {
	f := newFakeDB()
	f.seedTicket(1, 10, 2)
	repo := (&RegistrationRepo{}).With(f)
	ctx := context.Background()

	orderID, err := repo.Register(ctx, 10, 1, 1)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, orderID)
	assert.Equal(t, 1, f.tickets[1].quantity)

	_, err = repo.Register(ctx, 10, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, f.tickets[1].quantity)

	_, err = repo.Register(ctx, 10, 3, 1)
	assert.ErrorIs(t, err, repository.ErrSoldOut)
	assert.Equal(t, 0, f.tickets[1].quantity)

	ticketID, err := repo.Cancel(ctx, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), ticketID)
	assert.Equal(t, 1, f.tickets[1].quantity)
}

func TestRegister_CancelRoundTrip(t *testing.T) {
	f := newFakeDB()
	f.seedTicket(1, 10, 5)
	repo := (&RegistrationRepo{}).With(f)
	ctx := context.Background()

	_, err := repo.Register(ctx, 10, 7, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, f.tickets[1].quantity)

	_, err = repo.Cancel(ctx, 10, 7)
	require.NoError(t, err)

	assert.Equal(t, 5, f.tickets[1].quantity)
	assert.Empty(t, f.orders)
	assert.Empty(t, f.participants)
}

func TestRegister_DuplicateDecrementsOnce(t *testing.T) {
	f := newFakeDB()
	f.seedTicket(1, 10, 5)
	repo := (&RegistrationRepo{}).With(f)
	ctx := context.Background()

	_, err := repo.Register(ctx, 10, 7, 1)
	require.NoError(t, err)

	_, err = repo.Register(ctx, 10, 7, 1)
	assert.ErrorIs(t, err, repository.ErrAlreadyRegistered)
	assert.Equal(t, 4, f.tickets[1].quantity)
	assert.Len(t, f.orders, 1)
}

func TestRegister_TicketNotFound(t *testing.T) {
	f := newFakeDB()
	f.seedTicket(1, 10, 5)
	repo := (&RegistrationRepo{}).With(f)
	ctx := context.Background()

	_, err := repo.Register(ctx, 10, 7, 99)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// ticket exists but belongs to another event
	_, err = repo.Register(ctx, 11, 7, 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.Equal(t, 5, f.tickets[1].quantity)
	assert.Empty(t, f.participants)
}

func TestCancel_NotRegistered(t *testing.T) {
	f := newFakeDB()
	f.seedTicket(1, 10, 5)
	repo := (&RegistrationRepo{}).With(f)

	_, err := repo.Cancel(context.Background(), 10, 7)

	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Equal(t, 5, f.tickets[1].quantity)
}

func TestCancel_StaleParticipantWithoutOrder(t *testing.T) {
	f := newFakeDB()
	f.seedTicket(1, 10, 5)
	f.participants[[2]int64{10, 7}] = false
	repo := (&RegistrationRepo{}).With(f)

	ticketID, err := repo.Cancel(context.Background(), 10, 7)

	require.NoError(t, err)
	assert.Equal(t, int64(0), ticketID)
	assert.Equal(t, 5, f.tickets[1].quantity)
	assert.Empty(t, f.participants)
}
