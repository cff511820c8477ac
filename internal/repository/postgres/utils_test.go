package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventra/internal/repository"
)

func TestUpdateBuilder_NoFields(t *testing.T) {
	b := newUpdateBuilder("events")

	_, _, err := b.Where("id", int64(7))

	assert.ErrorIs(t, err, repository.ErrNoFields)
}

func TestUpdateBuilder_SingleField(t *testing.T) {
	b := newUpdateBuilder("events")

	name := "Tech Fest"
	setClause(b, "name", &name)

	query, args, err := b.Where("id", int64(7))
	require.NoError(t, err)

	assert.Equal(t, "UPDATE events SET name = $1 WHERE id = $2", query)
	assert.Equal(t, []any{"Tech Fest", int64(7)}, args)
}

func TestUpdateBuilder_SkipsNilFields(t *testing.T) {
	b := newUpdateBuilder("events")

	name := "Tech Fest"
	var description *string
	venueID := int64(3)

	setClause(b, "name", &name)
	setClause(b, "description", description)
	setClause(b, "venue_id", &venueID)

	query, args, err := b.Where("id", int64(7))
	require.NoError(t, err)

	assert.Equal(t, "UPDATE events SET name = $1, venue_id = $2 WHERE id = $3", query)
	assert.Equal(t, []any{"Tech Fest", int64(3), int64(7)}, args)
}
