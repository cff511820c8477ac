package feedback

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmit_RejectsOutOfRangeRating(t *testing.T) {
	svc := New(nil, nil, Config{})

	for _, rating := range []int{-1, 0, 6, 10} {
		_, err := svc.Submit(context.Background(), 1, 1, rating, "")

		assert.ErrorIs(t, err, ErrInvalidRating)
	}
}
