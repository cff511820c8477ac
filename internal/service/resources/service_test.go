package resources

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAssign_RejectsInvalidWindow(t *testing.T) {
	svc := New(nil)

	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  time.Time
	}{
		{name: "end before start", end: start.Add(-time.Hour)},
		{name: "end equals start", end: start},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Assign(context.Background(), 1, 1, 2, start, tt.end)

			assert.ErrorIs(t, err, ErrInvalidWindow)
		})
	}
}

func TestAssign_RejectsInvalidQuantity(t *testing.T) {
	svc := New(nil)

	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	_, err := svc.Assign(context.Background(), 1, 1, 0, start, end)

	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestScheduleMaintenance_RejectsInvalidWindow(t *testing.T) {
	svc := New(nil)

	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	_, err := svc.ScheduleMaintenance(context.Background(), 1, start, start, "projector bulb")

	assert.ErrorIs(t, err, ErrInvalidWindow)
}
