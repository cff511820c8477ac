package registration

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRegister_RejectsNonPositiveIDs(t *testing.T) {
	svc := New(nil, nil, nil, nil)

	tests := []struct {
		name      string
		eventID   int64
		studentID int64
		ticketID  int64
	}{
		{name: "zero event", eventID: 0, studentID: 1, ticketID: 1},
		{name: "zero student", eventID: 1, studentID: 0, ticketID: 1},
		{name: "zero ticket", eventID: 1, studentID: 1, ticketID: 0},
		{name: "negative event", eventID: -5, studentID: 1, ticketID: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderID, err := svc.Register(
				context.Background(),
				tt.eventID,
				tt.studentID,
				tt.ticketID,
				"",
			)

			assert.Error(t, err)
			assert.Equal(t, uuid.Nil, orderID)
		})
	}
}

func TestCancel_RejectsNonPositiveIDs(t *testing.T) {
	svc := New(nil, nil, nil, nil)

	assert.Error(t, svc.Cancel(context.Background(), 0, 1))
	assert.Error(t, svc.Cancel(context.Background(), 1, -1))
}

func TestMarkAttendance_RejectsNonPositiveIDs(t *testing.T) {
	svc := New(nil, nil, nil, nil)

	assert.Error(t, svc.MarkAttendance(context.Background(), 0, 1))
	assert.Error(t, svc.MarkAttendance(context.Background(), 1, 0))
}
