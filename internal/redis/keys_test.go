package redisx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "eventra:v1:event:42:summary", KeyEventSummary(42))
	assert.Equal(t, "eventra:v1:event:42:tickets", KeyEventTickets(42))
	assert.Equal(t, "eventra:v1:event:42:participants", KeyEventParticipants(42))
	assert.Equal(t, "eventra:v1:event:42:avg_rating", KeyEventAverageRating(42))
	assert.Equal(t, "eventra:v1:student:7:registrations", KeyStudentRegistrations(7))
	assert.Equal(t, "eventra:v1:rl:register:ip:1.2.3.4", KeyRateLimit("register", "ip:1.2.3.4"))
	assert.Equal(t, "eventra:v1:events:changed", ChannelEventsChanged())
}
