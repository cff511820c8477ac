package redisx

import "fmt"

const ns = "eventra:v1"

func KeyEventSummary(eventID int64) string {
	return fmt.Sprintf("%s:event:%d:summary", ns, eventID)
}

func KeyEventTickets(eventID int64) string {
	return fmt.Sprintf("%s:event:%d:tickets", ns, eventID)
}

func KeyEventParticipants(eventID int64) string {
	return fmt.Sprintf("%s:event:%d:participants", ns, eventID)
}

func KeyEventAverageRating(eventID int64) string {
	return fmt.Sprintf("%s:event:%d:avg_rating", ns, eventID)
}

func KeyStudentRegistrations(studentID int64) string {
	return fmt.Sprintf("%s:student:%d:registrations", ns, studentID)
}

func KeyRateLimit(scope, id string) string {
	return fmt.Sprintf("%s:rl:%s:%s", ns, scope, id)
}

func ChannelEventsChanged() string {
	return ns + ":events:changed"
}
