package domain

import (
	"time"

	"github.com/google/uuid"
)

type EventStatus string

const (
	EventScheduled EventStatus = "Scheduled"
	EventOngoing   EventStatus = "Ongoing"
	EventCompleted EventStatus = "Completed"
	EventCancelled EventStatus = "Cancelled"
)

type ResourceStatus string

const (
	ResourceAvailable        ResourceStatus = "Available"
	ResourceUnderMaintenance ResourceStatus = "Under Maintenance"
)

type Event struct {
	ID              int64       `json:"id"`
	Name            string      `json:"name"`
	Description     string      `json:"description,omitempty"`
	Starts          time.Time   `json:"starts_at"`
	Ends            time.Time   `json:"ends_at"`
	VenueID         int64       `json:"venue_id,omitempty"`
	VenueName       string      `json:"venue_name,omitempty"`
	HostID          int64       `json:"host_id,omitempty"`
	HostName        string      `json:"host_name,omitempty"`
	Status          EventStatus `json:"status"`
	MaxParticipants int         `json:"max_participants"`
}

type Venue struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Building    string `json:"building,omitempty"`
	Capacity    int    `json:"capacity"`
	IsAvailable bool   `json:"is_available"`
}

// Ticket is one bookable ticket tier of an event. Quantity is the remaining
// inventory and is mutated only by the registration engine.
type Ticket struct {
	ID       int64  `json:"id"`
	EventID  int64  `json:"event_id"`
	Type     string `json:"ticket_type"`
	Price    int64  `json:"price_cents"`
	Quantity int    `json:"quantity"`
}

type Order struct {
	ID            uuid.UUID `json:"id"`
	TicketID      int64     `json:"ticket_id"`
	StudentID     int64     `json:"student_id"`
	OrderedAt     time.Time `json:"ordered_at"`
	PaymentStatus string    `json:"payment_status"`
}

type Participant struct {
	EventID      int64     `json:"event_id"`
	StudentID    int64     `json:"student_id"`
	StudentName  string    `json:"student_name,omitempty"`
	SRN          string    `json:"srn,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`
	Attended     bool      `json:"attended"`
}

// Registration is the student-facing view of one upcoming participation.
type Registration struct {
	EventID   int64     `json:"event_id"`
	EventName string    `json:"event_name"`
	Starts    time.Time `json:"starts_at"`
	VenueName string    `json:"venue_name,omitempty"`
}

type Resource struct {
	ID       int64          `json:"id"`
	Name     string         `json:"name"`
	Type     string         `json:"type,omitempty"`
	Quantity int            `json:"quantity"`
	Status   ResourceStatus `json:"maintenance_status"`
}

type ResourceBooking struct {
	ID         int64     `json:"id"`
	EventID    int64     `json:"event_id"`
	ResourceID int64     `json:"resource_id"`
	Quantity   int       `json:"quantity_booked"`
	Starts     time.Time `json:"booking_start"`
	Ends       time.Time `json:"booking_end"`
	Reconciled bool      `json:"reconciled"`
}

type Maintenance struct {
	ID          int64     `json:"id"`
	ResourceID  int64     `json:"resource_id"`
	Starts      time.Time `json:"maintenance_start"`
	Ends        time.Time `json:"maintenance_end"`
	Description string    `json:"description,omitempty"`
}

type Student struct {
	ID       int64  `json:"id"`
	SRN      string `json:"srn"`
	Name     string `json:"name"`
	Semester int    `json:"semester"`
	Section  string `json:"section"`
}

type Host struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department,omitempty"`
	Role       string `json:"role,omitempty"`
}

type Feedback struct {
	ID          int64     `json:"id"`
	EventID     int64     `json:"event_id"`
	StudentID   int64     `json:"student_id"`
	StudentName string    `json:"student_name,omitempty"`
	SRN         string    `json:"srn,omitempty"`
	Rating      int       `json:"rating"`
	Comments    string    `json:"comments,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type AverageRating struct {
	EventID int64   `json:"event_id"`
	Average float64 `json:"average_rating"`
	Total   int64   `json:"total_reviews"`
}
