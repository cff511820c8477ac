package httpgin

import "time"

type RegisterRequest struct {
	StudentID int64 `json:"student_id" binding:"required"`
	TicketID  int64 `json:"ticket_id" binding:"required"`
}

type CreateEventRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	StartsAt        string `json:"starts_at" binding:"required"`
	EndsAt          string `json:"ends_at" binding:"required"`
	VenueID         int64  `json:"venue_id" binding:"required"`
	HostID          int64  `json:"host_id" binding:"required"`
	MaxParticipants int    `json:"max_participants"`
}

// UpdateEventRequest carries optional fields; absent fields stay untouched.
type UpdateEventRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	StartsAt    *string `json:"starts_at"`
	EndsAt      *string `json:"ends_at"`
	VenueID     *int64  `json:"venue_id"`
	Status      *string `json:"status"`
}

type CreateTicketRequest struct {
	TicketType string `json:"ticket_type" binding:"required"`
	PriceCents int64  `json:"price_cents" binding:"required,gte=0"`
	Quantity   int    `json:"quantity" binding:"required,gt=0"`
}

type AssignResourceRequest struct {
	ResourceID   int64  `json:"resource_id" binding:"required"`
	Quantity     int    `json:"quantity_booked" binding:"required,gt=0"`
	BookingStart string `json:"booking_start" binding:"required"`
	BookingEnd   string `json:"booking_end" binding:"required"`
}

type MaintenanceRequest struct {
	Start       string `json:"maintenance_start" binding:"required"`
	End         string `json:"maintenance_end" binding:"required"`
	Description string `json:"description"`
}

type UpdateVenueRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

type CreateStudentRequest struct {
	SRN      string `json:"srn" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Semester int    `json:"semester" binding:"required,gte=1"`
	Section  string `json:"section" binding:"required"`
}

type SubmitFeedbackRequest struct {
	EventID   int64  `json:"event_id" binding:"required"`
	StudentID int64  `json:"student_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required,gte=1,lte=5"`
	Comments  string `json:"comments"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type RegisterResponse struct {
	OrderID string `json:"order_id"`
}

type CreateEventResponse struct {
	EventID int64 `json:"event_id"`
}

type CreateTicketResponse struct {
	TicketID int64 `json:"ticket_id"`
}

type AssignResourceResponse struct {
	BookingID int64 `json:"booking_id"`
}

type MaintenanceResponse struct {
	MaintenanceID int64 `json:"maintenance_id"`
}

type ReplenishResponse struct {
	Restored int64 `json:"restored"`
}

type CreateStudentResponse struct {
	StudentID int64 `json:"student_id"`
}

type SubmitFeedbackResponse struct {
	FeedbackID int64 `json:"feedback_id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func parseRFC3339(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
