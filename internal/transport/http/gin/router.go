package httpgin

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"eventra/internal/domain"
	postgresrepo "eventra/internal/repository/postgres"
	redisrepo "eventra/internal/repository/redis"
	"eventra/internal/service"
	"eventra/internal/service/directory"
	"eventra/internal/service/events"
	"eventra/internal/service/feedback"
	"eventra/internal/service/registration"
	"eventra/internal/service/resources"
)

func NewRouter(
	svcs *service.Services,
	idem *redisrepo.IdempotencyStore,
	logger *slog.Logger,
	middlewares ...gin.HandlerFunc,
) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery(), LoggingMiddleware(logger), RequestIDMiddleware(), CORS())
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// health
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public API
	r.GET("/events", handleListEvents(svcs))
	r.GET("/events/:id", handleGetEvent(svcs))
	r.GET("/events/:id/tickets", handleListTickets(svcs))
	r.GET("/events/:id/participants", handleListParticipants(svcs))
	r.GET("/events/:id/resources", handleListBookings(svcs))
	r.GET("/events/:id/feedback", handleListFeedback(svcs))
	r.GET("/events/:id/feedback/average", handleAverageRating(svcs))

	r.POST("/events/:id/register", handleRegister(svcs, idem))
	r.DELETE("/events/:id/register/:student_id", handleCancel(svcs))
	r.PUT("/events/:id/attendance/:student_id", handleMarkAttendance(svcs))

	r.POST("/feedback", handleSubmitFeedback(svcs))

	r.GET("/participants", handleListAllParticipants(svcs))

	r.GET("/venues", handleListVenues(svcs))
	r.GET("/resources", handleListResources(svcs))

	r.GET("/students", handleListStudents(svcs))
	r.GET("/students/:id", handleGetStudent(svcs))
	r.GET("/students/:id/registrations", handleListRegistrations(svcs))
	r.POST("/students", handleCreateStudent(svcs))

	r.GET("/hosts", handleListHosts(svcs))

	// Admin-API
	// TODO: add admin middleware
	admin := r.Group("/admin")
	{
		admin.POST("/events", handleCreateEvent(svcs))
		admin.PATCH("/events/:id", handleUpdateEvent(svcs))
		admin.POST("/events/:id/tickets", handleCreateTicket(svcs))
		admin.POST("/events/:id/resources", handleAssignResource(svcs))
		admin.POST("/resources/:id/maintenance", handleScheduleMaintenance(svcs))
		admin.POST("/replenish", handleReplenish(svcs))
		admin.PUT("/venues/:id", handleUpdateVenue(svcs))
	}

	return r
}

// --- Handlers with Swagger annotations ---

// @Summary  List events
// @Param    filter  query  string  false  "scheduled|completed|all"
// @Success  200  {array}  domain.Event
// @Router   /events [get]
func handleListEvents(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := postgresrepo.EventsScheduled
		switch c.Query("filter") {
		case "completed":
			filter = postgresrepo.EventsCompleted
		case "all":
			filter = postgresrepo.EventsAll
		}
		out, err := svcs.Events.List(c.Request.Context(), filter)
		if err != nil {
			respondErr(c, err)
			return
		}
		// ETag + Cache-Control 15s
		writeJSONWithCache(c, http.StatusOK, out, "public, max-age=15", true)
	}
}

// @Summary  Get event
// @Param    id  path  int  true  "Event ID"
// @Success  200  {object}  domain.Event
// @Failure  404  {object}  ErrorResponse
// @Router   /events/{id} [get]
func handleGetEvent(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		e, err := svcs.Events.Get(c.Request.Context(), eventID)
		if err != nil {
			respondErr(c, err)
			return
		}
		// ETag + Cache-Control 60s
		writeJSONWithCache(c, http.StatusOK, e, "public, max-age=60", true)
	}
}

// @Summary  List ticket tiers with remaining quantity
// @Param    id  path  int  true  "Event ID"
// @Success  200  {array}  domain.Ticket
// @Router   /events/{id}/tickets [get]
func handleListTickets(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		tickets, err := svcs.Events.ListTickets(c.Request.Context(), eventID)
		if err != nil {
			respondErr(c, err)
			return
		}
		// ETag + Cache-Control 15s
		writeJSONWithCache(c, http.StatusOK, tickets, "public, max-age=15", true)
	}
}

// @Summary  List event participants
// @Param    id  path  int  true  "Event ID"
// @Success  200  {array}  domain.Participant
// @Router   /events/{id}/participants [get]
func handleListParticipants(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		parts, err := svcs.Registration.ListParticipants(c.Request.Context(), eventID)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, parts, "public, max-age=15", true)
	}
}

// @Summary  List resource bookings of an event
// @Param    id  path  int  true  "Event ID"
// @Success  200  {array}  domain.ResourceBooking
// @Router   /events/{id}/resources [get]
func handleListBookings(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		bookings, err := svcs.Resources.ListBookings(c.Request.Context(), eventID)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, bookings)
	}
}

// @Summary  Register a student for an event (idempotent)
// @Param    id  path  int  true  "Event ID"
// @Param    req body  RegisterRequest true "payload"
// @Header   201 {string} Idempotency-Key "echo"
// @Success  201 {object} RegisterResponse
// @Failure  400 {object} ErrorResponse "sold out / bad payload"
// @Failure  404 {object} ErrorResponse "ticket not found"
// @Failure  409 {object} ErrorResponse "already registered / idem in progress"
// @Failure  429 {object} ErrorResponse "rate limited"
// @Router   /events/{id}/register [post]
func handleRegister(
	svcs *service.Services,
	idem *redisrepo.IdempotencyStore,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		idemKey := strings.TrimSpace(c.GetHeader("Idempotency-Key"))
		var idemStorageKey string
		if idem != nil && idemKey != "" {
			idemStorageKey = redisrepo.KeyIdemRegister(eventID, idemKey)

			if payload, ok, _ := idem.GetResult(
				c.Request.Context(),
				idemStorageKey,
			); ok {
				c.Header("Idempotency-Key", idemKey)
				c.Data(
					http.StatusCreated,
					"application/json; charset=utf-8",
					[]byte(payload),
				)
				return
			}

			locked, err := idem.AcquireLock(
				c.Request.Context(),
				idemStorageKey,
				60*time.Second,
			)
			if err != nil {
				respondErr(c, err)
				return
			}
			if !locked {
				if payload, ok, _ := idem.GetResult(
					c.Request.Context(),
					idemStorageKey,
				); ok {
					c.Header("Idempotency-Key", idemKey)
					c.Data(
						http.StatusCreated,
						"application/json; charset=utf-8",
						[]byte(payload),
					)
					return
				}
				c.Header("Retry-After", "1")
				c.JSON(
					http.StatusConflict,
					ErrorResponse{Error: "idempotency key in progress"},
				)
				return
			}
		}

		rlKey := "ip:" + c.ClientIP()

		orderID, err := svcs.Registration.Register(
			c.Request.Context(),
			eventID,
			req.StudentID,
			req.TicketID,
			rlKey,
		)
		if err != nil {
			if idemStorageKey != "" && idem != nil {
				_ = idem.Release(c.Request.Context(), idemStorageKey)
			}
			if isRateLimitedErr(err) {
				c.Header("Retry-After", "60")
				c.JSON(
					http.StatusTooManyRequests,
					ErrorResponse{Error: err.Error()},
				)
				return
			}
			respondErr(c, err)
			return
		}

		resp := RegisterResponse{OrderID: orderID.String()}

		if idemStorageKey != "" && idem != nil {
			b, _ := json.Marshal(resp)
			_ = idem.SaveResult(c.Request.Context(), idemStorageKey, string(b))
			c.Header("Idempotency-Key", idemKey)
		}

		c.JSON(http.StatusCreated, resp)
	}
}

// @Summary  Cancel a registration and restock the ticket
// @Param    id          path  int  true  "Event ID"
// @Param    student_id  path  int  true  "Student ID"
// @Success  200 {object} MessageResponse
// @Failure  404 {object} ErrorResponse
// @Router   /events/{id}/register/{student_id} [delete]
func handleCancel(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		studentID, ok := parseInt64Param(c, "student_id")
		if !ok {
			return
		}
		if err := svcs.Registration.Cancel(
			c.Request.Context(),
			eventID,
			studentID,
		); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, MessageResponse{Message: "registration cancelled"})
	}
}

// @Summary  Mark attendance
// @Param    id          path  int  true  "Event ID"
// @Param    student_id  path  int  true  "Student ID"
// @Success  200 {object} MessageResponse
// @Failure  404 {object} ErrorResponse
// @Router   /events/{id}/attendance/{student_id} [put]
func handleMarkAttendance(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		studentID, ok := parseInt64Param(c, "student_id")
		if !ok {
			return
		}
		if err := svcs.Registration.MarkAttendance(
			c.Request.Context(),
			eventID,
			studentID,
		); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, MessageResponse{Message: "attendance marked"})
	}
}

// @Summary  List event feedback
// @Param    id  path  int  true  "Event ID"
// @Success  200  {array}  domain.Feedback
// @Router   /events/{id}/feedback [get]
func handleListFeedback(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		out, err := svcs.Feedback.ListByEvent(c.Request.Context(), eventID)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Average event rating
// @Param    id  path  int  true  "Event ID"
// @Success  200  {object}  domain.AverageRating
// @Router   /events/{id}/feedback/average [get]
func handleAverageRating(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		avg, err := svcs.Feedback.AverageRating(c.Request.Context(), eventID)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, avg, "public, max-age=60", true)
	}
}

// @Summary  Submit feedback for an attended event
// @Param    req body  SubmitFeedbackRequest true "payload"
// @Success  201 {object} SubmitFeedbackResponse
// @Failure  403 {object} ErrorResponse "attendance not marked"
// @Failure  409 {object} ErrorResponse "feedback already submitted"
// @Router   /feedback [post]
func handleSubmitFeedback(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubmitFeedbackRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		id, err := svcs.Feedback.Submit(
			c.Request.Context(),
			req.EventID,
			req.StudentID,
			req.Rating,
			req.Comments,
		)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, SubmitFeedbackResponse{FeedbackID: id})
	}
}

// @Summary  List participants across all events
// @Success  200  {array}  domain.Participant
// @Router   /participants [get]
func handleListAllParticipants(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		parts, err := svcs.Registration.ListAllParticipants(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, parts)
	}
}

// @Summary  List venues
// @Param    only  query  string  false  "available"
// @Success  200  {array}  domain.Venue
// @Router   /venues [get]
func handleListVenues(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		onlyAvailable := c.Query("only") == "available"
		out, err := svcs.Events.ListVenues(c.Request.Context(), onlyAvailable)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, out, "public, max-age=60", true)
	}
}

// @Summary  List resources with remaining quantity
// @Success  200  {array}  domain.Resource
// @Router   /resources [get]
func handleListResources(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svcs.Resources.List(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  List students
// @Success  200  {array}  domain.Student
// @Router   /students [get]
func handleListStudents(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svcs.Directory.ListStudents(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Get student
// @Param    id  path  int  true  "Student ID"
// @Success  200  {object}  domain.Student
// @Failure  404  {object}  ErrorResponse
// @Router   /students/{id} [get]
func handleGetStudent(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		studentID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		st, err := svcs.Directory.GetStudent(c.Request.Context(), studentID)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, st)
	}
}

// @Summary  List a student's upcoming registrations
// @Param    id  path  int  true  "Student ID"
// @Success  200  {array}  domain.Registration
// @Router   /students/{id}/registrations [get]
func handleListRegistrations(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		studentID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		regs, err := svcs.Registration.ListRegistrations(c.Request.Context(), studentID)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, regs, "private, max-age=15", true)
	}
}

// @Summary  Create student
// @Param    req body  CreateStudentRequest true "payload"
// @Success  201 {object} CreateStudentResponse
// @Failure  409 {object} ErrorResponse "SRN taken"
// @Router   /students [post]
func handleCreateStudent(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateStudentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		id, err := svcs.Directory.CreateStudent(
			c.Request.Context(),
			req.SRN,
			req.Name,
			req.Semester,
			req.Section,
		)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, CreateStudentResponse{StudentID: id})
	}
}

// @Summary  List hosts
// @Success  200  {array}  domain.Host
// @Router   /hosts [get]
func handleListHosts(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svcs.Directory.ListHosts(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Create event
// @Param    req body  CreateEventRequest true "payload"
// @Success  201 {object} CreateEventResponse
// @Failure  404 {object} ErrorResponse "venue or host does not exist"
// @Router   /admin/events [post]
func handleCreateEvent(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		starts, err := parseRFC3339(req.StartsAt)
		if err != nil {
			badRequest(c, "invalid starts_at (RFC3339)")
			return
		}
		ends, err := parseRFC3339(req.EndsAt)
		if err != nil {
			badRequest(c, "invalid ends_at (RFC3339)")
			return
		}
		id, err := svcs.Events.Create(
			c.Request.Context(),
			req.Name,
			req.Description,
			starts,
			ends,
			req.VenueID,
			req.HostID,
			req.MaxParticipants,
		)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, CreateEventResponse{EventID: id})
	}
}

// @Summary  Partially update an event
// @Param    id  path  int  true  "Event ID"
// @Param    req body  UpdateEventRequest true "payload (absent fields untouched)"
// @Success  200 {object} MessageResponse
// @Failure  400 {object} ErrorResponse "no fields to update"
// @Failure  404 {object} ErrorResponse
// @Router   /admin/events/{id} [patch]
func handleUpdateEvent(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		var req UpdateEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		patch := postgresrepo.EventPatch{
			Name:        req.Name,
			Description: req.Description,
			VenueID:     req.VenueID,
		}
		if req.StartsAt != nil {
			t, err := parseRFC3339(*req.StartsAt)
			if err != nil {
				badRequest(c, "invalid starts_at (RFC3339)")
				return
			}
			patch.Starts = &t
		}
		if req.EndsAt != nil {
			t, err := parseRFC3339(*req.EndsAt)
			if err != nil {
				badRequest(c, "invalid ends_at (RFC3339)")
				return
			}
			patch.Ends = &t
		}
		if req.Status != nil {
			st := domain.EventStatus(*req.Status)
			patch.Status = &st
		}

		if err := svcs.Events.Update(c.Request.Context(), eventID, patch); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, MessageResponse{Message: "event updated"})
	}
}

// @Summary  Add a ticket tier to an event
// @Param    id  path  int  true  "Event ID"
// @Param    req body  CreateTicketRequest true "payload"
// @Success  201 {object} CreateTicketResponse
// @Failure  404 {object} ErrorResponse
// @Router   /admin/events/{id}/tickets [post]
func handleCreateTicket(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		var req CreateTicketRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		id, err := svcs.Events.CreateTicket(
			c.Request.Context(),
			eventID,
			req.TicketType,
			req.PriceCents,
			req.Quantity,
		)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, CreateTicketResponse{TicketID: id})
	}
}

// @Summary  Book resource units for an event over a time window
// @Param    id  path  int  true  "Event ID"
// @Param    req body  AssignResourceRequest true "payload"
// @Success  201 {object} AssignResourceResponse
// @Failure  400 {object} ErrorResponse "invalid window or quantity"
// @Failure  404 {object} ErrorResponse "resource not found"
// @Failure  409 {object} ErrorResponse "resource unavailable"
// @Router   /admin/events/{id}/resources [post]
func handleAssignResource(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		var req AssignResourceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		start, err := parseRFC3339(req.BookingStart)
		if err != nil {
			badRequest(c, "invalid booking_start (RFC3339)")
			return
		}
		end, err := parseRFC3339(req.BookingEnd)
		if err != nil {
			badRequest(c, "invalid booking_end (RFC3339)")
			return
		}
		id, err := svcs.Resources.Assign(
			c.Request.Context(),
			eventID,
			req.ResourceID,
			req.Quantity,
			start,
			end,
		)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, AssignResourceResponse{BookingID: id})
	}
}

// @Summary  Schedule a maintenance window for a resource
// @Param    id  path  int  true  "Resource ID"
// @Param    req body  MaintenanceRequest true "payload"
// @Success  201 {object} MaintenanceResponse
// @Failure  400 {object} ErrorResponse "invalid window"
// @Failure  404 {object} ErrorResponse
// @Router   /admin/resources/{id}/maintenance [post]
func handleScheduleMaintenance(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		resourceID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		var req MaintenanceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		start, err := parseRFC3339(req.Start)
		if err != nil {
			badRequest(c, "invalid maintenance_start (RFC3339)")
			return
		}
		end, err := parseRFC3339(req.End)
		if err != nil {
			badRequest(c, "invalid maintenance_end (RFC3339)")
			return
		}
		id, err := svcs.Resources.ScheduleMaintenance(
			c.Request.Context(),
			resourceID,
			start,
			end,
			req.Description,
		)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, MaintenanceResponse{MaintenanceID: id})
	}
}

// @Summary  Restock resources whose booking windows have passed
// @Success  200 {object} ReplenishResponse
// @Router   /admin/replenish [post]
func handleReplenish(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		restored, err := svcs.Resources.Replenish(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, ReplenishResponse{Restored: restored})
	}
}

// @Summary  Set venue availability
// @Param    id  path  int  true  "Venue ID"
// @Param    req body  UpdateVenueRequest true "payload"
// @Success  200 {object} MessageResponse
// @Failure  404 {object} ErrorResponse
// @Router   /admin/venues/{id} [put]
func handleUpdateVenue(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		venueID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		var req UpdateVenueRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		if err := svcs.Events.SetVenueAvailability(
			c.Request.Context(),
			venueID,
			*req.IsAvailable,
		); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, MessageResponse{Message: "venue updated"})
	}
}

// --- Helpers ---

func parseInt64Param(c *gin.Context, name string) (int64, bool) {
	s := c.Param(name)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return v, true
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func isRateLimitedErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "rate limited")
}

func respondErr(c *gin.Context, err error) {
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}

	switch {
	// registration service
	case errors.Is(err, registration.ErrAlreadyRegistered):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "student already registered"})
		return
	case errors.Is(err, registration.ErrSoldOut):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "tickets sold out"})
		return
	case errors.Is(err, registration.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "ticket not found"})
		return
	case errors.Is(err, registration.ErrRegistrationNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "registration not found"})
		return
	case errors.Is(err, registration.ErrParticipantNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "participant not found"})
		return
	// resources service
	case errors.Is(err, resources.ErrInvalidWindow):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "end must be after start"})
		return
	case errors.Is(err, resources.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "quantity must be positive"})
		return
	case errors.Is(err, resources.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "resource not found"})
		return
	case errors.Is(err, resources.ErrResourceUnavailable):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "resource unavailable"})
		return
	// events service
	case errors.Is(err, events.ErrEventNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "event not found"})
		return
	case errors.Is(err, events.ErrVenueNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "venue or host does not exist"})
		return
	case errors.Is(err, events.ErrNoFields):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no fields to update"})
		return
	// directory service
	case errors.Is(err, directory.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "student not found"})
		return
	case errors.Is(err, directory.ErrSRNTaken):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "srn already registered"})
		return
	// feedback service
	case errors.Is(err, feedback.ErrInvalidRating):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "rating must be between 1 and 5"})
		return
	case errors.Is(err, feedback.ErrAttendanceRequired):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "attendance not marked"})
		return
	case errors.Is(err, feedback.ErrDuplicateFeedback):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "feedback already submitted"})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
