package handler

import (
	"time"

	bookingapp "github.com/atelier/backend/internal/application/booking"
	"github.com/atelier/backend/internal/domain/booking"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BookingHandler handles appointment API endpoints
type BookingHandler struct {
	BaseHandler
	service *bookingapp.Service
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(service *bookingapp.Service) *BookingHandler {
	return &BookingHandler{service: service}
}

// CreateAppointmentRequest represents a request to book an appointment
type CreateAppointmentRequest struct {
	StartTime   time.Time  `json:"start_time" binding:"required"`
	EndTime     time.Time  `json:"end_time" binding:"required"`
	Title       string     `json:"title" binding:"required,notblank"`
	ClientID    *uuid.UUID `json:"client_id"`
	OrderID     *uuid.UUID `json:"order_id"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	Type        string     `json:"type" binding:"required"`
}

// UpdateAppointmentRequest represents a request to edit an appointment
type UpdateAppointmentRequest struct {
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	Type        *string    `json:"type"`
}

// RegisterRoutes registers appointment routes
func (h *BookingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	appointments := rg.Group("/appointments")
	{
		appointments.POST("", h.Create)
		appointments.GET("", h.List)
		appointments.GET("/:id", h.Get)
		appointments.PUT("/:id", h.Update)
		appointments.DELETE("/:id", h.Delete)
	}
}

// Create books a new appointment
func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), bookingapp.CreateInput{
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Title:       req.Title,
		ClientID:    req.ClientID,
		OrderID:     req.OrderID,
		Description: req.Description,
		Location:    req.Location,
		Type:        booking.AppointmentType(req.Type),
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, created)
}

// List returns appointments. Filters: ?client_id=, ?order_id=, or a calendar
// window via ?from=&to= (RFC 3339).
func (h *BookingHandler) List(c *gin.Context) {
	clientID, ok := h.parseOptionalUUIDQuery(c, "client_id")
	if !ok {
		return
	}
	orderID, ok := h.parseOptionalUUIDQuery(c, "order_id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	switch {
	case clientID != nil:
		appointments, err := h.service.ListForClient(ctx, *clientID)
		if err != nil {
			h.HandleDomainError(c, err)
			return
		}
		h.Success(c, appointments)
	case orderID != nil:
		appointments, err := h.service.ListForOrder(ctx, *orderID)
		if err != nil {
			h.HandleDomainError(c, err)
			return
		}
		h.Success(c, appointments)
	case c.Query("from") != "" || c.Query("to") != "":
		from, err := time.Parse(time.RFC3339, c.Query("from"))
		if err != nil {
			h.BadRequest(c, "Invalid from timestamp")
			return
		}
		to, err := time.Parse(time.RFC3339, c.Query("to"))
		if err != nil {
			h.BadRequest(c, "Invalid to timestamp")
			return
		}
		appointments, err := h.service.ListInRange(ctx, from, to)
		if err != nil {
			h.HandleDomainError(c, err)
			return
		}
		h.Success(c, appointments)
	default:
		appointments, err := h.service.ListAll(ctx)
		if err != nil {
			h.HandleDomainError(c, err)
			return
		}
		h.Success(c, appointments)
	}
}

// Get returns a single appointment
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, found)
}

// Update edits an appointment
func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var appointmentType *booking.AppointmentType
	if req.Type != nil {
		t := booking.AppointmentType(*req.Type)
		appointmentType = &t
	}

	updated, err := h.service.Update(c.Request.Context(), id, bookingapp.UpdateInput{
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Type:        appointmentType,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, updated)
}

// Delete removes an appointment
func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
