package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AppointmentType represents the purpose of an appointment
type AppointmentType string

const (
	TypeConsultation AppointmentType = "Consultation"
	TypeMeasurement  AppointmentType = "Measurement"
	TypeFitting      AppointmentType = "Fitting"
	TypePickup       AppointmentType = "Pickup"
	TypeGeneralTask  AppointmentType = "General Task"
)

// IsValid checks if the appointment type is valid
func (t AppointmentType) IsValid() bool {
	switch t {
	case TypeConsultation, TypeMeasurement, TypeFitting, TypePickup, TypeGeneralTask:
		return true
	}
	return false
}

// String returns the string representation of AppointmentType
func (t AppointmentType) String() string {
	return string(t)
}

// Appointment represents a calendar booking, optionally tied to a client
// and/or an order
type Appointment struct {
	shared.BaseEntity
	ClientID    *uuid.UUID      `json:"client_id,omitempty"`
	OrderID     *uuid.UUID      `json:"order_id,omitempty"`
	StartTime   time.Time       `json:"start_time"`
	EndTime     time.Time       `json:"end_time"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Location    string          `json:"location,omitempty"`
	Type        AppointmentType `json:"type"`
}

// NewAppointment creates a new appointment
func NewAppointment(startTime, endTime time.Time, title string, clientID, orderID *uuid.UUID, description, location string, appointmentType AppointmentType) (*Appointment, error) {
	if startTime.IsZero() || endTime.IsZero() {
		return nil, shared.NewDomainError("INVALID_TIME", "Start and end times are required")
	}
	if !endTime.After(startTime) {
		return nil, shared.NewDomainError("INVALID_TIME_RANGE", "End time must be after start time")
	}
	if strings.TrimSpace(title) == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Title cannot be empty")
	}
	if !appointmentType.IsValid() {
		return nil, shared.NewDomainError("INVALID_APPOINTMENT_TYPE", fmt.Sprintf("Invalid appointment type: %s", appointmentType))
	}

	return &Appointment{
		BaseEntity:  shared.NewBaseEntity(),
		ClientID:    clientID,
		OrderID:     orderID,
		StartTime:   startTime,
		EndTime:     endTime,
		Title:       title,
		Description: description,
		Location:    location,
		Type:        appointmentType,
	}, nil
}

// Reschedule moves the appointment to a new time window. Either bound may be
// kept by passing the current value; the window must stay valid as a whole.
func (a *Appointment) Reschedule(startTime, endTime time.Time) error {
	if !endTime.After(startTime) {
		return shared.NewDomainError("INVALID_TIME_RANGE", "End time must be after start time")
	}
	a.StartTime = startTime
	a.EndTime = endTime
	a.Touch()
	return nil
}

// SetTitle updates the title
func (a *Appointment) SetTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot be empty")
	}
	a.Title = title
	a.Touch()
	return nil
}

// SetType updates the appointment type
func (a *Appointment) SetType(appointmentType AppointmentType) error {
	if !appointmentType.IsValid() {
		return shared.NewDomainError("INVALID_APPOINTMENT_TYPE", fmt.Sprintf("Invalid appointment type: %s", appointmentType))
	}
	a.Type = appointmentType
	a.Touch()
	return nil
}

// SetDescription updates the description
func (a *Appointment) SetDescription(description string) {
	a.Description = description
	a.Touch()
}

// SetLocation updates the location
func (a *Appointment) SetLocation(location string) {
	a.Location = location
	a.Touch()
}

// LinkClient attaches or clears the client reference
func (a *Appointment) LinkClient(clientID *uuid.UUID) {
	a.ClientID = clientID
	a.Touch()
}

// LinkOrder attaches or clears the order reference
func (a *Appointment) LinkOrder(orderID *uuid.UUID) {
	a.OrderID = orderID
	a.Touch()
}

// Overlaps reports whether the appointment intersects the given window
func (a *Appointment) Overlaps(rangeStart, rangeEnd time.Time) bool {
	return a.StartTime.Before(rangeEnd) && a.EndTime.After(rangeStart)
}
