package memory

import (
	"context"
	"time"

	"github.com/atelier/backend/internal/domain/booking"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BookingRepository is an in-memory implementation of booking.Repository
type BookingRepository struct {
	appointments map[uuid.UUID]booking.Appointment
}

// NewBookingRepository creates an empty appointment repository
func NewBookingRepository() *BookingRepository {
	return &BookingRepository{appointments: make(map[uuid.UUID]booking.Appointment)}
}

// FindByID finds an appointment by ID
func (r *BookingRepository) FindByID(_ context.Context, id uuid.UUID) (*booking.Appointment, error) {
	a, ok := r.appointments[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &a, nil
}

// FindByClient finds all appointments for a client
func (r *BookingRepository) FindByClient(_ context.Context, clientID uuid.UUID) ([]booking.Appointment, error) {
	out := make([]booking.Appointment, 0)
	for _, a := range r.appointments {
		if a.ClientID != nil && *a.ClientID == clientID {
			out = append(out, a)
		}
	}
	sortByStart(out)
	return out, nil
}

// FindByOrder finds all appointments tied to an order
func (r *BookingRepository) FindByOrder(_ context.Context, orderID uuid.UUID) ([]booking.Appointment, error) {
	out := make([]booking.Appointment, 0)
	for _, a := range r.appointments {
		if a.OrderID != nil && *a.OrderID == orderID {
			out = append(out, a)
		}
	}
	sortByStart(out)
	return out, nil
}

// FindInRange finds all appointments overlapping the given window
func (r *BookingRepository) FindInRange(_ context.Context, rangeStart, rangeEnd time.Time) ([]booking.Appointment, error) {
	if !rangeEnd.After(rangeStart) {
		return nil, shared.NewDomainError("INVALID_TIME_RANGE", "Range end must be after range start")
	}
	out := make([]booking.Appointment, 0)
	for _, a := range r.appointments {
		if a.Overlaps(rangeStart, rangeEnd) {
			out = append(out, a)
		}
	}
	sortByStart(out)
	return out, nil
}

// FindAll returns all appointments ordered by start time
func (r *BookingRepository) FindAll(_ context.Context) ([]booking.Appointment, error) {
	out := make([]booking.Appointment, 0, len(r.appointments))
	for _, a := range r.appointments {
		out = append(out, a)
	}
	sortByStart(out)
	return out, nil
}

// Save creates or updates an appointment
func (r *BookingRepository) Save(_ context.Context, a *booking.Appointment) error {
	r.appointments[a.ID] = *a
	return nil
}

// Delete removes an appointment
func (r *BookingRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.appointments[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.appointments, id)
	return nil
}

// Appointments list calendar-first, not insertion-first
func sortByStart(items []booking.Appointment) {
	sortByCreation(items, func(a booking.Appointment) (time.Time, uuid.UUID) { return a.StartTime, a.ID })
}
