package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for appointment storage
type Repository interface {
	// FindByID finds an appointment by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Appointment, error)

	// FindByClient finds all appointments for a client
	FindByClient(ctx context.Context, clientID uuid.UUID) ([]Appointment, error)

	// FindByOrder finds all appointments tied to an order
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]Appointment, error)

	// FindInRange finds all appointments overlapping the given window
	FindInRange(ctx context.Context, rangeStart, rangeEnd time.Time) ([]Appointment, error)

	// FindAll returns all appointments
	FindAll(ctx context.Context) ([]Appointment, error)

	// Save creates or updates an appointment
	Save(ctx context.Context, appointment *Appointment) error

	// Delete removes an appointment
	Delete(ctx context.Context, id uuid.UUID) error
}
