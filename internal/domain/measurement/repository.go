package measurement

import (
	"context"

	"github.com/google/uuid"
)

// TemplateRepository defines the interface for measurement template storage
type TemplateRepository interface {
	// FindByID finds a template by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Template, error)

	// FindAll returns all templates
	FindAll(ctx context.Context) ([]Template, error)

	// Save creates or updates a template
	Save(ctx context.Context, template *Template) error

	// Delete removes a template
	Delete(ctx context.Context, id uuid.UUID) error
}

// Repository defines the interface for measurement storage
type Repository interface {
	// FindByID finds a measurement by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Measurement, error)

	// FindByOrder finds all measurements taken for an order
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]Measurement, error)

	// FindByClient finds all measurements taken for a client
	FindByClient(ctx context.Context, clientID uuid.UUID) ([]Measurement, error)

	// FindAll returns all measurements
	FindAll(ctx context.Context) ([]Measurement, error)

	// Save creates or updates a measurement
	Save(ctx context.Context, measurement *Measurement) error

	// Delete removes a measurement
	Delete(ctx context.Context, id uuid.UUID) error
}
