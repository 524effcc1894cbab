package memory

import (
	"context"
	"time"

	"github.com/atelier/backend/internal/domain/measurement"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TemplateRepository is an in-memory implementation of
// measurement.TemplateRepository
type TemplateRepository struct {
	templates map[uuid.UUID]measurement.Template
}

// NewTemplateRepository creates an empty template repository
func NewTemplateRepository() *TemplateRepository {
	return &TemplateRepository{templates: make(map[uuid.UUID]measurement.Template)}
}

// FindByID finds a template by ID
func (r *TemplateRepository) FindByID(_ context.Context, id uuid.UUID) (*measurement.Template, error) {
	t, ok := r.templates[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &t, nil
}

// FindAll returns all templates ordered by creation time
func (r *TemplateRepository) FindAll(_ context.Context) ([]measurement.Template, error) {
	out := make([]measurement.Template, 0, len(r.templates))
	for _, t := range r.templates {
		out = append(out, t)
	}
	sortByCreation(out, func(t measurement.Template) (time.Time, uuid.UUID) { return t.CreatedAt, t.ID })
	return out, nil
}

// Save creates or updates a template
func (r *TemplateRepository) Save(_ context.Context, t *measurement.Template) error {
	r.templates[t.ID] = *t
	return nil
}

// Delete removes a template
func (r *TemplateRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.templates[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.templates, id)
	return nil
}

// MeasurementRepository is an in-memory implementation of
// measurement.Repository
type MeasurementRepository struct {
	measurements map[uuid.UUID]measurement.Measurement
}

// NewMeasurementRepository creates an empty measurement repository
func NewMeasurementRepository() *MeasurementRepository {
	return &MeasurementRepository{measurements: make(map[uuid.UUID]measurement.Measurement)}
}

// FindByID finds a measurement by ID
func (r *MeasurementRepository) FindByID(_ context.Context, id uuid.UUID) (*measurement.Measurement, error) {
	m, ok := r.measurements[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &m, nil
}

// FindByOrder finds all measurements taken for an order
func (r *MeasurementRepository) FindByOrder(_ context.Context, orderID uuid.UUID) ([]measurement.Measurement, error) {
	out := make([]measurement.Measurement, 0)
	for _, m := range r.measurements {
		if m.OrderID == orderID {
			out = append(out, m)
		}
	}
	sortByCreation(out, func(m measurement.Measurement) (time.Time, uuid.UUID) { return m.DateTaken, m.ID })
	return out, nil
}

// FindByClient finds all measurements taken for a client
func (r *MeasurementRepository) FindByClient(_ context.Context, clientID uuid.UUID) ([]measurement.Measurement, error) {
	out := make([]measurement.Measurement, 0)
	for _, m := range r.measurements {
		if m.ClientID == clientID {
			out = append(out, m)
		}
	}
	sortByCreation(out, func(m measurement.Measurement) (time.Time, uuid.UUID) { return m.DateTaken, m.ID })
	return out, nil
}

// FindAll returns all measurements ordered by date taken
func (r *MeasurementRepository) FindAll(_ context.Context) ([]measurement.Measurement, error) {
	out := make([]measurement.Measurement, 0, len(r.measurements))
	for _, m := range r.measurements {
		out = append(out, m)
	}
	sortByCreation(out, func(m measurement.Measurement) (time.Time, uuid.UUID) { return m.DateTaken, m.ID })
	return out, nil
}

// Save creates or updates a measurement
func (r *MeasurementRepository) Save(_ context.Context, m *measurement.Measurement) error {
	r.measurements[m.ID] = *m
	return nil
}

// Delete removes a measurement
func (r *MeasurementRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.measurements[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.measurements, id)
	return nil
}
