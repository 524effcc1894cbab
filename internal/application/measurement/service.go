package measurement

import (
	"context"

	"github.com/atelier/backend/internal/domain/measurement"
	"github.com/atelier/backend/internal/domain/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// TemplateService handles measurement template operations
type TemplateService struct {
	repo   measurement.TemplateRepository
	logger *zap.Logger
}

// NewTemplateService creates a new template service
func NewTemplateService(repo measurement.TemplateRepository, logger *zap.Logger) *TemplateService {
	return &TemplateService{repo: repo, logger: logger}
}

// Create defines a new measurement template
func (s *TemplateService) Create(ctx context.Context, name string, fields []string, diagramImagePath string) (*measurement.Template, error) {
	t, err := measurement.NewTemplate(name, fields, diagramImagePath)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, t); err != nil {
		return nil, err
	}
	s.logger.Info("Measurement template created",
		zap.String("template_id", t.ID.String()),
		zap.String("name", t.Name),
	)
	return t, nil
}

// GetByID returns a single template
func (s *TemplateService) GetByID(ctx context.Context, id uuid.UUID) (*measurement.Template, error) {
	return s.repo.FindByID(ctx, id)
}

// ListAll returns all templates
func (s *TemplateService) ListAll(ctx context.Context) ([]measurement.Template, error) {
	return s.repo.FindAll(ctx)
}

// Update edits a template. Nil parameters leave the corresponding field
// untouched.
func (s *TemplateService) Update(ctx context.Context, id uuid.UUID, name *string, fields []string, diagramImagePath *string) (*measurement.Template, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != nil {
		if err := t.SetName(*name); err != nil {
			return nil, err
		}
	}
	if fields != nil {
		if err := t.SetFields(fields); err != nil {
			return nil, err
		}
	}
	if diagramImagePath != nil {
		t.SetDiagramImagePath(*diagramImagePath)
	}
	if err := s.repo.Save(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete removes a template
func (s *TemplateService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Service handles recorded measurements
type Service struct {
	repo      measurement.Repository
	orderRepo order.Repository
	logger    *zap.Logger
}

// NewService creates a new measurement service
func NewService(repo measurement.Repository, orderRepo order.Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, orderRepo: orderRepo, logger: logger}
}

// Record takes a set of measurements for an order. The client is resolved
// from the order itself.
func (s *Service) Record(ctx context.Context, orderID uuid.UUID, values map[string]decimal.Decimal, notes string) (*measurement.Measurement, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	m, err := measurement.NewMeasurement(orderID, o.ClientID, values, notes)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, m); err != nil {
		return nil, err
	}

	s.logger.Info("Measurements recorded",
		zap.String("measurement_id", m.ID.String()),
		zap.String("order_id", orderID.String()),
		zap.Int("field_count", len(values)),
	)
	return m, nil
}

// GetByID returns a single measurement record
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*measurement.Measurement, error) {
	return s.repo.FindByID(ctx, id)
}

// ListAll returns all measurement records
func (s *Service) ListAll(ctx context.Context) ([]measurement.Measurement, error) {
	return s.repo.FindAll(ctx)
}

// ListForOrder returns all measurements taken for an order
func (s *Service) ListForOrder(ctx context.Context, orderID uuid.UUID) ([]measurement.Measurement, error) {
	return s.repo.FindByOrder(ctx, orderID)
}

// ListForClient returns all measurements taken for a client
func (s *Service) ListForClient(ctx context.Context, clientID uuid.UUID) ([]measurement.Measurement, error) {
	return s.repo.FindByClient(ctx, clientID)
}

// Update edits a measurement record. Nil parameters leave the corresponding
// field untouched; DateTaken never changes.
func (s *Service) Update(ctx context.Context, id uuid.UUID, values map[string]decimal.Decimal, notes *string) (*measurement.Measurement, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if values != nil {
		if err := m.SetValues(values); err != nil {
			return nil, err
		}
	}
	if notes != nil {
		m.SetNotes(*notes)
	}
	if err := s.repo.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Delete removes a measurement record
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
