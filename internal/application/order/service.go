package order

import (
	"context"
	"time"

	"github.com/atelier/backend/internal/domain/client"
	"github.com/atelier/backend/internal/domain/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreateInput carries the fields needed to open a new order
type CreateInput struct {
	ClientID     uuid.UUID
	Deadline     time.Time
	Measurements map[string]decimal.Decimal
	StyleDetails string
	Attachments  []string
	Price        *decimal.Decimal
}

// UpdateInput carries the editable order fields. Nil fields are left
// untouched.
type UpdateInput struct {
	Deadline     *time.Time
	Measurements map[string]decimal.Decimal
	StyleDetails *string
	Attachments  []string
	Price        *decimal.Decimal
}

// Service handles order lifecycle operations
type Service struct {
	repo       order.Repository
	clientRepo client.Repository
	logger     *zap.Logger
}

// NewService creates a new order service
func NewService(repo order.Repository, clientRepo client.Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, clientRepo: clientRepo, logger: logger}
}

// Create opens a new order for an existing client
func (s *Service) Create(ctx context.Context, in CreateInput) (*order.Order, error) {
	if _, err := s.clientRepo.FindByID(ctx, in.ClientID); err != nil {
		return nil, err
	}

	o, err := order.NewOrder(in.ClientID, in.Deadline, in.Measurements, in.StyleDetails, in.Attachments, in.Price)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, o); err != nil {
		return nil, err
	}

	s.logger.Info("Order created",
		zap.String("order_id", o.ID.String()),
		zap.String("client_id", in.ClientID.String()),
	)
	return o, nil
}

// GetByID returns a single order
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	return s.repo.FindByID(ctx, id)
}

// ListAll returns all orders
func (s *Service) ListAll(ctx context.Context) ([]order.Order, error) {
	return s.repo.FindAll(ctx)
}

// ListForClient returns all orders placed by a client
func (s *Service) ListForClient(ctx context.Context, clientID uuid.UUID) ([]order.Order, error) {
	return s.repo.FindByClient(ctx, clientID)
}

// UpdateStatus moves the order to a new workshop status
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status) (*order.Order, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := o.ChangeStatus(status); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, o); err != nil {
		return nil, err
	}
	s.logger.Info("Order status changed",
		zap.String("order_id", id.String()),
		zap.String("status", status.String()),
	)
	return o, nil
}

// Update edits an order
func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*order.Order, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Deadline != nil {
		if err := o.SetDeadline(*in.Deadline); err != nil {
			return nil, err
		}
	}
	if in.Measurements != nil {
		o.SetMeasurements(in.Measurements)
	}
	if in.StyleDetails != nil {
		o.SetStyleDetails(*in.StyleDetails)
	}
	if in.Attachments != nil {
		o.SetAttachments(in.Attachments)
	}
	if in.Price != nil {
		if err := o.SetPrice(*in.Price); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Save(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// Delete removes an order. Invoices referencing it are left in place.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Order deleted", zap.String("order_id", id.String()))
	return nil
}
