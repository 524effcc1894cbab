package booking

import (
	"context"
	"time"

	"github.com/atelier/backend/internal/domain/booking"
	"github.com/atelier/backend/internal/domain/client"
	"github.com/atelier/backend/internal/domain/order"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateInput carries the fields needed to book an appointment
type CreateInput struct {
	StartTime   time.Time
	EndTime     time.Time
	Title       string
	ClientID    *uuid.UUID
	OrderID     *uuid.UUID
	Description string
	Location    string
	Type        booking.AppointmentType
}

// UpdateInput carries the editable appointment fields. Nil fields are left
// untouched; StartTime and EndTime must be set together.
type UpdateInput struct {
	StartTime   *time.Time
	EndTime     *time.Time
	Title       *string
	Description *string
	Location    *string
	Type        *booking.AppointmentType
}

// Service handles appointment scheduling
type Service struct {
	repo       booking.Repository
	clientRepo client.Repository
	orderRepo  order.Repository
	logger     *zap.Logger
}

// NewService creates a new booking service
func NewService(repo booking.Repository, clientRepo client.Repository, orderRepo order.Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, clientRepo: clientRepo, orderRepo: orderRepo, logger: logger}
}

// Create books a new appointment. Linked client and order references must
// resolve.
func (s *Service) Create(ctx context.Context, in CreateInput) (*booking.Appointment, error) {
	if in.ClientID != nil {
		if _, err := s.clientRepo.FindByID(ctx, *in.ClientID); err != nil {
			return nil, err
		}
	}
	if in.OrderID != nil {
		if _, err := s.orderRepo.FindByID(ctx, *in.OrderID); err != nil {
			return nil, err
		}
	}

	a, err := booking.NewAppointment(in.StartTime, in.EndTime, in.Title, in.ClientID, in.OrderID, in.Description, in.Location, in.Type)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, a); err != nil {
		return nil, err
	}

	s.logger.Info("Appointment booked",
		zap.String("appointment_id", a.ID.String()),
		zap.Time("start_time", a.StartTime),
		zap.String("type", a.Type.String()),
	)
	return a, nil
}

// GetByID returns a single appointment
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*booking.Appointment, error) {
	return s.repo.FindByID(ctx, id)
}

// ListAll returns all appointments
func (s *Service) ListAll(ctx context.Context) ([]booking.Appointment, error) {
	return s.repo.FindAll(ctx)
}

// ListForClient returns all appointments for a client
func (s *Service) ListForClient(ctx context.Context, clientID uuid.UUID) ([]booking.Appointment, error) {
	return s.repo.FindByClient(ctx, clientID)
}

// ListForOrder returns all appointments tied to an order
func (s *Service) ListForOrder(ctx context.Context, orderID uuid.UUID) ([]booking.Appointment, error) {
	return s.repo.FindByOrder(ctx, orderID)
}

// ListInRange returns all appointments overlapping the given window, for
// calendar views
func (s *Service) ListInRange(ctx context.Context, rangeStart, rangeEnd time.Time) ([]booking.Appointment, error) {
	return s.repo.FindInRange(ctx, rangeStart, rangeEnd)
}

// Update edits an appointment
func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*booking.Appointment, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.StartTime != nil || in.EndTime != nil {
		start, end := a.StartTime, a.EndTime
		if in.StartTime != nil {
			start = *in.StartTime
		}
		if in.EndTime != nil {
			end = *in.EndTime
		}
		if err := a.Reschedule(start, end); err != nil {
			return nil, err
		}
	}
	if in.Title != nil {
		if err := a.SetTitle(*in.Title); err != nil {
			return nil, err
		}
	}
	if in.Description != nil {
		a.SetDescription(*in.Description)
	}
	if in.Location != nil {
		a.SetLocation(*in.Location)
	}
	if in.Type != nil {
		if err := a.SetType(*in.Type); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Save(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete removes an appointment
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Appointment deleted", zap.String("appointment_id", id.String()))
	return nil
}
