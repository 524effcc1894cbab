package client

import (
	"context"

	"github.com/atelier/backend/internal/domain/client"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service handles client lifecycle operations
type Service struct {
	repo   client.Repository
	logger *zap.Logger
}

// NewService creates a new client service
func NewService(repo client.Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Create registers a new client
func (s *Service) Create(ctx context.Context, name, phoneNumber, email, address string) (*client.Client, error) {
	c, err := client.NewClient(name, phoneNumber, email, address)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	s.logger.Info("Client created",
		zap.String("client_id", c.ID.String()),
		zap.String("name", c.Name),
	)
	return c, nil
}

// GetByID returns a single client
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	return s.repo.FindByID(ctx, id)
}

// ListAll returns all clients
func (s *Service) ListAll(ctx context.Context) ([]client.Client, error) {
	return s.repo.FindAll(ctx)
}

// Update edits a client. Nil parameters leave the corresponding field
// untouched.
func (s *Service) Update(ctx context.Context, id uuid.UUID, name, phoneNumber, email, address *string) (*client.Client, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		if err := c.SetName(*name); err != nil {
			return nil, err
		}
	}
	if phoneNumber != nil {
		if err := c.SetPhoneNumber(*phoneNumber); err != nil {
			return nil, err
		}
	}
	if email != nil {
		c.SetEmail(*email)
	}
	if address != nil {
		c.SetAddress(*address)
	}

	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes a client. Orders and appointments referencing the client are
// left in place; they keep the dangling reference.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Client deleted", zap.String("client_id", id.String()))
	return nil
}
