package gallery

import (
	"context"

	"github.com/atelier/backend/internal/domain/client"
	"github.com/atelier/backend/internal/domain/gallery"
	"github.com/atelier/backend/internal/domain/order"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateInput carries the fields needed to add a portfolio item
type CreateInput struct {
	ImagePath   string
	Title       string
	Description string
	ClientID    *uuid.UUID
	OrderID     *uuid.UUID
	StyleTags   []string
	IsPublic    bool
}

// UpdateInput carries the editable portfolio fields. Nil fields are left
// untouched.
type UpdateInput struct {
	ImagePath   *string
	Title       *string
	Description *string
	StyleTags   []string
	IsPublic    *bool
}

// Service handles the shop's portfolio gallery
type Service struct {
	repo       gallery.Repository
	clientRepo client.Repository
	orderRepo  order.Repository
	logger     *zap.Logger
}

// NewService creates a new gallery service
func NewService(repo gallery.Repository, clientRepo client.Repository, orderRepo order.Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, clientRepo: clientRepo, orderRepo: orderRepo, logger: logger}
}

// Create adds a finished piece to the gallery. Linked client and order
// references must resolve.
func (s *Service) Create(ctx context.Context, in CreateInput) (*gallery.PortfolioItem, error) {
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

	item, err := gallery.NewPortfolioItem(in.ImagePath, in.Title, in.Description, in.ClientID, in.OrderID, in.StyleTags, in.IsPublic)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("Portfolio item added",
		zap.String("item_id", item.ID.String()),
		zap.Bool("is_public", item.IsPublic),
	)
	return item, nil
}

// GetByID returns a single portfolio item
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*gallery.PortfolioItem, error) {
	return s.repo.FindByID(ctx, id)
}

// ListAll returns all portfolio items
func (s *Service) ListAll(ctx context.Context) ([]gallery.PortfolioItem, error) {
	return s.repo.FindAll(ctx)
}

// ListForClient returns all items linked to a client
func (s *Service) ListForClient(ctx context.Context, clientID uuid.UUID) ([]gallery.PortfolioItem, error) {
	return s.repo.FindByClient(ctx, clientID)
}

// ListForOrder returns all items linked to an order
func (s *Service) ListForOrder(ctx context.Context, orderID uuid.UUID) ([]gallery.PortfolioItem, error) {
	return s.repo.FindByOrder(ctx, orderID)
}

// ListByTag returns all items carrying a style tag
func (s *Service) ListByTag(ctx context.Context, tag string) ([]gallery.PortfolioItem, error) {
	return s.repo.FindByTag(ctx, tag)
}

// ListPublic returns the publicly visible gallery
func (s *Service) ListPublic(ctx context.Context) ([]gallery.PortfolioItem, error) {
	return s.repo.FindPublic(ctx)
}

// Update edits a portfolio item
func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*gallery.PortfolioItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.ImagePath != nil {
		if err := item.SetImagePath(*in.ImagePath); err != nil {
			return nil, err
		}
	}
	if in.Title != nil {
		item.SetTitle(*in.Title)
	}
	if in.Description != nil {
		item.SetDescription(*in.Description)
	}
	if in.StyleTags != nil {
		item.SetStyleTags(in.StyleTags)
	}
	if in.IsPublic != nil {
		item.SetPublic(*in.IsPublic)
	}

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes a portfolio item
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Portfolio item deleted", zap.String("item_id", id.String()))
	return nil
}
