package memory

import (
	"context"
	"time"

	"github.com/atelier/backend/internal/domain/gallery"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// GalleryRepository is an in-memory implementation of gallery.Repository
type GalleryRepository struct {
	items map[uuid.UUID]gallery.PortfolioItem
}

// NewGalleryRepository creates an empty gallery repository
func NewGalleryRepository() *GalleryRepository {
	return &GalleryRepository{items: make(map[uuid.UUID]gallery.PortfolioItem)}
}

// FindByID finds a portfolio item by ID
func (r *GalleryRepository) FindByID(_ context.Context, id uuid.UUID) (*gallery.PortfolioItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &item, nil
}

// FindByClient finds all items linked to a client
func (r *GalleryRepository) FindByClient(_ context.Context, clientID uuid.UUID) ([]gallery.PortfolioItem, error) {
	return r.filter(func(item gallery.PortfolioItem) bool {
		return item.ClientID != nil && *item.ClientID == clientID
	}), nil
}

// FindByOrder finds all items linked to an order
func (r *GalleryRepository) FindByOrder(_ context.Context, orderID uuid.UUID) ([]gallery.PortfolioItem, error) {
	return r.filter(func(item gallery.PortfolioItem) bool {
		return item.OrderID != nil && *item.OrderID == orderID
	}), nil
}

// FindByTag finds all items carrying a style tag
func (r *GalleryRepository) FindByTag(_ context.Context, tag string) ([]gallery.PortfolioItem, error) {
	return r.filter(func(item gallery.PortfolioItem) bool {
		return item.HasTag(tag)
	}), nil
}

// FindPublic returns all publicly visible items
func (r *GalleryRepository) FindPublic(_ context.Context) ([]gallery.PortfolioItem, error) {
	return r.filter(func(item gallery.PortfolioItem) bool {
		return item.IsPublic
	}), nil
}

// FindAll returns all items ordered by upload date
func (r *GalleryRepository) FindAll(_ context.Context) ([]gallery.PortfolioItem, error) {
	return r.filter(func(gallery.PortfolioItem) bool { return true }), nil
}

// Save creates or updates an item
func (r *GalleryRepository) Save(_ context.Context, item *gallery.PortfolioItem) error {
	r.items[item.ID] = *item
	return nil
}

// Delete removes an item
func (r *GalleryRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *GalleryRepository) filter(keep func(gallery.PortfolioItem) bool) []gallery.PortfolioItem {
	out := make([]gallery.PortfolioItem, 0)
	for _, item := range r.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	sortByCreation(out, func(item gallery.PortfolioItem) (time.Time, uuid.UUID) { return item.UploadDate, item.ID })
	return out
}
