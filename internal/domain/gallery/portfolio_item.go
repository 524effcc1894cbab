package gallery

import (
	"strings"
	"time"

	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PortfolioItem represents a finished piece in the shop's gallery.
// UploadDate is fixed at creation and never updated.
type PortfolioItem struct {
	shared.BaseEntity
	ImagePath   string     `json:"image_path"`
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	ClientID    *uuid.UUID `json:"client_id,omitempty"`
	OrderID     *uuid.UUID `json:"order_id,omitempty"`
	StyleTags   []string   `json:"style_tags"`
	UploadDate  time.Time  `json:"upload_date"`
	IsPublic    bool       `json:"is_public"`
}

// NewPortfolioItem creates a new gallery item dated today
func NewPortfolioItem(imagePath, title, description string, clientID, orderID *uuid.UUID, styleTags []string, isPublic bool) (*PortfolioItem, error) {
	if strings.TrimSpace(imagePath) == "" {
		return nil, shared.NewDomainError("INVALID_IMAGE_PATH", "Image path cannot be empty")
	}
	if styleTags == nil {
		styleTags = []string{}
	}

	return &PortfolioItem{
		BaseEntity:  shared.NewBaseEntity(),
		ImagePath:   imagePath,
		Title:       title,
		Description: description,
		ClientID:    clientID,
		OrderID:     orderID,
		StyleTags:   styleTags,
		UploadDate:  time.Now(),
		IsPublic:    isPublic,
	}, nil
}

// SetImagePath updates the image path
func (p *PortfolioItem) SetImagePath(imagePath string) error {
	if strings.TrimSpace(imagePath) == "" {
		return shared.NewDomainError("INVALID_IMAGE_PATH", "Image path cannot be empty")
	}
	p.ImagePath = imagePath
	p.Touch()
	return nil
}

// SetTitle updates the title
func (p *PortfolioItem) SetTitle(title string) {
	p.Title = title
	p.Touch()
}

// SetDescription updates the description
func (p *PortfolioItem) SetDescription(description string) {
	p.Description = description
	p.Touch()
}

// SetStyleTags replaces the tag list
func (p *PortfolioItem) SetStyleTags(styleTags []string) {
	if styleTags == nil {
		styleTags = []string{}
	}
	p.StyleTags = styleTags
	p.Touch()
}

// SetPublic toggles gallery visibility
func (p *PortfolioItem) SetPublic(isPublic bool) {
	p.IsPublic = isPublic
	p.Touch()
}

// LinkClient attaches or clears the client reference
func (p *PortfolioItem) LinkClient(clientID *uuid.UUID) {
	p.ClientID = clientID
	p.Touch()
}

// LinkOrder attaches or clears the order reference
func (p *PortfolioItem) LinkOrder(orderID *uuid.UUID) {
	p.OrderID = orderID
	p.Touch()
}

// HasTag reports whether the item carries the given style tag
func (p *PortfolioItem) HasTag(tag string) bool {
	for _, t := range p.StyleTags {
		if t == tag {
			return true
		}
	}
	return false
}
