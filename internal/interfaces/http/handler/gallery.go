package handler

import (
	galleryapp "github.com/atelier/backend/internal/application/gallery"
	"github.com/atelier/backend/internal/domain/gallery"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GalleryHandler handles portfolio gallery API endpoints
type GalleryHandler struct {
	BaseHandler
	service *galleryapp.Service
}

// NewGalleryHandler creates a new GalleryHandler
func NewGalleryHandler(service *galleryapp.Service) *GalleryHandler {
	return &GalleryHandler{service: service}
}

// CreatePortfolioItemRequest represents a request to add a gallery item
type CreatePortfolioItemRequest struct {
	ImagePath   string     `json:"image_path" binding:"required,notblank"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ClientID    *uuid.UUID `json:"client_id"`
	OrderID     *uuid.UUID `json:"order_id"`
	StyleTags   []string   `json:"style_tags"`
	IsPublic    bool       `json:"is_public"`
}

// UpdatePortfolioItemRequest represents a request to edit a gallery item
type UpdatePortfolioItemRequest struct {
	ImagePath   *string  `json:"image_path"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	StyleTags   []string `json:"style_tags"`
	IsPublic    *bool    `json:"is_public"`
}

// RegisterRoutes registers gallery routes
func (h *GalleryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	items := rg.Group("/gallery")
	{
		items.POST("", h.Create)
		items.GET("", h.List)
		items.GET("/public", h.ListPublic)
		items.GET("/:id", h.Get)
		items.PUT("/:id", h.Update)
		items.DELETE("/:id", h.Delete)
	}
}

// Create adds a finished piece to the gallery
func (h *GalleryHandler) Create(c *gin.Context) {
	var req CreatePortfolioItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), galleryapp.CreateInput{
		ImagePath:   req.ImagePath,
		Title:       req.Title,
		Description: req.Description,
		ClientID:    req.ClientID,
		OrderID:     req.OrderID,
		StyleTags:   req.StyleTags,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, created)
}

// List returns gallery items. Filters: ?client_id=, ?order_id=, ?tag=.
func (h *GalleryHandler) List(c *gin.Context) {
	clientID, ok := h.parseOptionalUUIDQuery(c, "client_id")
	if !ok {
		return
	}
	orderID, ok := h.parseOptionalUUIDQuery(c, "order_id")
	if !ok {
		return
	}

	var (
		items []gallery.PortfolioItem
		err   error
	)
	ctx := c.Request.Context()
	switch {
	case clientID != nil:
		items, err = h.service.ListForClient(ctx, *clientID)
	case orderID != nil:
		items, err = h.service.ListForOrder(ctx, *orderID)
	case c.Query("tag") != "":
		items, err = h.service.ListByTag(ctx, c.Query("tag"))
	default:
		items, err = h.service.ListAll(ctx)
	}
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, items)
}

// ListPublic returns the publicly visible gallery
func (h *GalleryHandler) ListPublic(c *gin.Context) {
	items, err := h.service.ListPublic(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, items)
}

// Get returns a single gallery item
func (h *GalleryHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, found)
}

// Update edits a gallery item
func (h *GalleryHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var req UpdatePortfolioItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, galleryapp.UpdateInput{
		ImagePath:   req.ImagePath,
		Title:       req.Title,
		Description: req.Description,
		StyleTags:   req.StyleTags,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, updated)
}

// Delete removes a gallery item
func (h *GalleryHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
