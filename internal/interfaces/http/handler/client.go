package handler

import (
	clientapp "github.com/atelier/backend/internal/application/client"
	"github.com/gin-gonic/gin"
)

// ClientHandler handles client API endpoints
type ClientHandler struct {
	BaseHandler
	service *clientapp.Service
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(service *clientapp.Service) *ClientHandler {
	return &ClientHandler{service: service}
}

// CreateClientRequest represents a request to register a client
type CreateClientRequest struct {
	Name        string `json:"name" binding:"required,notblank"`
	PhoneNumber string `json:"phone_number" binding:"required,notblank"`
	Email       string `json:"email" binding:"omitempty,email"`
	Address     string `json:"address"`
}

// UpdateClientRequest represents a request to edit a client
type UpdateClientRequest struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phone_number"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Address     *string `json:"address"`
}

// RegisterRoutes registers client routes
func (h *ClientHandler) RegisterRoutes(rg *gin.RouterGroup) {
	clients := rg.Group("/clients")
	{
		clients.POST("", h.Create)
		clients.GET("", h.List)
		clients.GET("/:id", h.Get)
		clients.PUT("/:id", h.Update)
		clients.DELETE("/:id", h.Delete)
	}
}

// Create registers a new client
func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.Name, req.PhoneNumber, req.Email, req.Address)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, created)
}

// List returns all clients
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, clients)
}

// Get returns a single client
func (h *ClientHandler) Get(c *gin.Context) {
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

// Update edits a client
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req.Name, req.PhoneNumber, req.Email, req.Address)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, updated)
}

// Delete removes a client
func (h *ClientHandler) Delete(c *gin.Context) {
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
