package handler

import (
	"time"

	orderapp "github.com/atelier/backend/internal/application/order"
	"github.com/atelier/backend/internal/domain/order"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderHandler handles order API endpoints
type OrderHandler struct {
	BaseHandler
	service *orderapp.Service
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(service *orderapp.Service) *OrderHandler {
	return &OrderHandler{service: service}
}

// CreateOrderRequest represents a request to open an order
type CreateOrderRequest struct {
	ClientID     uuid.UUID                  `json:"client_id" binding:"required"`
	Deadline     time.Time                  `json:"deadline" binding:"required"`
	Measurements map[string]decimal.Decimal `json:"measurements"`
	StyleDetails string                     `json:"style_details"`
	Attachments  []string                   `json:"attachments"`
	Price        *decimal.Decimal           `json:"price"`
}

// UpdateOrderRequest represents a request to edit an order
type UpdateOrderRequest struct {
	Deadline     *time.Time                 `json:"deadline"`
	Measurements map[string]decimal.Decimal `json:"measurements"`
	StyleDetails *string                    `json:"style_details"`
	Attachments  []string                   `json:"attachments"`
	Price        *decimal.Decimal           `json:"price"`
}

// UpdateOrderStatusRequest represents a request to move an order's status
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// RegisterRoutes registers order routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.POST("", h.Create)
		orders.GET("", h.List)
		orders.GET("/:id", h.Get)
		orders.PUT("/:id", h.Update)
		orders.PUT("/:id/status", h.UpdateStatus)
		orders.DELETE("/:id", h.Delete)
	}
}

// Create opens a new order
func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), orderapp.CreateInput{
		ClientID:     req.ClientID,
		Deadline:     req.Deadline,
		Measurements: req.Measurements,
		StyleDetails: req.StyleDetails,
		Attachments:  req.Attachments,
		Price:        req.Price,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, created)
}

// List returns orders, optionally filtered to one client via ?client_id=
func (h *OrderHandler) List(c *gin.Context) {
	clientID, ok := h.parseOptionalUUIDQuery(c, "client_id")
	if !ok {
		return
	}

	var (
		orders []order.Order
		err    error
	)
	if clientID != nil {
		orders, err = h.service.ListForClient(c.Request.Context(), *clientID)
	} else {
		orders, err = h.service.ListAll(c.Request.Context())
	}
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, orders)
}

// Get returns a single order
func (h *OrderHandler) Get(c *gin.Context) {
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

// Update edits an order
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, orderapp.UpdateInput{
		Deadline:     req.Deadline,
		Measurements: req.Measurements,
		StyleDetails: req.StyleDetails,
		Attachments:  req.Attachments,
		Price:        req.Price,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, updated)
}

// UpdateStatus moves an order to a new workshop status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.UpdateStatus(c.Request.Context(), id, order.Status(req.Status))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, updated)
}

// Delete removes an order
func (h *OrderHandler) Delete(c *gin.Context) {
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
