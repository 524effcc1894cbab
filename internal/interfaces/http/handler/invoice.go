package handler

import (
	"time"

	billingapp "github.com/atelier/backend/internal/application/billing"
	"github.com/atelier/backend/internal/domain/billing"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InvoiceHandler handles invoice API endpoints
type InvoiceHandler struct {
	BaseHandler
	service *billingapp.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(service *billingapp.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

// CreateInvoiceRequest represents a request to invoice an order
type CreateInvoiceRequest struct {
	OrderID uuid.UUID `json:"order_id" binding:"required"`
	DueDate time.Time `json:"due_date" binding:"required"`
	Notes   string    `json:"notes"`
}

// UpdateInvoiceRequest represents a request to edit invoice details
type UpdateInvoiceRequest struct {
	DueDate *time.Time `json:"due_date"`
	Notes   *string    `json:"notes"`
}

// UpdateInvoiceStatusRequest represents a request to set the invoice status
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// RegisterRoutes registers invoice routes
func (h *InvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.Create)
		invoices.GET("", h.List)
		invoices.GET("/:id", h.Get)
		invoices.PUT("/:id", h.Update)
		invoices.PUT("/:id/status", h.UpdateStatus)
		invoices.POST("/:id/recalculate", h.Recalculate)
		invoices.DELETE("/:id", h.Delete)
	}
}

// Create invoices an order at its quoted price
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.CreateForOrder(c.Request.Context(), req.OrderID, req.DueDate, req.Notes)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, created)
}

// List returns invoices, optionally filtered to one order via ?order_id=
func (h *InvoiceHandler) List(c *gin.Context) {
	orderID, ok := h.parseOptionalUUIDQuery(c, "order_id")
	if !ok {
		return
	}

	var (
		invoices []billing.Invoice
		err      error
	)
	if orderID != nil {
		invoices, err = h.service.ListForOrder(c.Request.Context(), *orderID)
	} else {
		invoices, err = h.service.ListAll(c.Request.Context())
	}
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, invoices)
}

// Get returns a single invoice
func (h *InvoiceHandler) Get(c *gin.Context) {
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

// Update edits invoice details
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var req UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.UpdateDetails(c.Request.Context(), id, req.DueDate, req.Notes)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, updated)
}

// UpdateStatus sets the invoice status directly
func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var req UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.UpdateStatus(c.Request.Context(), id, billing.InvoiceStatus(req.Status))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, updated)
}

// Recalculate reruns status reconciliation for an invoice
func (h *InvoiceHandler) Recalculate(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	updated, err := h.service.Recalculate(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, updated)
}

// Delete removes an invoice together with its payments
func (h *InvoiceHandler) Delete(c *gin.Context) {
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
