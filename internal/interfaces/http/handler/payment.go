package handler

import (
	billingapp "github.com/atelier/backend/internal/application/billing"
	"github.com/atelier/backend/internal/domain/billing"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentHandler handles payment API endpoints
type PaymentHandler struct {
	BaseHandler
	service *billingapp.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(service *billingapp.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// CreatePaymentRequest represents a request to record a payment
type CreatePaymentRequest struct {
	InvoiceID     uuid.UUID       `json:"invoice_id" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Method        string          `json:"method" binding:"required"`
	TransactionID string          `json:"transaction_id"`
	Notes         string          `json:"notes"`
}

// UpdatePaymentRequest represents a request to edit a payment
type UpdatePaymentRequest struct {
	Amount        *decimal.Decimal `json:"amount"`
	Method        *string          `json:"method"`
	TransactionID *string          `json:"transaction_id"`
	Notes         *string          `json:"notes"`
}

// RegisterRoutes registers payment routes
func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	payments := rg.Group("/payments")
	{
		payments.POST("", h.Create)
		payments.GET("", h.List)
		payments.GET("/:id", h.Get)
		payments.PUT("/:id", h.Update)
		payments.DELETE("/:id", h.Delete)
	}
}

// Create records a payment against an invoice
func (h *PaymentHandler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Add(c.Request.Context(), req.InvoiceID, req.Amount, billing.PaymentMethod(req.Method), req.TransactionID, req.Notes)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, created)
}

// List returns payments, optionally filtered to one invoice via ?invoice_id=
func (h *PaymentHandler) List(c *gin.Context) {
	invoiceID, ok := h.parseOptionalUUIDQuery(c, "invoice_id")
	if !ok {
		return
	}

	var (
		payments []billing.Payment
		err      error
	)
	if invoiceID != nil {
		payments, err = h.service.ListForInvoice(c.Request.Context(), *invoiceID)
	} else {
		payments, err = h.service.ListAll(c.Request.Context())
	}
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, payments)
}

// Get returns a single payment
func (h *PaymentHandler) Get(c *gin.Context) {
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

// Update edits a payment
func (h *PaymentHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var method *billing.PaymentMethod
	if req.Method != nil {
		m := billing.PaymentMethod(*req.Method)
		method = &m
	}

	updated, err := h.service.Update(c.Request.Context(), id, req.Amount, method, req.TransactionID, req.Notes)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, updated)
}

// Delete removes a payment
func (h *PaymentHandler) Delete(c *gin.Context) {
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
