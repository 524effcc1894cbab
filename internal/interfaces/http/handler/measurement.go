package handler

import (
	measurementapp "github.com/atelier/backend/internal/application/measurement"
	"github.com/atelier/backend/internal/domain/measurement"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MeasurementHandler handles measurement template and record API endpoints
type MeasurementHandler struct {
	BaseHandler
	templates *measurementapp.TemplateService
	records   *measurementapp.Service
}

// NewMeasurementHandler creates a new MeasurementHandler
func NewMeasurementHandler(templates *measurementapp.TemplateService, records *measurementapp.Service) *MeasurementHandler {
	return &MeasurementHandler{templates: templates, records: records}
}

// CreateTemplateRequest represents a request to define a template
type CreateTemplateRequest struct {
	Name             string   `json:"name" binding:"required,notblank"`
	Fields           []string `json:"fields" binding:"required"`
	DiagramImagePath string   `json:"diagram_image_path"`
}

// UpdateTemplateRequest represents a request to edit a template
type UpdateTemplateRequest struct {
	Name             *string  `json:"name"`
	Fields           []string `json:"fields"`
	DiagramImagePath *string  `json:"diagram_image_path"`
}

// RecordMeasurementRequest represents a request to record measurements
type RecordMeasurementRequest struct {
	OrderID uuid.UUID                  `json:"order_id" binding:"required"`
	Values  map[string]decimal.Decimal `json:"values" binding:"required"`
	Notes   string                     `json:"notes"`
}

// UpdateMeasurementRequest represents a request to edit a measurement record
type UpdateMeasurementRequest struct {
	Values map[string]decimal.Decimal `json:"values"`
	Notes  *string                    `json:"notes"`
}

// RegisterRoutes registers measurement routes
func (h *MeasurementHandler) RegisterRoutes(rg *gin.RouterGroup) {
	templates := rg.Group("/measurement-templates")
	{
		templates.POST("", h.CreateTemplate)
		templates.GET("", h.ListTemplates)
		templates.GET("/:id", h.GetTemplate)
		templates.PUT("/:id", h.UpdateTemplate)
		templates.DELETE("/:id", h.DeleteTemplate)
	}

	measurements := rg.Group("/measurements")
	{
		measurements.POST("", h.Record)
		measurements.GET("", h.List)
		measurements.GET("/:id", h.Get)
		measurements.PUT("/:id", h.Update)
		measurements.DELETE("/:id", h.Delete)
	}
}

// CreateTemplate defines a new measurement template
func (h *MeasurementHandler) CreateTemplate(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	created, err := h.templates.Create(c.Request.Context(), req.Name, req.Fields, req.DiagramImagePath)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, created)
}

// ListTemplates returns all templates
func (h *MeasurementHandler) ListTemplates(c *gin.Context) {
	templates, err := h.templates.ListAll(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, templates)
}

// GetTemplate returns a single template
func (h *MeasurementHandler) GetTemplate(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	found, err := h.templates.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, found)
}

// UpdateTemplate edits a template
func (h *MeasurementHandler) UpdateTemplate(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var req UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	updated, err := h.templates.Update(c.Request.Context(), id, req.Name, req.Fields, req.DiagramImagePath)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, updated)
}

// DeleteTemplate removes a template
func (h *MeasurementHandler) DeleteTemplate(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if err := h.templates.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// Record takes measurements for an order
func (h *MeasurementHandler) Record(c *gin.Context) {
	var req RecordMeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	created, err := h.records.Record(c.Request.Context(), req.OrderID, req.Values, req.Notes)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, created)
}

// List returns measurement records, optionally filtered via ?order_id= or
// ?client_id=
func (h *MeasurementHandler) List(c *gin.Context) {
	orderID, ok := h.parseOptionalUUIDQuery(c, "order_id")
	if !ok {
		return
	}
	clientID, ok := h.parseOptionalUUIDQuery(c, "client_id")
	if !ok {
		return
	}

	var (
		records []measurement.Measurement
		err     error
	)
	ctx := c.Request.Context()
	switch {
	case orderID != nil:
		records, err = h.records.ListForOrder(ctx, *orderID)
	case clientID != nil:
		records, err = h.records.ListForClient(ctx, *clientID)
	default:
		records, err = h.records.ListAll(ctx)
	}
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, records)
}

// Get returns a single measurement record
func (h *MeasurementHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	found, err := h.records.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, found)
}

// Update edits a measurement record
func (h *MeasurementHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var req UpdateMeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	updated, err := h.records.Update(c.Request.Context(), id, req.Values, req.Notes)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, updated)
}

// Delete removes a measurement record
func (h *MeasurementHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if err := h.records.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
