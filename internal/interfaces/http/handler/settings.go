package handler

import (
	settingsapp "github.com/atelier/backend/internal/application/settings"
	"github.com/atelier/backend/internal/domain/settings"
	"github.com/atelier/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// SettingsHandler handles application settings API endpoints
type SettingsHandler struct {
	BaseHandler
	service *settingsapp.Service
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(service *settingsapp.Service) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// UpdateSettingsRequest represents a request to edit the settings record.
// SyncFrequencyHours keeps "omit the field" and "set it to null to disable
// scheduled sync" distinguishable.
type UpdateSettingsRequest struct {
	Theme              *string         `json:"theme"`
	Language           *string         `json:"language"`
	BackupEnabled      *bool           `json:"backup_enabled"`
	BackupLocation     *string         `json:"backup_location"`
	SyncFrequencyHours dto.OptionalInt `json:"sync_frequency_hours"`
}

// RegisterRoutes registers settings routes
func (h *SettingsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/settings")
	{
		group.GET("", h.Get)
		group.PUT("", h.Update)
		group.POST("/reset", h.Reset)
	}
}

// Get returns the current application settings
func (h *SettingsHandler) Get(c *gin.Context) {
	current, err := h.service.Get()
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, current)
}

// Update applies the provided settings fields
func (h *SettingsHandler) Update(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	in := settingsapp.UpdateInput{
		BackupEnabled:  req.BackupEnabled,
		BackupLocation: req.BackupLocation,
	}
	if req.SyncFrequencyHours.Set {
		in.SyncFrequencyHours = &req.SyncFrequencyHours.Value
	}
	if req.Theme != nil {
		theme := settings.Theme(*req.Theme)
		in.Theme = &theme
	}
	if req.Language != nil {
		language := settings.Language(*req.Language)
		in.Language = &language
	}

	updated, err := h.service.Update(in)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, updated)
}

// Reset restores the built-in defaults
func (h *SettingsHandler) Reset(c *gin.Context) {
	defaults, err := h.service.Reset()
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, defaults)
}
