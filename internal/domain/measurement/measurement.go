package measurement

import (
	"time"

	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Measurement represents the measurements taken for a client on a specific
// order. DateTaken is fixed at creation and never updated.
type Measurement struct {
	shared.BaseEntity
	OrderID   uuid.UUID                  `json:"order_id"`
	ClientID  uuid.UUID                  `json:"client_id"`
	Values    map[string]decimal.Decimal `json:"values"`
	DateTaken time.Time                  `json:"date_taken"`
	Notes     string                     `json:"notes,omitempty"`
}

// NewMeasurement creates a new measurement record dated now
func NewMeasurement(orderID, clientID uuid.UUID, values map[string]decimal.Decimal, notes string) (*Measurement, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order ID cannot be empty")
	}
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLIENT", "Client ID cannot be empty")
	}
	if len(values) == 0 {
		return nil, shared.NewDomainError("INVALID_VALUES", "Measurements must be a non-empty set")
	}

	return &Measurement{
		BaseEntity: shared.NewBaseEntity(),
		OrderID:    orderID,
		ClientID:   clientID,
		Values:     values,
		DateTaken:  time.Now(),
		Notes:      notes,
	}, nil
}

// SetValues replaces the measurement values
func (m *Measurement) SetValues(values map[string]decimal.Decimal) error {
	if len(values) == 0 {
		return shared.NewDomainError("INVALID_VALUES", "Measurements must be a non-empty set")
	}
	m.Values = values
	m.Touch()
	return nil
}

// SetNotes sets the notes
func (m *Measurement) SetNotes(notes string) {
	m.Notes = notes
	m.Touch()
}
