package order

import (
	"fmt"
	"time"

	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the workshop status of an order
type Status string

const (
	StatusPending        Status = "Pending"
	StatusInProgress     Status = "In Progress"
	StatusReadyForPickup Status = "Ready for Pickup"
	StatusDelivered      Status = "Delivered"
	StatusCancelled      Status = "Cancelled"
)

// IsValid checks if the status is a valid order Status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusReadyForPickup, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// Order represents a tailoring commission for a client
type Order struct {
	shared.BaseEntity
	ClientID     uuid.UUID                  `json:"client_id"`
	OrderDate    time.Time                  `json:"order_date"`
	Deadline     time.Time                  `json:"deadline"`
	Status       Status                     `json:"status"`
	Measurements map[string]decimal.Decimal `json:"measurements"`
	StyleDetails string                     `json:"style_details"`
	Attachments  []string                   `json:"attachments"`
	// Price is nil until the shop quotes the order. Billing refuses to
	// invoice an unpriced order.
	Price *decimal.Decimal `json:"price,omitempty"`
}

// NewOrder creates a new order in Pending status dated now
func NewOrder(clientID uuid.UUID, deadline time.Time, measurements map[string]decimal.Decimal, styleDetails string, attachments []string, price *decimal.Decimal) (*Order, error) {
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLIENT", "Client ID cannot be empty")
	}
	if deadline.IsZero() {
		return nil, shared.NewDomainError("INVALID_DEADLINE", "Deadline is required")
	}
	if price != nil && price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if attachments == nil {
		attachments = []string{}
	}
	if measurements == nil {
		measurements = map[string]decimal.Decimal{}
	}

	return &Order{
		BaseEntity:   shared.NewBaseEntity(),
		ClientID:     clientID,
		OrderDate:    time.Now(),
		Deadline:     deadline,
		Status:       StatusPending,
		Measurements: measurements,
		StyleDetails: styleDetails,
		Attachments:  attachments,
		Price:        price,
	}, nil
}

// ChangeStatus updates the order status after validating the new value
func (o *Order) ChangeStatus(status Status) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Invalid order status: %s", status))
	}
	o.Status = status
	o.Touch()
	return nil
}

// SetDeadline updates the deadline
func (o *Order) SetDeadline(deadline time.Time) error {
	if deadline.IsZero() {
		return shared.NewDomainError("INVALID_DEADLINE", "Deadline is required")
	}
	o.Deadline = deadline
	o.Touch()
	return nil
}

// SetMeasurements replaces the measurement set
func (o *Order) SetMeasurements(measurements map[string]decimal.Decimal) {
	o.Measurements = measurements
	o.Touch()
}

// SetStyleDetails updates the style notes
func (o *Order) SetStyleDetails(styleDetails string) {
	o.StyleDetails = styleDetails
	o.Touch()
}

// SetAttachments replaces the attachment list
func (o *Order) SetAttachments(attachments []string) {
	o.Attachments = attachments
	o.Touch()
}

// SetPrice quotes the order
func (o *Order) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	o.Price = &price
	o.Touch()
	return nil
}

// HasPrice returns true once the order has been quoted
func (o *Order) HasPrice() bool {
	return o.Price != nil
}
