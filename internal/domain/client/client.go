package client

import (
	"strings"

	"github.com/atelier/backend/internal/domain/shared"
)

// Client represents a customer of the shop
type Client struct {
	shared.BaseEntity
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address,omitempty"`
}

// NewClient creates a new client
func NewClient(name, phoneNumber, email, address string) (*Client, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Client name cannot be empty")
	}
	if strings.TrimSpace(phoneNumber) == "" {
		return nil, shared.NewDomainError("INVALID_PHONE", "Phone number cannot be empty")
	}

	return &Client{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		PhoneNumber: phoneNumber,
		Email:       email,
		Address:     address,
	}, nil
}

// SetName updates the client name
func (c *Client) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Client name cannot be empty")
	}
	c.Name = name
	c.Touch()
	return nil
}

// SetPhoneNumber updates the phone number
func (c *Client) SetPhoneNumber(phoneNumber string) error {
	if strings.TrimSpace(phoneNumber) == "" {
		return shared.NewDomainError("INVALID_PHONE", "Phone number cannot be empty")
	}
	c.PhoneNumber = phoneNumber
	c.Touch()
	return nil
}

// SetEmail updates the email address
func (c *Client) SetEmail(email string) {
	c.Email = email
	c.Touch()
}

// SetAddress updates the postal address
func (c *Client) SetAddress(address string) {
	c.Address = address
	c.Touch()
}
