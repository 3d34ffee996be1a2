package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client represents a person or organisation the office represents
type Client struct {
	ID        string    `gorm:"size:36;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Name    string  `gorm:"not null" json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `gorm:"type:text" json:"address"`
}

// BeforeCreate hook to generate UUID
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Client model
func (Client) TableName() string {
	return "clients"
}

// ClientInput is the body of POST/PUT /api/clients and the Clients screen form
type ClientInput struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone" form:"phone"`
	Address string `json:"address" form:"address"`
}

// Input returns the editable fields of the client
func (c *Client) Input() ClientInput {
	return ClientInput{
		Name:    c.Name,
		Email:   Deref(c.Email),
		Phone:   Deref(c.Phone),
		Address: Deref(c.Address),
	}
}
