package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Connection types accepted by the integrations API.
const (
	ConnectionVectorDB = "vector_db"
	ConnectionSQLDB    = "sql_db"
	ConnectionCRM      = "crm"
)

// ConnectionStatusDisconnected is the status every new connection starts
// in; no handshake is performed at creation time.
const ConnectionStatusDisconnected = "disconnected"

// ValidConnectionType reports whether t is one of the supported
// integration types. Exact match only, no case folding or trimming.
func ValidConnectionType(t string) bool {
	switch t {
	case ConnectionVectorDB, ConnectionSQLDB, ConnectionCRM:
		return true
	}
	return false
}

// Connection links a user to an external system. Credentials are stored
// as an opaque JSON payload; encrypting them at rest is a known gap.
type Connection struct {
	ID          string         `json:"id" gorm:"primaryKey"`
	UserID      string         `json:"user_id" gorm:"index;not null"`
	Type        string         `json:"type" gorm:"not null"`
	Provider    string         `json:"provider" gorm:"not null"`
	Name        string         `json:"name" gorm:"not null"`
	Credentials datatypes.JSON `json:"credentials" gorm:"not null"`
	Status      string         `json:"status" gorm:"default:disconnected"`
	CreatedAt   time.Time      `json:"created_at"`
}

func (Connection) TableName() string { return "connections" }

func (c *Connection) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Status == "" {
		c.Status = ConnectionStatusDisconnected
	}
	return nil
}
