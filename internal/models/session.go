package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sender types for Message.SenderType.
const (
	SenderUser  = "user"
	SenderAgent = "agent"
)

// Session is a chat thread owned by one user.
type Session struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	UserID     string    `json:"user_id" gorm:"index;not null"`
	Name       string    `json:"name" gorm:"not null"`
	LastActive time.Time `json:"last_active"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Session) TableName() string { return "sessions" }

func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.LastActive.IsZero() {
		s.LastActive = time.Now().UTC()
	}
	return nil
}

// Message is one turn in a session. Messages are immutable once stored;
// AgentID is set only when the sender is an agent and is nulled out if that
// agent is later deleted.
type Message struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	SessionID  string    `json:"-" gorm:"index;not null"`
	SenderType string    `json:"sender_type" gorm:"not null"`
	AgentID    *string   `json:"agent_id,omitempty"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	Timestamp  time.Time `json:"timestamp"`
}

func (Message) TableName() string { return "messages" }

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now().UTC()
	}
	return nil
}
