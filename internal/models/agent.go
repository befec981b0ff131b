package models

import (
	"time"

	"gorm.io/gorm"
)

// MCPServer describes one MCP endpoint an agent can reach.
type MCPServer struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	URL          string   `json:"url"`
	Description  string   `json:"description,omitempty"`
	Capabilities []string `json:"capabilities,omitempty"`
}

// Agent is an assistant profile. System agents are seeded at startup with
// IsCustom false and cannot be changed through the API; agents created via
// the API always carry IsCustom true and a creator.
type Agent struct {
	ID          string      `json:"id" gorm:"primaryKey"`
	Name        string      `json:"name" gorm:"not null"`
	Description string      `json:"description" gorm:"type:text"`
	Avatar      string      `json:"avatar" gorm:"type:text"`
	Model       string      `json:"model"`
	Specialty   string      `json:"specialty" gorm:"type:text"`
	Task        string      `json:"task" gorm:"type:text"`
	APIAccess   []string    `json:"api_access" gorm:"serializer:json"`
	MCPServers  []MCPServer `json:"mcp_servers" gorm:"serializer:json"`
	IsCustom    bool        `json:"is_custom"`
	CreatedBy   *string     `json:"created_by,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

func (Agent) TableName() string { return "agents" }

func (a *Agent) BeforeCreate(tx *gorm.DB) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	return nil
}
