// Package schemas holds the request and response shapes of the HTTP API,
// kept separate from the stored entities. Request DTOs carry binding tags
// and build entities via ToModel-style constructors so that handlers never
// trust client-supplied ownership or flag fields.
package schemas

import (
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/mplus-labs/bonsai-api/internal/models"
)

// DefaultAgentModel is used when a create/update request omits the model.
const DefaultAgentModel = "gpt-4-turbo"

// AgentCreate is the body of POST and PUT /agents. IsCustom and CreatedBy
// are accepted but ignored; the server decides both.
type AgentCreate struct {
	ID          string             `json:"id" binding:"required"`
	Name        string             `json:"name" binding:"required"`
	Description string             `json:"description"`
	Avatar      string             `json:"avatar"`
	Model       string             `json:"model"`
	Specialty   string             `json:"specialty"`
	Task        string             `json:"task"`
	APIAccess   []string           `json:"api_access"`
	MCPServers  []models.MCPServer `json:"mcp_servers"`
	IsCustom    bool               `json:"is_custom"`
	CreatedBy   string             `json:"created_by"`
}

// ToModel builds the stored agent, forcing IsCustom and the creator
// regardless of what the client sent.
func (a AgentCreate) ToModel(creatorID string) models.Agent {
	model := a.Model
	if model == "" {
		model = DefaultAgentModel
	}
	return models.Agent{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Avatar:      a.Avatar,
		Model:       model,
		Specialty:   a.Specialty,
		Task:        a.Task,
		APIAccess:   a.APIAccess,
		MCPServers:  a.MCPServers,
		IsCustom:    true,
		CreatedBy:   &creatorID,
	}
}

// SessionCreate is the body of POST /sessions.
type SessionCreate struct {
	Name string `json:"name" binding:"required"`
}

// MessageCreate is the body of POST /sessions/{id}/messages.
type MessageCreate struct {
	Content string `json:"content" binding:"required"`
}

// SessionDetail is a session together with its full message history,
// chronological order.
type SessionDetail struct {
	models.Session
	Messages []models.Message `json:"messages"`
}

// ConnectionCreate is the body of POST /integrations. Credentials are
// passed through as an opaque JSON document.
type ConnectionCreate struct {
	Name        string          `json:"name" binding:"required"`
	Type        string          `json:"type" binding:"required"`
	Provider    string          `json:"provider" binding:"required"`
	Credentials json.RawMessage `json:"credentials" binding:"required"`
}

func (c ConnectionCreate) ToModel(userID string) models.Connection {
	return models.Connection{
		UserID:      userID,
		Type:        c.Type,
		Provider:    c.Provider,
		Name:        c.Name,
		Credentials: datatypes.JSON(c.Credentials),
		Status:      models.ConnectionStatusDisconnected,
	}
}
