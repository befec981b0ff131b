package schemas_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mplus-labs/bonsai-api/internal/models"
	"github.com/mplus-labs/bonsai-api/internal/schemas"
)

func TestAgentCreateToModelForcesServerOwnedFields(t *testing.T) {
	dto := schemas.AgentCreate{
		ID:        "custom-1",
		Name:      "Custom",
		IsCustom:  false,
		CreatedBy: "attacker",
	}

	agent := dto.ToModel("real-user")

	assert.True(t, agent.IsCustom)
	require.NotNil(t, agent.CreatedBy)
	assert.Equal(t, "real-user", *agent.CreatedBy)
	assert.Equal(t, schemas.DefaultAgentModel, agent.Model)
}

func TestAgentCreateToModelKeepsExplicitModel(t *testing.T) {
	dto := schemas.AgentCreate{ID: "a", Name: "A", Model: "gpt-4-vision"}
	assert.Equal(t, "gpt-4-vision", dto.ToModel("u").Model)
}

func TestConnectionCreateToModel(t *testing.T) {
	dto := schemas.ConnectionCreate{
		Name:        "warehouse",
		Type:        models.ConnectionSQLDB,
		Provider:    "postgres",
		Credentials: []byte(`{"dsn":"postgres://..."}`),
	}

	conn := dto.ToModel("owner-1")

	assert.Equal(t, "owner-1", conn.UserID)
	assert.Equal(t, models.ConnectionStatusDisconnected, conn.Status)
	assert.JSONEq(t, `{"dsn":"postgres://..."}`, string(conn.Credentials))
}
