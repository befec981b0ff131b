package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mplus-labs/bonsai-api/internal/database"
	"github.com/mplus-labs/bonsai-api/internal/models"
)

func TestListAgentsIncludesSeeded(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/v1/agents", nil)
	require.Equal(t, http.StatusOK, w.Code)

	agents := decode[[]models.Agent](t, w)
	require.NotEmpty(t, agents)
	ids := make(map[string]bool)
	for _, a := range agents {
		ids[a.ID] = true
		assert.False(t, a.IsCustom)
	}
	assert.True(t, ids["ocr"])
	assert.True(t, ids["summarizer"])
}

func TestCreateAgentForcesCustomAndCreator(t *testing.T) {
	env := newTestEnv(t)

	// Client lies about both fields; the server must override them.
	w := env.do(t, http.MethodPost, "/api/v1/agents", map[string]any{
		"id":         "my-agent",
		"name":       "My Agent",
		"is_custom":  false,
		"created_by": "someone-else",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	agent := decode[models.Agent](t, w)
	assert.True(t, agent.IsCustom)
	require.NotNil(t, agent.CreatedBy)
	assert.Equal(t, database.DevUserID, *agent.CreatedBy)
	assert.Equal(t, "gpt-4-turbo", agent.Model)
	assert.False(t, agent.CreatedAt.IsZero())
}

func TestCreateAgentDuplicateIDConflicts(t *testing.T) {
	env := newTestEnv(t)

	body := map[string]any{"id": "dup", "name": "First"}
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/v1/agents", body).Code)

	w := env.do(t, http.MethodPost, "/api/v1/agents", body)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateAgentValidation(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/agents", map[string]any{"name": "no id"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateAgentReplacesMutableFields(t *testing.T) {
	env := newTestEnv(t)

	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/v1/agents", map[string]any{
		"id": "editable", "name": "Before", "description": "old", "api_access": []string{"a"},
	}).Code)

	w := env.do(t, http.MethodPut, "/api/v1/agents/editable", map[string]any{
		"id": "editable", "name": "After", "model": "claude-3-opus",
	})
	require.Equal(t, http.StatusOK, w.Code)

	agent := decode[models.Agent](t, w)
	assert.Equal(t, "After", agent.Name)
	assert.Equal(t, "claude-3-opus", agent.Model)
	assert.Empty(t, agent.Description)
	assert.True(t, agent.IsCustom)
	require.NotNil(t, agent.CreatedBy)
	assert.Equal(t, database.DevUserID, *agent.CreatedBy)
}

func TestUpdateSystemAgentNotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPut, "/api/v1/agents/ocr", map[string]any{
		"id": "ocr", "name": "Hijacked",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateMissingAgentNotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPut, "/api/v1/agents/ghost", map[string]any{
		"id": "ghost", "name": "Ghost",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteSystemAgentNotFound(t *testing.T) {
	env := newTestEnv(t)

	// A system agent inserted directly into storage, as if pre-seeded.
	require.NoError(t, env.db.Create(&models.Agent{
		ID: "ocr-1", Name: "OCR Bot", IsCustom: false,
	}).Error)

	w := env.do(t, http.MethodDelete, "/api/v1/agents/ocr-1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	env.db.Model(&models.Agent{}).Where("id = ?", "ocr-1").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestDeleteCustomAgentNullifiesMessages(t *testing.T) {
	env := newTestEnv(t)

	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/v1/agents", map[string]any{
		"id": "gone-soon", "name": "Short Lived",
	}).Code)

	session := models.Session{UserID: database.DevUserID, Name: "chat"}
	require.NoError(t, env.db.Create(&session).Error)
	agentID := "gone-soon"
	require.NoError(t, env.db.Create(&models.Message{
		SessionID:  session.ID,
		SenderType: models.SenderAgent,
		AgentID:    &agentID,
		Content:    "hello from agent",
	}).Error)

	w := env.do(t, http.MethodDelete, "/api/v1/agents/gone-soon", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	var count int64
	env.db.Model(&models.Agent{}).Where("id = ?", "gone-soon").Count(&count)
	assert.Zero(t, count)

	var msg models.Message
	require.NoError(t, env.db.First(&msg, "session_id = ?", session.ID).Error)
	assert.Nil(t, msg.AgentID)
	assert.Equal(t, "hello from agent", msg.Content)
}
