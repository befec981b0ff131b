package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mplus-labs/bonsai-api/internal/models"
	"github.com/mplus-labs/bonsai-api/internal/schemas"
)

// RegisterAgentRoutes wires agent CRUD. System agents (is_custom false)
// are read-only through this interface.
func RegisterAgentRoutes(rg *gin.RouterGroup, db *gorm.DB) {
	rg.GET("", func(c *gin.Context) { listAgents(c, db) })
	rg.POST("", func(c *gin.Context) { createAgent(c, db) })
	rg.PUT("/:id", func(c *gin.Context) { updateAgent(c, db) })
	rg.DELETE("/:id", func(c *gin.Context) { deleteAgent(c, db) })
}

func listAgents(c *gin.Context, db *gorm.DB) {
	agents := []models.Agent{}
	if err := db.Find(&agents).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, agents)
}

func createAgent(c *gin.Context, db *gorm.DB) {
	var dto schemas.AgentCreate
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	agent := dto.ToModel(currentUserID(c))
	if err := db.Create(&agent).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "agent id already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, agent)
}

// customAgent loads the agent at id, treating both a missing row and a
// system agent as not found so the API never reveals which it was.
func customAgent(db *gorm.DB, id string) (models.Agent, bool) {
	var agent models.Agent
	if err := db.First(&agent, "id = ?", id).Error; err != nil {
		return models.Agent{}, false
	}
	if !agent.IsCustom {
		return models.Agent{}, false
	}
	return agent, true
}

func updateAgent(c *gin.Context, db *gorm.DB) {
	agent, ok := customAgent(db, c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "custom agent not found"})
		return
	}

	var dto schemas.AgentCreate
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Full replace of the mutable fields; id, creator, is_custom and
	// created_at are never touched.
	replacement := dto.ToModel("")
	agent.Name = replacement.Name
	agent.Description = replacement.Description
	agent.Avatar = replacement.Avatar
	agent.Model = replacement.Model
	agent.Specialty = replacement.Specialty
	agent.Task = replacement.Task
	agent.APIAccess = replacement.APIAccess
	agent.MCPServers = replacement.MCPServers

	if err := db.Save(&agent).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, agent)
}

func deleteAgent(c *gin.Context, db *gorm.DB) {
	agent, ok := customAgent(db, c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "custom agent not found"})
		return
	}

	// Messages keep their text when the sending agent disappears; the
	// reference is nulled rather than cascading the delete.
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Message{}).
			Where("agent_id = ?", agent.ID).
			Update("agent_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&agent).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
