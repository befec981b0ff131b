package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mplus-labs/bonsai-api/internal/models"
	"github.com/mplus-labs/bonsai-api/internal/schemas"
)

// RegisterIntegrationRoutes wires external system connections
// (vector databases, SQL databases, CRMs).
func RegisterIntegrationRoutes(rg *gin.RouterGroup, db *gorm.DB) {
	rg.GET("/:type", func(c *gin.Context) { listConnections(c, db) })
	rg.POST("", func(c *gin.Context) { createConnection(c, db) })
}

func listConnections(c *gin.Context, db *gorm.DB) {
	connType := c.Param("type")
	if !models.ValidConnectionType(connType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid connection type"})
		return
	}

	connections := []models.Connection{}
	err := db.Where("user_id = ? AND type = ?", currentUserID(c), connType).
		Find(&connections).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, connections)
}

// createConnection stores the credentials as given. No connectivity test
// runs here, so the status starts as disconnected rather than reflecting
// an actual handshake.
func createConnection(c *gin.Context, db *gorm.DB) {
	var dto schemas.ConnectionCreate
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conn := dto.ToModel(currentUserID(c))
	if err := db.Create(&conn).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, conn)
}
