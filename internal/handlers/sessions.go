package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mplus-labs/bonsai-api/internal/models"
	"github.com/mplus-labs/bonsai-api/internal/schemas"
)

// RegisterSessionRoutes wires chat sessions and their nested messages.
func RegisterSessionRoutes(rg *gin.RouterGroup, db *gorm.DB) {
	rg.GET("", func(c *gin.Context) { listSessions(c, db) })
	rg.POST("", func(c *gin.Context) { createSession(c, db) })
	rg.GET("/:id", func(c *gin.Context) { getSessionDetail(c, db) })
	rg.POST("/:id/messages", func(c *gin.Context) { sendMessage(c, db) })
}

func listSessions(c *gin.Context, db *gorm.DB) {
	sessions := []models.Session{}
	err := db.Where("user_id = ?", currentUserID(c)).
		Order("last_active DESC").
		Find(&sessions).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sessions)
}

func createSession(c *gin.Context, db *gorm.DB) {
	var dto schemas.SessionCreate
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session := models.Session{UserID: currentUserID(c), Name: dto.Name}
	if err := db.Create(&session).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, session)
}

func getSessionDetail(c *gin.Context, db *gorm.DB) {
	var session models.Session
	if err := db.First(&session, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	messages := []models.Message{}
	err := db.Where("session_id = ?", session.ID).
		Order("timestamp, id").
		Find(&messages).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, schemas.SessionDetail{Session: session, Messages: messages})
}

// sendMessage stores a user turn. Nothing synthesizes an agent reply yet;
// the message history only grows from the user side until orchestration
// lands.
func sendMessage(c *gin.Context, db *gorm.DB) {
	var session models.Session
	if err := db.First(&session, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	var dto schemas.MessageCreate
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message := models.Message{
		SessionID:  session.ID,
		SenderType: models.SenderUser,
		Content:    dto.Content,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&message).Error; err != nil {
			return err
		}
		return tx.Model(&session).Update("last_active", time.Now().UTC()).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, message)
}
