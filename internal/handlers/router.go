// Package handlers wires the HTTP surface: one route group per resource,
// each handler doing validate → persist → respond against an injected
// *gorm.DB.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"
	"gorm.io/gorm"

	"github.com/mplus-labs/bonsai-api/internal/storage"
)

// New builds the engine with logging, recovery and CORS middleware and
// every resource route mounted under /api/v1.
func New(db *gorm.DB, store *storage.Disk, allowedOrigins []string, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(sloggin.New(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	api := r.Group("/api/v1")
	api.Use(AuthRequired())

	RegisterAgentRoutes(api.Group("/agents"), db)
	RegisterSessionRoutes(api.Group("/sessions"), db)
	RegisterFileRoutes(api.Group("/files"), db, store, logger)
	RegisterIntegrationRoutes(api.Group("/integrations"), db)

	return r
}
