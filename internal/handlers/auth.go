package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mplus-labs/bonsai-api/internal/database"
)

const userIDKey = "userID"

// AuthRequired resolves the caller identity and stores it in the request
// context. The resolver is a development placeholder that always yields
// the seeded dev user; a real deployment replaces it with credential
// verification (JWT, session cookie) producing the same opaque id.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(userIDKey, resolveCallerID(c))
		c.Next()
	}
}

func resolveCallerID(_ *gin.Context) string {
	return database.DevUserID
}

// currentUserID returns the caller id set by AuthRequired. Every owned
// resource is scoped to this id.
func currentUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
