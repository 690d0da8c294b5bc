package handlers

import (
	"net/http"

	"farewise/middleware"
	"farewise/services/conversation"
	"farewise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ResetSessionHandler drops the conversation state for the current session.
// The cookie stays; the next turn starts from a fresh context.
func ResetSessionHandler(store conversation.ContextStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString(middleware.SessionIDKey)
		if err := store.Clear(c.Request.Context(), sessionID); err != nil {
			utils.GetLogger().Error("Failed to clear session", zap.String("sessionID", sessionID), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Could not reset session")
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "reset"})
	}
}
