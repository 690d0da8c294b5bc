package handlers

import (
	"errors"
	"net/http"

	"farewise/middleware"
	"farewise/models"
	"farewise/services/conversation"
	"farewise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SearchRequest is one conversational turn.
type SearchRequest struct {
	FlightSearchQuery string `json:"flightSearchQuery"`
}

// SearchHandler feeds one user turn into the conversation engine and replies
// with either the next clarifying question or the search results.
func SearchHandler(turns *conversation.TurnService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		var req SearchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid query")
			return
		}

		sessionID := c.GetString(middleware.SessionIDKey)
		res, err := turns.ProcessTurn(c.Request.Context(), sessionID, req.FlightSearchQuery)
		if err != nil {
			switch {
			case errors.Is(err, conversation.ErrEmptyQuery):
				utils.JSONError(c, http.StatusBadRequest, "Invalid query")
			case errors.Is(err, conversation.ErrIncompleteIntent):
				utils.JSONError(c, http.StatusBadRequest, "Missing required flight details.")
			default:
				logger.Error("Search turn failed", zap.String("sessionID", sessionID), zap.Error(err))
				utils.JSONError(c, http.StatusInternalServerError, "Search failed. Try again.")
			}
			return
		}

		if res.NextAction == models.ActionAskClarification {
			c.JSON(http.StatusOK, gin.H{
				"nextAction":    res.NextAction,
				"clarification": res.Clarification,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"nextAction": res.NextAction,
			"state": gin.H{
				"context": res.Context,
				"flights": res.Flights,
			},
		})
	}
}
