package handlers

import (
	"errors"
	"net/http"

	"farewise/middleware"
	"farewise/models"
	"farewise/services/conversation"
	"farewise/services/offers"
	"farewise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EvaluateOffersRequest carries the flight the user picked from the results.
type EvaluateOffersRequest struct {
	SelectedFlight *models.SelectedFlight `json:"selectedFlight"`
}

// EvaluateOffersHandler runs the offer catalog against every resolved card
// in the session for the selected flight.
func EvaluateOffersHandler(store conversation.ContextStore, offersSvc *offers.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		// A cookie issued on this request means no conversation happened.
		if c.GetBool(middleware.SessionNewKey) {
			utils.JSONError(c, http.StatusBadRequest, "Session expired")
			return
		}

		var req EvaluateOffersRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.SelectedFlight == nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid selectedFlight")
			return
		}

		sessionID := c.GetString(middleware.SessionIDKey)
		sc, err := store.Get(c.Request.Context(), sessionID)
		if err != nil {
			logger.Error("Failed to load session context", zap.String("sessionID", sessionID), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Could not load session")
			return
		}

		result, err := offersSvc.Evaluate(sc, req.SelectedFlight)
		if err != nil {
			switch {
			case errors.Is(err, offers.ErrNoCards):
				utils.JSONError(c, http.StatusBadRequest, "No cards selected in session")
			case errors.Is(err, offers.ErrInvalidFlight):
				utils.JSONError(c, http.StatusBadRequest, "Invalid selectedFlight: fare.total missing")
			default:
				logger.Error("Offer evaluation failed", zap.String("sessionID", sessionID), zap.Error(err))
				utils.JSONError(c, http.StatusInternalServerError, "Offer evaluation failed")
			}
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
