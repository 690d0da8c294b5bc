package handlers

import (
	"github.com/gin-gonic/gin"

	"farewise/services/conversation"
	"farewise/services/offers"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Search         gin.HandlerFunc
	EvaluateOffers gin.HandlerFunc
	ResetSession   gin.HandlerFunc
}

// NewHandlerBundle wires the services into their handlers.
func NewHandlerBundle(turns *conversation.TurnService, store conversation.ContextStore, offersSvc *offers.Service) *HandlerBundle {
	return &HandlerBundle{
		Search:         SearchHandler(turns),
		EvaluateOffers: EvaluateOffersHandler(store, offersSvc),
		ResetSession:   ResetSessionHandler(store),
	}
}
