package conversation

import (
	"farewise/models"
	"farewise/services/card"
)

// Decision is what the engine wants to happen next. Unresolved accompanies a
// card clarification and must be written into the session before replying.
type Decision struct {
	NextAction    models.NextAction      `json:"nextAction"`
	Clarification *models.Clarification  `json:"clarification,omitempty"`
	Unresolved    *models.UnresolvedCard `json:"-"`
}

// Decide picks the next question or signals readiness. It returns nil when a
// slot question is already pending: the outstanding question stands and must
// not be replaced.
//
// Slot questions come strictly before card questions, and slots are checked
// in a fixed order so multi-gap conversations always converge the same way.
func Decide(sc *models.SearchContext, cards *card.Service) *Decision {
	if sc.IntentClarification != nil {
		switch sc.IntentClarification.Type {
		case models.ClarifyOrigin, models.ClarifyDestination, models.ClarifyDepartureDate:
			return nil
		}
	}

	if sc.Intent.Origin == nil {
		return askSlot(models.ClarifyOrigin, "From which city are you flying?")
	}
	if sc.Intent.Destination == nil {
		return askSlot(models.ClarifyDestination, "Where do you want to fly to?")
	}
	if sc.Intent.DepartureDate == nil {
		return askSlot(models.ClarifyDepartureDate, "When do you want to travel?")
	}

	if clarification, unresolved := cards.BuildClarification(sc.Cards.Resolved); clarification != nil {
		return &Decision{
			NextAction:    models.ActionAskClarification,
			Clarification: clarification,
			Unresolved:    unresolved,
		}
	}

	return &Decision{NextAction: models.ActionShowFlights}
}

func askSlot(t models.ClarificationType, message string) *Decision {
	return &Decision{
		NextAction:    models.ActionAskClarification,
		Clarification: &models.Clarification{Type: t, Message: message},
	}
}
