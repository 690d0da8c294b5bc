// Package offers evaluates the promotional catalog against a selected flight
// and the session's resolved cards: eligibility filtering, discount
// computation, and best-offer ranking.
package offers

import (
	"errors"

	"farewise/models"
)

// ErrNoCards means the session has no resolved cards to evaluate against.
var ErrNoCards = errors.New("no cards selected in session")

// Service evaluates offers against an immutable catalog snapshot loaded at
// process start.
type Service struct {
	catalog []models.Offer
}

func NewService(catalog []models.Offer) *Service {
	return &Service{catalog: catalog}
}

// EvaluationResult is the full reply for one evaluation request: the flight
// as evaluated (passengers enriched from the session) and one result per
// resolved card, in session card order.
type EvaluationResult struct {
	Flight         *models.SelectedFlight   `json:"flight"`
	PerCardResults []models.CardOfferResult `json:"perCardResults"`
}

// Evaluate runs the catalog against every resolved card in the session.
// EMI evaluation is off; EMI-only offers still rank by their plain discount.
func (s *Service) Evaluate(sc *models.SearchContext, flight *models.SelectedFlight) (*EvaluationResult, error) {
	if len(sc.Cards.Resolved) == 0 {
		return nil, ErrNoCards
	}

	// The session owns passenger counts; the client-sent flight does not.
	flight.Passengers = &models.PassengerCounts{
		Adults:   sc.Intent.Adults,
		Children: sc.Intent.Children,
		Infants:  sc.Intent.Infants,
	}

	results := make([]models.CardOfferResult, 0, len(sc.Cards.Resolved))
	for _, card := range sc.Cards.Resolved {
		ctx, err := BuildOfferContext(flight, card, false)
		if err != nil {
			return nil, err
		}

		best, others := BestAndOtherOffers(ctx, s.catalog, flight.Fare.Total)
		results = append(results, models.CardOfferResult{
			Card:         card,
			OriginalFare: flight.Fare.Total,
			BestOffer:    best,
			OtherOffers:  others,
		})
	}

	return &EvaluationResult{Flight: flight, PerCardResults: results}, nil
}
