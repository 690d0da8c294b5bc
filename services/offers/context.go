package offers

import (
	"errors"
	"time"

	"farewise/models"
)

// ErrInvalidFlight is returned when the selected flight has no positive fare
// total. Nothing can be evaluated without one.
var ErrInvalidFlight = errors.New("selected flight fare total missing")

// BuildOfferContext assembles the evaluation context for one resolved card.
// Pure adapter: every rule input comes from the selection or the card, no
// offer logic lives here. The booking date is the moment of evaluation.
func BuildOfferContext(flight *models.SelectedFlight, card models.NormalizedCard, emi bool) (models.OfferContext, error) {
	return buildOfferContextAt(flight, card, emi, time.Now())
}

func buildOfferContextAt(flight *models.SelectedFlight, card models.NormalizedCard, emi bool, now time.Time) (models.OfferContext, error) {
	if flight == nil || flight.Fare.Total <= 0 {
		return models.OfferContext{}, ErrInvalidFlight
	}

	baseFare := flight.Fare.Total
	if flight.Fare.BaseFare != nil {
		baseFare = *flight.Fare.BaseFare
	}
	var taxes float64
	if flight.Fare.Taxes != nil {
		taxes = *flight.Fare.Taxes
	}

	ctx := models.OfferContext{
		BookingDate:   now,
		BookingAmount: flight.Fare.Total,
		Fare: &models.FareBreakdown{
			Total:    flight.Fare.Total,
			BaseFare: baseFare,
			Taxes:    taxes,
		},
		Passengers: flight.Passengers,
		Card: models.ContextCard{
			IssuerType: models.IssuerBank,
			Issuer:     derefOr(card.IssuingBank, ""),
			CardType:   models.CardType(derefCardType(card.CardType)),
			EMI:        emi,
			Variant:    card.CardVariant,
			Network:    card.Network,
		},
	}

	if flight.Origin != "" && flight.Destination != "" {
		ctx.Route = &models.RouteInfo{
			Origin:      flight.Origin,
			Destination: flight.Destination,
		}
	}

	if flight.DepartureDate != "" {
		if travel, err := time.Parse("2006-01-02", flight.DepartureDate); err == nil {
			ctx.TravelDate = &travel
		}
	}

	return ctx, nil
}

func derefOr(s *string, fallback string) string {
	if s != nil {
		return *s
	}
	return fallback
}

// derefCardType keeps an unknown card type empty so that the card-type rule
// rejects every offer, instead of guessing CREDIT.
func derefCardType(t *models.CardType) string {
	if t != nil {
		return string(*t)
	}
	return ""
}
