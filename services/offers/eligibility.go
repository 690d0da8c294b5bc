package offers

import (
	"strings"
	"time"

	"farewise/models"
)

// ApplicableOffers filters the catalog down to offers the context satisfies,
// preserving catalog order. Rules run in a fixed order and the first failing
// rule rejects the offer.
func ApplicableOffers(ctx models.OfferContext, catalog []models.Offer) []models.Offer {
	bookingDay := strings.ToUpper(ctx.BookingDate.Format("Mon"))

	var applicable []models.Offer
	for _, offer := range catalog {
		if eligible(ctx, offer, bookingDay) {
			applicable = append(applicable, offer)
		}
	}
	return applicable
}

func eligible(ctx models.OfferContext, offer models.Offer, bookingDay string) bool {
	// Issuer: a bank offer must name the card's bank, a network offer the
	// card's network.
	switch offer.IssuerType {
	case models.IssuerBank:
		if ctx.Card.IssuerType != models.IssuerBank {
			return false
		}
		if offer.Issuer != ctx.Card.Issuer {
			return false
		}
	case models.IssuerNetwork:
		if ctx.Card.Network == nil {
			return false
		}
		if offer.Issuer != string(*ctx.Card.Network) {
			return false
		}
	}

	if offer.CardType != ctx.Card.CardType {
		return false
	}

	// Variant restriction only binds when both sides are known.
	if len(offer.EligibleVariants) > 0 && ctx.Card.Variant != nil && !containsString(offer.EligibleVariants, *ctx.Card.Variant) {
		return false
	}

	// The threshold applies to the base fare when a breakdown exists.
	bookingAmount := ctx.BookingAmount
	if ctx.Fare != nil {
		bookingAmount = ctx.Fare.BaseFare
	}
	if bookingAmount < offer.MinBookingAmount {
		return false
	}

	// Validity window on the booking timestamp, bounds inclusive. Window
	// dates are midnight UTC; an unparseable bound does not constrain.
	if start, err := time.Parse("2006-01-02", offer.ValidOn.StartDate); err == nil && ctx.BookingDate.Before(start) {
		return false
	}
	if end, err := time.Parse("2006-01-02", offer.ValidOn.EndDate); err == nil && ctx.BookingDate.After(end) {
		return false
	}

	if !containsString(offer.ValidOn.Days, models.DayAll) && !containsString(offer.ValidOn.Days, bookingDay) {
		return false
	}

	return true
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
