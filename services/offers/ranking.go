package offers

import (
	"math"
	"sort"

	"farewise/models"
)

// computeCappedDiscount turns an offer's discount spec into rupees off the
// given fare: percentage applied, cap clamped, never negative, floored to a
// whole rupee.
func computeCappedDiscount(fare float64, offer models.Offer) float64 {
	raw := offer.Discount.Value
	if offer.Discount.Unit == models.UnitPercent {
		raw = offer.Discount.Value / 100 * fare
	}

	if offer.Discount.MaxCap != nil && raw > *offer.Discount.MaxCap {
		raw = *offer.Discount.MaxCap
	}
	if raw < 0 {
		raw = 0
	}
	return math.Floor(raw)
}

// BestAndOtherOffers evaluates every applicable offer against the fare and
// splits the result into the single best offer and the ordered remainder.
// Zero-discount offers are dropped. The sort is stable: offers tying on
// discount keep catalog order, so two identical catalogs rank identically.
func BestAndOtherOffers(ctx models.OfferContext, catalog []models.Offer, flightFare float64) (*models.EvaluatedOffer, []models.EvaluatedOffer) {
	applicable := ApplicableOffers(ctx, catalog)

	evaluated := make([]models.EvaluatedOffer, 0, len(applicable))
	for _, offer := range applicable {
		discount := computeCappedDiscount(flightFare, offer)
		if discount <= 0 {
			continue
		}
		evaluated = append(evaluated, models.EvaluatedOffer{
			Offer:     offer,
			Discount:  discount,
			FinalFare: flightFare - discount,
			Breakdown: models.DiscountBreakdown{
				Unit:            offer.Discount.Unit,
				Value:           offer.Discount.Value,
				MaxCap:          offer.Discount.MaxCap,
				AppliedDiscount: discount,
			},
		})
	}

	sort.SliceStable(evaluated, func(i, j int) bool {
		return evaluated[i].Discount > evaluated[j].Discount
	})

	if len(evaluated) == 0 {
		return nil, []models.EvaluatedOffer{}
	}
	return &evaluated[0], evaluated[1:]
}
