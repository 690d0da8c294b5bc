package card

import "farewise/models"

// Resolve assigns the resolution status implied by which identity fields the
// normalizer filled in. Pure: no other field changes.
//
// AMBIGUOUS exists in the status taxonomy but is never assigned here; alias
// score ties resolve to a single best match in Normalize.
func Resolve(c models.NormalizedCard) models.NormalizedCard {
	switch {
	case c.IssuingBank == nil:
		c.ResolutionStatus = models.ResolutionUnknown
	case c.CardVariant == nil:
		c.ResolutionStatus = models.ResolutionBankOnly
	default:
		c.ResolutionStatus = models.ResolutionExact
	}
	return c
}
