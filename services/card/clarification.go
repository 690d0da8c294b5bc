package card

import (
	"fmt"

	"farewise/models"
)

// BuildClarification finds the first card (in mention order) that is not
// fully resolved but has a known issuing bank, and builds the bank-variant
// question for it. The returned UnresolvedCard must be written into the
// session so the next turn's text is interpreted as the answer.
//
// A card with an unknown bank never triggers a question: there is nothing
// actionable to ask.
func (s *Service) BuildClarification(cards []models.NormalizedCard) (*models.Clarification, *models.UnresolvedCard) {
	var unresolved *models.NormalizedCard
	for i := range cards {
		if cards[i].ResolutionStatus != models.ResolutionExact && cards[i].IssuingBank != nil {
			unresolved = &cards[i]
			break
		}
	}

	if unresolved == nil {
		return nil, nil
	}

	bank := *unresolved.IssuingBank

	// Variants of every active entry for the bank, in registry order.
	// Duplicates in the registry surface as duplicate options; the registry
	// is trusted to be clean.
	var options []string
	for _, entry := range s.registry {
		if entry.Active && entry.IssuingBank == bank {
			options = append(options, entry.CardVariant)
		}
	}

	clarification := &models.Clarification{
		Type:     models.ClarifyCard,
		Question: fmt.Sprintf("Which %s credit card do you have?", bank),
		Options:  options,
	}
	return clarification, &models.UnresolvedCard{IssuingBank: bank}
}
