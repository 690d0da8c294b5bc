// Package card turns free-text card mentions into structured identities and
// decides when the user must be asked which exact card they hold.
package card

import "farewise/models"

// Service normalizes and resolves card mentions against an immutable
// registry snapshot loaded at process start.
type Service struct {
	registry []models.CardRegistryEntry
}

// NewService creates a card service over the given registry. The service
// never mutates the registry.
func NewService(registry []models.CardRegistryEntry) *Service {
	return &Service{registry: registry}
}

// ProcessResult is the outcome of processing one turn's card mentions.
// Unresolved is non-nil exactly when Clarification is: it marks the bank
// whose variant answer the next turn must supply.
type ProcessResult struct {
	Cards         []models.NormalizedCard
	Clarification *models.Clarification
	Unresolved    *models.UnresolvedCard
}

// ProcessCards normalizes and resolves every raw mention, in order, and
// builds a clarification for the first card that needs one.
func (s *Service) ProcessCards(mentions []string) ProcessResult {
	cards := make([]models.NormalizedCard, 0, len(mentions))
	for _, raw := range mentions {
		cards = append(cards, Resolve(s.Normalize(raw)))
	}

	clarification, unresolved := s.BuildClarification(cards)
	return ProcessResult{
		Cards:         cards,
		Clarification: clarification,
		Unresolved:    unresolved,
	}
}
