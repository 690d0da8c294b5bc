package card

import (
	"strings"

	"farewise/models"
)

// fallbackBanks are matched when no registry alias hits. Lowercase, substring
// match, first hit wins.
var fallbackBanks = []string{"hdfc", "icici", "sbi", "axis", "kotak"}

const (
	// bankOnlyConfidence is assigned when only the issuing bank was detected.
	bankOnlyConfidence = 0.6
	// aliasConfidenceBoost is added to the alias match ratio.
	aliasConfidenceBoost = 0.3
)

// Normalize produces exactly one best-guess card identity for a raw mention.
//
// Every alias of every registry entry is tried as a substring of the
// lowercased input; the score is len(alias)/len(input) and the single
// highest-scoring entry wins. On an exact score tie the first entry seen in
// registry order is kept; do not change this without product sign-off, the
// seed registry order encodes it.
func (s *Service) Normalize(rawText string) models.NormalizedCard {
	text := strings.ToLower(rawText)

	var bestMatch *models.CardRegistryEntry
	bestScore := 0.0

	for i := range s.registry {
		entry := &s.registry[i]
		for _, alias := range entry.Aliases {
			if !strings.Contains(text, alias) {
				continue
			}
			score := float64(len(alias)) / float64(len(text))
			if score > bestScore {
				bestScore = score
				bestMatch = entry
			}
		}
	}

	if bestMatch != nil {
		confidence := bestScore + aliasConfidenceBoost
		if confidence > 1.0 {
			confidence = 1.0
		}
		bank := bestMatch.IssuingBank
		variant := bestMatch.CardVariant
		cardType := bestMatch.CardType
		return models.NormalizedCard{
			IssuingBank: &bank,
			CardVariant: &variant,
			CardType:    &cardType,
			Network:     bestMatch.Network,
			Confidence:  confidence,
		}
	}

	if bank := detectBank(text); bank != "" {
		cardType := detectCardType(text)
		return models.NormalizedCard{
			IssuingBank: &bank,
			CardType:    &cardType,
			Confidence:  bankOnlyConfidence,
		}
	}

	// Nothing detected: degrade to a fully-null card, never an error.
	return models.NormalizedCard{}
}

func detectBank(text string) string {
	for _, bank := range fallbackBanks {
		if strings.Contains(text, bank) {
			return strings.ToUpper(bank)
		}
	}
	return ""
}

func detectCardType(text string) models.CardType {
	if strings.Contains(text, "debit") {
		return models.CardTypeDebit
	}
	return models.CardTypeCredit
}
