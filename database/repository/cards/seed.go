package cardsRepo

import "farewise/models"

func networkOf(n models.CardNetwork) *models.CardNetwork { return &n }

// SeedEntries returns the compiled-in card registry. Order matters: the
// normalizer's first-match-wins tie-break and the clarification option order
// both follow registry order.
func SeedEntries() []models.CardRegistryEntry {
	return []models.CardRegistryEntry{
		{
			IssuingBank: "ICICI",
			CardVariant: "CORAL",
			CardType:    models.CardTypeCredit,
			Network:     networkOf(models.NetworkRupay),
			Active:      true,
			Aliases: []string{
				"icici coral",
				"coral credit card",
				"icici coral rupay",
				"coral rupay credit card",
			},
		},
		{
			IssuingBank: "HDFC",
			CardVariant: "REGALIA",
			CardType:    models.CardTypeCredit,
			Network:     networkOf(models.NetworkVisa),
			Active:      true,
			Aliases: []string{
				"hdfc regalia",
				"regalia credit card",
				"regalia hdfc",
			},
		},
		{
			IssuingBank: "HDFC",
			CardVariant: "MILLENNIA",
			CardType:    models.CardTypeCredit,
			Network:     networkOf(models.NetworkVisa),
			Active:      true,
			Aliases: []string{
				"hdfc millennia",
				"millennia credit card",
				"millennia hdfc",
			},
		},
	}
}
