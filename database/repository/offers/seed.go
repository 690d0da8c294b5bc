package offersRepo

import "farewise/models"

func capOf(v float64) *float64 { return &v }

// SeedOffers returns the compiled-in offer catalog (MakeMyTrip flight deals).
func SeedOffers() []models.Offer {
	return []models.Offer{
		{
			Source:     "MMT",
			IssuerType: models.IssuerBank,
			Issuer:     "HDFC",
			CardType:   models.CardTypeCredit,
			EMI:        true,
			Discount: models.DiscountSpec{
				Type: models.DiscountInstant, Value: 1250, Unit: models.UnitFlat, MaxCap: capOf(2000),
			},
			MinBookingAmount: 7500,
			ValidOn: models.ValidityWindow{
				StartDate: "2026-02-01",
				EndDate:   "2026-02-28",
				Days:      []string{models.DayAll},
			},
			PromoCode: "HDFCEMI",
			DetailedTNC: []string{
				"Valid only on HDFC Bank EasyEMI transactions (3, 6, 9, 12 months).",
				"Excluded: HDFC Bank Business, Corporate, and Commercial cards.",
				"Excluded: HDFC Bank Paytm Credit Cards.",
				"Offer capped at 1 booking per card per month.",
				"EMI foreclosure will lead to reversal of the discount benefit.",
			},
		},
		{
			Source:     "MMT",
			IssuerType: models.IssuerBank,
			Issuer:     "ICICI",
			CardType:   models.CardTypeCredit,
			EMI:        true,
			Discount: models.DiscountSpec{
				Type: models.DiscountInstant, Value: 10, Unit: models.UnitPercent, MaxCap: capOf(1000),
			},
			MinBookingAmount: 5000,
			ValidOn: models.ValidityWindow{
				StartDate: "2026-02-01",
				EndDate:   "2026-02-28",
				Days:      []string{"MON"},
			},
			PromoCode: "FLYMONEMI",
			DetailedTNC: []string{
				"Valid on Mondays only for ICICI Bank Credit Card EMI transactions.",
				"Excluded: Amazon Pay ICICI, Corporate, and Business cards.",
				"Frequency: Valid for 1 transaction per category per user per month.",
				"Not valid on Multi-City flight bookings.",
			},
		},
		{
			Source:     "MMT",
			IssuerType: models.IssuerBank,
			Issuer:     "SBI",
			CardType:   models.CardTypeDebit,
			EMI:        false,
			Discount: models.DiscountSpec{
				Type: models.DiscountInstant, Value: 10, Unit: models.UnitPercent, MaxCap: capOf(1500),
			},
			MinBookingAmount: 5000,
			ValidOn: models.ValidityWindow{
				StartDate: "2026-02-01",
				EndDate:   "2026-02-28",
				Days:      []string{models.DayAll},
			},
			PromoCode: "SBIDC",
			DetailedTNC: []string{
				"Valid only on SBI Debit Cards. SBI Credit Cards are excluded.",
				"Applicable once per card per week (Tier reset every Monday).",
				"Discount calculated on base fare only; excludes taxes and convenience fees.",
				"Offer is valid on both Domestic and International flight bookings.",
			},
		},
		{
			Source:     "MMT",
			IssuerType: models.IssuerBank,
			Issuer:     "AXIS",
			CardType:   models.CardTypeCredit,
			EMI:        true,
			Discount: models.DiscountSpec{
				Type: models.DiscountInstant, Value: 10, Unit: models.UnitPercent, MaxCap: capOf(1800),
			},
			MinBookingAmount: 7500,
			ValidOn: models.ValidityWindow{
				StartDate: "2026-01-01",
				EndDate:   "2026-12-31",
				Days:      []string{models.DayAll},
			},
			PromoCode: "AXISEMI",
			DetailedTNC: []string{
				"Includes 3-month No-Cost EMI + 10% Instant Discount.",
				"Valid only for Indian retail cards; Corporate/Business cards are excluded.",
				"Valid only on the MakeMyTrip App and Desktop site.",
				"Rescheduling/cancellation will lead to forfeiture of the discount.",
			},
		},
		{
			Source:     "MMT",
			IssuerType: models.IssuerBank,
			Issuer:     "CANARA",
			CardType:   models.CardTypeCredit,
			EMI:        false,
			Discount: models.DiscountSpec{
				Type: models.DiscountInstant, Value: 12, Unit: models.UnitPercent, MaxCap: capOf(1800),
			},
			MinBookingAmount: 5000,
			ValidOn: models.ValidityWindow{
				StartDate: "2026-02-01",
				EndDate:   "2026-02-28",
				Days:      []string{"WED", "SAT"},
			},
			PromoCode: "MMTCANARA",
			DetailedTNC: []string{
				"Valid on Canara Bank Credit Cards (Retail) only.",
				"Frequency: One booking per category (Flight/Hotel) per month.",
				"Excluded: Corporate cards, Prepaid cards, and Net Banking.",
				"Not applicable on 'Multi-City' tab bookings.",
			},
		},
		{
			Source:     "MMT",
			IssuerType: models.IssuerBank,
			Issuer:     "AU BANK",
			CardType:   models.CardTypeCredit,
			EMI:        true,
			Discount: models.DiscountSpec{
				Type: models.DiscountInstant, Value: 10, Unit: models.UnitPercent, MaxCap: capOf(1800),
			},
			MinBookingAmount: 5000,
			ValidOn: models.ValidityWindow{
				StartDate: "2026-02-01",
				EndDate:   "2026-02-28",
				Days:      []string{models.DayAll},
			},
			PromoCode: "MMTAUEMI",
			DetailedTNC: []string{
				"Valid on AU Small Finance Bank Credit Card No-Cost EMI (3 Months).",
				"Applicable once per user per month across domestic and international.",
				"Processing fee of ₹199 + GST is applicable at the bank's end.",
				"Excluded: AU Bank Debit cards and Corporate credit cards.",
			},
		},
		{
			Source:     "MMT",
			IssuerType: models.IssuerBank,
			Issuer:     "HSBC",
			CardType:   models.CardTypeCredit,
			EMI:        true,
			Discount: models.DiscountSpec{
				Type: models.DiscountInstant, Value: 12, Unit: models.UnitPercent, MaxCap: capOf(1800),
			},
			MinBookingAmount: 5000,
			ValidOn: models.ValidityWindow{
				StartDate: "2026-02-01",
				EndDate:   "2026-02-28",
				Days:      []string{models.DayAll},
			},
			PromoCode: "MMTHSBCEMI",
			DetailedTNC: []string{
				"Valid on HSBC Credit Card EMI transactions (3 & 6 Months No-Cost EMI).",
				"Interest subvention cashback credited within 21 days by the bank.",
				"Frequency: 1 transaction per card per category throughout the month.",
				"Excluded: HSBC Corporate and Commercial cards.",
			},
		},
		{
			Source:     "MMT",
			IssuerType: models.IssuerBank,
			Issuer:     "ONECARD",
			CardType:   models.CardTypeCredit,
			EMI:        true,
			Discount: models.DiscountSpec{
				Type: models.DiscountInstant, Value: 8, Unit: models.UnitPercent, MaxCap: capOf(1200),
			},
			MinBookingAmount: 7500,
			ValidOn: models.ValidityWindow{
				StartDate: "2026-02-01",
				EndDate:   "2026-02-28",
				Days:      []string{models.DayAll},
			},
			PromoCode: "MMTONECARDEMI",
			DetailedTNC: []string{
				"Valid on OneCard Credit Card EMI tenures (3, 6, 9, 12 months).",
				"Processing fee: ₹99 or 1% (whichever is higher) + GST charged by OneCard.",
				"Frequency: 1 booking per month across international and domestic flights.",
				"Rescheduling is not allowed for flights booked under this offer.",
			},
		},
		{
			Source:     "MMT",
			IssuerType: models.IssuerBank,
			Issuer:     "IDFC FIRST",
			CardType:   models.CardTypeCredit,
			EMI:        true,
			Discount: models.DiscountSpec{
				Type: models.DiscountInstant, Value: 10, Unit: models.UnitPercent, MaxCap: capOf(1500),
			},
			MinBookingAmount: 5000,
			ValidOn: models.ValidityWindow{
				StartDate: "2026-02-01",
				EndDate:   "2026-02-28",
				Days:      []string{models.DayAll},
			},
			PromoCode: "MMTIDFCNCEMI",
			DetailedTNC: []string{
				"Valid on IDFC FIRST Bank Credit Card EMI (3 & 6 Months No-Cost EMI).",
				"Offer is valid for 1 booking per card per category throughout the month.",
				"Not valid on IDFC Debit cards or net banking.",
				"Offer reset: 1st day of every month.",
			},
		},
		{
			Source:     "MMT",
			IssuerType: models.IssuerNetwork,
			Issuer:     "VISA",
			CardType:   models.CardTypeCredit,
			EMI:        false,
			Discount: models.DiscountSpec{
				Type: models.DiscountInstant, Value: 350, Unit: models.UnitFlat, MaxCap: capOf(350),
			},
			MinBookingAmount: 0,
			ValidOn: models.ValidityWindow{
				StartDate: "2026-01-01",
				EndDate:   "2026-03-31",
				Days:      []string{models.DayAll},
			},
			PromoCode: "VISASIGNATURE",
			DetailedTNC: []string{
				"Benefit: 2 Complimentary seat selections per card per year (Max ₹350/seat).",
				"Valid only on Visa Signature Credit Cards issued in India.",
				"Can be clubbed with other bank offers available on the MMT platform.",
				"Not applicable on Visa Debit, Prepaid, or Infinite cards.",
			},
		},
	}
}
