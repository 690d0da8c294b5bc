package offers

import (
	"testing"
	"time"

	"farewise/models"
)

func strOf(s string) *string { return &s }

func capOf(v float64) *float64 { return &v }

func netOf(n models.CardNetwork) *models.CardNetwork { return &n }

// A Monday inside every seed window.
var monday = time.Date(2026, time.February, 2, 12, 0, 0, 0, time.UTC)

func baseOffer() models.Offer {
	return models.Offer{
		Source:     "MMT",
		IssuerType: models.IssuerBank,
		Issuer:     "HDFC",
		CardType:   models.CardTypeCredit,
		Discount: models.DiscountSpec{
			Type: models.DiscountInstant, Value: 10, Unit: models.UnitPercent, MaxCap: capOf(1000),
		},
		MinBookingAmount: 5000,
		ValidOn: models.ValidityWindow{
			StartDate: "2026-02-01",
			EndDate:   "2026-02-28",
			Days:      []string{models.DayAll},
		},
	}
}

func creditContext(issuer string, network models.CardNetwork, fare float64, at time.Time) models.OfferContext {
	cardType := models.CardTypeCredit
	card := models.NormalizedCard{
		IssuingBank: &issuer,
		CardType:    &cardType,
		Network:     netOf(network),
	}
	flight := &models.SelectedFlight{
		FlightNumber: "6E-203",
		Fare:         models.SelectedFare{Total: fare},
	}
	ctx, err := buildOfferContextAt(flight, card, false, at)
	if err != nil {
		panic(err)
	}
	return ctx
}

func TestEligibilityRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Offer, *models.OfferContext)
		want   bool
	}{
		{"all rules pass", func(o *models.Offer, c *models.OfferContext) {}, true},
		{"bank mismatch", func(o *models.Offer, c *models.OfferContext) {
			o.Issuer = "ICICI"
		}, false},
		{"network offer matches card network", func(o *models.Offer, c *models.OfferContext) {
			o.IssuerType = models.IssuerNetwork
			o.Issuer = "VISA"
		}, true},
		{"network offer rejects other networks", func(o *models.Offer, c *models.OfferContext) {
			o.IssuerType = models.IssuerNetwork
			o.Issuer = "RUPAY"
		}, false},
		{"network offer needs a known network", func(o *models.Offer, c *models.OfferContext) {
			o.IssuerType = models.IssuerNetwork
			o.Issuer = "VISA"
			c.Card.Network = nil
		}, false},
		{"card type mismatch", func(o *models.Offer, c *models.OfferContext) {
			o.CardType = models.CardTypeDebit
		}, false},
		{"variant allowlist rejects other variants", func(o *models.Offer, c *models.OfferContext) {
			o.EligibleVariants = []string{"REGALIA"}
			c.Card.Variant = strOf("MILLENNIA")
		}, false},
		{"variant allowlist passes listed variant", func(o *models.Offer, c *models.OfferContext) {
			o.EligibleVariants = []string{"REGALIA"}
			c.Card.Variant = strOf("REGALIA")
		}, true},
		{"variant allowlist ignored when variant unknown", func(o *models.Offer, c *models.OfferContext) {
			o.EligibleVariants = []string{"REGALIA"}
			c.Card.Variant = nil
		}, true},
		{"threshold applies to base fare, not total", func(o *models.Offer, c *models.OfferContext) {
			c.Fare.BaseFare = 4000
		}, false},
		{"booking before window", func(o *models.Offer, c *models.OfferContext) {
			o.ValidOn.StartDate = "2026-03-01"
			o.ValidOn.EndDate = "2026-03-31"
		}, false},
		{"booking after window", func(o *models.Offer, c *models.OfferContext) {
			o.ValidOn.StartDate = "2026-01-01"
			o.ValidOn.EndDate = "2026-01-31"
		}, false},
		{"weekday not allowed", func(o *models.Offer, c *models.OfferContext) {
			o.ValidOn.Days = []string{"WED", "SAT"}
		}, false},
		{"weekday allowed", func(o *models.Offer, c *models.OfferContext) {
			o.ValidOn.Days = []string{"MON"}
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offer := baseOffer()
			ctx := creditContext("HDFC", models.NetworkVisa, 10000, monday)
			tt.mutate(&offer, &ctx)

			got := ApplicableOffers(ctx, []models.Offer{offer})
			if (len(got) == 1) != tt.want {
				t.Fatalf("eligible = %v, want %v", len(got) == 1, tt.want)
			}
		})
	}
}

func TestEligibilityWeekdayGrid(t *testing.T) {
	days := []string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}

	// 2026-02-02 is a Monday; each following day advances the weekday.
	for bookingIdx, bookingDay := range days {
		at := monday.AddDate(0, 0, bookingIdx)
		ctx := creditContext("HDFC", models.NetworkVisa, 10000, at)

		for _, offerDay := range days {
			offer := baseOffer()
			offer.ValidOn.Days = []string{offerDay}

			got := len(ApplicableOffers(ctx, []models.Offer{offer})) == 1
			want := offerDay == bookingDay
			if got != want {
				t.Fatalf("booking %s vs offer day %s: eligible = %v, want %v", bookingDay, offerDay, got, want)
			}
		}

		// ALL admits every weekday.
		offer := baseOffer()
		offer.ValidOn.Days = []string{models.DayAll}
		if len(ApplicableOffers(ctx, []models.Offer{offer})) != 1 {
			t.Fatalf("booking %s: ALL offer not eligible", bookingDay)
		}
	}
}

func TestComputeCappedDiscount(t *testing.T) {
	tests := []struct {
		name string
		fare float64
		spec models.DiscountSpec
		want float64
	}{
		{"percent under cap", 5000, models.DiscountSpec{Value: 10, Unit: models.UnitPercent, MaxCap: capOf(1000)}, 500},
		{"percent clamped to cap", 50000, models.DiscountSpec{Value: 10, Unit: models.UnitPercent, MaxCap: capOf(1000)}, 1000},
		{"percent without cap", 50000, models.DiscountSpec{Value: 10, Unit: models.UnitPercent}, 5000},
		{"flat ignores fare", 3000, models.DiscountSpec{Value: 1250, Unit: models.UnitFlat, MaxCap: capOf(2000)}, 1250},
		{"flat clamped to cap", 3000, models.DiscountSpec{Value: 2500, Unit: models.UnitFlat, MaxCap: capOf(2000)}, 2000},
		{"fraction floored", 4999, models.DiscountSpec{Value: 10, Unit: models.UnitPercent}, 499},
		{"negative clamps to zero", 5000, models.DiscountSpec{Value: -5, Unit: models.UnitFlat}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offer := baseOffer()
			offer.Discount = tt.spec
			if got := computeCappedDiscount(tt.fare, offer); got != tt.want {
				t.Fatalf("discount = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBestAndOtherOffersRanking(t *testing.T) {
	big := baseOffer()
	big.PromoCode = "BIG"
	big.Discount = models.DiscountSpec{Value: 1250, Unit: models.UnitFlat}

	small := baseOffer()
	small.PromoCode = "SMALL"
	small.Discount = models.DiscountSpec{Value: 10, Unit: models.UnitPercent, MaxCap: capOf(500)}

	zero := baseOffer()
	zero.PromoCode = "ZERO"
	zero.Discount = models.DiscountSpec{Value: 0, Unit: models.UnitFlat}

	ctx := creditContext("HDFC", models.NetworkVisa, 10000, monday)
	best, others := BestAndOtherOffers(ctx, []models.Offer{small, zero, big}, 10000)

	if best == nil || best.Offer.PromoCode != "BIG" {
		t.Fatalf("best = %+v, want BIG", best)
	}
	if best.Discount != 1250 || best.FinalFare != 8750 {
		t.Fatalf("best discount/finalFare = %v/%v", best.Discount, best.FinalFare)
	}
	if len(others) != 1 || others[0].Offer.PromoCode != "SMALL" {
		t.Fatalf("others = %+v, want only SMALL (zero-discount dropped)", others)
	}
}

func TestBestAndOtherOffersTieKeepsCatalogOrder(t *testing.T) {
	first := baseOffer()
	first.PromoCode = "FIRST"
	first.Discount = models.DiscountSpec{Value: 700, Unit: models.UnitFlat}

	second := baseOffer()
	second.PromoCode = "SECOND"
	second.Discount = models.DiscountSpec{Value: 700, Unit: models.UnitFlat}

	ctx := creditContext("HDFC", models.NetworkVisa, 10000, monday)
	best, others := BestAndOtherOffers(ctx, []models.Offer{first, second}, 10000)

	if best.Offer.PromoCode != "FIRST" {
		t.Fatalf("best = %s, want FIRST on tie", best.Offer.PromoCode)
	}
	if len(others) != 1 || others[0].Offer.PromoCode != "SECOND" {
		t.Fatalf("others = %+v", others)
	}
}

func TestBestAndOtherOffersNothingApplicable(t *testing.T) {
	ctx := creditContext("ZZZ BANK", models.NetworkVisa, 10000, monday)
	offer := baseOffer()
	offer.IssuerType = models.IssuerBank

	best, others := BestAndOtherOffers(ctx, []models.Offer{offer}, 10000)
	if best != nil {
		t.Fatalf("best = %+v, want nil", best)
	}
	if others == nil || len(others) != 0 {
		t.Fatalf("others = %v, want empty non-nil slice", others)
	}
}

func TestBestAndOtherOffersIdempotent(t *testing.T) {
	ctx := creditContext("HDFC", models.NetworkVisa, 10000, monday)
	catalog := []models.Offer{baseOffer()}

	best1, _ := BestAndOtherOffers(ctx, catalog, 10000)
	best2, _ := BestAndOtherOffers(ctx, catalog, 10000)

	if best1.Discount != best2.Discount || best1.Offer.PromoCode != best2.Offer.PromoCode {
		t.Fatal("repeated evaluation diverged")
	}
}

func TestBuildOfferContextDefaults(t *testing.T) {
	cardType := models.CardTypeCredit
	card := models.NormalizedCard{
		IssuingBank: strOf("HDFC"),
		CardVariant: strOf("REGALIA"),
		CardType:    &cardType,
		Network:     netOf(models.NetworkVisa),
	}
	flight := &models.SelectedFlight{
		FlightNumber:  "6E-203",
		Origin:        "DEL",
		Destination:   "MAA",
		DepartureDate: "2026-03-15",
		Fare:          models.SelectedFare{Total: 9000},
	}

	ctx, err := buildOfferContextAt(flight, card, false, monday)
	if err != nil {
		t.Fatal(err)
	}
	if ctx.BookingAmount != 9000 {
		t.Fatalf("bookingAmount = %v", ctx.BookingAmount)
	}
	// Absent breakdown falls back to the total, taxes default to zero.
	if ctx.Fare.BaseFare != 9000 || ctx.Fare.Taxes != 0 {
		t.Fatalf("fare = %+v", ctx.Fare)
	}
	if ctx.Route == nil || ctx.Route.Origin != "DEL" {
		t.Fatalf("route = %+v", ctx.Route)
	}
	if ctx.TravelDate == nil || ctx.TravelDate.Format("2006-01-02") != "2026-03-15" {
		t.Fatalf("travelDate = %v", ctx.TravelDate)
	}
	if ctx.Card.IssuerType != models.IssuerBank || ctx.Card.Issuer != "HDFC" {
		t.Fatalf("card = %+v", ctx.Card)
	}
}

func TestBuildOfferContextRejectsMissingFare(t *testing.T) {
	card := models.NormalizedCard{IssuingBank: strOf("HDFC")}

	for _, total := range []float64{0, -100} {
		flight := &models.SelectedFlight{Fare: models.SelectedFare{Total: total}}
		if _, err := buildOfferContextAt(flight, card, false, monday); err != ErrInvalidFlight {
			t.Fatalf("total %v: err = %v, want ErrInvalidFlight", total, err)
		}
	}
	if _, err := buildOfferContextAt(nil, card, false, monday); err != ErrInvalidFlight {
		t.Fatalf("nil flight: err = %v, want ErrInvalidFlight", err)
	}
}

func TestBuildOfferContextExplicitBaseFare(t *testing.T) {
	card := models.NormalizedCard{IssuingBank: strOf("HDFC")}
	base := 7000.0
	taxes := 2000.0
	flight := &models.SelectedFlight{
		Fare: models.SelectedFare{Total: 9000, BaseFare: &base, Taxes: &taxes},
	}

	ctx, err := buildOfferContextAt(flight, card, false, monday)
	if err != nil {
		t.Fatal(err)
	}
	if ctx.Fare.BaseFare != 7000 || ctx.Fare.Taxes != 2000 {
		t.Fatalf("fare = %+v", ctx.Fare)
	}
}
