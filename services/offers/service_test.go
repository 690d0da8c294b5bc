package offers

import (
	"context"
	"testing"

	offersRepo "farewise/database/repository/offers"
	"farewise/models"
)

func seedCatalog(t *testing.T) []models.Offer {
	t.Helper()
	catalog, err := offersRepo.NewSeedOfferCatalogRepo().Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	return catalog
}

func sessionWithCards(cards ...models.NormalizedCard) *models.SearchContext {
	sc := models.NewSearchContext()
	sc.Intent.Adults = 2
	sc.Intent.Children = 1
	sc.Cards.Resolved = cards
	return sc
}

func exactCard(bank, variant string, network models.CardNetwork) models.NormalizedCard {
	cardType := models.CardTypeCredit
	return models.NormalizedCard{
		IssuingBank:      &bank,
		CardVariant:      &variant,
		CardType:         &cardType,
		Network:          netOf(network),
		Confidence:       1.0,
		ResolutionStatus: models.ResolutionExact,
	}
}

func TestEvaluateRequiresCards(t *testing.T) {
	svc := NewService(seedCatalog(t))
	flight := &models.SelectedFlight{Fare: models.SelectedFare{Total: 10000}}

	if _, err := svc.Evaluate(models.NewSearchContext(), flight); err != ErrNoCards {
		t.Fatalf("err = %v, want ErrNoCards", err)
	}
}

func TestEvaluateRejectsInvalidFare(t *testing.T) {
	svc := NewService(seedCatalog(t))
	sc := sessionWithCards(exactCard("HDFC", "REGALIA", models.NetworkVisa))
	flight := &models.SelectedFlight{Fare: models.SelectedFare{Total: 0}}

	if _, err := svc.Evaluate(sc, flight); err != ErrInvalidFlight {
		t.Fatalf("err = %v, want ErrInvalidFlight", err)
	}
}

func TestEvaluatePerCardResults(t *testing.T) {
	// Minimal catalog so outcomes do not depend on the evaluation weekday.
	catalog := []models.Offer{
		{
			Source:     "MMT",
			IssuerType: models.IssuerBank,
			Issuer:     "HDFC",
			CardType:   models.CardTypeCredit,
			Discount:   models.DiscountSpec{Type: models.DiscountInstant, Value: 1250, Unit: models.UnitFlat},
			ValidOn:    models.ValidityWindow{StartDate: "2020-01-01", EndDate: "2099-12-31", Days: []string{models.DayAll}},
			PromoCode:  "HDFCFLAT",
		},
		{
			Source:     "MMT",
			IssuerType: models.IssuerNetwork,
			Issuer:     "VISA",
			CardType:   models.CardTypeCredit,
			Discount:   models.DiscountSpec{Type: models.DiscountInstant, Value: 350, Unit: models.UnitFlat},
			ValidOn:    models.ValidityWindow{StartDate: "2020-01-01", EndDate: "2099-12-31", Days: []string{models.DayAll}},
			PromoCode:  "VISAFLAT",
		},
	}
	svc := NewService(catalog)

	sc := sessionWithCards(
		exactCard("HDFC", "REGALIA", models.NetworkVisa),
		exactCard("ICICI", "CORAL", models.NetworkRupay),
	)
	flight := &models.SelectedFlight{
		FlightNumber: "AI-101",
		Fare:         models.SelectedFare{Total: 10000},
	}

	res, err := svc.Evaluate(sc, flight)
	if err != nil {
		t.Fatal(err)
	}

	// Passenger counts come from the session, not the request body.
	if res.Flight.Passengers == nil || res.Flight.Passengers.Adults != 2 || res.Flight.Passengers.Children != 1 {
		t.Fatalf("passengers = %+v", res.Flight.Passengers)
	}

	if len(res.PerCardResults) != 2 {
		t.Fatalf("results = %d, want one per card", len(res.PerCardResults))
	}

	// HDFC VISA card: bank offer (1250) beats network offer (350).
	hdfc := res.PerCardResults[0]
	if *hdfc.Card.IssuingBank != "HDFC" {
		t.Fatal("results not in session card order")
	}
	if hdfc.BestOffer == nil || hdfc.BestOffer.Offer.PromoCode != "HDFCFLAT" {
		t.Fatalf("hdfc best = %+v", hdfc.BestOffer)
	}
	if len(hdfc.OtherOffers) != 1 || hdfc.OtherOffers[0].Offer.PromoCode != "VISAFLAT" {
		t.Fatalf("hdfc others = %+v", hdfc.OtherOffers)
	}
	if hdfc.OriginalFare != 10000 || hdfc.BestOffer.FinalFare != 8750 {
		t.Fatalf("hdfc fares = %v/%v", hdfc.OriginalFare, hdfc.BestOffer.FinalFare)
	}

	// ICICI RUPAY card: neither offer applies. A valid empty outcome.
	icici := res.PerCardResults[1]
	if icici.BestOffer != nil || len(icici.OtherOffers) != 0 {
		t.Fatalf("icici results = %+v", icici)
	}
}
