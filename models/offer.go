package models

import "time"

// IssuerType says whether an offer is keyed to a bank or a card network.
type IssuerType string

const (
	IssuerBank    IssuerType = "BANK"
	IssuerNetwork IssuerType = "NETWORK"
)

// DiscountUnit is how the discount value is expressed.
type DiscountUnit string

const (
	UnitPercent DiscountUnit = "PERCENT"
	UnitFlat    DiscountUnit = "FLAT"
)

// DiscountType is when the benefit is realized.
type DiscountType string

const (
	DiscountInstant  DiscountType = "INSTANT"
	DiscountCashback DiscountType = "CASHBACK"
)

// Weekday abbreviations used in offer validity rules. DayAll matches every day.
const DayAll = "ALL"

// DiscountSpec describes the benefit an offer grants.
type DiscountSpec struct {
	Type   DiscountType `json:"type" bson:"type"`
	Value  float64      `json:"value" bson:"value"`
	Unit   DiscountUnit `json:"unit" bson:"unit"`
	MaxCap *float64     `json:"maxCap,omitempty" bson:"maxCap,omitempty"`
}

// ValidityWindow bounds when an offer can be used. Days holds 3-letter
// uppercase weekday abbreviations, or DayAll.
type ValidityWindow struct {
	StartDate string   `json:"startDate" bson:"startDate"`
	EndDate   string   `json:"endDate" bson:"endDate"`
	Days      []string `json:"days" bson:"days"`
}

// Offer is one promotional rule from the catalog. Immutable reference data.
type Offer struct {
	Source           string         `json:"source" bson:"source"`
	IssuerType       IssuerType     `json:"issuerType" bson:"issuerType"`
	Issuer           string         `json:"issuer" bson:"issuer"`
	CardType         CardType       `json:"cardType" bson:"cardType"`
	EMI              bool           `json:"emi" bson:"emi"`
	EligibleVariants []string       `json:"eligibleVariants,omitempty" bson:"eligibleVariants,omitempty"`
	Discount         DiscountSpec   `json:"discount" bson:"discount"`
	MinBookingAmount float64        `json:"minBookingAmount" bson:"minBookingAmount"`
	ValidOn          ValidityWindow `json:"validOn" bson:"validOn"`
	PromoCode        string         `json:"promoCode,omitempty" bson:"promoCode,omitempty"`
	DetailedTNC      []string       `json:"detailedTNC" bson:"detailedTNC"`
}

// FareBreakdown is the priced components of a booking.
type FareBreakdown struct {
	Total    float64 `json:"total"`
	BaseFare float64 `json:"baseFare"`
	Taxes    float64 `json:"taxes"`
	Currency string  `json:"currency,omitempty"`
}

// RouteInfo is the origin/destination pair for route-scoped offer rules.
type RouteInfo struct {
	Origin          string `json:"origin"`
	Destination     string `json:"destination"`
	IsInternational bool   `json:"isInternational,omitempty"`
}

// PassengerCounts mirrors the intent's passenger fields.
type PassengerCounts struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

// ContextCard is the payment instrument an offer evaluation runs against.
type ContextCard struct {
	IssuerType IssuerType   `json:"issuerType"`
	Issuer     string       `json:"issuer"`
	CardType   CardType     `json:"cardType"`
	EMI        bool         `json:"emi"`
	Variant    *string      `json:"variant,omitempty"`
	Network    *CardNetwork `json:"network,omitempty"`
}

// OfferContext is everything eligibility rules may look at. Built once per
// evaluation request, never persisted.
type OfferContext struct {
	BookingDate   time.Time        `json:"bookingDate"`
	BookingAmount float64          `json:"bookingAmount"`
	Fare          *FareBreakdown   `json:"fare,omitempty"`
	Route         *RouteInfo       `json:"route,omitempty"`
	TravelDate    *time.Time       `json:"travelDate,omitempty"`
	Passengers    *PassengerCounts `json:"passengers,omitempty"`
	Card          ContextCard      `json:"card"`
}

// DiscountBreakdown echoes how an evaluated discount was computed.
type DiscountBreakdown struct {
	Unit            DiscountUnit `json:"unit"`
	Value           float64      `json:"value"`
	MaxCap          *float64     `json:"maxCap"`
	AppliedDiscount float64      `json:"appliedDiscount"`
}

// EvaluatedOffer pairs an eligible offer with its computed discount.
type EvaluatedOffer struct {
	Offer     Offer             `json:"offer"`
	Discount  float64           `json:"discount"`
	FinalFare float64           `json:"finalFare"`
	Breakdown DiscountBreakdown `json:"breakdown"`
}

// CardOfferResult is the per-card outcome of an offer evaluation request.
// BestOffer is nil when nothing applies; that is a valid outcome.
type CardOfferResult struct {
	Card         NormalizedCard   `json:"card"`
	OriginalFare float64          `json:"originalFare"`
	BestOffer    *EvaluatedOffer  `json:"bestOffer"`
	OtherOffers  []EvaluatedOffer `json:"otherOffers"`
}
