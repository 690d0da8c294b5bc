package models

// CardType distinguishes credit from debit instruments.
type CardType string

const (
	CardTypeCredit CardType = "CREDIT"
	CardTypeDebit  CardType = "DEBIT"
)

// CardNetwork is the payment network a card runs on.
type CardNetwork string

const (
	NetworkVisa       CardNetwork = "VISA"
	NetworkMastercard CardNetwork = "MASTERCARD"
	NetworkRupay      CardNetwork = "RUPAY"
	NetworkAmex       CardNetwork = "AMEX"
)

// CardResolutionStatus classifies how completely a free-text card mention
// was identified. AMBIGUOUS is part of the taxonomy but the current
// normalizer never produces it; it is kept so future registry-driven
// detection can use it without a schema change.
type CardResolutionStatus string

const (
	ResolutionExact     CardResolutionStatus = "EXACT"
	ResolutionBankOnly  CardResolutionStatus = "BANK_ONLY"
	ResolutionAmbiguous CardResolutionStatus = "AMBIGUOUS"
	ResolutionUnknown   CardResolutionStatus = "UNKNOWN"
)

// NormalizedCard is the single best-guess identity for one raw card mention.
// Pointer fields are nil when the normalizer could not determine them.
type NormalizedCard struct {
	IssuingBank      *string              `json:"issuingBank" bson:"issuingBank"`
	CardVariant      *string              `json:"cardVariant" bson:"cardVariant"`
	CardType         *CardType            `json:"cardType" bson:"cardType"`
	Network          *CardNetwork         `json:"network" bson:"network"`
	Confidence       float64              `json:"confidence" bson:"confidence"`
	ResolutionStatus CardResolutionStatus `json:"resolutionStatus,omitempty" bson:"resolutionStatus,omitempty"`
}

// CardRegistryEntry is one known card product. Aliases are lowercase phrases
// matched as substrings of the user's text.
type CardRegistryEntry struct {
	IssuingBank string       `json:"issuingBank" bson:"issuingBank"`
	CardVariant string       `json:"cardVariant" bson:"cardVariant"`
	CardType    CardType     `json:"cardType" bson:"cardType"`
	Network     *CardNetwork `json:"network" bson:"network"`
	Aliases     []string     `json:"aliases" bson:"aliases"`
	Active      bool         `json:"active" bson:"active"`
}

// UnresolvedCard marks the bank we are waiting on a variant answer for.
type UnresolvedCard struct {
	IssuingBank string `json:"issuingBank" bson:"issuingBank"`
}
