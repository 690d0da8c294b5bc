package models

// NextAction tells the caller what the engine decided for this turn.
type NextAction string

const (
	ActionAskClarification NextAction = "ASK_CLARIFICATION"
	ActionShowFlights      NextAction = "SHOW_FLIGHTS"
	ActionSearchFlights    NextAction = "SEARCH_FLIGHTS"
)

// PendingClarification records that a slot question is outstanding. While it
// is set, the decision engine must not replace it with a new question; the
// next turn's text is treated as the answer.
type PendingClarification struct {
	Type ClarificationType `json:"type" bson:"type"`
}

// CardState tracks card mentions across the conversation. Resolved is
// order-preserving, one entry per raw mention. Unresolved is set when a
// bank-variant question is outstanding.
type CardState struct {
	RawMentions []string         `json:"rawMentions" bson:"rawMentions"`
	Resolved    []NormalizedCard `json:"resolved" bson:"resolved"`
	Unresolved  *UnresolvedCard  `json:"unresolved,omitempty" bson:"unresolved,omitempty"`
}

// SessionMeta carries the last decided action.
type SessionMeta struct {
	NextAction NextAction `json:"nextAction" bson:"nextAction"`
}

// SearchContext is the full per-conversation state. It is the only state
// that survives between turns and is persisted as a single JSON blob by the
// session store. Exclusive ownership per request: the store hands it out,
// the turn mutates it, the store writes it back.
type SearchContext struct {
	Intent              TravelIntent          `json:"intent" bson:"intent"`
	IntentClarification *PendingClarification `json:"intentClarification,omitempty" bson:"intentClarification,omitempty"`
	Cards               CardState             `json:"cards" bson:"cards"`
	Meta                SessionMeta           `json:"meta" bson:"meta"`
}

// NewSearchContext initializes a context with the conversation defaults.
func NewSearchContext() *SearchContext {
	return &SearchContext{
		Intent: NewTravelIntent(),
		Cards: CardState{
			RawMentions: []string{},
			Resolved:    []NormalizedCard{},
		},
		Meta: SessionMeta{NextAction: ActionSearchFlights},
	}
}
