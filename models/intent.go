package models

// TripType is one-way vs round-trip.
type TripType string

const (
	TripOneWay    TripType = "ONE_WAY"
	TripRoundTrip TripType = "ROUND_TRIP"
)

// ClarificationType identifies which question is being asked back to the user.
type ClarificationType string

const (
	ClarifyOrigin        ClarificationType = "ORIGIN"
	ClarifyDestination   ClarificationType = "DESTINATION"
	ClarifyDepartureDate ClarificationType = "DEPARTURE_DATE"
	ClarifyCard          ClarificationType = "CLARIFICATION_REQUIRED"
)

// TravelIntent is the structured trip request accumulated across turns.
// Slot fields are nil until the user has supplied them.
type TravelIntent struct {
	Origin        *string  `json:"origin" bson:"origin"`
	Destination   *string  `json:"destination" bson:"destination"`
	DepartureDate *string  `json:"departureDate" bson:"departureDate"`
	ReturnDate    *string  `json:"returnDate" bson:"returnDate"`
	Adults        int      `json:"adults" bson:"adults"`
	Children      int      `json:"children" bson:"children"`
	Infants       int      `json:"infants" bson:"infants"`
	TripType      TripType `json:"tripType" bson:"tripType"`
	FlexibleDates bool     `json:"flexibleDates" bson:"flexibleDates"`
}

// NewTravelIntent returns an intent with the conversation defaults applied.
func NewTravelIntent() TravelIntent {
	return TravelIntent{
		Adults:   1,
		TripType: TripOneWay,
	}
}

// ExtractedQuery is what the NL-extraction collaborator returns for one turn.
// An empty MentionedCards list means "no new card information".
type ExtractedQuery struct {
	Origin         *string   `json:"origin"`
	Destination    *string   `json:"destination"`
	DepartureDate  *string   `json:"departureDate"`
	ReturnDate     *string   `json:"returnDate"`
	Adults         int       `json:"adults"`
	Children       int       `json:"children"`
	Infants        int       `json:"infants"`
	TripType       *TripType `json:"tripType"`
	FlexibleDates  *bool     `json:"flexibleDates"`
	MentionedCards []string  `json:"mentionedCards"`
}

// Clarification is a question posed back to the user. Message is set for
// slot questions; Question and Options are set for card questions.
type Clarification struct {
	Type     ClarificationType `json:"type"`
	Message  string            `json:"message,omitempty"`
	Question string            `json:"question,omitempty"`
	Options  []string          `json:"options,omitempty"`
}
