package models

// Flight is one normalized search result. Raw keeps the provider payload for
// the frontend's detail view.
type Flight struct {
	Airline         string         `json:"airline"`
	FlightNumber    string         `json:"flightNumber"`
	DepartTime      string         `json:"departTime"`
	ArriveTime      string         `json:"arriveTime"`
	TotalFare       float64        `json:"totalFare"`
	Currency        string         `json:"currency"`
	Stops           int            `json:"stops"`
	DurationMinutes int            `json:"durationMinutes"`
	Raw             map[string]any `json:"raw,omitempty"`
}

// FlightSearchParams is a fully-resolved search request. All slot fields are
// required by the time a search runs.
type FlightSearchParams struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
	Adults        int    `json:"adults"`
	Children      int    `json:"children"`
	InfantsOnLap  int    `json:"infantsOnLap"`
	InfantsInSeat int    `json:"infantsInSeat"`
}

// SelectedFare is the fare as submitted by the caller. BaseFare and Taxes
// are pointers so "absent" can be told apart from zero.
type SelectedFare struct {
	Total    float64  `json:"total"`
	BaseFare *float64 `json:"baseFare,omitempty"`
	Taxes    *float64 `json:"taxes,omitempty"`
}

// SelectedFlight is the flight the user picked for offer evaluation.
// Fare.Total must be positive; the adapter rejects anything else.
type SelectedFlight struct {
	FlightNumber  string           `json:"flightNumber"`
	Origin        string           `json:"origin,omitempty"`
	Destination   string           `json:"destination,omitempty"`
	DepartureDate string           `json:"departureDate,omitempty"`
	Fare          SelectedFare     `json:"fare"`
	Passengers    *PassengerCounts `json:"passengers,omitempty"`
}
