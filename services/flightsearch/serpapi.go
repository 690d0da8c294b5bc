// Package flightsearch runs resolved searches against the SerpAPI
// google_flights engine and normalizes results for the conversation layer.
package flightsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"farewise/models"
)

const defaultBaseURL = "https://serpapi.com/search.json"

// Client is a thin SerpAPI google_flights client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Search queries google_flights for one-way results sorted by price and
// returns them normalized, best itineraries first.
func (c *Client) Search(ctx context.Context, params models.FlightSearchParams) ([]models.Flight, error) {
	q := url.Values{}
	q.Set("engine", "google_flights")
	q.Set("type", "2")
	q.Set("departure_id", params.Origin)
	q.Set("arrival_id", params.Destination)
	q.Set("outbound_date", params.DepartureDate)
	q.Set("adults", strconv.Itoa(params.Adults))
	q.Set("children", strconv.Itoa(params.Children))
	q.Set("infants_in_seat", strconv.Itoa(params.InfantsInSeat))
	q.Set("infants_on_lap", strconv.Itoa(params.InfantsOnLap))
	q.Set("currency", "INR")
	q.Set("hl", "en")
	q.Set("gl", "in")
	q.Set("sort_by", "2")
	q.Set("deep_search", "true")
	q.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build serpapi request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("serpapi request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read serpapi response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serpapi status %d: %s", resp.StatusCode, body)
	}

	var payload serpResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode serpapi response: %w", err)
	}
	if payload.Error != "" {
		return nil, fmt.Errorf("serpapi error: %s", payload.Error)
	}

	return normalizeFlights(payload), nil
}

type serpResponse struct {
	Error        string            `json:"error"`
	BestFlights  []json.RawMessage `json:"best_flights"`
	OtherFlights []json.RawMessage `json:"other_flights"`
}

type serpItinerary struct {
	Flights []struct {
		Airline          string `json:"airline"`
		FlightNumber     string `json:"flight_number"`
		DepartureAirport struct {
			Time string `json:"time"`
		} `json:"departure_airport"`
		ArrivalAirport struct {
			Time string `json:"time"`
		} `json:"arrival_airport"`
	} `json:"flights"`
	Price         float64 `json:"price"`
	TotalDuration int     `json:"total_duration"`
}

// normalizeFlights flattens best and other itineraries, in that order.
// Itineraries without legs are dropped; stops is the leg count minus one.
func normalizeFlights(payload serpResponse) []models.Flight {
	raw := append(payload.BestFlights, payload.OtherFlights...)

	flights := make([]models.Flight, 0, len(raw))
	for _, item := range raw {
		var itinerary serpItinerary
		if err := json.Unmarshal(item, &itinerary); err != nil {
			continue
		}
		if len(itinerary.Flights) == 0 {
			continue
		}

		first := itinerary.Flights[0]
		last := itinerary.Flights[len(itinerary.Flights)-1]

		var rawItem map[string]any
		_ = json.Unmarshal(item, &rawItem)

		flights = append(flights, models.Flight{
			Airline:         first.Airline,
			FlightNumber:    first.FlightNumber,
			DepartTime:      first.DepartureAirport.Time,
			ArriveTime:      last.ArrivalAirport.Time,
			TotalFare:       itinerary.Price,
			Currency:        "INR",
			Stops:           len(itinerary.Flights) - 1,
			DurationMinutes: itinerary.TotalDuration,
			Raw:             rawItem,
		})
	}
	return flights
}
