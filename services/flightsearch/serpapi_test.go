package flightsearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"farewise/models"
)

const samplePayload = `{
  "best_flights": [
    {
      "flights": [
        {
          "airline": "IndiGo",
          "flight_number": "6E 203",
          "departure_airport": {"time": "2026-03-15 06:10"},
          "arrival_airport": {"time": "2026-03-15 09:00"}
        }
      ],
      "price": 5400,
      "total_duration": 170
    }
  ],
  "other_flights": [
    {
      "flights": [
        {
          "airline": "Air India",
          "flight_number": "AI 440",
          "departure_airport": {"time": "2026-03-15 07:30"},
          "arrival_airport": {"time": "2026-03-15 10:05"}
        },
        {
          "airline": "Air India",
          "flight_number": "AI 562",
          "departure_airport": {"time": "2026-03-15 11:00"},
          "arrival_airport": {"time": "2026-03-15 13:20"}
        }
      ],
      "price": 4800,
      "total_duration": 350
    },
    {
      "flights": [],
      "price": 100,
      "total_duration": 10
    }
  ]
}`

func TestSearchNormalizesFlights(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for key := range r.URL.Query() {
			gotQuery[key] = r.URL.Query().Get(key)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(samplePayload))
	}))
	defer server.Close()

	client := NewClient("test-key")
	client.baseURL = server.URL

	flights, err := client.Search(context.Background(), models.FlightSearchParams{
		Origin:        "DEL",
		Destination:   "MAA",
		DepartureDate: "2026-03-15",
		Adults:        2,
		Children:      1,
	})
	if err != nil {
		t.Fatal(err)
	}

	for key, want := range map[string]string{
		"engine":        "google_flights",
		"type":          "2",
		"departure_id":  "DEL",
		"arrival_id":    "MAA",
		"outbound_date": "2026-03-15",
		"adults":        "2",
		"children":      "1",
		"currency":      "INR",
		"hl":            "en",
		"gl":            "in",
		"sort_by":       "2",
		"deep_search":   "true",
		"api_key":       "test-key",
	} {
		if gotQuery[key] != want {
			t.Fatalf("query %s = %q, want %q", key, gotQuery[key], want)
		}
	}

	// Legless itinerary dropped, best flights come first.
	if len(flights) != 2 {
		t.Fatalf("got %d flights, want 2", len(flights))
	}

	direct := flights[0]
	if direct.Airline != "IndiGo" || direct.FlightNumber != "6E 203" {
		t.Fatalf("first flight = %+v", direct)
	}
	if direct.Stops != 0 || direct.TotalFare != 5400 || direct.DurationMinutes != 170 {
		t.Fatalf("first flight = %+v", direct)
	}
	if direct.DepartTime != "2026-03-15 06:10" || direct.ArriveTime != "2026-03-15 09:00" {
		t.Fatalf("first flight times = %s / %s", direct.DepartTime, direct.ArriveTime)
	}

	// Multi-leg: identity from the first leg, arrival from the last.
	connecting := flights[1]
	if connecting.FlightNumber != "AI 440" || connecting.Stops != 1 {
		t.Fatalf("second flight = %+v", connecting)
	}
	if connecting.ArriveTime != "2026-03-15 13:20" {
		t.Fatalf("second flight arrival = %s", connecting.ArriveTime)
	}
	if connecting.Raw == nil {
		t.Fatal("raw payload not preserved")
	}
}

func TestSearchSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"error": "Invalid API key"}`))
	}))
	defer server.Close()

	client := NewClient("bad-key")
	client.baseURL = server.URL

	if _, err := client.Search(context.Background(), models.FlightSearchParams{}); err == nil {
		t.Fatal("expected an error")
	}
}

func TestSearchSurfacesHTTPFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient("key")
	client.baseURL = server.URL

	if _, err := client.Search(context.Background(), models.FlightSearchParams{}); err == nil {
		t.Fatal("expected an error")
	}
}
