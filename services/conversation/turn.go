// Package conversation runs the incremental flight-search dialog: each user
// turn updates a per-session SearchContext and yields either the next
// clarifying question or a flight search.
package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"farewise/models"
	"farewise/services/card"
	"farewise/utils"

	"go.uber.org/zap"
)

var (
	// ErrEmptyQuery is returned for a blank or whitespace-only turn.
	ErrEmptyQuery = errors.New("empty search query")
	// ErrIncompleteIntent means the engine decided to search while a
	// required slot is still missing. Indicates a decision-engine bug.
	ErrIncompleteIntent = errors.New("missing required flight details")
)

// Extractor is the NL collaborator: free text in, structured query out.
type Extractor interface {
	ExtractQuery(ctx context.Context, query string) (*models.ExtractedQuery, error)
	NormalizeCity(ctx context.Context, raw string) (string, error)
}

// FlightSearcher runs a resolved search against the flight provider.
type FlightSearcher interface {
	Search(ctx context.Context, params models.FlightSearchParams) ([]models.Flight, error)
}

// TurnResult is the reply for one processed turn.
type TurnResult struct {
	NextAction    models.NextAction     `json:"nextAction"`
	Clarification *models.Clarification `json:"clarification,omitempty"`
	Context       *models.SearchContext `json:"context,omitempty"`
	Flights       []models.Flight       `json:"flights,omitempty"`
}

// TurnService orchestrates one turn: follow-up answers first, then NL
// extraction, then the decision engine, then (when complete) flight search.
// Turns for the same session are serialized; context mutation is exclusive.
type TurnService struct {
	store   ContextStore
	cards   *card.Service
	nlp     Extractor
	flights FlightSearcher

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewTurnService(store ContextStore, cards *card.Service, nlp Extractor, flights FlightSearcher) *TurnService {
	return &TurnService{
		store:   store,
		cards:   cards,
		nlp:     nlp,
		flights: flights,
		locks:   make(map[string]*sync.Mutex),
	}
}

func (s *TurnService) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[sessionID] = lock
	}
	return lock
}

// ProcessTurn consumes one user message for the given session and returns
// what to send back. The session context is loaded, mutated, and persisted
// under a per-session lock.
func (s *TurnService) ProcessTurn(ctx context.Context, sessionID, query string) (*TurnResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	sc, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session context: %w", err)
	}

	followUp, err := s.applyFollowUp(ctx, sc, query)
	if err != nil {
		return nil, err
	}
	if !followUp {
		if err := s.applyExtraction(ctx, sc, query); err != nil {
			return nil, err
		}
	}

	decision := Decide(sc, s.cards)
	if decision != nil && decision.NextAction == models.ActionAskClarification {
		switch decision.Clarification.Type {
		case models.ClarifyOrigin, models.ClarifyDestination, models.ClarifyDepartureDate:
			sc.IntentClarification = &models.PendingClarification{Type: decision.Clarification.Type}
		default:
			sc.IntentClarification = nil
			sc.Cards.Unresolved = decision.Unresolved
		}
		if err := s.store.Set(ctx, sessionID, sc); err != nil {
			return nil, fmt.Errorf("save session context: %w", err)
		}
		return &TurnResult{
			NextAction:    models.ActionAskClarification,
			Clarification: decision.Clarification,
			Context:       sc,
		}, nil
	}

	if sc.Intent.Origin == nil || sc.Intent.Destination == nil || sc.Intent.DepartureDate == nil {
		return nil, ErrIncompleteIntent
	}

	flights, err := s.flights.Search(ctx, models.FlightSearchParams{
		Origin:        *sc.Intent.Origin,
		Destination:   *sc.Intent.Destination,
		DepartureDate: *sc.Intent.DepartureDate,
		Adults:        orDefault(sc.Intent.Adults, 1),
		Children:      sc.Intent.Children,
		InfantsOnLap:  sc.Intent.Infants,
	})
	if err != nil {
		return nil, fmt.Errorf("flight search: %w", err)
	}

	if err := s.store.Set(ctx, sessionID, sc); err != nil {
		return nil, fmt.Errorf("save session context: %w", err)
	}

	return &TurnResult{
		NextAction: models.ActionShowFlights,
		Context:    sc,
		Flights:    flights,
	}, nil
}

// applyFollowUp interprets the turn as the answer to an outstanding question.
// Card questions take precedence over slot questions; at most one answer is
// consumed per turn.
func (s *TurnService) applyFollowUp(ctx context.Context, sc *models.SearchContext, query string) (bool, error) {
	if sc.Cards.Unresolved != nil {
		bank := sc.Cards.Unresolved.IssuingBank
		resolved := card.Resolve(s.cards.Normalize(bank + " " + query))
		for i := range sc.Cards.Resolved {
			if sameBank(sc.Cards.Resolved[i].IssuingBank, resolved.IssuingBank) {
				sc.Cards.Resolved[i] = resolved
			}
		}
		sc.Cards.Unresolved = nil
		return true, nil
	}

	if sc.IntentClarification != nil {
		switch sc.IntentClarification.Type {
		case models.ClarifyOrigin:
			city, err := s.nlp.NormalizeCity(ctx, query)
			if err != nil {
				return false, fmt.Errorf("normalize city: %w", err)
			}
			if city != "" {
				sc.Intent.Origin = &city
			}
		case models.ClarifyDestination:
			city, err := s.nlp.NormalizeCity(ctx, query)
			if err != nil {
				return false, fmt.Errorf("normalize city: %w", err)
			}
			if city != "" {
				sc.Intent.Destination = &city
			}
		case models.ClarifyDepartureDate:
			if date := utils.NormalizeFutureDate(query); date != "" {
				sc.Intent.DepartureDate = &date
			}
		}
		// Cleared even when the answer did not parse: the decision engine
		// re-asks the same question rather than leaving a stale marker.
		sc.IntentClarification = nil
		return true, nil
	}

	return false, nil
}

// applyExtraction runs NL extraction on a fresh (non-answer) turn and merges
// the result into the accumulated intent and card state.
func (s *TurnService) applyExtraction(ctx context.Context, sc *models.SearchContext, query string) error {
	extracted, err := s.nlp.ExtractQuery(ctx, query)
	if err != nil {
		return fmt.Errorf("extract query: %w", err)
	}

	extracted.DepartureDate = normalizeDatePtr(extracted.DepartureDate)
	extracted.ReturnDate = normalizeDatePtr(extracted.ReturnDate)

	// Card state is replaced only when the turn names cards. Silence means
	// the user is still talking about the same cards.
	if len(extracted.MentionedCards) > 0 {
		sc.Cards.RawMentions = extracted.MentionedCards
		resolved := make([]models.NormalizedCard, 0, len(extracted.MentionedCards))
		for _, raw := range extracted.MentionedCards {
			resolved = append(resolved, card.Resolve(s.cards.Normalize(raw)))
		}
		sc.Cards.Resolved = resolved
		utils.GetLogger().Debug("replaced card state from extraction",
			zap.Int("mentions", len(extracted.MentionedCards)))
	}

	mergeIntent(&sc.Intent, extracted)
	return nil
}

// mergeIntent overlays one turn's extraction on the accumulated intent. New
// values win; nil (or zero, for counts) keeps what the session already knows.
func mergeIntent(intent *models.TravelIntent, extracted *models.ExtractedQuery) {
	if extracted.Origin != nil {
		intent.Origin = extracted.Origin
	}
	if extracted.Destination != nil {
		intent.Destination = extracted.Destination
	}
	if extracted.DepartureDate != nil {
		intent.DepartureDate = extracted.DepartureDate
	}
	if extracted.ReturnDate != nil {
		intent.ReturnDate = extracted.ReturnDate
	}

	intent.Adults = orDefault(orDefault(extracted.Adults, intent.Adults), 1)
	intent.Children = orDefault(extracted.Children, intent.Children)
	intent.Infants = orDefault(extracted.Infants, intent.Infants)

	if extracted.TripType != nil && *extracted.TripType == models.TripRoundTrip {
		intent.TripType = models.TripRoundTrip
	} else if intent.TripType == "" {
		intent.TripType = models.TripOneWay
	}

	if extracted.FlexibleDates != nil {
		intent.FlexibleDates = *extracted.FlexibleDates
	}
}

func normalizeDatePtr(raw *string) *string {
	if raw == nil {
		return nil
	}
	normalized := utils.NormalizeFutureDate(*raw)
	if normalized == "" {
		return nil
	}
	return &normalized
}

func sameBank(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func orDefault(v, fallback int) int {
	if v != 0 {
		return v
	}
	return fallback
}
