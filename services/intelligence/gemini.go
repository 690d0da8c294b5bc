// Package intelligence is the NL collaborator: it turns free-text user
// queries into structured travel intent via Gemini, with JSON-constrained
// responses.
package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"farewise/models"
)

const geminiModel = "models/gemini-1.5-flash"

// Client wraps two Gemini models: one for full query extraction, one for
// city-to-IATA normalization. Both are forced to JSON output.
type Client struct {
	extractModel *genai.GenerativeModel
	cityModel    *genai.GenerativeModel
}

func NewClient(apiKey string) *Client {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}

	extractModel := client.GenerativeModel(geminiModel)
	extractModel.ResponseMIMEType = "application/json"
	extractModel.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text("You are a Conversational Flight Booking Assistant.")},
	}

	cityModel := client.GenerativeModel(geminiModel)
	cityModel.ResponseMIMEType = "application/json"

	return &Client{extractModel: extractModel, cityModel: cityModel}
}

// ExtractQuery parses one user turn into the structured query schema.
func (c *Client) ExtractQuery(ctx context.Context, query string) (*models.ExtractedQuery, error) {
	text, err := generate(ctx, c.extractModel, extractionPrompt(query))
	if err != nil {
		return nil, err
	}

	var extracted models.ExtractedQuery
	if err := json.Unmarshal([]byte(text), &extracted); err != nil {
		return nil, fmt.Errorf("parse extraction response: %w", err)
	}
	if extracted.MentionedCards == nil {
		extracted.MentionedCards = []string{}
	}
	return &extracted, nil
}

// NormalizeCity converts a free-text city name into an IATA city code.
// Returns "" when the model cannot identify the city.
func (c *Client) NormalizeCity(ctx context.Context, raw string) (string, error) {
	text, err := generate(ctx, c.cityModel, cityPrompt(raw))
	if err != nil {
		return "", err
	}

	var parsed struct {
		CityCode *string `json:"cityCode"`
	}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return "", fmt.Errorf("parse city response: %w", err)
	}
	if parsed.CityCode == nil {
		return "", nil
	}
	return strings.ToUpper(strings.TrimSpace(*parsed.CityCode)), nil
}

func generate(ctx context.Context, model *genai.GenerativeModel, prompt string) (string, error) {
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("gemini returned empty text")
	}
	return sb.String(), nil
}

func extractionPrompt(query string) string {
	return fmt.Sprintf(`
You are a travel and payment parser.

Convert the user query into valid JSON.
Return ONLY JSON. No text. No explanation.

Schema:
{
  "origin": string | null,
  "destination": string | null,
  "departureDate": string | null,
  "returnDate": string | null,
  "adults": number | 0,
  "children": number | 0,
  "infants": number | 0,
  "tripType": "ONE_WAY" | "ROUND_TRIP" | null,
  "flexibleDates": boolean | null,
  "mentionedCards": string[]
}

Rules:
- Use airport city codes when possible (NYC, DEL, CCU).
- For "mentionedCards", extract the names EXACTLY as written by the user. Do not normalize.
- If no cards are mentioned, return an empty array [].
- If travel details are missing, use null.

Rules for dates:
- If the user mentions a date WITHOUT a year (e.g. "10 Feb"):
- Assume the date is in the FUTURE
- Use the current year if the date has not passed yet
- Otherwise use the next year
- Never return past dates

User query:
%q
`, query)
}

func cityPrompt(input string) string {
	return fmt.Sprintf(`
Convert the following city name into an IATA city code.

Return ONLY JSON. No text.

Schema:
{
  "cityCode": string | null
}

Rules:
- Use standard airport city codes (DEL, BOM, BLR, MAA).
- If unclear or ambiguous, return null.

Input:
%q
`, input)
}
