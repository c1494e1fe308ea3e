package slipscan

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/parlaydev/betledger/pkg/models"
)

const extractionPrompt = `Read the sports bet slip in this image. Return JSON only, shaped as
{"bets": [{"date": "YYYY-MM-DD", "matchup": "", "pick": "", "sport": "", "sportsbook": "", "odds": -110, "wager": 50.00}]}.
One entry per bet on the slip. Use 0 for anything you cannot read.`

// VisionClient calls a vision-capable chat completions endpoint
type VisionClient struct {
	endpoint   string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewVisionClient creates an extractor against endpoint using model
func NewVisionClient(endpoint, apiKey, model string) *VisionClient {
	return &VisionClient{
		endpoint: endpoint,
		apiKey:   apiKey,
		model:    model,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Extract sends the image to the vision model and parses the drafts
// out of its reply
func (c *VisionClient) Extract(ctx context.Context, imageBase64, mimeType string) ([]models.BetDraft, error) {
	if mimeType == "" {
		mimeType = "image/png"
	}

	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{
				Role: "user",
				Content: []contentPart{
					{Type: "text", Text: extractionPrompt},
					{Type: "image_url", ImageURL: &imageURL{
						URL: fmt.Sprintf("data:%s;base64,%s", mimeType, imageBase64),
					}},
				},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("vision API error: status=%d, body=%s", resp.StatusCode, string(raw))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, errors.New("vision API returned no choices")
	}

	return parseDrafts(parsed.Choices[0].Message.Content)
}

// parseDrafts pulls drafts out of the model's reply. Models tend to
// wrap JSON in markdown fences and sometimes answer with a bare
// array, so both are tolerated.
func parseDrafts(content string) ([]models.BetDraft, error) {
	cleaned := stripFences(content)

	dec := json.NewDecoder(strings.NewReader(cleaned))
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("vision reply is not JSON: %w", err)
	}

	var records []any
	switch v := payload.(type) {
	case []any:
		records = v
	case map[string]any:
		list, ok := v["bets"].([]any)
		if !ok {
			return nil, errors.New("vision reply has no bets array")
		}
		records = list
	default:
		return nil, errors.New("vision reply has unexpected shape")
	}

	drafts := make([]models.BetDraft, 0, len(records))
	for _, record := range records {
		rec, ok := record.(map[string]any)
		if !ok {
			continue
		}
		drafts = append(drafts, models.BetDraft{
			Date:       stringField(rec, "date"),
			Matchup:    stringField(rec, "matchup"),
			Pick:       stringField(rec, "pick"),
			Sport:      stringField(rec, "sport"),
			Sportsbook: stringField(rec, "sportsbook"),
			Odds:       intField(rec, "odds"),
			Wager:      decimalField(rec, "wager"),
		})
	}
	return drafts, nil
}

func stripFences(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

// Field readers default to zero values; a half-read slip still makes
// a usable draft for the user to finish.

func stringField(rec map[string]any, key string) string {
	s, _ := rec[key].(string)
	return strings.TrimSpace(s)
}

func intField(rec map[string]any, key string) int {
	switch v := rec[key].(type) {
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return 0
		}
		return int(d.IntPart())
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return int(d.IntPart())
	default:
		return 0
	}
}

func decimalField(rec map[string]any, key string) decimal.Decimal {
	switch v := rec[key].(type) {
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Zero
		}
		return d
	case string:
		cleaned := strings.TrimPrefix(strings.TrimSpace(v), "$")
		d, err := decimal.NewFromString(cleaned)
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}
