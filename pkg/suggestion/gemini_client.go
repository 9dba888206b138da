package suggestion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"family-hub-backend/domain"
	"family-hub-backend/internal/utils"
	"family-hub-backend/internal/utils/logging"

	"github.com/sony/gobreaker"
)

type (
	// GeminiClient sends a prompt to the generative endpoint and returns the
	// raw text of the first candidate.
	GeminiClient interface {
		GenerateContent(ctx context.Context, prompt string) (string, error)
	}

	geminiClient struct {
		httpClient *http.Client
		breaker    *gobreaker.CircuitBreaker
		baseURL    string
	}
)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

func NewGeminiClient() GeminiClient {
	return NewGeminiClientWithBaseURL(geminiBaseURL)
}

func NewGeminiClientWithBaseURL(baseURL string) GeminiClient {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "GeminiCB",
		MaxRequests: 1,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger.Infof("circuit breaker %s changed from %s to %s", name, from.String(), to.String())
		},
	})

	return &geminiClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		breaker:    breaker,
		baseURL:    baseURL,
	}
}

func (g *geminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	apiKey := utils.GetConfig("GEMINI_API_KEY")
	model := utils.GetConfig("GEMINI_MODEL")
	if model == "" {
		model = "gemini-pro"
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, model, apiKey)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": prompt},
				},
			},
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	result, err := g.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(requestJSON))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := g.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			bodyBytes, _ := io.ReadAll(resp.Body)
			return nil, fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
		}

		var geminiResp struct {
			Candidates []struct {
				Content struct {
					Parts []struct {
						Text string `json:"text"`
					} `json:"parts"`
				} `json:"content"`
			} `json:"candidates"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
			return nil, err
		}

		if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
			return nil, domain.ErrSuggestionAPIFailed
		}
		return geminiResp.Candidates[0].Content.Parts[0].Text, nil
	})
	if err != nil {
		return "", err
	}

	return result.(string), nil
}
