package narrative

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/autopay-hq/autopay-backend-go/internal/config"
	"github.com/shopspring/decimal"
)

// Fallback strings used whenever the generator is absent or a call fails.
// The payroll numbers never depend on this collaborator succeeding.
const (
	FallbackUnavailable = "Payslip summary generation is unavailable. API key is missing."
	FallbackFailed      = "Could not generate an AI summary for this payslip. Please refer to the detailed breakdown."
)

// Generator produces a short narrative summary for a payslip.
type Generator interface {
	Summarize(ctx context.Context, employeeName string, netPay, totalHours, overtimeHours decimal.Decimal) (string, error)
}

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiClient calls the Gemini generateContent endpoint.
type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewGeminiClient returns nil when no API key is configured, signalling that
// the feature is disabled for this deployment.
func NewGeminiClient(cfg config.GeminiConfig) *GeminiClient {
	if cfg.APIKey == "" {
		return nil
	}

	return &GeminiClient{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type generateContentRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"topP"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Summarize implements Generator.
func (c *GeminiClient) Summarize(ctx context.Context, employeeName string, netPay, totalHours, overtimeHours decimal.Decimal) (string, error) {
	prompt := buildPrompt(employeeName, netPay, totalHours, overtimeHours)

	reqBody := generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			Temperature: 0.5,
			TopP:        0.95,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal gemini request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read gemini response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed generateContentResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode gemini response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("gemini error [%d]: %s", parsed.Error.Code, parsed.Error.Message)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini response contained no candidates")
	}

	text := parsed.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", fmt.Errorf("gemini response contained empty text")
	}

	return text, nil
}

func buildPrompt(employeeName string, netPay, totalHours, overtimeHours decimal.Decimal) string {
	return fmt.Sprintf(`Generate a brief, professional, and encouraging summary for an employee's payslip.
The tone should be positive and appreciative. If there is overtime, acknowledge the extra effort.
Do not use markdown or special formatting. Output plain text only.

Employee Details:
- Name: %s
- Net Pay for the month: $%s
- Total hours worked this month: %s
- Overtime hours: %s

Example Output (with overtime):
"Dear %s, here is your payslip. Your hard work is evident from the %s hours you've dedicated, including %s hours of overtime. Your commitment is crucial to our success. Thank you!"

Example Output (no overtime):
"Dear %s, thank you for your consistent hard work and dedication this month. Your efforts are a valuable contribution to our team's success. We appreciate you!"

Generate a similar summary now.`,
		employeeName,
		netPay.StringFixed(2),
		totalHours.StringFixed(2),
		overtimeHours.StringFixed(2),
		employeeName,
		totalHours.StringFixed(2),
		overtimeHours.StringFixed(2),
		employeeName,
	)
}

// Timeout bounds a single summarize call. The generator is best-effort, so a
// slow collaborator must never hold a payslip hostage.
func Timeout(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = 10 * time.Second
	}
	return context.WithTimeout(parent, d)
}
