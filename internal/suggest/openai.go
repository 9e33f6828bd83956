package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/AdityaBargujar/accessibility-analyzer/internal/report"
)

const defaultOpenAIURL = "https://api.openai.com/v1/chat/completions"

// OpenAIProvider is the second-choice generative strategy, kept for users
// who configure an OpenAI key instead of a Hugging Face token.
type OpenAIProvider struct {
	APIKey  string
	Model   string
	BaseURL string
	Client  *http.Client
}

func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIProvider{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: defaultOpenAIURL,
		Client:  &http.Client{Timeout: 20 * time.Second},
	}
}

func (p *OpenAIProvider) Name() string { return "openai" }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (p *OpenAIProvider) Generate(ctx context.Context, audit *report.AuditReport) ([]report.Suggestion, error) {
	if p.APIKey == "" {
		return nil, fmt.Errorf("no OpenAI API key configured")
	}

	payload, err := json.Marshal(chatRequest{
		Model: p.Model,
		Messages: []chatMessage{
			{
				Role:    "system",
				Content: "You are an assistant that produces concise, actionable accessibility and SEO suggestions for developers. Return an array of suggestions with title and text.",
			},
			{
				Role: "user",
				Content: fmt.Sprintf("Here is the audit result:\nWCAG/Accessibility issues: %s\nSEO issues: %s",
					truncatedJSON(audit.WCAG.Issues, 2000),
					truncatedJSON(audit.SEO.Issues, 2000)),
			},
		},
		MaxTokens:   600,
		Temperature: 0.2,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+p.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chat completion failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("unexpected chat completion response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	return parseGenerated(parsed.Choices[0].Message.Content), nil
}
