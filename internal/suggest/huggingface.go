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

const (
	defaultRouterURL = "https://router.huggingface.co/hf-inference"
	defaultLegacyURL = "https://api-inference.huggingface.co/models"

	// Model loading on cold start can take a while; generation is given a
	// generous budget and treated as failed past it, never retried.
	generationTimeout = 60 * time.Second
)

// HuggingFaceProvider phrases suggestions via the HF inference router. The
// router occasionally 404s for models still served by the legacy models
// endpoint, so that endpoint is tried once before giving up.
type HuggingFaceProvider struct {
	Token     string
	Model     string
	RouterURL string
	LegacyURL string
	Client    *http.Client
}

func NewHuggingFaceProvider(token, model string) *HuggingFaceProvider {
	if model == "" {
		model = "gpt2"
	}
	return &HuggingFaceProvider{
		Token:     token,
		Model:     model,
		RouterURL: defaultRouterURL,
		LegacyURL: defaultLegacyURL,
		Client:    &http.Client{Timeout: generationTimeout},
	}
}

func (p *HuggingFaceProvider) Name() string { return "huggingface" }

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
	Options    hfOptions    `json:"options"`
}

type hfParameters struct {
	MaxNewTokens int     `json:"max_new_tokens"`
	Temperature  float64 `json:"temperature"`
}

type hfOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

func (p *HuggingFaceProvider) Generate(ctx context.Context, audit *report.AuditReport) ([]report.Suggestion, error) {
	if p.Token == "" {
		return nil, fmt.Errorf("no Hugging Face token configured")
	}

	payload, err := json.Marshal(hfRequest{
		Inputs: buildPrompt(audit),
		Parameters: hfParameters{
			MaxNewTokens: 300,
			Temperature:  0.2,
		},
		Options: hfOptions{WaitForModel: true},
	})
	if err != nil {
		return nil, err
	}

	body, status, err := p.post(ctx, p.RouterURL+"/"+p.Model, payload)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		body, status, err = p.post(ctx, p.LegacyURL+"/"+p.Model, payload)
		if err != nil {
			return nil, err
		}
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("generation request failed with status %d", status)
	}

	return parseGenerated(normalizeGeneration(body)), nil
}

func (p *HuggingFaceProvider) post(ctx context.Context, url string, payload []byte) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Authorization", "Bearer "+p.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, 0, err
	}
	return body, resp.StatusCode, nil
}
