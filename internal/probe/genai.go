package probe

import (
	"context"
	"fmt"
	"net/url"
	"slices"

	"google.golang.org/genai"

	"gemcheck/internal/config"
	"gemcheck/internal/httpx"
)

// Generator is the live TextGenerator backed by the Generative Language API.
type Generator struct {
	client *genai.Client
}

func NewGenerator(ctx context.Context, cfg config.Config) (*Generator, error) {
	var proxyURL *url.URL
	if cfg.Proxy != "" {
		u, err := url.Parse(cfg.Proxy)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy URL: %w", err)
		}
		proxyURL = u
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpx.NewHTTPClient(proxyURL, cfg.RequestTimeout),
	})
	if err != nil {
		return nil, fmt.Errorf("init genai client: %w", err)
	}
	return &Generator{client: client}, nil
}

// GenerateText sends the prompt to the named model with deterministic
// sampling and blocks for a single reply.
func (g *Generator) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0)),
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// ListGenerativeModels returns the names of live models that support
// generateContent.
func (g *Generator) ListGenerativeModels(ctx context.Context) ([]string, error) {
	var names []string
	for m, err := range g.client.Models.All(ctx) {
		if err != nil {
			return nil, fmt.Errorf("list models: %w", err)
		}
		if slices.Contains(m.SupportedActions, "generateContent") {
			names = append(names, m.Name)
		}
	}
	return names, nil
}
