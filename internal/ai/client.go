package ai

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/Deepanshu41008/Yapassio-platform/internal/config"
)

// Collaborator is the capability set the matching and profile services need
// from the generative-AI backend. It is injected at construction time so
// tests can substitute a deterministic fake.
type Collaborator interface {
	// Embed returns a fixed-dimension semantic vector for the text.
	Embed(ctx context.Context, text string) ([]float64, error)
	// GenerateText returns the model's reply to a prompt.
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// GeminiClient talks to the Gemini API. Every call carries its own timeout;
// callers treat failures as degradation, never as request failures.
type GeminiClient struct {
	client         *genai.Client
	textModel      string
	embeddingModel string
	timeout        time.Duration
}

func NewGeminiClient(ctx context.Context, cfg config.GeminiConfig) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiClient{
		client:         client,
		textModel:      cfg.TextModel,
		embeddingModel: cfg.EmbeddingModel,
		timeout:        cfg.Timeout,
	}, nil
}

func (g *GeminiClient) Embed(ctx context.Context, text string) ([]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.Models.EmbedContent(ctx, g.embeddingModel, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}
	if len(resp.Embeddings) == 0 || len(resp.Embeddings[0].Values) == 0 {
		return nil, fmt.Errorf("embedding response is empty")
	}

	values := resp.Embeddings[0].Values
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out, nil
}

func (g *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.Models.GenerateContent(ctx, g.textModel, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generation request failed: %w", err)
	}

	return resp.Text(), nil
}
