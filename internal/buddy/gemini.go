package buddy

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"google.golang.org/genai"

	"github.com/vovakirdan/zukko-arcade/internal/config"
	"github.com/vovakirdan/zukko-arcade/internal/core"
)

// GeminiGenerator asks a Gemini model, with the persona as system instruction.
type GeminiGenerator struct {
	client      *genai.Client
	model       string
	persona     string
	temperature float32
}

// NewGeminiGenerator creates a client for the Gemini API.
func NewGeminiGenerator(ctx context.Context, apiKey string, cfg config.BuddyConfig) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("buddy: create gemini client: %w", err)
	}
	return &GeminiGenerator{
		client:      client,
		model:       cfg.Model,
		persona:     cfg.Persona,
		temperature: cfg.Temperature,
	}, nil
}

// Name returns "gemini".
func (g *GeminiGenerator) Name() string { return "gemini" }

// Generate sends the prompt and returns the reply text.
func (g *GeminiGenerator) Generate(ctx context.Context, req Request) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.Prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(g.persona, genai.RoleUser),
		Temperature:       genai.Ptr(g.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("buddy: gemini %s: %w", g.model, err)
	}
	return resp.Text(), nil
}

// APIKeyFromEnv returns GEMINI_API_KEY, or API_KEY when that is unset.
func APIKeyFromEnv() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("API_KEY")
}

// NewFromEnv builds a service on Gemini when an API key is available and on
// the canned lists otherwise.
func NewFromEnv(ctx context.Context, cfg config.BuddyConfig, seed int64, logger *log.Logger) *Service {
	canned := NewCannedGenerator(cfg.Canned, core.NewRand(seed))

	key := APIKeyFromEnv()
	if key == "" {
		return NewService(cfg, canned, logger)
	}

	gen, err := NewGeminiGenerator(ctx, key, cfg)
	if err != nil {
		if logger != nil {
			logger.Warn("falling back to canned buddy replies", "error", err)
		}
		return NewService(cfg, canned, logger)
	}
	return NewService(cfg, gen, logger)
}
