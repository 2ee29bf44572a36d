package service

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"

	"github.com/garimatiwari2004/jobeefie-backend/config"
	"github.com/garimatiwari2004/jobeefie-backend/internal/apperrors"
)

// GenerativeClient is the narrow surface the interview pipeline needs from the
// language model: prompt in, text out.
type GenerativeClient interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type geminiClient struct {
	model *genai.GenerativeModel
	cfg   *config.Config
}

// NewGeminiClient builds the Gemini-backed client from the injected config.
// A missing API key leaves the client constructed but non-functional, so the
// rest of the app still boots in environments without credentials.
func NewGeminiClient(cfg *config.Config) (GenerativeClient, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. GenerativeClient will be non-functional.")
		return &geminiClient{cfg: cfg, model: nil}, nil
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.GeminiModel)
	return &geminiClient{model: model, cfg: cfg}, nil
}

func (c *geminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	if c.model == nil {
		return "", apperrors.Upstreamf("gemini client not initialized")
	}

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Msg("Gemini API error")
		return "", apperrors.Upstreamf("gemini call failed: %v", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Msg("Gemini returned no candidates or parts in response")
		return "", apperrors.Upstreamf("gemini returned no content")
	}

	fullResponseText := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			fullResponseText += string(txt)
		}
	}
	if fullResponseText == "" {
		return "", apperrors.Upstreamf("gemini returned no text content")
	}

	return fullResponseText, nil
}
