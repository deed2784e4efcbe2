package llm

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Describer produces garment descriptions for a style prompt. The Gemini
// call is the primary path; when no API key is configured or the call fails,
// the canned scenario templates take over. A single failed call falls back
// immediately, there is no retry.
type Describer struct {
	gemini *GeminiSuggester // nil when GEMINI_API_KEY is not configured
}

// NewDescriber creates a Describer. An empty apiKey is not an error: the
// describer then always answers from the canned templates.
func NewDescriber(ctx context.Context, apiKey string) (*Describer, error) {
	if apiKey == "" {
		log.Info().Msg("GEMINI_API_KEY not set, outfit suggestions use canned templates")
		return &Describer{}, nil
	}
	gemini, err := NewGeminiSuggester(ctx, apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize outfit suggester: %w", err)
	}
	return &Describer{gemini: gemini}, nil
}

// Describe returns an ordered list of garment descriptions for the prompt.
// It always returns at least one item.
func (d *Describer) Describe(ctx context.Context, prompt string, previousOutfits []string) []string {
	if d.gemini != nil {
		items, err := d.gemini.SuggestOutfit(ctx, prompt, previousOutfits)
		if err != nil {
			log.Warn().Err(err).Msg("outfit suggestion call failed, using canned template")
		} else {
			return items
		}
	}
	return FallbackOutfit(prompt)
}
