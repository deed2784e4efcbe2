package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/lithammer/dedent"
	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

const geminiModel = "gemini-2.5-flash-lite"

// Gemini pricing (per million tokens)
const (
	geminiInputPricePerMillion  = 0.075
	geminiOutputPricePerMillion = 0.30
)

var outfitInstruction = strings.TrimSpace(dedent.Dedent(`
	You are a fashion expert that suggests outfits based on user preferences.
	Respond ONLY with a comma-separated list of 4-6 clothing items that would make a complete outfit.
	Be specific about colors and styles. Format example: "blue hoodie, green pants, white shoes, red cap"
	Do not include any explanations, just the comma-separated list.`))

// buildInstruction returns the instruction for an outfit suggestion call.
// Previously suggested outfits are appended so the model avoids repeats.
func buildInstruction(previousOutfits []string) string {
	if len(previousOutfits) == 0 {
		return outfitInstruction
	}
	return fmt.Sprintf(
		"%s\n\nThe user has already received these outfits, so suggest something different:\n%s",
		outfitInstruction,
		strings.Join(previousOutfits, "\n"),
	)
}

// GeminiSuggester generates outfit suggestions with Google's Gemini API.
type GeminiSuggester struct {
	client *genai.Client
}

func NewGeminiSuggester(ctx context.Context, apiKey string) (*GeminiSuggester, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiSuggester{client: client}, nil
}

// SuggestOutfit asks the model for a comma-separated garment list and returns
// the parsed items.
func (g *GeminiSuggester) SuggestOutfit(ctx context.Context, prompt string, previousOutfits []string) ([]string, error) {
	instruction := buildInstruction(previousOutfits)
	full := fmt.Sprintf("%s\n\nUser request: %s", instruction, prompt)

	result, err := g.client.Models.GenerateContent(ctx, geminiModel, []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(full)}, genai.RoleUser),
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("gemini outfit suggestion failed: %w", err)
	}

	if emptyResponse(result) {
		return nil, fmt.Errorf("empty response from gemini")
	}

	text := strings.TrimSpace(result.Text())

	// Strip markdown code blocks if present (LLM may occasionally add them)
	text = strings.TrimPrefix(text, "```text")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	text = strings.Trim(text, `"'`)

	items := SplitItems(text)
	if len(items) == 0 {
		return nil, fmt.Errorf("no garment items in response: %s", text)
	}

	// Log usage and cost
	if result.UsageMetadata != nil {
		cost := calculateGeminiCost(
			int64(result.UsageMetadata.PromptTokenCount),
			int64(result.UsageMetadata.CandidatesTokenCount),
		)
		log.Info().
			Str("model", geminiModel).
			Int("inputTokens", int(result.UsageMetadata.PromptTokenCount)).
			Int("outputTokens", int(result.UsageMetadata.CandidatesTokenCount)).
			Float64("costUSD", cost).
			Int("itemCount", len(items)).
			Msg("outfit suggestion llm call")
	}

	return items, nil
}

// emptyResponse reports whether a generation result carries no usable text.
// A safety-blocked response can have a candidate with nil Content.
func emptyResponse(result *genai.GenerateContentResponse) bool {
	return len(result.Candidates) == 0 ||
		result.Candidates[0].Content == nil ||
		len(result.Candidates[0].Content.Parts) == 0
}

func calculateGeminiCost(inputTokens, outputTokens int64) float64 {
	inputCost := float64(inputTokens) / 1_000_000 * geminiInputPricePerMillion
	outputCost := float64(outputTokens) / 1_000_000 * geminiOutputPricePerMillion
	return inputCost + outputCost
}

// SplitItems splits a comma-separated garment list into trimmed items.
// Surrounding quotes are stripped and empty tokens dropped.
func SplitItems(list string) []string {
	var items []string
	for _, part := range strings.Split(list, ",") {
		item := strings.Trim(strings.TrimSpace(part), `"'`)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
