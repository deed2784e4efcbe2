package outfit

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/raine/outfit-stylist/internal/catalog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// ErrEmptyPrompt is returned when Assemble is called without a prompt.
var ErrEmptyPrompt = errors.New("prompt is required")

// Outfit is one generated look: the garment descriptions and at most one
// product per garment category.
type Outfit struct {
	ID       string            `json:"id"`
	Items    []string          `json:"items"`
	Products []catalog.Product `json:"products"`
}

// ItemsJoined returns the outfit's items as one comma-separated string, the
// form in which previous outfits are passed back to the describer.
func (o *Outfit) ItemsJoined() string {
	return strings.Join(o.Items, ", ")
}

// Describer produces garment descriptions for a style prompt.
// Implementations must return at least one item.
type Describer interface {
	Describe(ctx context.Context, prompt string, previousOutfits []string) []string
}

// Resolver finds candidate products for a single garment description.
// Implementations must not return an empty result.
type Resolver interface {
	Resolve(ctx context.Context, query string, categoryHint string) []catalog.Product
}

// Assembler runs the describe -> resolve -> merge pipeline.
type Assembler struct {
	describer Describer
	resolver  Resolver
	ids       *snowflake.Node
}

func NewAssembler(describer Describer, resolver Resolver, ids *snowflake.Node) *Assembler {
	return &Assembler{describer: describer, resolver: resolver, ids: ids}
}

// Assemble generates one outfit for the prompt. Garment items are resolved
// to products in parallel and merged keeping the first product per category,
// in item order. Apart from an empty prompt this never fails: both the
// describer and the resolver degrade internally instead of erroring.
func (a *Assembler) Assemble(ctx context.Context, prompt string, previousOutfits []string) (*Outfit, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, ErrEmptyPrompt
	}

	items := a.describer.Describe(ctx, prompt, previousOutfits)

	// Resolve every item in parallel. Results land in an index-addressed
	// slice so the merge below sees item order, not completion order.
	results := make([][]catalog.Product, len(items))
	g := new(errgroup.Group)
	for i := range items {
		g.Go(func() error {
			results[i] = a.resolver.Resolve(ctx, items[i], "")
			return nil
		})
	}
	// Resolutions fall back internally and never error
	_ = g.Wait()

	// Keep the first product seen per category
	seen := make(map[catalog.Category]bool)
	var products []catalog.Product
	for _, batch := range results {
		for _, p := range batch {
			if seen[p.Category] {
				continue
			}
			seen[p.Category] = true
			products = append(products, p)
		}
	}

	o := &Outfit{
		ID:       a.ids.Generate().String(),
		Items:    items,
		Products: products,
	}

	log.Info().
		Str("outfitId", o.ID).
		Int("itemCount", len(items)).
		Int("productCount", len(products)).
		Msg("outfit assembled")

	return o, nil
}
