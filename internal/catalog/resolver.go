package catalog

import (
	"context"
	"fmt"
	"math/rand"
	"net/url"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/rs/zerolog/log"
)

const searchLimit = 10

// Resolver turns a garment description into shoppable products. The upstream
// catalog call is best-effort: a missing API key, a failed request, or an
// empty result list all resolve to synthesized fallback products, so Resolve
// never returns an error.
type Resolver struct {
	client *Client
	ids    *snowflake.Node
}

func NewResolver(client *Client, ids *snowflake.Node) *Resolver {
	return &Resolver{client: client, ids: ids}
}

// Resolve returns candidate products for a garment description. With a
// working upstream it returns the single best match; the fallback path
// returns 2-4 synthesized products. categoryHint, when non-empty, is passed
// to the upstream as a category filter and attached to the results in place
// of the inferred category.
func (r *Resolver) Resolve(ctx context.Context, query string, categoryHint string) []Product {
	category := InferCategory(query)
	if categoryHint != "" {
		category = Category(categoryHint)
	}

	if !r.client.Configured() {
		return r.synthesizeProducts(query, category)
	}

	result, err := r.client.Search(ctx, query, categoryHint, searchLimit)
	if err != nil {
		log.Warn().Err(err).Str("query", query).Msg("catalog search failed, synthesizing products")
		return r.synthesizeProducts(query, category)
	}
	if len(result.Products) == 0 {
		log.Debug().Str("query", query).Msg("catalog search returned no products, synthesizing")
		return r.synthesizeProducts(query, category)
	}

	// Take only the first match so the outfit gets one candidate per garment
	return []Product{transformProduct(result.Products[0], category)}
}

// transformProduct maps an upstream catalog record to a Product card. The
// image is routed through the image proxy to avoid hot-linking and CORS
// issues with the upstream CDN.
func transformProduct(p SearchProduct, category Category) Product {
	imageURL := p.ImageURL
	if !strings.HasPrefix(imageURL, "http") {
		imageURL = "https://" + imageURL
	}

	return Product{
		ID:       p.ID.String(),
		Name:     p.Name,
		Image:    "/api/image-proxy?url=" + url.QueryEscape(imageURL),
		Price:    fmt.Sprintf("$%.2f", p.Price.Current.Value),
		Link:     fmt.Sprintf("%s/%s", storefrontBaseURL, p.URL),
		Category: category,
	}
}

// synthesizeProducts fabricates 2-4 plausible products for the query.
func (r *Resolver) synthesizeProducts(query string, category Category) []Product {
	n := rand.Intn(3) + 2
	products := make([]Product, 0, n)
	for i := 0; i < n; i++ {
		name := synthProductName(query, category)
		products = append(products, Product{
			ID:       fmt.Sprintf("product-%s-%d", r.ids.Generate(), i),
			Name:     name,
			Image:    synthImageURL(name),
			Price:    synthPrice(),
			Link:     synthLink(query),
			Category: category,
		})
	}
	return products
}
