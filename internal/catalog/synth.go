package catalog

import (
	"fmt"
	"math/rand"
	"net/url"
	"strings"
)

var fallbackBrands = []string{
	"ASOS DESIGN",
	"ASOS EDITION",
	"Topshop",
	"New Look",
	"River Island",
	"Nike",
}

var colorWords = []string{
	"blue", "green", "red", "black", "white", "gray",
	"purple", "yellow", "pink", "orange", "brown",
}

type descriptor struct {
	adjectives []string
	noun       string
}

var descriptorsByCategory = map[Category]descriptor{
	CategoryTops:        {[]string{"Cotton", "Slim Fit", "Casual", "Formal", "Graphic"}, "T-Shirt"},
	CategoryBottoms:     {[]string{"Slim", "Regular Fit", "Relaxed", "Skinny", "Straight Leg"}, "Jeans"},
	CategoryShoes:       {[]string{"Running", "Casual", "Athletic", "Fashion", "Comfort"}, "Sneakers"},
	CategoryOuterwear:   {[]string{"Lightweight", "Waterproof", "Insulated", "Casual", "Stylish"}, "Jacket"},
	CategoryDresses:     {[]string{"Elegant", "Casual", "Floral", "Maxi", "Mini"}, "Dress"},
	CategorySkirts:      {[]string{"A-Line", "Pleated", "Midi", "Mini", "Maxi"}, "Skirt"},
	CategoryHats:        {[]string{"Adjustable", "Fitted", "Stylish", "Classic", "Modern"}, "Cap"},
	CategoryAccessories: {[]string{"Stylish", "Classic", "Modern", "Trendy", "Elegant"}, "Watch"},
}

// detectColor returns the first color word found in the query, capitalized,
// or "" when the query mentions no known color.
func detectColor(query string) string {
	for _, word := range strings.Fields(strings.ToLower(query)) {
		for _, color := range colorWords {
			if word == color {
				return strings.ToUpper(color[:1]) + color[1:]
			}
		}
	}
	return ""
}

// synthProductName builds a plausible product name for a fictitious listing:
// brand, optional color, then a category descriptor phrase.
func synthProductName(query string, category Category) string {
	var b strings.Builder
	b.WriteString(fallbackBrands[rand.Intn(len(fallbackBrands))])
	b.WriteString(" ")
	if color := detectColor(query); color != "" {
		b.WriteString(color)
		b.WriteString(" ")
	}

	desc, ok := descriptorsByCategory[category]
	if !ok {
		b.WriteString("Fashion Item")
		return b.String()
	}
	b.WriteString(desc.adjectives[rand.Intn(len(desc.adjectives))])
	b.WriteString(" ")
	b.WriteString(desc.noun)
	return b.String()
}

// synthPrice returns a price in [20.00, 120.00) formatted like "$42.17".
func synthPrice() string {
	return fmt.Sprintf("$%.2f", rand.Float64()*100+20)
}

// synthImageURL points at the local placeholder renderer with the product
// name as display text, so the card always has a resolvable image.
func synthImageURL(name string) string {
	return fmt.Sprintf("/placeholder.svg?height=400&width=300&text=%s", url.QueryEscape(name))
}

// synthLink points at the storefront's search results for the query. The
// product is fictitious, so there is no listing page to link to.
func synthLink(query string) string {
	return fmt.Sprintf("%s/search/?q=%s", storefrontBaseURL, url.QueryEscape(query))
}
