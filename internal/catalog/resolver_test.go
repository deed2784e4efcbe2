package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T, baseURL, apiKey string) *Resolver {
	t.Helper()
	ids, err := snowflake.NewNode(1)
	require.NoError(t, err)
	return NewResolver(NewClient(ClientOpts{BaseURL: baseURL, APIKey: apiKey}), ids)
}

func TestResolveUpstream(t *testing.T) {
	b, err := os.ReadFile("testdata/products_v2_list.json")
	require.NoError(t, err)

	var req *http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req = r
		w.Header().Set("Content-Type", "application/json")
		w.Write(b)
	}))
	defer ts.Close()

	r := newTestResolver(t, ts.URL, "test-key")
	products := r.Resolve(context.Background(), "blue hoodie", "")

	assert.Equal(t, "/products/v2/list", req.URL.Path)
	assert.Equal(t, "blue hoodie", req.URL.Query().Get("q"))
	assert.Equal(t, "10", req.URL.Query().Get("limit"))
	assert.Equal(t, "freshness", req.URL.Query().Get("sort"))
	assert.Equal(t, "test-key", req.Header.Get("X-Rapidapi-Key"))

	// Only the first upstream match is kept
	require.Len(t, products, 1)
	p := products[0]
	assert.Equal(t, "206081013", p.ID)
	assert.Equal(t, "ASOS DESIGN oversized hoodie in navy blue", p.Name)
	assert.Equal(t, "$38.00", p.Price)
	assert.Equal(t, CategoryOuterwear, p.Category)
	assert.True(t, strings.HasPrefix(p.Image, "/api/image-proxy?url="))
	assert.Contains(t, p.Image, "https%3A%2F%2Fimages.asos-media.com")
	assert.Equal(t, "https://www.asos.com/asos-design/asos-design-oversized-hoodie-in-navy-blue/prd/206081013", p.Link)
}

func TestResolveCategoryHint(t *testing.T) {
	b, err := os.ReadFile("testdata/products_v2_list.json")
	require.NoError(t, err)

	var req *http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req = r
		w.Header().Set("Content-Type", "application/json")
		w.Write(b)
	}))
	defer ts.Close()

	r := newTestResolver(t, ts.URL, "test-key")
	products := r.Resolve(context.Background(), "blue hoodie", "tops")

	assert.Equal(t, "tops", req.URL.Query().Get("categoryId"))
	require.Len(t, products, 1)
	assert.Equal(t, CategoryTops, products[0].Category)
}

func TestResolveUpstreamErrorFallsBack(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	r := newTestResolver(t, ts.URL, "test-key")
	products := r.Resolve(context.Background(), "blue hoodie", "")

	assertSynthesized(t, products, CategoryOuterwear)
}

func TestResolveEmptyResultFallsBack(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"products": []}`))
	}))
	defer ts.Close()

	r := newTestResolver(t, ts.URL, "test-key")
	products := r.Resolve(context.Background(), "black jeans", "")

	assertSynthesized(t, products, CategoryBottoms)
}

func TestResolveWithoutAPIKey(t *testing.T) {
	r := newTestResolver(t, "", "")
	products := r.Resolve(context.Background(), "white sneakers", "")

	assertSynthesized(t, products, CategoryShoes)
}

var priceRe = regexp.MustCompile(`^\$(\d+\.\d{2})$`)

func assertSynthesized(t *testing.T, products []Product, category Category) {
	t.Helper()
	assert.GreaterOrEqual(t, len(products), 2)
	assert.LessOrEqual(t, len(products), 4)
	for _, p := range products {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Image)
		assert.Equal(t, category, p.Category)

		m := priceRe.FindStringSubmatch(p.Price)
		require.NotNil(t, m, "price %q does not match $NN.NN", p.Price)
		value, err := strconv.ParseFloat(m[1], 64)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, value, 20.0)
		assert.Less(t, value, 120.0)
	}
}

func TestSynthesizedProductFields(t *testing.T) {
	r := newTestResolver(t, "", "")
	products := r.Resolve(context.Background(), "blue hoodie", "")

	for _, p := range products {
		assert.Contains(t, p.Name, "Blue", "detected color is part of the name")
		assert.Contains(t, p.Name, "Jacket")
		assert.True(t, strings.HasPrefix(p.Image, "/placeholder.svg?"))
		assert.Equal(t, "https://www.asos.com/search/?q=blue+hoodie", p.Link)
	}
}

func TestDetectColor(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"blue hoodie", "Blue"},
		{"Burgundy button-up shirt", ""},
		{"black slim-fit jeans", "Black"},
		{"plain sweater", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, detectColor(tt.query), tt.query)
	}
}
