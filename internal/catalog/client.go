package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	apiBaseURL        = "https://asos2.p.rapidapi.com"
	rapidAPIHost      = "asos2.p.rapidapi.com"
	storefrontBaseURL = "https://www.asos.com"

	searchTimeout = 10 * time.Second
)

// Product is one shoppable garment card.
type Product struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Image    string   `json:"image"`
	Price    string   `json:"price"`
	Link     string   `json:"link"`
	Category Category `json:"category"`
}

type ClientOpts struct {
	BaseURL string
	APIKey  string
}

// Client is a client for the ASOS product search API (via RapidAPI).
type Client struct {
	httpClient *resty.Client
	apiKey     string
}

func NewClient(opts ClientOpts) *Client {
	c := Client{apiKey: opts.APIKey}
	baseURL := apiBaseURL
	if opts.BaseURL != "" {
		baseURL = opts.BaseURL
	}
	c.httpClient = resty.New().
		SetDebug(false).
		SetBaseURL(baseURL).
		SetTimeout(searchTimeout).
		SetHeaders(
			map[string]string{
				"Accept":          "application/json",
				"X-RapidAPI-Key":  opts.APIKey,
				"X-RapidAPI-Host": rapidAPIHost,
			},
		)

	return &c
}

// Configured reports whether an API key is available. Without one, every
// search resolves through the fallback path.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type SearchResponse struct {
	Products []SearchProduct `json:"products"`
}

type SearchProduct struct {
	ID       json.Number `json:"id"`
	Name     string      `json:"name"`
	ImageURL string      `json:"imageUrl"`
	Price    SearchPrice `json:"price"`
	URL      string      `json:"url"`
}

type SearchPrice struct {
	Current PriceValue `json:"current"`
}

type PriceValue struct {
	Value float64 `json:"value"`
}

// Search queries the product list endpoint. categoryID narrows results to an
// ASOS category when non-empty.
func (c *Client) Search(ctx context.Context, query string, categoryID string, limit int) (*SearchResponse, error) {
	result := &SearchResponse{}
	req := c.httpClient.
		NewRequest().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":          query,
			"store":      "US",
			"lang":       "en-US",
			"limit":      strconv.Itoa(limit),
			"country":    "US",
			"currency":   "USD",
			"sizeSchema": "US",
			"sort":       "freshness",
		}).
		SetResult(result)

	if categoryID != "" {
		req.SetQueryParam("categoryId", categoryID)
	}

	_, err := handleError(req.Get("/products/v2/list"))
	return result, err
}

// handleError is a generic error handler for failing responses (>399 status
// code). Without this, failing responses would have nil error.
func handleError(res *resty.Response, err error) (*resty.Response, error) {
	if err != nil {
		return res, err
	}
	if res.IsError() {
		return res, fmt.Errorf("request failed: %s %s (status: %d)", res.Request.Method, res.Request.URL, res.StatusCode())
	}

	return res, nil
}
