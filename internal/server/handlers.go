package server

import (
	"errors"
	"fmt"
	"html"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/raine/outfit-stylist/internal/catalog"
	"github.com/raine/outfit-stylist/internal/outfit"
	"github.com/raine/outfit-stylist/internal/storage"
	"github.com/rs/zerolog/log"
)

type outfitRequest struct {
	Prompt          string   `json:"prompt"`
	PreviousOutfits []string `json:"previousOutfits"`
}

func (s *Server) handleGenerateOutfit(c echo.Context) error {
	var req outfitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	o, err := s.assembler.Assemble(c.Request().Context(), req.Prompt, req.PreviousOutfits)
	if err != nil {
		if errors.Is(err, outfit.ErrEmptyPrompt) {
			return echo.NewHTTPError(http.StatusBadRequest, "prompt is required")
		}
		log.Error().Err(err).Msg("failed to assemble outfit")
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to generate outfit")
	}

	return c.JSON(http.StatusOK, o)
}

type searchRequest struct {
	Query    string `json:"query"`
	Category string `json:"category"`
}

type searchResponse struct {
	Products []catalog.Product `json:"products"`
}

func (s *Server) handleCatalogSearch(c echo.Context) error {
	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query parameter is required")
	}

	products := s.resolver.Resolve(c.Request().Context(), req.Query, req.Category)
	return c.JSON(http.StatusOK, searchResponse{Products: products})
}

func (s *Server) handleImageProxy(c echo.Context) error {
	imageURL := c.QueryParam("url")
	if imageURL == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing url parameter")
	}

	res, err := s.images.NewRequest().
		SetContext(c.Request().Context()).
		Get(imageURL)
	if err != nil || res.IsError() {
		// Serve the local placeholder instead of surfacing the failure
		log.Warn().Err(err).Str("url", imageURL).Msg("failed to fetch upstream image")
		return c.Redirect(http.StatusFound, "/placeholder.svg?height=400&width=300")
	}

	contentType := res.Header().Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	c.Response().Header().Set("Cache-Control", "public, max-age=86400")
	return c.Blob(http.StatusOK, contentType, res.Body())
}

type profileRequest struct {
	// height and age may arrive as JSON numbers or numeric strings,
	// matching the original form contract
	Height    any    `json:"height"`
	BodyShape string `json:"bodyShape"`
	SkinTone  string `json:"skinTone"`
	Gender    string `json:"gender"`
	Age       any    `json:"age"`
}

// numericField coerces a decoded JSON value to a float. Strings are parsed;
// anything non-numeric is an error.
func numericField(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case string:
		return strconv.ParseFloat(t, 64)
	default:
		return 0, fmt.Errorf("not a number: %v", v)
	}
}

func (s *Server) handleCreateProfile(c echo.Context) error {
	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	height, err := numericField(req.Height)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid height or age format")
	}
	ageValue, err := numericField(req.Age)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid height or age format")
	}
	age := int(ageValue)

	created, err := s.profiles.Create(&storage.Profile{
		Height:    height,
		BodyShape: req.BodyShape,
		SkinTone:  req.SkinTone,
		Gender:    req.Gender,
		Age:       age,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to store profile")
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to submit form")
	}

	return c.JSON(http.StatusCreated, created)
}

// handlePlaceholder renders a simple SVG placeholder graphic. Synthesized
// product cards reference it so their image URI always resolves.
func (s *Server) handlePlaceholder(c echo.Context) error {
	width := placeholderDim(c.QueryParam("width"), 300)
	height := placeholderDim(c.QueryParam("height"), 400)
	text := c.QueryParam("text")

	svg := fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+
			`<rect width="100%%" height="100%%" fill="#e5e5e5"/>`+
			`<text x="50%%" y="50%%" dominant-baseline="middle" text-anchor="middle" font-family="sans-serif" font-size="14" fill="#757575">%s</text>`+
			`</svg>`,
		width, height, width, height, html.EscapeString(text),
	)

	return c.Blob(http.StatusOK, "image/svg+xml", []byte(svg))
}

func placeholderDim(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 || n > 2000 {
		return fallback
	}
	return n
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
