package server

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/raine/outfit-stylist/internal/catalog"
	"github.com/raine/outfit-stylist/internal/outfit"
	"github.com/raine/outfit-stylist/internal/storage"
)

const imageFetchTimeout = 10 * time.Second

// Assembler runs the outfit generation pipeline.
type Assembler interface {
	Assemble(ctx context.Context, prompt string, previousOutfits []string) (*outfit.Outfit, error)
}

// Resolver finds products for a single garment description.
type Resolver interface {
	Resolve(ctx context.Context, query string, categoryHint string) []catalog.Product
}

// Server exposes the outfit pipeline over HTTP.
type Server struct {
	echo      *echo.Echo
	assembler Assembler
	resolver  Resolver
	profiles  storage.ProfileStore
	images    *resty.Client
}

func New(assembler Assembler, resolver Resolver, profiles storage.ProfileStore) *Server {
	s := &Server{
		assembler: assembler,
		resolver:  resolver,
		profiles:  profiles,
		images:    resty.New().SetTimeout(imageFetchTimeout),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(RequestLogger())

	e.GET("/healthz", s.handleHealth)
	e.POST("/api/outfit", s.handleGenerateOutfit)
	e.POST("/api/catalog-search", s.handleCatalogSearch)
	e.GET("/api/image-proxy", s.handleImageProxy)
	e.POST("/api/profile", s.handleCreateProfile)
	e.GET("/placeholder.svg", s.handlePlaceholder)

	s.echo = e
	return s
}

// Start begins serving on the given address. It blocks until the server is
// shut down.
func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
