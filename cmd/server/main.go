package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/raine/outfit-stylist/internal/catalog"
	"github.com/raine/outfit-stylist/internal/config"
	"github.com/raine/outfit-stylist/internal/llm"
	"github.com/raine/outfit-stylist/internal/outfit"
	"github.com/raine/outfit-stylist/internal/server"
	"github.com/raine/outfit-stylist/internal/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Create context that cancels on SIGINT or SIGTERM
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	ids, err := snowflake.NewNode(1)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize id generator")
	}

	describer, err := llm.NewDescriber(ctx, cfg.GeminiAPIKey)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize outfit describer")
	}

	if cfg.AsosAPIKey == "" {
		log.Info().Msg("ASOS_API_KEY not set, product search synthesizes fallback products")
	}
	resolver := catalog.NewResolver(catalog.NewClient(catalog.ClientOpts{
		BaseURL: cfg.AsosBaseURL,
		APIKey:  cfg.AsosAPIKey,
	}), ids)

	assembler := outfit.NewAssembler(describer, resolver, ids)

	profiles, err := storage.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize profile store")
	}
	defer profiles.Close()
	log.Info().Str("dbPath", cfg.DBPath).Msg("profile store initialized")

	srv := server.New(assembler, resolver, profiles)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("address", cfg.Address).Msg("starting http server")
		if err := srv.Start(cfg.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		log.Error().Err(err).Msg("shutdown with error")
	} else {
		log.Info().Msg("shutdown complete")
	}
}
