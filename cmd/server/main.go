package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"sudoku-engine/internal/puzzles"
	httpTransport "sudoku-engine/internal/transport/http"
	"sudoku-engine/pkg/config"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("configuration error")
	}

	if err := puzzles.LoadGlobal(cfg.PuzzlesFile); err != nil {
		log.Warn().Err(err).Str("path", cfg.PuzzlesFile).Msg("could not load puzzle bank, falling back to on-demand generation")
	} else {
		log.Info().Int("count", puzzles.Global().Count()).Msg("loaded puzzle bank")
	}

	rotator := puzzles.NewRotator()
	if err := rotator.OnMidnightUTC(func() {
		log.Info().Msg("daily puzzle rotated")
	}); err != nil {
		log.Fatal().Err(err).Msg("failed to schedule daily rotation")
	}
	rotator.Start()
	defer rotator.Stop()

	r := gin.New()
	r.Use(gin.Recovery())

	httpTransport.RegisterRoutes(r, cfg)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info().Msg("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("server shutdown error")
		}
	}()

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
