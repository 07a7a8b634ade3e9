package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"witnessconsole/internal/api"
	"witnessconsole/internal/cache"
	"witnessconsole/internal/config"
	httpx "witnessconsole/internal/http"
	"witnessconsole/internal/http/handlers"
	"witnessconsole/internal/store/postgres"
	"witnessconsole/internal/store/repositories"
	"witnessconsole/internal/views"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()
	config.SetupLogging(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := api.NewClient("console", cfg.API.BaseURL, cfg.API.TimeoutSec)
	if err := api.WaitForBackend(ctx, client, cfg.API.ReadyTimeout); err != nil {
		// the console still starts; views report backend errors per request
		log.Warn().Err(err).Str("backend", cfg.API.BaseURL).Msg("backend not ready")
	}

	// Submission history (optional)
	var history repositories.SubmissionRepository
	if cfg.DB.DSN != "" {
		pool := postgres.MustOpen(ctx, cfg.DB.DSN)
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("failed to prepare submission history schema")
		}
		history = postgres.NewSubmissionRepository(pool)
	}

	// Reference cache (optional)
	var ref cache.Reference = cache.Noop{}
	if cfg.Redis.Addr != "" {
		rc, err := cache.NewRedis(ctx, cfg.Redis.Addr, cfg.Redis.TTL)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, reference cache disabled")
		} else {
			defer rc.Close()
			ref = rc
		}
	}

	shots, err := handlers.Screenshots(cfg.API.ScreenshotBaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid screenshot base url")
	}

	r := httpx.NewRouter(httpx.RouterDependencies{
		Config:      cfg,
		Views:       views.NewService(client, ref, history, "/screenshots"),
		Screenshots: shots,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info().Str("backend", cfg.API.BaseURL).Msgf("witness console listening on :%s", cfg.App.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	cancel()
	ctx2, cancel2 := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	log.Info().Msg("server stopped")
}
