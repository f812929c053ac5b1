package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"briefly/briefly/config"
	"briefly/briefly/controllers"
	"briefly/briefly/middlewares"
	"briefly/briefly/routes"
	"briefly/briefly/services/links"
	"briefly/briefly/services/loader"
	"briefly/briefly/services/summarizer"
	httputils "briefly/briefly/utils/http"
	"briefly/briefly/utils/logging"
	"briefly/briefly/web"
)

func main() {
	logging.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		logging.ErrorLogger.Error("config load error", zap.Error(err))
		os.Exit(1)
	}

	linkFilter, err := links.NewFilter(cfg.ExtraDenylist...)
	if err != nil {
		logging.ErrorLogger.Error("link filter init error", zap.Error(err))
		os.Exit(1)
	}

	fetchClient := httputils.NewBrowserClient(cfg.FetchTimeout)

	var rendered loader.RenderedFetcher
	var pwFetcher *loader.PlaywrightFetcher
	if cfg.RenderedFallback {
		pwFetcher = loader.NewPlaywrightFetcher(cfg.UserAgent)
		rendered = pwFetcher
		defer pwFetcher.Close()
	}

	acquirer := loader.New(loader.Options{
		Video:           loader.NewVideoLoader(fetchClient),
		Fallback:        loader.NewMetadataTool(cfg.YTDLPPath),
		Web:             loader.NewWebLoader(fetchClient, cfg.UserAgent, rendered),
		CacheTTL:        cfg.CacheTTL,
		CacheMaxEntries: cfg.CacheMaxEntries,
	})

	groq := summarizer.NewGroq(summarizer.GroqConfig{
		APIKey:     cfg.GroqAPIKey,
		BaseURL:    cfg.GroqBaseURL,
		Model:      cfg.Model,
		ChunkChars: cfg.ChunkChars,
	})

	summaryCtrl := controllers.NewSummaryController(acquirer, linkFilter, groq)
	healthCtrl := controllers.NewHealthController()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLog)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Minute))

	r.Get("/", web.Handler())
	r.Mount("/health", routes.HealthRoutes(healthCtrl))
	r.Mount("/api", routes.SummaryRoutes(summaryCtrl))

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}
	go func() {
		logging.AppLogger.Info("briefly listening", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}
