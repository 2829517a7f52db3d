package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"athena.merchant/go-api/internal/router"
	"athena.merchant/go-api/pkg/ai"
	"athena.merchant/go-api/pkg/config"
	"athena.merchant/go-api/pkg/logger"
	"athena.merchant/go-api/pkg/metrics"
	"athena.merchant/go-api/pkg/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	defer zlog.Sync()

	rec := metrics.New()

	var completer ai.Completer
	if client := ai.NewClient(cfg.OpenAI); client != nil {
		completer = client
		zlog.Info("AI service initialized", zap.String("model", cfg.OpenAI.Model), zap.String("base_url", cfg.OpenAI.BaseURL))
	} else {
		zlog.Info("AI service disabled, OPENAI_API_KEY not set; answers will use fallback rules")
	}

	insights := ai.NewService(cfg.OpenAI, store.NewMockProvider(), completer, zlog, rec)

	engine := router.NewEngine(cfg, zlog)
	router.InitializeRoutes(engine, router.NewHandler(insights, rec, zlog))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("Athena Merchant Assistant API running", zap.String("port", cfg.Port), zap.String("env", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("failed to run server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// in-flight model calls may take up to the model timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.OpenAI.Timeout+5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("server shutdown failed", zap.Error(err))
	}
	zlog.Info("server stopped")
}
