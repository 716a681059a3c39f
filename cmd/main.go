package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/gommon/log"

	"straysense/pkg/config"
	"straysense/pkg/events"
	"straysense/pkg/server"
	"straysense/pkg/store"
	"straysense/pkg/vision"
)

func main() {
	ctx, done := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var extractor vision.Extractor
	switch {
	case cfg.Vision.GeminiAPIKey != "":
		gem, err := vision.NewGeminiExtractor(cfg.Vision.GeminiAPIKey, cfg.Vision.GeminiModel)
		if err != nil {
			log.Fatalf("Failed to init Gemini extractor: %v", err)
		}
		extractor = gem
		log.Infof("Vision extraction via Gemini (%s)", cfg.Vision.GeminiModel)
	case cfg.Vision.OpenAIAPIKey != "" || cfg.Vision.OpenAIBaseURL != "":
		oa := vision.NewOpenAIExtractor(cfg.Vision.OpenAIAPIKey, cfg.Vision.OpenAIModel)
		if cfg.Vision.OpenAIBaseURL != "" {
			oa.ChangeBaseURL(cfg.Vision.OpenAIBaseURL)
		}
		extractor = oa
		log.Infof("Vision extraction via OpenAI-compatible endpoint (%s)", cfg.Vision.OpenAIModel)
	default:
		log.Warn("No vision provider configured; photo auto-extraction disabled, manual entry only")
	}

	srv := server.NewServer(ctx, extractor)
	srv.Echo.Logger.SetLevel(logLevel(cfg.LogLevel))
	srv.ImageDir = cfg.ImageDir

	if cfg.Store.PostgresDSN != "" {
		pg, err := store.NewPostgresStore(ctx, cfg.Store.PostgresDSN)
		if err != nil {
			log.Fatalf("Failed to connect to Postgres: %v", err)
		}
		srv.Store = pg
		log.Info("Persisting records to Postgres")
	} else if cfg.Store.RecordsFile != "" {
		fs, err := store.NewFileStore(cfg.Store.RecordsFile)
		if err != nil {
			log.Fatalf("Failed to open records file: %v", err)
		}
		srv.Store = fs
		log.Infof("Persisting records to %s", cfg.Store.RecordsFile)
	}

	if len(cfg.Kafka.Brokers) > 0 {
		srv.Publisher = events.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		log.Infof("Publishing report events to %s on %v", cfg.Kafka.Topic, cfg.Kafka.Brokers)
	}

	if cfg.Auth.OktaIssuer != "" {
		srv.Verifier = server.NewTokenVerifier(cfg.Auth.OktaIssuer, cfg.Auth.OktaAudience)
		log.Info("Token verification enabled")
	}

	finishedShutDown := make(chan struct{})
	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Error(err)
		}
		done()
		close(finishedShutDown)
	}()

	log.Infof("Server listening at %s", cfg.Listen)
	if err := srv.Start(cfg.Listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error(err)
	}
	<-finishedShutDown
}

func logLevel(level string) log.Lvl {
	switch level {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}
