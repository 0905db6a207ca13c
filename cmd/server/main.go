package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pulsecheck/internal/cache"
	"pulsecheck/internal/catalog"
	"pulsecheck/internal/config"
	"pulsecheck/internal/logging"
	"pulsecheck/internal/repository"
	"pulsecheck/internal/selection"
	"pulsecheck/internal/service"
	"pulsecheck/internal/transport/rest"
)

func main() {
	// .env is optional; real deployments set env vars directly
	_ = godotenv.Load()

	cfg := config.Load()
	logging.Init(cfg.Environment)

	ctx := context.Background()

	// Catalog load is the only failure surfaced to the operator: a
	// malformed template must never reach selection.
	cat, err := catalog.Default()
	if err != nil {
		slog.Error("catalog load failed", "error", err)
		os.Exit(1)
	}
	slog.Info("catalog loaded", "templates", cat.Len(), "curated", len(cat.Curated()))

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		slog.Error("mongodb connect failed", "error", err)
		os.Exit(1)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		slog.Error("mongodb ping failed", "error", err)
		os.Exit(1)
	}
	slog.Info("connected to mongodb")

	db := mongoClient.Database(cfg.MongoDatabase)

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		slog.Error("redis ping failed", "error", err)
		os.Exit(1)
	}
	slog.Info("connected to redis")

	// Repositories
	checkinRepo := repository.NewCheckinRepo(db)
	journalRepo := repository.NewJournalRepo(db)
	responseRepo := repository.NewResponseRepo(db)
	profileRepo := repository.NewProfileRepo(db)

	// Caches
	selCache := cache.NewSelectionCache(rdb)
	profileCache := cache.NewProfileCache(rdb)

	// Selection engine
	profiles := service.NewCachedProfileReader(profileRepo, profileCache)
	builder := selection.NewBuilder(checkinRepo, journalRepo, responseRepo, profiles)
	engine := selection.NewEngine(cat)

	// Services
	questionSvc := service.NewQuestionService(builder, engine, selCache)
	checkinSvc := service.NewCheckinService(checkinRepo, journalRepo, responseRepo, profileRepo, questionSvc, selCache, profileCache)

	router := rest.NewRouter(&rest.Container{
		QuestionService: questionSvc,
		CheckinService:  checkinSvc,
		DefaultMax:      cfg.MaxQuestions,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("http server listening", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("http server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(ctx, 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}
