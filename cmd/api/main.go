package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/todo-labs/todo-backend/config"
	"github.com/todo-labs/todo-backend/internal/bootstrap"
	"github.com/todo-labs/todo-backend/internal/items/repository"
	"github.com/todo-labs/todo-backend/internal/storage/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer cleanup()

	bootstrap.SetGinMode(cfg.App.Environment)

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		Version:      cfg.App.Version,
		AllowOrigins: cfg.App.AllowOrigins,
		Store:        store,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Todo API starting up on :%s (store=%s, env=%s)",
			cfg.Server.Port, cfg.Store.Backend, cfg.App.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Todo API shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

// openStore builds the configured item store. The memory backend needs
// no external processes and is the default.
func openStore(ctx context.Context, cfg *config.Config) (repository.Store, func(), error) {
	switch cfg.Store.Backend {
	case repository.BackendRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.Store.RedisAddr})
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			return nil, nil, err
		}
		return repository.NewRedisStore(client), func() { _ = client.Close() }, nil

	case repository.BackendPostgres:
		db, err := postgres.NewConnection(cfg.Store.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.EnsureSchema(db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return repository.NewPostgresStore(db), func() { _ = db.Close() }, nil

	default:
		return repository.NewMemoryStore(), func() {}, nil
	}
}
