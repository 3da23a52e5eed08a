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

	"blogapi/internal/api"
	"blogapi/internal/config"
	"blogapi/internal/storage/postgres"
)

func main() {
	cfg := config.Load()

	if err := postgres.InitDB(cfg); err != nil {
		log.Fatalf("failed to init database: %v", err)
	}
	if err := postgres.Migrate(postgres.GetDB()); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	handler := &api.Handler{
		Users:     postgres.NewUserPostgresStorage(),
		Posts:     postgres.NewPostPostgresStorage(),
		Comments:  postgres.NewCommentPostgresStorage(),
		Likes:     postgres.NewLikePostgresStorage(),
		JWTSecret: cfg.JWTSecret,
	}

	router := api.NewRouter(cfg, handler)

	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", cfg.ServerAddr)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Wait for SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	if err := postgres.CloseDB(); err != nil {
		log.Printf("error closing database: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("error during shutdown: %v", err)
	}

	log.Println("server stopped")
}
