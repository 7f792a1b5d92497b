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

	"slingshot-server/pkg/config"
	"slingshot-server/pkg/scores"
	"slingshot-server/pkg/server"
)

func main() {
	addr := config.GetEnv(config.EnvAddr, ":4000")
	scoreFile := config.GetEnv(config.EnvScoreFile, "highscore.msgpack")
	tickMultiplier := config.GetEnvFloat(config.EnvTickMultiplier, 1.0)

	store, err := scores.OpenFileStore(scoreFile)
	if err != nil {
		log.Fatalf("failed to open score file: %v", err)
	}

	srv, err := server.NewServer(server.ServerOptions{
		Store:      store,
		TickConfig: &server.TickConfig{TickMultiplier: tickMultiplier},
	})
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}

	httpServer := &http.Server{
		Addr:    addr,
		Handler: server.NewRouter(srv),
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	log.Printf("Starting server on %s (scores in %s)", addr, store.Path())
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-done
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
	srv.Close()
	log.Println("Server stopped")
}
