package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hataden-app/hataden-price-checker/internal/app"
	"github.com/hataden-app/hataden-price-checker/internal/config"
	"github.com/joho/godotenv"
)

func main() {
	ctx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	// best-effort .env load for local development
	_ = godotenv.Load()
	cfg := config.Load()

	application := app.New(cfg)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: application.Router,
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	// graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		sig := <-sigCh
		log.Printf("received signal %v, initiating graceful shutdown", sig)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("graceful shutdown error: %v", err)
		}
		// Cancel root context so all in-flight requests stop
		rootCancel()
		close(idleConnsClosed)
	}()

	log.Printf("starting server on %s", cfg.HTTPAddr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
	<-idleConnsClosed
	log.Printf("server stopped")
}
