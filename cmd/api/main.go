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

	"github.com/joho/godotenv"

	"github.com/avoronova/deepsight/internal/config"
	"github.com/avoronova/deepsight/internal/handler"
	"github.com/avoronova/deepsight/internal/handler/conversation"
	"github.com/avoronova/deepsight/internal/model/catalog"
	"github.com/avoronova/deepsight/internal/service/ai"
	"github.com/avoronova/deepsight/internal/service/export"
	"github.com/avoronova/deepsight/internal/service/flow"
	"github.com/avoronova/deepsight/internal/service/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	cat := catalog.NewMemoryCatalog(catalog.Seed())

	sessionStore := session.NewStore(cfg.Session.IdleTimeout, cfg.Session.SweepInterval)
	go sessionStore.Run(ctx)

	summarizer, err := ai.NewSummarizer(ctx, cat, cfg.AI)
	if err != nil {
		log.Fatalf("failed to initialize summarizer: %v", err)
	}
	if summarizer.Enabled() {
		log.Println("summarizer initialized with Ark model")
	} else {
		log.Println("Ark credentials not configured, summarizer will serve fallback analyses")
	}

	hub := conversation.NewHub()
	defer hub.Close()

	exporter := export.NewExporter(sessionStore, cat, hub)
	engine := flow.NewEngine(sessionStore, cat, summarizer, exporter, hub, cfg.Flow)

	router := handler.NewRouter(cat, engine, hub, cfg.Bot.Token)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Deepsight backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
