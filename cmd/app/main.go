package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"digitex_go/internal/app"
	"digitex_go/internal/engine"
	"digitex_go/internal/infra/session"
	"digitex_go/internal/message"

	_ "net/http/pprof" // For pprof profiling
)

func main() {
	// 1. Optional .env for local development; environment wins over config file.
	_ = godotenv.Load()

	// 2. Pprof Server (for performance profiling)
	go func() {
		// Localhost only for security
		slog.Info("pprof server started on localhost:6060")
		if err := http.ListenAndServe("localhost:6060", nil); err != nil {
			slog.Error("pprof server failed", slog.Any("error", err))
		}
	}()

	// 3. System Bootstrapping
	bootstrap := app.NewBootstrap()
	if err := bootstrap.Initialize(); err != nil {
		slog.Error("bootstrapping failed", slog.Any("error", err))
		os.Exit(1)
	}
	cfg := bootstrap.Config

	// 4. Graceful Shutdown Context
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Wire the processing loop to the venue session. The session produces
	// decoded envelopes into the inbox; the loop is the sole state mutator.
	message.Warmup()
	inbox := make(chan *message.Inbound, cfg.InboxSize())

	sess := session.New(cfg.Venue.WSURL, cfg.Venue.APIKey, cfg.Venue.Markets, bootstrap.Registry, inbox)

	var journal engine.Journal
	if bootstrap.Journal != nil {
		journal = bootstrap.Journal
	}
	rec := engine.NewReconciler(bootstrap.Registry, sess, nil)
	loop := engine.NewLoop(inbox, rec, journal)

	go loop.Run(ctx)

	if err := sess.Connect(ctx); err != nil {
		slog.Error("failed to start venue session", slog.Any("error", err))
		os.Exit(1)
	}
	defer sess.Disconnect()
	slog.InfoContext(ctx, "venue session started", slog.Int("markets", len(cfg.Venue.Markets)))

	// Wait for shutdown signal
	<-ctx.Done()

	slog.InfoContext(ctx, "shutting down gracefully")
}
