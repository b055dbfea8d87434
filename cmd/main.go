package main

import (
	"chat-relay/config"
	"chat-relay/domain/event"
	"chat-relay/forward"
	"chat-relay/platform"
	"chat-relay/repositories"
	"chat-relay/runtime/workers"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the host lifecycle, and
// centralizes error reporting so deferred cleanups (database close)
// always execute before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := newLogger(cfg.LogLevel)

	// 2. Database (BadgerDB) backing the conversation cache
	db, err := badger.Open(badger.DefaultOptions(cfg.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Platform client and the bot's own identity
	client := platform.NewClient(cfg.PlatformBaseURL, cfg.PlatformAPIToken, cfg.RequestTimeout, log)
	self, err := client.Self(ctx)
	if err != nil {
		return fmt.Errorf("self identity lookup failed: %w", err)
	}
	log.Info("Connected to platform", "chat_id", self.ChatID, "name", self.DisplayName)

	// 5. Host event loop: stream listener feeding the fanout
	events := make(chan event.DomainEvent, cfg.BufferSize)
	fanout := workers.NewEventFanout(log, events)
	listener := workers.NewStreamListener(log, client, events, cfg.PollInterval)

	// 6. Handler registration. A missing or invalid forward section
	// disables the component; the host keeps running without it.
	sections := config.Load(cfg.ComponentConfigFilepath, log)
	forwardCfg, err := forward.LoadConfig(sections, log)
	if err != nil {
		log.Warn("Forward component disabled", "error", err)
	} else {
		repository := repositories.NewConversationRepository(db, log)
		resolver := forward.NewResolver(client, log, self.ChatID, forwardCfg.Receivers)
		provisioner := forward.NewProvisioner(client, repository, log)
		dispatcher := forward.NewDispatcher(client, resolver, provisioner, log)
		relay, err := forward.New(log, forwardCfg, self.ChatID, dispatcher)
		if err != nil {
			return fmt.Errorf("forward component setup failed: %w", err)
		}
		fanout.Add(relay)
		log.Info("Forward component registered",
			"receivers", len(forwardCfg.Receivers), "keywords", len(forwardCfg.Keywords))
	}

	// 7. Supervise workers until a signal arrives
	sup := workers.NewSupervisor(log)
	sup.Add(listener, fanout).Run(ctx)

	log.Info("Shutting down gracefully...")
	return nil
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: l}))
}
