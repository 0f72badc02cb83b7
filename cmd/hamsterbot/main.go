package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-telegram/bot"

	"github.com/Galkurta/HamsterKombat/internal/config"
	"github.com/Galkurta/HamsterKombat/internal/content"
	"github.com/Galkurta/HamsterKombat/internal/dispatch"
	"github.com/Galkurta/HamsterKombat/internal/registry"
	"github.com/Galkurta/HamsterKombat/internal/session"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	users, err := registry.Open(cfg.UsersDBPath)
	if err != nil {
		return err
	}
	defer users.Close()

	sessions, err := session.Open()
	if err != nil {
		return err
	}
	defer sessions.Close()

	client := &http.Client{Timeout: 30 * time.Second}
	cipher := content.NewCipherFetcher(client, cfg.CipherURL)
	combo := content.NewComboFetcher(client, cfg.ComboURL)

	b, err := bot.New(cfg.BotToken)
	if err != nil {
		return err
	}

	d := dispatch.New(b, sessions, users, cipher, combo, cfg.OwnerID, log)
	d.Register(b)

	log.Info("starting polling", "owner", cfg.OwnerID)
	b.Start(ctx)
	return nil
}
