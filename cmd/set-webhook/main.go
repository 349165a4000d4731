// Command set-webhook registers the bot's webhook URL and secret with
// Telegram, or removes the webhook with -delete.
//
// The URL defaults to TELEGRAM_WEBHOOK_URL and must end in
// /api/telegram/webhook.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	tgapi "github.com/sthacker-ai/NexusLog/internal/adapter/telegram"
	"github.com/sthacker-ai/NexusLog/internal/app"
	"github.com/sthacker-ai/NexusLog/internal/config"
)

const webhookPath = "/api/telegram/webhook"

func main() {
	remove := flag.Bool("delete", false, "remove the webhook instead of setting it")
	url := flag.String("url", "", "public webhook URL (default TELEGRAM_WEBHOOK_URL)")
	flag.Parse()

	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("load .env: %v", err)
	}

	// Only the Telegram and log sections are needed, so the database DSN
	// may be unset.
	var cfg struct {
		Telegram config.TelegramConfig
		Log      config.LogConfig
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("read env: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if !cfg.Telegram.Enabled() {
		logger.Error("TELEGRAM_BOT_TOKEN is not set")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := tgapi.NewClient(cfg.Telegram, logger)

	if *remove {
		if err := client.DeleteWebhook(ctx); err != nil {
			logger.Error("delete webhook", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("webhook deleted")
		return
	}

	target := *url
	if target == "" {
		target = cfg.Telegram.WebhookURL
	}
	if target == "" {
		logger.Error("webhook url is empty: pass -url or set TELEGRAM_WEBHOOK_URL")
		os.Exit(1)
	}
	if !strings.HasSuffix(target, webhookPath) {
		target = strings.TrimSuffix(target, "/") + webhookPath
	}

	if err := client.SetWebhook(ctx, target, cfg.Telegram.WebhookSecret); err != nil {
		logger.Error("set webhook", slog.String("error", err.Error()), slog.String("url", target))
		os.Exit(1)
	}

	logger.Info("webhook set",
		slog.String("url", target),
		slog.Bool("secret", cfg.Telegram.WebhookSecret != ""),
	)
}
