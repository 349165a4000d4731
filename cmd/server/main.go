// Command server runs the NexusLog HTTP API and Telegram webhook.
//
// Configuration comes from config.yaml (or CONFIG_PATH), a .env file and
// the environment. SIGINT and SIGTERM trigger a graceful shutdown.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sthacker-ai/NexusLog/internal/app"
	"github.com/sthacker-ai/NexusLog/internal/config"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("load .env: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Printf("server: %v", err)
		stop()
		os.Exit(1)
	}
}
