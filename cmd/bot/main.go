package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/lunariadev/nyra/internal/bot"
)

func main() {
	// A local .env is optional; real deployments inject the token directly.
	_ = godotenv.Load()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		log.Error("DISCORD_TOKEN not set, Nyra cannot awaken")
		os.Exit(1)
	}

	cfg := bot.Config{
		Token:  token,
		Prefix: os.Getenv("NYRA_PREFIX"),
	}

	b, err := bot.New(cfg, log)
	if err != nil {
		log.Error("bot init failed", "err", err)
		os.Exit(1)
	}

	if err := b.Start(); err != nil {
		log.Error("gateway connect failed", "err", err)
		os.Exit(1)
	}
	defer b.Stop()

	log.Info("🤖 Nyra online, listening")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("Nyra returns to the void")
}
