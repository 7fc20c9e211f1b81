package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dkravets/internhub/internal/client/cli"
	"github.com/dkravets/internhub/internal/client/config"
	"github.com/dkravets/internhub/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	log := logging.NewText(os.Stderr, slog.LevelInfo)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "failed to start portal", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
