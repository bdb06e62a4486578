package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lexv0lk/secondhand-market/internal/gateway/bootstrap"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/env"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/logging"
	"github.com/joho/godotenv"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defaultLogger := logging.StdoutLogger

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		defaultLogger.Error("failed to load .env file", "error", err.Error())
		return
	}

	cfg, err := bootstrap.LoadConfig(os.Getenv(env.EnvConfigFile))
	if err != nil {
		defaultLogger.Error("failed to load config", "error", err.Error())
		return
	}

	logger := logging.NewLogger(cfg.Log.Level, cfg.Log.Format)

	app := bootstrap.NewMarketApp(cfg, logger)
	defer app.Shutdown()

	if err := app.Run(mainCtx); err != nil {
		logger.Error("market stopped with error", "error", err.Error())
	}
}
