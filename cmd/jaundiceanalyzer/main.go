package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"JaundiceAnalyzer/internal/app"
	"JaundiceAnalyzer/internal/config"
	"JaundiceAnalyzer/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	logger := logging.NewWithFormat(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("application init failed", "error", err)
		os.Exit(1)
	}

	// One-shot mode: article URLs as arguments, results as JSON on stdout.
	if urls := os.Args[1:]; len(urls) > 0 {
		results, err := application.Analyze(ctx, urls)
		if err != nil {
			logger.Error("analysis failed", "error", err)
			os.Exit(1)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			logger.Error("encode results", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := application.Run(ctx); err != nil {
		logger.Error("application stopped", "error", err)
		os.Exit(1)
	}
}
