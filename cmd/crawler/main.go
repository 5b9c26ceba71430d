package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ruckdata/rugby-crawler/external/espn"
	"github.com/ruckdata/rugby-crawler/internal/config"
	"github.com/ruckdata/rugby-crawler/internal/infrastructure/sink"
	"github.com/ruckdata/rugby-crawler/internal/platform/logging"
	"github.com/ruckdata/rugby-crawler/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()
	logging.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	start, end, err := usecase.LoadDateRange(cfg.StartDateFile, cfg.EndDateFile)
	if err != nil {
		logger.Error("load date range", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}

	client := espn.NewClient(espn.ClientConfig{
		BaseURL:    cfg.ESPNBaseURL,
		UserAgent:  cfg.ESPNUserAgent,
		Timeout:    cfg.ESPNTimeout,
		MaxRetries: cfg.ESPNMaxRetries,
		Logger:     logger,
	})

	crawler := usecase.NewCrawlService(
		client,
		sink.NewCSVSink(cfg.OutputFile),
		sink.NewErrorLog(cfg.ErrorFile),
		usecase.CrawlConfig{
			Leagues:    cfg.Leagues,
			MaxWorkers: cfg.MaxWorkers,
		},
		logger,
	)

	logger.Info("crawl starting",
		"start", start.Format(usecase.DayFormat),
		"end", end.Format(usecase.DayFormat),
		"output", cfg.OutputFile,
	)

	if err := crawler.Run(ctx, start, end); err != nil {
		logger.Error("crawl failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}
