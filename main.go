package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"kai-ticket-watcher/config"
	"kai-ticket-watcher/notifier"
	"kai-ticket-watcher/scheduler"
	"kai-ticket-watcher/scraper"
	"kai-ticket-watcher/utils"
)

func main() {
	// ================== CLI ====================
	flags := flag.NewFlagSet("kai-ticket-watcher", flag.ExitOnError)
	routesFile := flags.String("routes-file", "", "Optional JSON or YAML file listing routes")
	snapshotFile := flags.String("snapshot-file", "", "Captured search results to evaluate (overrides SNAPSHOT_FILE)")
	debug := flags.Bool("debug", false, "Enable debug logging")

	args := os.Args[1:]
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: kai-ticket-watcher [run-once|watch] [flags]")
		os.Exit(2)
	}
	command := args[0]
	flags.Parse(args[1:])

	// ================== Bootstrap ====================
	logger := utils.NewLogger(*debug)
	cfg, err := config.Load(*routesFile)
	if err != nil {
		logger.Error("Configuration error: %v", err)
		os.Exit(1)
	}
	if *snapshotFile != "" {
		cfg.SnapshotFile = *snapshotFile
	}

	logger.Info("KAI Ticket Watcher")
	logger.Info("Routes: %d | Passengers: %d | Poll interval: %s",
		len(cfg.Routes()), cfg.PassengerCount, cfg.PollingInterval)

	if cfg.SnapshotFile == "" {
		logger.Error("No row source configured; set SNAPSHOT_FILE or pass -snapshot-file")
		os.Exit(1)
	}
	source := scraper.NewSnapshotSource(cfg.SnapshotFile, logger)

	// =================== Notifiers ========================================
	var telegram *notifier.TelegramNotifier
	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != "" {
		telegram, err = notifier.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID, cfg.BaseURL, logger)
		if err != nil {
			logger.Error("Cannot initialize Telegram notifier: %v", err)
			os.Exit(1)
		}
	} else {
		logger.Warn("Telegram bot token or chat id is not configured; Telegram alerts disabled")
	}
	email := notifier.NewEmailNotifier(cfg, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	job := scheduler.NewJob(cfg, source, telegram, email, logger)

	// =============== Run ===================================
	switch command {
	case "run-once":
		matches, err := job.RunOnce(ctx)
		if err != nil {
			logger.Error("Search cycle failed: %v", err)
			os.Exit(1)
		}
		logger.Info("Cycle finished with %d matching tickets", len(matches))
	case "watch":
		if err := job.Watch(ctx); err != nil && ctx.Err() == nil {
			logger.Error("Watch loop stopped: %v", err)
			os.Exit(1)
		}
		logger.Info("Watcher stopped")
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", command)
		os.Exit(2)
	}
}
