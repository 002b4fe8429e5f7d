package main

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	adapthttp "consumption/internal/adapter/http"
	"consumption/internal/adapter/memory"
	"consumption/internal/app"
	"consumption/internal/clock"
	"consumption/internal/config"
	"consumption/internal/eventlog"
	"consumption/internal/logging"
	"consumption/internal/shell"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:          "consumption",
		Short:        "Single-user in-memory food and drink calorie tracker",
		SilenceUsage: true,
		RunE:         runShell,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API instead of the interactive shell",
		RunE:  runServe,
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	store := memory.New()
	events := eventlog.NewWriterSink(os.Stdout, clock.NewService())
	tracker := app.NewTrackerService(store, events)
	totals := app.NewTotalsService(store, cfg.Tracker.DailyCalorieLimit)

	reader := shell.NewLinerReader()
	defer func() { _ = reader.Close() }()

	delay := time.Duration(cfg.Shell.StartupDelayMs) * time.Millisecond
	return shell.New(tracker, totals, reader, os.Stdout, delay).Run(cmd.Context())
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Logging.Development)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	store := memory.New()
	tracker := app.NewTrackerService(store, eventlog.NewZapSink(log))
	totals := app.NewTotalsService(store, cfg.Tracker.DailyCalorieLimit)

	h := adapthttp.New(tracker, totals, log).Handler()
	log.Infow("listening", "addr", cfg.Server.Addr())
	if err := http.ListenAndServe(cfg.Server.Addr(), h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
