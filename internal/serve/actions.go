// Package serve implements the `serve` command: load the dataset once,
// build the in-memory statistics store, and run the dashboard server.
package serve

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/Kim-dr/paper-explorer/internal/web"
	"github.com/Kim-dr/paper-explorer/models"
	"github.com/Kim-dr/paper-explorer/pkg/dataset"
	"github.com/Kim-dr/paper-explorer/pkg/db"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the dashboard HTTP server",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "config.yaml", Usage: "Path to YAML config file"},
			&cli.StringFlag{Name: "addr", Usage: "Listen address (overrides config)"},
			&cli.StringSliceFlag{Name: "data", Usage: "Candidate data file, tried in order (overrides config)"},
			&cli.IntFlag{Name: "sample-cap", Usage: "Maximum rows retained after cleaning (overrides config)"},
			&cli.BoolFlag{Name: "quiet", Usage: "Log errors only"},
		},
		Action: serveAction,
	}
}

func serveAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}
	if addr := c.String("addr"); addr != "" {
		cfg.ListenAddr = addr
	}
	if data := c.StringSlice("data"); len(data) > 0 {
		cfg.DataPaths = data
	}
	if sampleCap := c.Int("sample-cap"); sampleCap > 0 {
		cfg.SampleCap = sampleCap
	}

	loader := dataset.NewLoader(cfg.DataPaths, cfg.YearMin, cfg.YearMax)
	table, err := loader.Load(cfg.SampleCap)
	if err != nil {
		if errors.Is(err, dataset.ErrDataUnavailable) {
			// Nothing to render; this is the one fatal startup condition.
			return cli.Exit(fmt.Sprintf("ERROR: %v", err), 1)
		}
		return err
	}
	logger.Info("dataset loaded", "papers", table.Len(), "sample_cap", cfg.SampleCap)

	store, err := db.Open()
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.InsertPapers(table.Papers); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := web.NewServer(cfg.ListenAddr, store, logger)
	return server.Start(ctx)
}
