// Package stats implements the `stats` command: print dataset summary
// statistics as JSON.
package stats

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/Kim-dr/paper-explorer/models"
	"github.com/Kim-dr/paper-explorer/pkg/dataset"
	"github.com/Kim-dr/paper-explorer/pkg/db"
)

type output struct {
	Metrics    *db.Metrics    `json:"metrics"`
	YearCounts []db.YearCount `json:"year_counts"`
}

func Command() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Print dataset summary statistics as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "config.yaml", Usage: "Path to YAML config file"},
			&cli.StringSliceFlag{Name: "data", Usage: "Candidate data file, tried in order (overrides config)"},
		},
		Action: statsAction,
	}
}

func statsAction(c *cli.Context) error {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}
	if data := c.StringSlice("data"); len(data) > 0 {
		cfg.DataPaths = data
	}

	loader := dataset.NewLoader(cfg.DataPaths, cfg.YearMin, cfg.YearMax)
	table, err := loader.Load(cfg.SampleCap)
	if err != nil {
		return err
	}

	store, err := db.Open()
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.InsertPapers(table.Papers); err != nil {
		return err
	}

	out := output{}
	if out.Metrics, err = store.Metrics(cfg.YearMin, cfg.YearMax); err != nil {
		return err
	}
	if out.YearCounts, err = store.YearCounts(cfg.YearMin, cfg.YearMax); err != nil {
		return err
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
