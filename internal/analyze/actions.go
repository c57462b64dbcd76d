// Package analyze implements the `analyze` command: print the most
// common title words for the loaded dataset.
package analyze

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/Kim-dr/paper-explorer/internal/dashboard"
	"github.com/Kim-dr/paper-explorer/models"
	"github.com/Kim-dr/paper-explorer/pkg/analytics"
	"github.com/Kim-dr/paper-explorer/pkg/dataset"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "analyze",
		Usage: "Print the most common words in paper titles",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "config.yaml", Usage: "Path to YAML config file"},
			&cli.StringSliceFlag{Name: "data", Usage: "Candidate data file, tried in order (overrides config)"},
			&cli.IntFlag{Name: "top", Value: 20, Usage: "Number of words to print"},
			&cli.IntFlag{Name: "from", Usage: "Start year (defaults to the data minimum)"},
			&cli.IntFlag{Name: "to", Usage: "End year (defaults to the data maximum)"},
		},
		Action: analyzeAction,
	}
}

func analyzeAction(c *cli.Context) error {
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

	table = filterRange(table, c.Int("from"), c.Int("to"))

	words := analytics.WordFrequencies(table.Titles(), c.Int("top"))
	if len(words) == 0 {
		fmt.Println("No words to report.")
		return nil
	}
	for i, wc := range words {
		fmt.Printf("%d. %s: %d\n", i+1, wc.Word, wc.Count)
	}
	return nil
}

// filterRange applies the optional year range to the loaded table. Zero
// values fall back to the respective data bound; anything outside the
// data bounds is clamped inside them.
func filterRange(table *dataset.Table, from, to int) *dataset.Table {
	lo, hi, ok := table.YearBounds()
	if !ok {
		return table
	}
	if from == 0 {
		from = lo
	}
	if to == 0 {
		to = hi
	}
	from, to = dashboard.ClampRange(from, to, lo, hi)
	return table.FilterYears(from, to)
}
