// Package dashboard assembles the view-model consumed by both the HTML
// page and the JSON endpoint. It owns the computation; rendering lives
// elsewhere.
package dashboard

import (
	"fmt"

	"github.com/Kim-dr/paper-explorer/models"
	"github.com/Kim-dr/paper-explorer/pkg/analytics"
	"github.com/Kim-dr/paper-explorer/pkg/db"
)

// Display sizes, matching the original dashboard layout.
const (
	TopJournalCount = 10
	TopWordCount    = 20
	WordChartBars   = 15
	SampleRows      = 10
)

// View is everything one dashboard request needs, computed for an
// inclusive year range.
type View struct {
	YearFrom    int                   `json:"year_from"`
	YearTo      int                   `json:"year_to"`
	DataYearMin int                   `json:"data_year_min"`
	DataYearMax int                   `json:"data_year_max"`
	Metrics     db.Metrics            `json:"metrics"`
	YearCounts  []db.YearCount        `json:"year_counts"`
	TopJournals []db.JournalCount     `json:"top_journals"`
	TopWords    []analytics.WordCount `json:"top_words"`
	Sample      []models.Paper        `json:"sample"`
}

// ClampRange normalizes a requested year range against the data bounds:
// reversed bounds are swapped and out-of-range values are pulled inside.
func ClampRange(lo, hi, dataMin, dataMax int) (int, int) {
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo < dataMin {
		lo = dataMin
	}
	if hi > dataMax {
		hi = dataMax
	}
	if lo > dataMax {
		lo = dataMax
	}
	if hi < dataMin {
		hi = dataMin
	}
	return lo, hi
}

// Build computes the full view for [lo, hi]. An empty result set yields
// a zero-state view, never an error.
func Build(store *db.DB, lo, hi int) (*View, error) {
	view := &View{YearFrom: lo, YearTo: hi}

	dataMin, dataMax, ok, err := store.YearBounds()
	if err != nil {
		return nil, fmt.Errorf("failed to read year bounds: %w", err)
	}
	if ok {
		view.DataYearMin, view.DataYearMax = dataMin, dataMax
	}

	metrics, err := store.Metrics(lo, hi)
	if err != nil {
		return nil, fmt.Errorf("failed to compute metrics: %w", err)
	}
	view.Metrics = *metrics

	if view.YearCounts, err = store.YearCounts(lo, hi); err != nil {
		return nil, fmt.Errorf("failed to compute year counts: %w", err)
	}
	if view.TopJournals, err = store.TopJournals(lo, hi, TopJournalCount); err != nil {
		return nil, fmt.Errorf("failed to compute top journals: %w", err)
	}

	titles, err := store.Titles(lo, hi)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch titles: %w", err)
	}
	view.TopWords = analytics.WordFrequencies(titles, TopWordCount)

	if view.Sample, err = store.SamplePapers(lo, hi, SampleRows); err != nil {
		return nil, fmt.Errorf("failed to sample papers: %w", err)
	}

	return view, nil
}
