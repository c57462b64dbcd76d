// Package dataset loads and cleans the paper-metadata CSV. The loader is
// the only place records are created; everything downstream treats the
// resulting table as read-only.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"sort"
	"strings"

	"github.com/araddon/dateparse"

	"github.com/Kim-dr/paper-explorer/models"
	"github.com/Kim-dr/paper-explorer/pkg/caching"
)

// ErrDataUnavailable means none of the candidate data files exist. There
// is no partial-success mode: either a table comes back or this error.
var ErrDataUnavailable = errors.New("no dataset file available")

// sampleSeed fixes the downsampling RNG so repeated loads of the same
// file produce identical tables.
const sampleSeed = 42

var requiredColumns = []string{"title", "publish_time", "journal", "authors"}

// Loader reads, cleans, and memoizes the dataset. Rows failing a cleaning
// predicate (missing title, unparseable date, out-of-bound year) are
// silently dropped; that is a per-row condition, not an error.
type Loader struct {
	paths   []string
	yearMin int
	yearMax int
	memo    *caching.Memo[*Table]
}

// NewLoader creates a loader over the candidate file paths, tried in
// order, retaining only rows whose derived year falls in the inclusive
// [yearMin, yearMax] bound.
func NewLoader(paths []string, yearMin, yearMax int) *Loader {
	return &Loader{
		paths:   paths,
		yearMin: yearMin,
		yearMax: yearMax,
		memo:    caching.NewMemo[*Table](),
	}
}

// Load returns the cleaned table, downsampled to at most sampleCap rows.
// The result is memoized per sampleCap: a second call with the same cap
// returns the cached table without touching the filesystem.
func (l *Loader) Load(sampleCap int) (*Table, error) {
	if table, ok := l.memo.Get(sampleCap); ok {
		return table, nil
	}

	f, err := l.openFirst()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	table, err := l.parse(f)
	if err != nil {
		return nil, err
	}

	if sampleCap > 0 && table.Len() > sampleCap {
		table = downsample(table, sampleCap)
	}

	l.memo.Set(sampleCap, table)
	return table, nil
}

// openFirst opens the first candidate path that exists.
func (l *Loader) openFirst() (*os.File, error) {
	for _, path := range l.paths {
		f, err := os.Open(path)
		if err == nil {
			return f, nil
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
	}
	return nil, fmt.Errorf("%w: tried %s", ErrDataUnavailable, strings.Join(l.paths, ", "))
}

func (l *Loader) parse(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("data file missing required column %q", name)
		}
	}

	// Journals are a small closed set repeated across many rows; intern
	// them so every row shares one backing string.
	journals := make(map[string]string)
	table := &Table{}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A malformed row is dropped like any other rejected row.
			continue
		}

		paper, ok := l.cleanRow(record, cols, journals)
		if !ok {
			continue
		}
		table.Papers = append(table.Papers, paper)
	}

	return table, nil
}

// cleanRow applies the cleaning predicates to one raw CSV record. The
// second return is false when the row is rejected.
func (l *Loader) cleanRow(record []string, cols map[string]int, journals map[string]string) (models.Paper, bool) {
	field := func(name string) string {
		i := cols[name]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	title := field("title")
	if title == "" {
		return models.Paper{}, false
	}

	publish := field("publish_time")
	if publish == "" {
		return models.Paper{}, false
	}
	publishedAt, err := dateparse.ParseAny(publish)
	if err != nil {
		return models.Paper{}, false
	}

	year := publishedAt.Year()
	if year < l.yearMin || year > l.yearMax {
		return models.Paper{}, false
	}

	journal := field("journal")
	if interned, ok := journals[journal]; ok {
		journal = interned
	} else {
		journals[journal] = journal
	}

	return models.Paper{
		Title:          title,
		Authors:        field("authors"),
		Journal:        journal,
		Year:           year,
		TitleWordCount: len(strings.Fields(title)),
	}, true
}

// downsample keeps exactly n rows, chosen by a fixed-seed permutation
// and re-sorted into load order so the result is stable.
func downsample(table *Table, n int) *Table {
	rng := rand.New(rand.NewSource(sampleSeed))
	idx := rng.Perm(table.Len())[:n]
	sort.Ints(idx)

	sampled := &Table{Papers: make([]models.Paper, 0, n)}
	for _, i := range idx {
		sampled.Papers = append(sampled.Papers, table.Papers[i])
	}
	return sampled
}
