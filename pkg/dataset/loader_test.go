package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/Kim-dr/paper-explorer/models"
)

const csvHeader = "cord_uid,title,publish_time,journal,authors\n"

// writeCSV writes a metadata fixture into dir and returns its path.
func writeCSV(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(csvHeader+body), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestLoadCleansRows(t *testing.T) {
	dir := t.TempDir()
	body := "" +
		"a1,Rapid COVID-19 Testing Methods,2020-03-15,Nature,\"Smith, J.\"\n" +
		"a2,,2020-04-01,Lancet,Jones\n" + // missing title: dropped
		"a3,Viral Dynamics,not-a-date,Lancet,Jones\n" + // bad date: dropped
		"a4,Early Outbreak Report,2018-12-01,BMJ,Lee\n" + // year below bound: dropped
		"a5,Post Pandemic Review,2024-01-01,BMJ,Lee\n" + // year above bound: dropped
		"a6,Vaccine Efficacy Trial,2021-06-30,,Chan\n" // empty journal is fine
	path := writeCSV(t, dir, "metadata.csv", body)

	loader := NewLoader([]string{path}, models.DefaultYearMin, models.DefaultYearMax)
	table, err := loader.Load(0)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if table.Len() != 2 {
		t.Fatalf("retained %d rows, want 2: %+v", table.Len(), table.Papers)
	}
	for _, p := range table.Papers {
		if p.Title == "" {
			t.Error("retained row with empty title")
		}
		if p.Year < models.DefaultYearMin || p.Year > models.DefaultYearMax {
			t.Errorf("retained row with out-of-bound year %d", p.Year)
		}
	}

	first := table.Papers[0]
	if first.Title != "Rapid COVID-19 Testing Methods" {
		t.Errorf("unexpected first title %q", first.Title)
	}
	if first.TitleWordCount != 4 {
		t.Errorf("TitleWordCount = %d, want 4", first.TitleWordCount)
	}
	if first.Year != 2020 || first.Journal != "Nature" {
		t.Errorf("unexpected first record: %+v", first)
	}
}

func TestLoadTriesCandidatesInOrder(t *testing.T) {
	dir := t.TempDir()
	sample := writeCSV(t, dir, "metadata_sample.csv",
		"s1,Sample Only Paper,2021-01-01,Cell,Wu\n")
	missing := filepath.Join(dir, "metadata.csv")

	loader := NewLoader([]string{missing, sample}, models.DefaultYearMin, models.DefaultYearMax)
	table, err := loader.Load(0)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if table.Len() != 1 || table.Papers[0].Title != "Sample Only Paper" {
		t.Errorf("expected fallback file to load, got %+v", table.Papers)
	}
}

func TestLoadDataUnavailable(t *testing.T) {
	dir := t.TempDir()
	loader := NewLoader(
		[]string{filepath.Join(dir, "a.csv"), filepath.Join(dir, "b.csv")},
		models.DefaultYearMin, models.DefaultYearMax,
	)
	_, err := loader.Load(0)
	if err == nil {
		t.Fatal("Load() succeeded with no data files")
	}
	if !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("error %v does not wrap ErrDataUnavailable", err)
	}
}

func TestLoadMissingColumn(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "metadata.csv")
	if err := os.WriteFile(path, []byte("title,journal\nA Paper,Nature\n"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	loader := NewLoader([]string{path}, models.DefaultYearMin, models.DefaultYearMax)
	if _, err := loader.Load(0); err == nil {
		t.Fatal("Load() succeeded on file without publish_time column")
	}
}

func TestLoadSamplingDeterministic(t *testing.T) {
	dir := t.TempDir()
	titles := []string{
		"Antibody Response Study", "Ventilation Strategies Review",
		"Transmission Modeling Approaches", "Serology Survey Results",
		"Lockdown Impact Analysis", "Variant Surveillance Report",
		"Mask Effectiveness Trial", "Hospital Capacity Planning",
	}
	var body string
	for _, title := range titles {
		body += "id," + title + ",2020-05-01,Nature,Someone\n"
	}
	path := writeCSV(t, dir, "metadata.csv", body)

	load := func() *Table {
		loader := NewLoader([]string{path}, models.DefaultYearMin, models.DefaultYearMax)
		table, err := loader.Load(5)
		if err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		return table
	}

	a, b := load(), load()
	if a.Len() != 5 || b.Len() != 5 {
		t.Fatalf("sampled sizes = %d, %d, want 5", a.Len(), b.Len())
	}
	if !reflect.DeepEqual(a.Papers, b.Papers) {
		t.Errorf("repeated loads sampled different rows:\n%v\n%v", a.Papers, b.Papers)
	}
}

func TestLoadMemoized(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "metadata.csv",
		"m1,Memoization Check,2022-02-02,JAMA,Park\n")

	loader := NewLoader([]string{path}, models.DefaultYearMin, models.DefaultYearMax)
	first, err := loader.Load(100)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Remove the file: a cache hit must not re-read it.
	if err := os.Remove(path); err != nil {
		t.Fatalf("failed to remove fixture: %v", err)
	}
	second, err := loader.Load(100)
	if err != nil {
		t.Fatalf("memoized Load() failed: %v", err)
	}
	if first != second {
		t.Error("memoized Load() returned a different table")
	}

	// A different cap misses the cache and now fails.
	if _, err := loader.Load(10); err == nil {
		t.Error("Load() with new cap should have re-read the missing file")
	}
}

func TestFilterYearsInclusive(t *testing.T) {
	table := &Table{Papers: []models.Paper{
		{Title: "A", Year: 2019},
		{Title: "B", Year: 2020},
		{Title: "C", Year: 2021},
		{Title: "D", Year: 2023},
	}}

	got := table.FilterYears(2020, 2021)
	if got.Len() != 2 || got.Papers[0].Title != "B" || got.Papers[1].Title != "C" {
		t.Errorf("FilterYears(2020, 2021) = %+v", got.Papers)
	}

	lo, hi, ok := table.YearBounds()
	if !ok || lo != 2019 || hi != 2023 {
		t.Fatalf("YearBounds() = (%d, %d, %v)", lo, hi, ok)
	}

	full := table.FilterYears(lo, hi)
	if full.Len() != table.Len() {
		t.Errorf("full-range filter kept %d of %d rows", full.Len(), table.Len())
	}

	// Filter must copy, never alias.
	full.Papers[0].Title = "mutated"
	if table.Papers[0].Title != "A" {
		t.Error("FilterYears aliases the source table")
	}
}

func TestYearBoundsEmpty(t *testing.T) {
	var table Table
	if _, _, ok := table.YearBounds(); ok {
		t.Error("YearBounds() on empty table reported ok")
	}
	if got := table.FilterYears(2019, 2023); got.Len() != 0 {
		t.Errorf("filtering empty table produced %d rows", got.Len())
	}
}
