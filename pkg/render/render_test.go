package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Kim-dr/paper-explorer/pkg/analytics"
	"github.com/Kim-dr/paper-explorer/pkg/db"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestYearBarChart(t *testing.T) {
	counts := []db.YearCount{{Year: 2020, Count: 120}, {Year: 2021, Count: 80}}

	var buf bytes.Buffer
	if err := YearBarChart(counts, &buf); err != nil {
		t.Fatalf("YearBarChart() failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Error("output is not a PNG")
	}
}

func TestYearBarChartSingleYear(t *testing.T) {
	// One bucket means min == max; the chart must still render.
	var buf bytes.Buffer
	if err := YearBarChart([]db.YearCount{{Year: 2020, Count: 5}}, &buf); err != nil {
		t.Fatalf("YearBarChart() with one year failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Error("output is not a PNG")
	}
}

func TestYearBarChartUniformCounts(t *testing.T) {
	counts := []db.YearCount{{Year: 2020, Count: 7}, {Year: 2021, Count: 7}, {Year: 2022, Count: 7}}

	var buf bytes.Buffer
	if err := YearBarChart(counts, &buf); err != nil {
		t.Fatalf("YearBarChart() with uniform counts failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Error("output is not a PNG")
	}
}

func TestWordBarChartUniformCounts(t *testing.T) {
	// Every word appearing once is the common case for narrow ranges.
	words := []analytics.WordCount{{Word: "covid", Count: 1}}

	var buf bytes.Buffer
	if err := WordBarChart(words, 15, &buf); err != nil {
		t.Fatalf("WordBarChart() with a single word failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Error("output is not a PNG")
	}
}

func TestYearBarChartNoData(t *testing.T) {
	var buf bytes.Buffer
	err := YearBarChart(nil, &buf)
	if !errors.Is(err, ErrNoData) {
		t.Errorf("err = %v, want ErrNoData", err)
	}
	if buf.Len() != 0 {
		t.Error("wrote bytes despite having no data")
	}
}

func TestWordBarChartTruncates(t *testing.T) {
	words := []analytics.WordCount{
		{Word: "covid", Count: 9}, {Word: "vaccine", Count: 7},
		{Word: "patients", Count: 5}, {Word: "study", Count: 3},
	}

	var buf bytes.Buffer
	if err := WordBarChart(words, 2, &buf); err != nil {
		t.Fatalf("WordBarChart() failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Error("output is not a PNG")
	}

	if err := WordBarChart(nil, 15, &buf); !errors.Is(err, ErrNoData) {
		t.Errorf("empty words err = %v, want ErrNoData", err)
	}
}

func TestWordCloudSVG(t *testing.T) {
	words := []analytics.WordCount{
		{Word: "covid", Count: 10},
		{Word: "vaccine", Count: 5},
		{Word: "response", Count: 1},
	}

	svg := WordCloudSVG(words)
	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatalf("not an SVG fragment: %q", svg)
	}
	for _, wc := range words {
		if !strings.Contains(svg, ">"+wc.Word+"<") {
			t.Errorf("word %q missing from cloud", wc.Word)
		}
	}

	// Deterministic output for identical input.
	if svg != WordCloudSVG(words) {
		t.Error("repeated renders differ")
	}
}

func TestWordCloudSVGEmpty(t *testing.T) {
	if got := WordCloudSVG(nil); got != "" {
		t.Errorf("WordCloudSVG(nil) = %q, want empty", got)
	}
}
