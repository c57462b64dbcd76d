package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/Kim-dr/paper-explorer/internal/dashboard"
	"github.com/Kim-dr/paper-explorer/models"
	"github.com/Kim-dr/paper-explorer/pkg/analytics"
	"github.com/Kim-dr/paper-explorer/pkg/render"
)

// requestRange resolves the from/to query parameters against the data
// bounds. Missing or malformed values default to the full data range;
// anything out of range is clamped inside it.
func (s *Server) requestRange(r *http.Request) (lo, hi int, err error) {
	dataMin, dataMax, ok, err := s.store.YearBounds()
	if err != nil {
		return 0, 0, err
	}
	if !ok {
		// Empty store: fall back to the policy bound for display.
		dataMin, dataMax = models.DefaultYearMin, models.DefaultYearMax
	}

	lo, hi = dataMin, dataMax
	if v, convErr := strconv.Atoi(r.URL.Query().Get("from")); convErr == nil {
		lo = v
	}
	if v, convErr := strconv.Atoi(r.URL.Query().Get("to")); convErr == nil {
		hi = v
	}
	lo, hi = dashboard.ClampRange(lo, hi, dataMin, dataMax)
	return lo, hi, nil
}

// journalBar is one row of the horizontal journal chart; Pct is the bar
// width relative to the most frequent journal.
type journalBar struct {
	Journal string
	Count   int
	Pct     int
}

type pageData struct {
	View        *dashboard.View
	HasData     bool
	JournalBars []journalBar
	WordCloud   template.HTML
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	lo, hi, err := s.requestRange(r)
	if err != nil {
		s.serverError(w, err)
		return
	}
	view, err := dashboard.Build(s.store, lo, hi)
	if err != nil {
		s.serverError(w, err)
		return
	}

	data := pageData{
		View:    view,
		HasData: view.Metrics.TotalPapers > 0,
	}
	if len(view.TopJournals) > 0 {
		top := view.TopJournals[0].Count
		for _, jc := range view.TopJournals {
			data.JournalBars = append(data.JournalBars, journalBar{
				Journal: jc.Journal,
				Count:   jc.Count,
				Pct:     jc.Count * 100 / top,
			})
		}
	}
	// The cloud markup is generated from [a-z] tokens only; safe to
	// inline.
	data.WordCloud = template.HTML(render.WordCloudSVG(view.TopWords))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTmpl.Execute(w, data); err != nil {
		s.logger.Error("failed to render dashboard", "error", err)
	}
}

func (s *Server) handleAPI(w http.ResponseWriter, r *http.Request) {
	lo, hi, err := s.requestRange(r)
	if err != nil {
		s.serverError(w, err)
		return
	}
	view, err := dashboard.Build(s.store, lo, hi)
	if err != nil {
		s.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(view); err != nil {
		s.logger.Error("failed to encode view", "error", err)
	}
}

func (s *Server) handleYearChart(w http.ResponseWriter, r *http.Request) {
	lo, hi, err := s.requestRange(r)
	if err != nil {
		s.serverError(w, err)
		return
	}
	counts, err := s.store.YearCounts(lo, hi)
	if err != nil {
		s.serverError(w, err)
		return
	}

	// Render to a buffer so a failure never leaves a half-written 200.
	var buf bytes.Buffer
	if err := render.YearBarChart(counts, &buf); err != nil {
		s.chartError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

func (s *Server) handleWordChart(w http.ResponseWriter, r *http.Request) {
	lo, hi, err := s.requestRange(r)
	if err != nil {
		s.serverError(w, err)
		return
	}
	titles, err := s.store.Titles(lo, hi)
	if err != nil {
		s.serverError(w, err)
		return
	}
	words := analytics.WordFrequencies(titles, dashboard.TopWordCount)

	var buf bytes.Buffer
	if err := render.WordBarChart(words, dashboard.WordChartBars, &buf); err != nil {
		s.chartError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) serverError(w http.ResponseWriter, err error) {
	s.logger.Error("request failed", "error", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// chartError maps an empty chart to 404 so the page's conditional
// rendering stays the only place charts are suppressed; anything else
// is a real failure and must not pass for an image.
func (s *Server) chartError(w http.ResponseWriter, err error) {
	if errors.Is(err, render.ErrNoData) {
		http.Error(w, "no data to chart", http.StatusNotFound)
		return
	}
	s.logger.Error("failed to render chart", "error", err)
	http.Error(w, "failed to render chart", http.StatusInternalServerError)
}
