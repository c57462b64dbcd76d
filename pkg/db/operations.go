package db

import (
	"fmt"

	"github.com/Kim-dr/paper-explorer/models"
)

// YearCount is the number of publications in one year.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// JournalCount is the number of publications in one journal.
type JournalCount struct {
	Journal string `json:"journal"`
	Count   int    `json:"count"`
}

// Metrics are the scalar summary statistics shown on the dashboard.
type Metrics struct {
	TotalPapers    int     `json:"total_papers"`
	UniqueJournals int     `json:"unique_journals"`
	AvgTitleWords  float64 `json:"avg_title_words"`
	PeakYear       int     `json:"peak_year"`
	PeakCount      int     `json:"peak_count"`
	YearsCovered   int     `json:"years_covered"`
}

// InsertPapers bulk-loads the cleaned records in one transaction. It is
// called once after load; the store is read-only afterwards.
func (db *DB) InsertPapers(papers []models.Paper) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO papers (title, authors, journal, year, title_word_count)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range papers {
		if _, err := stmt.Exec(p.Title, p.Authors, p.Journal, p.Year, p.TitleWordCount); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to insert paper: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit papers: %w", err)
	}
	return nil
}

// YearCounts returns publications per year for the inclusive range,
// ascending by year. Years with no papers are absent.
func (db *DB) YearCounts(lo, hi int) ([]YearCount, error) {
	rows, err := db.Query(`
		SELECT year, COUNT(*)
		FROM papers
		WHERE year BETWEEN ? AND ?
		GROUP BY year
		ORDER BY year
	`, lo, hi)
	if err != nil {
		return nil, fmt.Errorf("failed to query year counts: %w", err)
	}
	defer rows.Close()

	var counts []YearCount
	for rows.Next() {
		var yc YearCount
		if err := rows.Scan(&yc.Year, &yc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan year count: %w", err)
		}
		counts = append(counts, yc)
	}
	return counts, rows.Err()
}

// TopJournals returns the n most frequent journals in the range,
// descending by count. Records with an empty journal are excluded.
func (db *DB) TopJournals(lo, hi, n int) ([]JournalCount, error) {
	rows, err := db.Query(`
		SELECT journal, COUNT(*) AS c
		FROM papers
		WHERE year BETWEEN ? AND ? AND journal != ''
		GROUP BY journal
		ORDER BY c DESC, journal
		LIMIT ?
	`, lo, hi, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query top journals: %w", err)
	}
	defer rows.Close()

	var counts []JournalCount
	for rows.Next() {
		var jc JournalCount
		if err := rows.Scan(&jc.Journal, &jc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan journal count: %w", err)
		}
		counts = append(counts, jc)
	}
	return counts, rows.Err()
}

// Metrics computes the summary statistics for the range. An empty range
// yields all-zero metrics, not an error.
func (db *DB) Metrics(lo, hi int) (*Metrics, error) {
	m := &Metrics{}
	var minYear, maxYear *int

	err := db.QueryRow(`
		SELECT COUNT(*),
		       COUNT(DISTINCT CASE WHEN journal != '' THEN journal END),
		       COALESCE(AVG(title_word_count), 0),
		       MIN(year), MAX(year)
		FROM papers
		WHERE year BETWEEN ? AND ?
	`, lo, hi).Scan(&m.TotalPapers, &m.UniqueJournals, &m.AvgTitleWords, &minYear, &maxYear)
	if err != nil {
		return nil, fmt.Errorf("failed to query metrics: %w", err)
	}
	if minYear != nil && maxYear != nil {
		m.YearsCovered = *maxYear - *minYear + 1
	}

	if m.TotalPapers > 0 {
		// Peak year: highest count, earliest year on a tie.
		err = db.QueryRow(`
			SELECT year, COUNT(*) AS c
			FROM papers
			WHERE year BETWEEN ? AND ?
			GROUP BY year
			ORDER BY c DESC, year
			LIMIT 1
		`, lo, hi).Scan(&m.PeakYear, &m.PeakCount)
		if err != nil {
			return nil, fmt.Errorf("failed to query peak year: %w", err)
		}
	}

	return m, nil
}

// Titles returns the titles of all papers in the range, in insert order.
func (db *DB) Titles(lo, hi int) ([]string, error) {
	rows, err := db.Query(`
		SELECT title FROM papers
		WHERE year BETWEEN ? AND ?
		ORDER BY paper_id
	`, lo, hi)
	if err != nil {
		return nil, fmt.Errorf("failed to query titles: %w", err)
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("failed to scan title: %w", err)
		}
		titles = append(titles, title)
	}
	return titles, rows.Err()
}

// SamplePapers returns up to n random papers from the range for the
// sample table. The draw is intentionally unseeded.
func (db *DB) SamplePapers(lo, hi, n int) ([]models.Paper, error) {
	rows, err := db.Query(`
		SELECT title, authors, journal, year, title_word_count
		FROM papers
		WHERE year BETWEEN ? AND ?
		ORDER BY RANDOM()
		LIMIT ?
	`, lo, hi, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query sample: %w", err)
	}
	defer rows.Close()

	var papers []models.Paper
	for rows.Next() {
		var p models.Paper
		if err := rows.Scan(&p.Title, &p.Authors, &p.Journal, &p.Year, &p.TitleWordCount); err != nil {
			return nil, fmt.Errorf("failed to scan paper: %w", err)
		}
		papers = append(papers, p)
	}
	return papers, rows.Err()
}

// YearBounds returns the minimum and maximum year in the store. The
// second return is false when the store is empty.
func (db *DB) YearBounds() (lo, hi int, ok bool, err error) {
	var minYear, maxYear *int
	if err = db.QueryRow(`SELECT MIN(year), MAX(year) FROM papers`).Scan(&minYear, &maxYear); err != nil {
		return 0, 0, false, fmt.Errorf("failed to query year bounds: %w", err)
	}
	if minYear == nil || maxYear == nil {
		return 0, 0, false, nil
	}
	return *minYear, *maxYear, true, nil
}
