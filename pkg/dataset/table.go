package dataset

import "github.com/Kim-dr/paper-explorer/models"

// Table is the cleaned, immutable in-memory dataset. Filtering copies;
// rows are never mutated after load.
type Table struct {
	Papers []models.Paper
}

// Len returns the number of retained records.
func (t *Table) Len() int {
	return len(t.Papers)
}

// FilterYears returns a fresh table holding the records with
// lo <= year <= hi, inclusive on both ends.
func (t *Table) FilterYears(lo, hi int) *Table {
	out := &Table{Papers: make([]models.Paper, 0, len(t.Papers))}
	for _, p := range t.Papers {
		if p.Year >= lo && p.Year <= hi {
			out.Papers = append(out.Papers, p)
		}
	}
	return out
}

// YearBounds returns the minimum and maximum year present in the table.
// The second return is false for an empty table.
func (t *Table) YearBounds() (lo, hi int, ok bool) {
	if len(t.Papers) == 0 {
		return 0, 0, false
	}
	lo, hi = t.Papers[0].Year, t.Papers[0].Year
	for _, p := range t.Papers[1:] {
		if p.Year < lo {
			lo = p.Year
		}
		if p.Year > hi {
			hi = p.Year
		}
	}
	return lo, hi, true
}

// Titles returns the raw titles of all records, in table order.
func (t *Table) Titles() []string {
	titles := make([]string, len(t.Papers))
	for i, p := range t.Papers {
		titles[i] = p.Title
	}
	return titles
}
