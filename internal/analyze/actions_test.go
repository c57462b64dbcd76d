package analyze

import (
	"testing"

	"github.com/Kim-dr/paper-explorer/models"
	"github.com/Kim-dr/paper-explorer/pkg/dataset"
)

func fixtureTable() *dataset.Table {
	return &dataset.Table{Papers: []models.Paper{
		{Title: "Covid Vaccine Response", Year: 2020},
		{Title: "Hospital Capacity Models", Year: 2021},
		{Title: "Variant Surveillance Report", Year: 2022},
	}}
}

func TestFilterRange(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     int
	}{
		{"defaults keep full table", 0, 0, 3},
		{"closed subset", 2020, 2021, 2},
		{"single year", 2021, 2021, 1},
		{"open start", 0, 2020, 1},
		{"open end", 2022, 0, 1},
		{"clamped to data bounds", 1990, 2050, 3},
		{"reversed bounds swapped", 2021, 2020, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterRange(fixtureTable(), tt.from, tt.to)
			if got.Len() != tt.want {
				t.Errorf("filterRange(%d, %d) kept %d rows, want %d",
					tt.from, tt.to, got.Len(), tt.want)
			}
		})
	}
}

func TestFilterRangeEmptyTable(t *testing.T) {
	table := &dataset.Table{}
	if got := filterRange(table, 2020, 2021); got.Len() != 0 {
		t.Errorf("filterRange on empty table kept %d rows", got.Len())
	}
}
