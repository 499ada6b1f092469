package analytics

import (
	"testing"
	"time"
)

func TestMonthGrid(t *testing.T) {
	tests := []struct {
		name        string
		month       time.Month
		year        int
		wantLeading int
		wantDays    int
	}{
		{
			// May 2024 starts on a Wednesday: two padding cells on a
			// Monday-first grid.
			name:        "month starting wednesday",
			month:       time.May,
			year:        2024,
			wantLeading: 2,
			wantDays:    31,
		},
		{
			// April 2024 starts on a Monday: no padding.
			name:        "month starting monday",
			month:       time.April,
			year:        2024,
			wantLeading: 0,
			wantDays:    30,
		},
		{
			// September 2024 starts on a Sunday: six padding cells.
			name:        "month starting sunday",
			month:       time.September,
			year:        2024,
			wantLeading: 6,
			wantDays:    30,
		},
		{
			name:        "leap february",
			month:       time.February,
			year:        2024,
			wantLeading: 3, // 2024-02-01 is a Thursday
			wantDays:    29,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := MonthGrid(nil, tt.month, tt.year)

			if len(grid) != tt.wantLeading+tt.wantDays {
				t.Fatalf("grid has %d cells, want %d", len(grid), tt.wantLeading+tt.wantDays)
			}
			for i := 0; i < tt.wantLeading; i++ {
				if grid[i].InMonth || grid[i].Day != 0 || grid[i].Completed {
					t.Errorf("cell %d = %+v, want empty padding", i, grid[i])
				}
			}
			for i := 0; i < tt.wantDays; i++ {
				cell := grid[tt.wantLeading+i]
				if !cell.InMonth || cell.Day != i+1 {
					t.Errorf("cell %d = %+v, want in-month day %d", tt.wantLeading+i, cell, i+1)
				}
			}
		})
	}
}

func TestMonthGridMarksLoggedDays(t *testing.T) {
	logs := logsFor("2024-03-05", "2024-03-12")
	grid := MonthGrid(logs, time.March, 2024)

	for _, cell := range grid {
		if !cell.InMonth {
			continue
		}
		wantDone := cell.Day == 5 || cell.Day == 12
		if cell.Completed != wantDone {
			t.Errorf("day %d completed = %v, want %v", cell.Day, cell.Completed, wantDone)
		}
	}
}

func TestMonthGridIgnoresOtherMonths(t *testing.T) {
	// A log dated March 5th must not mark April 5th.
	grid := MonthGrid(logsFor("2024-03-05"), time.April, 2024)
	for _, cell := range grid {
		if cell.Completed {
			t.Errorf("day %d marked completed from a March log", cell.Day)
		}
	}
}
