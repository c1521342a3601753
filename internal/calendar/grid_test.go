package calendar

import (
	"testing"
	"time"

	"planner-backend/pkg/datekey"
)

func TestBuild_AlwaysFortyTwoBodyCells(t *testing.T) {
	cases := []struct {
		month, year int
	}{
		{0, 2025},  // January
		{1, 2024},  // leap February
		{1, 2025},  // non-leap February
		{11, 2025}, // December
		{5, 2026},  // June starting midweek
		{2, 2025},  // March 2025 starts on a Saturday
	}
	for _, c := range cases {
		grid := Build(c.month, c.year, nil, time.Time{})
		if len(grid.Cells) != BodyCells {
			t.Errorf("month %d/%d: want %d cells, got %d", c.month, c.year, BodyCells, len(grid.Cells))
		}
		if len(grid.Weekdays) != 7 {
			t.Errorf("month %d/%d: want 7 weekday headers", c.month, c.year)
		}
	}
}

func TestBuild_DayOnePosition(t *testing.T) {
	// March 2025 begins on a Saturday (weekday index 6).
	grid := Build(2, 2025, nil, time.Time{})

	for i, cell := range grid.Cells[:7] {
		if cell.InMonth {
			if i != 6 {
				t.Fatalf("day 1 at index %d, want 6", i)
			}
			if cell.Day != 1 {
				t.Fatalf("first in-month cell is day %d", cell.Day)
			}
			return
		}
	}
	t.Fatal("day 1 not found in the first week")
}

func TestBuild_NeighborMonthPadding(t *testing.T) {
	// March 2025: six leading cells from February (23..28), then 1..31,
	// then April days to fill 42.
	grid := Build(2, 2025, nil, time.Time{})

	if grid.Cells[0].Day != 23 || grid.Cells[0].InMonth {
		t.Fatalf("first cell should be Feb 23, got %+v", grid.Cells[0])
	}
	last := grid.Cells[len(grid.Cells)-1]
	if last.InMonth || last.Day != 5 {
		t.Fatalf("last cell should be Apr 5, got %+v", last)
	}
}

func TestBuild_NotesAndToday(t *testing.T) {
	notes := map[datekey.Key]string{
		datekey.Key("2025-03-05"): "• Buy milk",
	}
	now := time.Date(2025, time.March, 5, 10, 0, 0, 0, time.UTC)
	grid := Build(2, 2025, notes, now)

	var found bool
	for _, cell := range grid.Cells {
		if cell.InMonth && cell.Day == 5 {
			found = true
			if cell.Note != "• Buy milk" {
				t.Errorf("note not attached: %+v", cell)
			}
			if !cell.Today {
				t.Error("today marker missing on the current day")
			}
		} else if cell.Today {
			t.Errorf("today marker on wrong cell: %+v", cell)
		}
	}
	if !found {
		t.Fatal("March 5 cell missing")
	}

	// Same instant, different displayed month: no today marker at all.
	grid = Build(3, 2025, nil, now)
	for _, cell := range grid.Cells {
		if cell.Today {
			t.Fatalf("today marker must not appear outside the real current month: %+v", cell)
		}
	}
}

func TestMonthNavigationWrapsYear(t *testing.T) {
	if m, y := NextMonth(11, 2025); m != 0 || y != 2026 {
		t.Fatalf("December forward: got %d/%d", m, y)
	}
	if m, y := PrevMonth(0, 2026); m != 11 || y != 2025 {
		t.Fatalf("January back: got %d/%d", m, y)
	}
	if m, y := NextMonth(4, 2025); m != 5 || y != 2025 {
		t.Fatalf("ordinary forward: got %d/%d", m, y)
	}
}
