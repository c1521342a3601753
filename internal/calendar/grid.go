// Package calendar builds the month grid the planner UI renders: a fixed
// Sunday-first weekday header and six full weeks padded with neighboring
// months' days.
package calendar

import (
	"strconv"
	"time"

	"planner-backend/pkg/datekey"
)

// Weekdays is the fixed header row of the grid.
var Weekdays = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// MonthNames indexes month names by the 0-based month used throughout the
// grid API.
var MonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// BodyCells is the number of day cells in the grid: 6 rows of 7.
const BodyCells = 42

// Cell is one day cell of the grid body.
type Cell struct {
	Day     int         `json:"day"`
	InMonth bool        `json:"in_month"`
	Today   bool        `json:"today"`
	Key     datekey.Key `json:"key,omitempty"`  // set for in-month cells only
	Note    string      `json:"note,omitempty"` // mirrored note text, "" when none
}

// Grid is a rendered month.
type Grid struct {
	Month    int       `json:"month"` // 0-11
	Year     int       `json:"year"`
	Title    string    `json:"title"`
	Weekdays [7]string `json:"weekdays"`
	Cells    []Cell    `json:"cells"` // exactly BodyCells entries
}

// Build renders the grid for (month 0-11, year). Notes are looked up by
// day key for in-month cells; the today marker is set only when the
// displayed month and year match now.
func Build(month, year int, notes map[datekey.Key]string, now time.Time) Grid {
	grid := Grid{
		Month:    month,
		Year:     year,
		Title:    MonthNames[month] + " " + strconv.Itoa(year),
		Weekdays: Weekdays,
		Cells:    make([]Cell, 0, BodyCells),
	}

	first := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	firstWeekday := int(first.Weekday()) // Sunday == 0
	daysInMonth := first.AddDate(0, 1, -1).Day()
	daysInPrevMonth := first.AddDate(0, 0, -1).Day()

	showToday := now.Year() == year && int(now.Month())-1 == month

	// Trailing days of the previous month fill the cells before day 1.
	for i := firstWeekday - 1; i >= 0; i-- {
		grid.Cells = append(grid.Cells, Cell{Day: daysInPrevMonth - i})
	}

	for day := 1; day <= daysInMonth; day++ {
		key := datekey.New(year, month+1, day)
		grid.Cells = append(grid.Cells, Cell{
			Day:     day,
			InMonth: true,
			Today:   showToday && now.Day() == day,
			Key:     key,
			Note:    notes[key],
		})
	}

	// Leading days of the next month fill the remainder of the 6 rows.
	for day := 1; len(grid.Cells) < BodyCells; day++ {
		grid.Cells = append(grid.Cells, Cell{Day: day})
	}

	return grid
}

// NextMonth advances one month, wrapping the year after December.
func NextMonth(month, year int) (int, int) {
	month++
	if month > 11 {
		return 0, year + 1
	}
	return month, year
}

// PrevMonth steps back one month, wrapping the year before January.
func PrevMonth(month, year int) (int, int) {
	month--
	if month < 0 {
		return 11, year - 1
	}
	return month, year
}
