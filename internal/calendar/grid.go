// Package calendar renders a navigable month grid as rows of labeled,
// addressable buttons and computes month paging transitions.
package calendar

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Galkurta/HamsterKombat/internal/callback"
)

// Cell is one button of the rendered grid.
type Cell struct {
	Label  string
	Action callback.Action
}

// Screen is a full month grid: title row, weekday header, week-major day
// rows, paging row, back row. It is regenerated whole on every navigation
// step.
type Screen struct {
	Rows [][]Cell
}

var weekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Render builds the grid for the given month. Zero year/month default to the
// current date. Weeks start Monday; padding cells outside the month render
// blank and non-actionable.
func Render(year, month int) Screen {
	now := time.Now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}

	var rows [][]Cell

	title := fmt.Sprintf("%s %d", time.Month(month), year)
	rows = append(rows, []Cell{{Label: title, Action: callback.Action{Kind: callback.KindIgnore}}})

	header := make([]Cell, 0, 7)
	for _, label := range weekdayLabels {
		header = append(header, Cell{Label: label, Action: callback.Action{Kind: callback.KindIgnore}})
	}
	rows = append(rows, header)

	for _, week := range monthWeeks(year, time.Month(month)) {
		cells := make([]Cell, 0, 7)
		for _, day := range week {
			if day == 0 {
				cells = append(cells, Cell{Label: " ", Action: callback.Action{Kind: callback.KindIgnore}})
				continue
			}
			cells = append(cells, Cell{
				Label:  strconv.Itoa(day),
				Action: callback.Action{Kind: callback.KindPickDay, Day: day, Month: month, Year: year},
			})
		}
		rows = append(rows, cells)
	}

	rows = append(rows, []Cell{
		{Label: "⬅️", Action: callback.Action{Kind: callback.KindPageMonth, Dir: -1, Month: month, Year: year}},
		{Label: "➡️", Action: callback.Action{Kind: callback.KindPageMonth, Dir: +1, Month: month, Year: year}},
	})
	rows = append(rows, []Cell{{Label: "🔙 Back", Action: callback.Action{Kind: callback.KindOpenMenu}}})

	return Screen{Rows: rows}
}

// Advance pages the calendar one month in the given direction with year
// rollover. dir is -1 for prev, +1 for next.
func Advance(dir, month, year int) (int, int) {
	switch {
	case dir < 0 && month == 1:
		return 12, year - 1
	case dir < 0:
		return month - 1, year
	case month == 12:
		return 1, year + 1
	default:
		return month + 1, year
	}
}

// monthWeeks lays the month out week-major, Monday first, with zeroes padding
// days that belong to the neighboring months.
func monthWeeks(year int, month time.Month) [][7]int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// Monday-indexed weekday of the 1st.
	offset := (int(first.Weekday()) + 6) % 7
	total := daysIn(year, month)

	var weeks [][7]int
	day := 1
	for day <= total {
		var week [7]int
		for i := 0; i < 7; i++ {
			if len(weeks) == 0 && i < offset {
				continue
			}
			if day > total {
				break
			}
			week[i] = day
			day++
		}
		weeks = append(weeks, week)
	}
	return weeks
}
