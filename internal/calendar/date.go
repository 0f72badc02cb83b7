package calendar

import (
	"fmt"
	"time"
)

// Date is a validated civil calendar date.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate validates day against the real length of the month (leap years
// included) and rejects anything outside the civil calendar.
func NewDate(year, month, day int) (Date, error) {
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("calendar: month %d out of range", month)
	}
	if day < 1 || day > daysIn(year, time.Month(month)) {
		return Date{}, fmt.Errorf("calendar: day %d out of range for %s %d", day, time.Month(month), year)
	}
	return Date{year: year, month: time.Month(month), day: day}, nil
}

func (d Date) Year() int         { return d.year }
func (d Date) Month() time.Month { return d.month }
func (d Date) Day() int          { return d.day }

// Key renders the date the way the cipher page labels its entries: month
// name and day, no year.
func (d Date) Key() string {
	return fmt.Sprintf("%s %d", d.month, d.day)
}

// Full renders the date the way the combo-cards page labels its entries.
func (d Date) Full() string {
	return fmt.Sprintf("%s %d, %d", d.month, d.day, d.year)
}

// daysIn returns the number of days in the given month. Day 0 of the next
// month is the last day of this one.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
