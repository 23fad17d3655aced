package game

import (
	"fmt"

	"gib2sgf/internal/errors"
)

// LocalDate is a calendar date without time of day or zone.
type LocalDate struct {
	Year  int
	Month int
	Day   int
}

func NewLocalDate(year, month, day int) (LocalDate, error) {
	if year < 1 || year > 9999 {
		return LocalDate{}, fmt.Errorf("%w: year %d", errors.ErrInvalidDate, year)
	}
	if month < 1 || month > 12 {
		return LocalDate{}, fmt.Errorf("%w: month %d", errors.ErrInvalidDate, month)
	}
	if day < 1 || day > DaysIn(year, month) {
		return LocalDate{}, fmt.Errorf("%w: %04d-%02d has no day %d", errors.ErrInvalidDate, year, month, day)
	}
	return LocalDate{Year: year, Month: month, Day: day}, nil
}

func IsLeapYear(year int) bool {
	return year%400 == 0 || (year%4 == 0 && year%100 != 0)
}

// DaysIn returns the number of days of a month (1-12).
func DaysIn(year, month int) int {
	switch month {
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

// ISO formats the date as YYYY-MM-DD.
func (d LocalDate) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Sgf is the DT form of the date.
func (d LocalDate) Sgf() string {
	return d.ISO()
}

func (d LocalDate) String() string {
	return d.ISO()
}
