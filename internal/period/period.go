// Package period provides the calendar (year, month) value type that dues
// accrual and payment coverage are expressed in. All classification in the
// system is month-granular; days matter only for due-date display.
package period

import (
	"fmt"
	"time"
)

// Period identifies a single calendar month.
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// FromTime returns the period containing t.
func FromTime(t time.Time) Period {
	return Period{Year: t.Year(), Month: int(t.Month())}
}

// Time returns the first instant of the period in UTC.
func (p Period) Time() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
}

// Valid reports whether the month is in [1,12].
func (p Period) Valid() bool {
	return p.Month >= 1 && p.Month <= 12
}

// Compare returns -1, 0 or 1 ordering p against q year-first, then month.
func (p Period) Compare(q Period) int {
	switch {
	case p.Year != q.Year:
		if p.Year < q.Year {
			return -1
		}
		return 1
	case p.Month != q.Month:
		if p.Month < q.Month {
			return -1
		}
		return 1
	default:
		return 0
	}
}

func (p Period) Before(q Period) bool { return p.Compare(q) < 0 }

func (p Period) After(q Period) bool { return p.Compare(q) > 0 }

func (p Period) Equal(q Period) bool { return p.Compare(q) == 0 }

// AddMonths returns the period n calendar months after p. Negative n walks
// backward. Normalization is done via time.Date, so year boundaries roll over.
func (p Period) AddMonths(n int) Period {
	t := time.Date(p.Year, time.Month(p.Month+n), 1, 0, 0, 0, 0, time.UTC)
	return FromTime(t)
}

// DaysInMonth returns the number of days in the period's month.
func (p Period) DaysInMonth() int {
	// day 0 of the next month is the last day of this one
	return time.Date(p.Year, time.Month(p.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ClampDay returns day, clamped to the last day of the period's month. A
// dueDay of 31 in February resolves to the 28th or 29th.
func (p Period) ClampDay(day int) int {
	if max := p.DaysInMonth(); day > max {
		return max
	}
	return day
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}
