package analytics

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidPeriod = errors.New("invalid period")

type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
	PeriodAll   Period = "all"
)

func ParsePeriod(s string) (Period, error) {
	switch p := Period(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PeriodAll, nil
	case PeriodWeek, PeriodMonth, PeriodYear, PeriodAll:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidPeriod, s)
	}
}

// Window returns the inclusive window of calendar days covered by the
// period, ending on now's day. Both bounds are UTC midnights so they line up
// with log dates read from DATE columns regardless of now's location.
// PeriodAll returns zero times (unbounded).
func (p Period) Window(now time.Time) (from, to time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	switch p {
	case PeriodWeek:
		return today.AddDate(0, 0, -7), today
	case PeriodMonth:
		return today.AddDate(0, -1, 0), today
	case PeriodYear:
		return today.AddDate(-1, 0, 0), today
	default:
		return time.Time{}, time.Time{}
	}
}
