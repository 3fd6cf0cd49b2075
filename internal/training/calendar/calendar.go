package calendar

import (
	"cmp"
	"errors"
	"slices"
	"time"
)

const DateLayout = "2006-01-02"

var ErrProgramNotFound = errors.New("program not found")

type Program struct {
	ID        int       `json:"id"`
	ProfileID int       `json:"profileId"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	IsActive  bool      `json:"isActive"`
}

// ProgramExercise is a recurring slot of the weekly plan.
type ProgramExercise struct {
	ID        int     `json:"id"`
	ProgramID int     `json:"programId"`
	Exercise  string  `json:"exercise"`
	DayOfWeek int     `json:"dayOfWeek"` // 1 = monday ... 7 = sunday
	Order     int     `json:"order"`
	Sets      int     `json:"sets"`
	Reps      int     `json:"reps"`
	WeightKg  float64 `json:"weight"`
	Notes     string  `json:"notes"`
}

// Date truncates t to its calendar day in UTC.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ISOWeekday returns 1 for monday through 7 for sunday.
func ISOWeekday(t time.Time) int {
	return (int(t.Weekday())+6)%7 + 1
}

// InWindow reports whether date falls within the program's inclusive
// [StartDate, EndDate] window, compared by calendar day.
func (p Program) InWindow(date time.Time) bool {
	d := Date(date)
	return !d.Before(Date(p.StartDate)) && !d.After(Date(p.EndDate))
}

// ResolvePlanForDate returns the plan slots scheduled on date, ordered by
// Order. Dates outside the program window have no plan.
func ResolvePlanForDate(program Program, slots []ProgramExercise, date time.Time) []ProgramExercise {
	if !program.InWindow(date) {
		return []ProgramExercise{}
	}

	weekday := ISOWeekday(date)
	plan := make([]ProgramExercise, 0, len(slots))
	for _, s := range slots {
		if s.DayOfWeek == weekday {
			plan = append(plan, s)
		}
	}
	slices.SortStableFunc(plan, func(a, b ProgramExercise) int {
		if c := cmp.Compare(a.Order, b.Order); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return plan
}

// PlanDaysForMonth lists the days of the given month, clamped to the program
// window, on which at least one plan slot is scheduled.
func PlanDaysForMonth(program Program, slots []ProgramExercise, year int, month time.Month) []time.Time {
	weekdays := make(map[int]bool, 7)
	for _, s := range slots {
		weekdays[s.DayOfWeek] = true
	}

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	from := monthStart
	if start := Date(program.StartDate); start.After(from) {
		from = start
	}
	to := monthEnd
	if end := Date(program.EndDate); end.Before(to) {
		to = end
	}

	days := []time.Time{}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if weekdays[ISOWeekday(d)] {
			days = append(days, d)
		}
	}
	return days
}

// Activate returns a copy of programs with the program id marked active and
// every other program of the same profile deactivated.
func Activate(programs []Program, id int) ([]Program, error) {
	idx := slices.IndexFunc(programs, func(p Program) bool {
		return p.ID == id
	})
	if idx < 0 {
		return nil, ErrProgramNotFound
	}

	profileID := programs[idx].ProfileID
	result := slices.Clone(programs)
	for i := range result {
		if result[i].ProfileID != profileID {
			continue
		}
		result[i].IsActive = result[i].ID == id
	}
	return result, nil
}
