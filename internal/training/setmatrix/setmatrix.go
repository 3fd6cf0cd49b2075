package setmatrix

import (
	"cmp"
	"encoding/json"
	"fmt"
	"iter"
	"maps"
	"slices"
	"time"
)

const (
	MaxWeeks       = 8
	DaysPerWeek    = 6
	SetsPerDay     = 6
	DefaultWeeks   = 4
	daysInCalendar = 7
)

// Slot addresses a single cell of the matrix, all parts are 1-based.
type Slot struct {
	Week int `json:"week"`
	Day  int `json:"day"`
	Set  int `json:"set"`
}

func (s Slot) compare(other Slot) int {
	if c := cmp.Compare(s.Week, other.Week); c != 0 {
		return c
	}
	if c := cmp.Compare(s.Day, other.Day); c != 0 {
		return c
	}
	return cmp.Compare(s.Set, other.Set)
}

type Cell struct {
	Reps     int     `json:"reps"`
	WeightKg float64 `json:"weightKg"`
}

// Recorded reports whether the cell holds an actual performed set.
func (c Cell) Recorded() bool {
	return c.Reps > 0 && c.WeightKg > 0
}

func (c Cell) Volume() float64 {
	return float64(c.Reps) * c.WeightKg
}

type Entry struct {
	Slot
	Cell
}

// ExerciseLog is one exercise's performance over a multi-week program,
// stored as a sparse (week, day, set) -> (reps, weight) matrix.
type ExerciseLog struct {
	ID           int
	ProfileID    int
	ExerciseName string
	Weeks        int
	// StartDate is the calendar date of week 1, day 1.
	StartDate time.Time

	cells map[Slot]Cell
}

func NewExerciseLog(exerciseName string, weeks int, startDate time.Time) *ExerciseLog {
	return &ExerciseLog{
		ExerciseName: exerciseName,
		Weeks:        ClampWeeks(weeks),
		StartDate:    startDate,
		cells:        make(map[Slot]Cell),
	}
}

// ClampWeeks keeps the configured program length within [1, MaxWeeks].
func ClampWeeks(weeks int) int {
	return min(max(weeks, 1), MaxWeeks)
}

func (l *ExerciseLog) ValidateSlot(slot Slot) error {
	weeks := l.Weeks
	if weeks <= 0 {
		weeks = MaxWeeks
	}
	if slot.Week < 1 || slot.Week > weeks {
		return fmt.Errorf("week %d out of range [1, %d]", slot.Week, weeks)
	}
	if slot.Day < 1 || slot.Day > DaysPerWeek {
		return fmt.Errorf("day %d out of range [1, %d]", slot.Day, DaysPerWeek)
	}
	if slot.Set < 1 || slot.Set > SetsPerDay {
		return fmt.Errorf("set %d out of range [1, %d]", slot.Set, SetsPerDay)
	}
	return nil
}

// Set stores the cell at slot. Storing an all-zero cell clears the slot.
func (l *ExerciseLog) Set(slot Slot, cell Cell) error {
	if err := l.ValidateSlot(slot); err != nil {
		return err
	}
	if cell.Reps < 0 || cell.WeightKg < 0 {
		return fmt.Errorf("negative reps/weight at %+v", slot)
	}

	if l.cells == nil {
		l.cells = make(map[Slot]Cell)
	}
	if cell.Reps == 0 && cell.WeightKg == 0 {
		delete(l.cells, slot)
		return nil
	}
	l.cells[slot] = cell
	return nil
}

func (l *ExerciseLog) Get(slot Slot) (Cell, bool) {
	c, ok := l.cells[slot]
	return c, ok
}

// Date maps a (week, day) pair onto the calendar.
func (l *ExerciseLog) Date(week, day int) time.Time {
	return l.StartDate.AddDate(0, 0, (week-1)*daysInCalendar+(day-1))
}

// NonEmptyEntries yields recorded cells ordered by week, day and set.
// The sequence can be ranged over any number of times.
func (l *ExerciseLog) NonEmptyEntries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		slots := slices.SortedFunc(maps.Keys(l.cells), Slot.compare)
		for _, slot := range slots {
			cell := l.cells[slot]
			if !cell.Recorded() {
				continue
			}
			if !yield(Entry{Slot: slot, Cell: cell}) {
				return
			}
		}
	}
}

// Entries returns all stored cells, recorded or not, in slot order.
func (l *ExerciseLog) Entries() []Entry {
	slots := slices.SortedFunc(maps.Keys(l.cells), Slot.compare)
	entries := make([]Entry, 0, len(slots))
	for _, slot := range slots {
		entries = append(entries, Entry{Slot: slot, Cell: l.cells[slot]})
	}
	return entries
}

func (l *ExerciseLog) HasData() bool {
	for range l.NonEmptyEntries() {
		return true
	}
	return false
}

func (l *ExerciseLog) MaxWeight() float64 {
	var maxWeight float64
	for e := range l.NonEmptyEntries() {
		maxWeight = max(maxWeight, e.WeightKg)
	}
	return maxWeight
}

func (l *ExerciseLog) TotalVolume() float64 {
	var volume float64
	for e := range l.NonEmptyEntries() {
		volume += e.Volume()
	}
	return volume
}

func (l *ExerciseLog) AverageWeight() float64 {
	var sum float64
	var count int
	for e := range l.NonEmptyEntries() {
		sum += e.WeightKg
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

func (l *ExerciseLog) VolumeForWeek(week int) float64 {
	var volume float64
	for e := range l.NonEmptyEntries() {
		if e.Week == week {
			volume += e.Volume()
		}
	}
	return volume
}

func (l *ExerciseLog) MaxWeightForWeek(week int) float64 {
	var maxWeight float64
	for e := range l.NonEmptyEntries() {
		if e.Week == week {
			maxWeight = max(maxWeight, e.WeightKg)
		}
	}
	return maxWeight
}

func (l *ExerciseLog) AverageWeightForWeek(week int) float64 {
	var sum float64
	var count int
	for e := range l.NonEmptyEntries() {
		if e.Week == week {
			sum += e.WeightKg
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// WeeksWithData returns the ascending list of weeks that hold recorded sets.
func (l *ExerciseLog) WeeksWithData() []int {
	var weeks []int
	for e := range l.NonEmptyEntries() {
		if len(weeks) == 0 || weeks[len(weeks)-1] != e.Week {
			weeks = append(weeks, e.Week)
		}
	}
	return weeks
}

// WorkoutDates returns the distinct calendar dates with recorded sets.
func (l *ExerciseLog) WorkoutDates() []time.Time {
	var dates []time.Time
	var last Slot
	for e := range l.NonEmptyEntries() {
		if len(dates) > 0 && last.Week == e.Week && last.Day == e.Day {
			continue
		}
		last = e.Slot
		dates = append(dates, l.Date(e.Week, e.Day))
	}
	return dates
}

// Restrict returns a copy holding only the cells whose calendar date falls
// within [from, to]. Zero from/to leave that side open.
func (l *ExerciseLog) Restrict(from, to time.Time) *ExerciseLog {
	restricted := &ExerciseLog{
		ID:           l.ID,
		ProfileID:    l.ProfileID,
		ExerciseName: l.ExerciseName,
		Weeks:        l.Weeks,
		StartDate:    l.StartDate,
		cells:        make(map[Slot]Cell, len(l.cells)),
	}
	from, to = calendarDay(from), calendarDay(to)
	for slot, cell := range l.cells {
		date := calendarDay(l.Date(slot.Week, slot.Day))
		if !from.IsZero() && date.Before(from) {
			continue
		}
		if !to.IsZero() && date.After(to) {
			continue
		}
		restricted.cells[slot] = cell
	}
	return restricted
}

// calendarDay drops the clock and location of t, keeping its calendar day.
func calendarDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type exerciseLogJSON struct {
	ID           int     `json:"id"`
	ProfileID    int     `json:"profileId"`
	ExerciseName string  `json:"exerciseName"`
	Weeks        int     `json:"weeks"`
	StartDate    string  `json:"startDate"`
	Entries      []Entry `json:"entries"`
	MaxWeight    float64 `json:"maxWeight"`
	TotalVolume  float64 `json:"totalVolume"`
}

func (l *ExerciseLog) MarshalJSON() ([]byte, error) {
	entries := slices.Collect(l.NonEmptyEntries())
	if entries == nil {
		entries = []Entry{}
	}
	return json.Marshal(exerciseLogJSON{
		ID:           l.ID,
		ProfileID:    l.ProfileID,
		ExerciseName: l.ExerciseName,
		Weeks:        l.Weeks,
		StartDate:    l.StartDate.Format(time.DateOnly),
		Entries:      entries,
		MaxWeight:    l.MaxWeight(),
		TotalVolume:  l.TotalVolume(),
	})
}
