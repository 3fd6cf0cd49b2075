package programs

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/trainingtracker/internal/training/calendar"

	"go.uber.org/multierr"
)

var (
	ErrInvalidProgram   = errors.New("invalid program")
	ErrExerciseNotFound = errors.New("program exercise not found")
	ErrSessionNotFound  = errors.New("program session not found")
	ErrProfileNotFound  = errors.New("profile not found")
)

type ProgramRequest struct {
	ProfileID int    `json:"profileId"`
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	IsActive  bool   `json:"isActive"`
}

// Program validates the request and converts it to a calendar program.
func (r ProgramRequest) Program() (calendar.Program, error) {
	var err error
	name := strings.TrimSpace(r.Name)
	if name == "" {
		err = multierr.Append(err, errors.New("name is required"))
	}

	start, startErr := parseDate("startDate", r.StartDate)
	end, endErr := parseDate("endDate", r.EndDate)
	err = multierr.Append(err, startErr)
	err = multierr.Append(err, endErr)
	if startErr == nil && endErr == nil && end.Before(start) {
		err = multierr.Append(err, errors.New("endDate is before startDate"))
	}
	if err != nil {
		return calendar.Program{}, fmt.Errorf("%w: %w", ErrInvalidProgram, err)
	}

	return calendar.Program{
		ProfileID: r.ProfileID,
		Name:      name,
		StartDate: start,
		EndDate:   end,
		IsActive:  r.IsActive,
	}, nil
}

func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%s is required", field)
	}
	d, err := time.Parse(calendar.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be YYYY-MM-DD", field)
	}
	return d, nil
}

// ValidateExercise collects every problem of a plan slot instead of stopping
// at the first one.
func ValidateExercise(e *calendar.ProgramExercise) error {
	var err error
	e.Exercise = strings.TrimSpace(e.Exercise)
	if e.Exercise == "" {
		err = multierr.Append(err, errors.New("exercise is required"))
	}
	if e.DayOfWeek < 1 || e.DayOfWeek > 7 {
		err = multierr.Append(err, fmt.Errorf("dayOfWeek %d out of range [1, 7]", e.DayOfWeek))
	}
	if e.Sets < 0 {
		err = multierr.Append(err, errors.New("sets must not be negative"))
	}
	if e.Reps < 0 {
		err = multierr.Append(err, errors.New("reps must not be negative"))
	}
	if e.WeightKg < 0 {
		err = multierr.Append(err, errors.New("weight must not be negative"))
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProgram, err)
	}
	return nil
}

type SessionRequest struct {
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
	Notes     string `json:"notes"`
}

type SessionResponse struct {
	Session *calendar.Session `json:"session"`
	State   calendar.State    `json:"state"`
}
