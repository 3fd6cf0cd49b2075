package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/2beens/trainingtracker/internal/training/calendar"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	defaultEnergy   = 5
	defaultMood     = 5
	defaultSoreness = 1
)

var (
	ErrInvalidSession   = errors.New("invalid training session")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrSessionNotFound  = errors.New("training session not found")
	ErrExerciseNotFound = errors.New("session exercise not found")
)

type SetRecord struct {
	WeightKg float64  `json:"weightKg"`
	Reps     int      `json:"reps"`
	RPE      *float64 `json:"rpe,omitempty"`
}

type ExerciseSets struct {
	Exercise string      `json:"exercise"`
	Sets     []SetRecord `json:"sets"`
}

// Session is a free-form workout diary entry, independent of the set matrix.
type Session struct {
	ID          int
	ProfileID   int
	Date        time.Time
	DurationMin int
	Energy      int
	Mood        int
	Soreness    int
	Notes       string
	Exercises   []ExerciseSets
}

func (s *Session) MarshalJSON() ([]byte, error) {
	exercises := s.Exercises
	if exercises == nil {
		exercises = []ExerciseSets{}
	}
	return json.Marshal(struct {
		ID          int            `json:"id"`
		ProfileID   int            `json:"profileId"`
		Date        string         `json:"date"`
		DurationMin int            `json:"durationMin"`
		Energy      int            `json:"energy"`
		Mood        int            `json:"mood"`
		Soreness    int            `json:"soreness"`
		Notes       string         `json:"notes"`
		Exercises   []ExerciseSets `json:"exercises"`
	}{
		s.ID, s.ProfileID, s.Date.Format(calendar.DateLayout), s.DurationMin,
		s.Energy, s.Mood, s.Soreness, s.Notes, exercises,
	})
}

type SessionRequest struct {
	Date        string         `json:"date"`
	DurationMin int            `json:"durationMin"`
	Energy      int            `json:"energy"`
	Mood        int            `json:"mood"`
	Soreness    int            `json:"soreness"`
	Notes       string         `json:"notes"`
	Exercises   []ExerciseSets `json:"exercises"`
}

// Session validates the request. Wellbeing scores outside 1..10 fall back to
// their defaults instead of failing.
func (r SessionRequest) Session(profileID int, now time.Time) (*Session, error) {
	date := calendar.Date(now)
	if r.Date != "" {
		d, err := time.Parse(calendar.DateLayout, r.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidSession)
		}
		date = d
	}
	if r.DurationMin < 0 {
		return nil, fmt.Errorf("%w: duration must not be negative", ErrInvalidSession)
	}

	exercises := make([]ExerciseSets, 0, len(r.Exercises))
	for i, e := range r.Exercises {
		e, err := validExercise(i+1, e)
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}

	return &Session{
		ProfileID:   profileID,
		Date:        date,
		DurationMin: r.DurationMin,
		Energy:      scoreOr(r.Energy, defaultEnergy),
		Mood:        scoreOr(r.Mood, defaultMood),
		Soreness:    scoreOr(r.Soreness, defaultSoreness),
		Notes:       r.Notes,
		Exercises:   exercises,
	}, nil
}

// validExercise checks the exercise found at the 1-based position.
func validExercise(position int, e ExerciseSets) (ExerciseSets, error) {
	e.Exercise = strings.TrimSpace(e.Exercise)
	if e.Exercise == "" {
		return e, fmt.Errorf("%w: exercise %d has no name", ErrInvalidSession, position)
	}
	for j, set := range e.Sets {
		if set.WeightKg < 0 || set.Reps < 0 {
			return e, fmt.Errorf("%w: %s set %d is negative", ErrInvalidSession, e.Exercise, j+1)
		}
		if set.RPE != nil && (*set.RPE < 1 || *set.RPE > 10) {
			return e, fmt.Errorf("%w: %s set %d rpe out of range [1, 10]", ErrInvalidSession, e.Exercise, j+1)
		}
	}
	return e, nil
}

// AddExercise appends the exercise and returns its 1-based position.
func (s *Session) AddExercise(e ExerciseSets) (int, error) {
	e, err := validExercise(len(s.Exercises)+1, e)
	if err != nil {
		return 0, err
	}
	s.Exercises = append(s.Exercises, e)
	return len(s.Exercises), nil
}

// ReplaceExercise swaps the exercise at the 1-based position.
func (s *Session) ReplaceExercise(position int, e ExerciseSets) error {
	if position < 1 || position > len(s.Exercises) {
		return ErrExerciseNotFound
	}
	e, err := validExercise(position, e)
	if err != nil {
		return err
	}
	s.Exercises[position-1] = e
	return nil
}

// RemoveExercise drops the exercise at the 1-based position, later ones
// move up by one.
func (s *Session) RemoveExercise(position int) error {
	if position < 1 || position > len(s.Exercises) {
		return ErrExerciseNotFound
	}
	s.Exercises = slices.Delete(s.Exercises, position-1, position)
	return nil
}

func scoreOr(score, fallback int) int {
	if score < 1 || score > 10 {
		return fallback
	}
	return score
}

// NormalizePage clamps a 1-based page and its size to the accepted range.
func NormalizePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > MaxPageSize {
		size = DefaultPageSize
	}
	return page, size
}

type Page struct {
	Sessions []*Session `json:"sessions"`
	Page     int        `json:"page"`
	Size     int        `json:"size"`
	HasMore  bool       `json:"hasMore"`
}
