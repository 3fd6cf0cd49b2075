package goals

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/2beens/trainingtracker/internal/training/calendar"
)

var (
	ErrGoalNotFound    = errors.New("goal not found")
	ErrInvalidGoal     = errors.New("invalid goal")
	ErrProfileNotFound = errors.New("profile not found")
)

type Type string

const (
	TypeWeight     Type = "weight"
	TypeReps       Type = "reps"
	TypeVolume     Type = "volume"
	TypeBodyWeight Type = "body_weight"
	TypeCustom     Type = "custom"
)

// DefaultUnit is the unit a goal of the given type is measured in when the
// user leaves it empty.
func (t Type) DefaultUnit() string {
	switch t {
	case TypeWeight, TypeBodyWeight:
		return "kg"
	case TypeReps:
		return "reps"
	case TypeVolume:
		return "kg x reps"
	default:
		return "units"
	}
}

func (t Type) valid() bool {
	switch t {
	case TypeWeight, TypeReps, TypeVolume, TypeBodyWeight, TypeCustom:
		return true
	}
	return false
}

type Goal struct {
	ID           int
	ProfileID    int
	Title        string
	Description  string
	Type         Type
	Exercise     string
	TargetValue  float64
	CurrentValue float64
	Unit         string
	TargetDate   time.Time
	Achieved     bool
	AchievedDate *time.Time
	CreatedAt    time.Time
}

// Progress is the share of the target reached, in [0, 100].
func (g *Goal) Progress() float64 {
	if g.TargetValue <= 0 {
		return 0
	}
	return math.Max(0, math.Min(g.CurrentValue/g.TargetValue, 1)) * 100
}

// SetProgress records the current value. Reaching the target marks the goal
// achieved, an achieved goal stays achieved.
func (g *Goal) SetProgress(current float64, now time.Time) error {
	if current < 0 || math.IsNaN(current) {
		return fmt.Errorf("%w: current value must not be negative", ErrInvalidGoal)
	}
	g.CurrentValue = current
	if !g.Achieved && g.CurrentValue >= g.TargetValue {
		g.Achieved = true
		achievedDate := calendar.Date(now)
		g.AchievedDate = &achievedDate
	}
	return nil
}

type goalJSON struct {
	ID           int     `json:"id"`
	ProfileID    int     `json:"profileId"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Type         Type    `json:"type"`
	Exercise     string  `json:"exercise"`
	TargetValue  float64 `json:"targetValue"`
	CurrentValue float64 `json:"currentValue"`
	Unit         string  `json:"unit"`
	TargetDate   string  `json:"targetDate"`
	Achieved     bool    `json:"achieved"`
	AchievedDate *string `json:"achievedDate"`
	Progress     float64 `json:"progress"`
}

func (g *Goal) MarshalJSON() ([]byte, error) {
	out := goalJSON{
		ID:           g.ID,
		ProfileID:    g.ProfileID,
		Title:        g.Title,
		Description:  g.Description,
		Type:         g.Type,
		Exercise:     g.Exercise,
		TargetValue:  g.TargetValue,
		CurrentValue: g.CurrentValue,
		Unit:         g.Unit,
		TargetDate:   g.TargetDate.Format(calendar.DateLayout),
		Achieved:     g.Achieved,
		Progress:     g.Progress(),
	}
	if g.AchievedDate != nil {
		d := g.AchievedDate.Format(calendar.DateLayout)
		out.AchievedDate = &d
	}
	return json.Marshal(out)
}

type Request struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Type        Type    `json:"type"`
	Exercise    string  `json:"exercise"`
	TargetValue float64 `json:"targetValue"`
	Unit        string  `json:"unit"`
	// TargetDate is YYYY-MM-DD, one month from now when empty.
	TargetDate string `json:"targetDate"`
}

func (r Request) Goal(profileID int, now time.Time) (*Goal, error) {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidGoal)
	}
	if !r.Type.valid() {
		return nil, fmt.Errorf("%w: unsupported type [%s]", ErrInvalidGoal, r.Type)
	}
	if r.TargetValue <= 0 || math.IsNaN(r.TargetValue) {
		return nil, fmt.Errorf("%w: target value must be positive", ErrInvalidGoal)
	}

	targetDate := calendar.Date(now).AddDate(0, 1, 0)
	if r.TargetDate != "" {
		var err error
		targetDate, err = time.Parse(calendar.DateLayout, r.TargetDate)
		if err != nil {
			return nil, fmt.Errorf("%w: target date must be YYYY-MM-DD", ErrInvalidGoal)
		}
	}

	unit := strings.TrimSpace(r.Unit)
	if unit == "" {
		unit = r.Type.DefaultUnit()
	}

	return &Goal{
		ProfileID:   profileID,
		Title:       title,
		Description: r.Description,
		Type:        r.Type,
		Exercise:    strings.TrimSpace(r.Exercise),
		TargetValue: r.TargetValue,
		Unit:        unit,
		TargetDate:  targetDate,
	}, nil
}

// Apply edits the goal with the request. The recorded progress is kept and
// re-checked against the new target, an empty target date keeps the old one.
func (g *Goal) Apply(r Request, now time.Time) error {
	edited, err := r.Goal(g.ProfileID, now)
	if err != nil {
		return err
	}
	if r.TargetDate == "" {
		edited.TargetDate = g.TargetDate
	}

	g.Title = edited.Title
	g.Description = edited.Description
	g.Type = edited.Type
	g.Exercise = edited.Exercise
	g.TargetValue = edited.TargetValue
	g.Unit = edited.Unit
	g.TargetDate = edited.TargetDate
	return g.SetProgress(g.CurrentValue, now)
}
