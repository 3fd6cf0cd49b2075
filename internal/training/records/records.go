package records

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
	ErrInvalidRecord   = errors.New("invalid record")
	ErrNotImproving    = errors.New("record does not beat the current best")
	ErrProfileNotFound = errors.New("profile not found")

	ErrRecordNotFound     = errors.New("personal record not found")
	ErrBodyWeightNotFound = errors.New("body weight entry not found")
	ErrBodyWeightTaken    = errors.New("body weight already recorded on that date")
)

type PersonalRecord struct {
	ID        int
	ProfileID int
	Exercise  string
	WeightKg  float64
	Reps      int
	Date      time.Time
}

func (p *PersonalRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID        int     `json:"id"`
		ProfileID int     `json:"profileId"`
		Exercise  string  `json:"exercise"`
		WeightKg  float64 `json:"weightKg"`
		Reps      int     `json:"reps"`
		Date      string  `json:"date"`
	}{p.ID, p.ProfileID, p.Exercise, p.WeightKg, p.Reps, p.Date.Format(calendar.DateLayout)})
}

// Beats reports whether the record improves on the best stored weight for
// the exercise. Without a stored record anything counts.
func (p *PersonalRecord) Beats(best *float64) bool {
	return best == nil || p.WeightKg > *best
}

type BodyWeight struct {
	ID        int
	ProfileID int
	Date      time.Time
	WeightKg  float64
	Notes     string
}

func (b *BodyWeight) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID        int     `json:"id"`
		ProfileID int     `json:"profileId"`
		Date      string  `json:"date"`
		WeightKg  float64 `json:"weightKg"`
		Notes     string  `json:"notes"`
	}{b.ID, b.ProfileID, b.Date.Format(calendar.DateLayout), b.WeightKg, b.Notes})
}

type RecordRequest struct {
	Exercise string  `json:"exercise"`
	WeightKg float64 `json:"weightKg"`
	Reps     int     `json:"reps"`
	Date     string  `json:"date"`
}

func (r RecordRequest) Record(profileID int, now time.Time) (*PersonalRecord, error) {
	exercise := strings.TrimSpace(r.Exercise)
	if exercise == "" {
		return nil, fmt.Errorf("%w: exercise is required", ErrInvalidRecord)
	}
	if !positive(r.WeightKg) {
		return nil, fmt.Errorf("%w: weight must be positive", ErrInvalidRecord)
	}
	if r.Reps < 1 {
		return nil, fmt.Errorf("%w: reps must be at least 1", ErrInvalidRecord)
	}
	date, err := dateOrToday(r.Date, now)
	if err != nil {
		return nil, err
	}

	return &PersonalRecord{
		ProfileID: profileID,
		Exercise:  exercise,
		WeightKg:  r.WeightKg,
		Reps:      r.Reps,
		Date:      date,
	}, nil
}

type BodyWeightRequest struct {
	WeightKg float64 `json:"weightKg"`
	Notes    string  `json:"notes"`
	Date     string  `json:"date"`
}

func (r BodyWeightRequest) BodyWeight(profileID int, now time.Time) (*BodyWeight, error) {
	if !positive(r.WeightKg) {
		return nil, fmt.Errorf("%w: weight must be positive", ErrInvalidRecord)
	}
	date, err := dateOrToday(r.Date, now)
	if err != nil {
		return nil, err
	}

	return &BodyWeight{
		ProfileID: profileID,
		Date:      date,
		WeightKg:  r.WeightKg,
		Notes:     r.Notes,
	}, nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func dateOrToday(raw string, now time.Time) (time.Time, error) {
	if raw == "" {
		return calendar.Date(now), nil
	}
	d, err := time.Parse(calendar.DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidRecord)
	}
	return d, nil
}
