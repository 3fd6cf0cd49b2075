package profiles

import (
	"errors"
	"strings"
	"time"

	"github.com/2beens/trainingtracker/internal/training/analytics"
	"github.com/2beens/trainingtracker/internal/training/setmatrix"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidProfile  = errors.New("invalid profile")
)

type Profile struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Age        *int      `json:"age,omitempty"`
	Gender     string    `json:"gender"`
	WeightKg   *float64  `json:"weightKg,omitempty"`
	HeightCm   *float64  `json:"heightCm,omitempty"`
	Goal       string    `json:"goal"`
	Experience string    `json:"experience"`
	Weeks      int       `json:"weeks"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Normalize trims the input and clamps the program length. Weeks left at
// zero fall back to the default program length.
func (p *Profile) Normalize() error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return errors.Join(ErrInvalidProfile, errors.New("name empty"))
	}
	if p.Age != nil && *p.Age <= 0 {
		return errors.Join(ErrInvalidProfile, errors.New("age must be positive"))
	}
	if p.WeightKg != nil && *p.WeightKg <= 0 {
		return errors.Join(ErrInvalidProfile, errors.New("weight must be positive"))
	}
	if p.HeightCm != nil && *p.HeightCm <= 0 {
		return errors.Join(ErrInvalidProfile, errors.New("height must be positive"))
	}

	if p.Weeks == 0 {
		p.Weeks = setmatrix.DefaultWeeks
	}
	p.Weeks = setmatrix.ClampWeeks(p.Weeks)
	p.Goal = strings.ToLower(strings.TrimSpace(p.Goal))
	return nil
}

// AnalyticsInput projects the profile onto what the aggregation needs.
func (p *Profile) AnalyticsInput() analytics.Profile {
	return analytics.Profile{
		WeightKg: p.WeightKg,
		HeightCm: p.HeightCm,
		Goal:     p.Goal,
	}
}
