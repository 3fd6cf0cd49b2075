package onerm

import (
	"fmt"
	"math"
	"strings"
)

type Formula string

const (
	Brzycki Formula = "brzycki"
	Epley   Formula = "epley"
	Lander  Formula = "lander"

	DefaultFormula = Brzycki
)

const (
	MinPercentage = 50
	MaxPercentage = 100

	DefaultSetsCount = 6
	MaxSetsCount     = 6

	// brzycki denominator (37 - reps) hits zero at 37 reps
	brzyckiMaxReps = 36
)

// ValidationError reports a malformed or out-of-range estimator input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func newValidationError(field, reasonFormat string, args ...any) *ValidationError {
	return &ValidationError{
		Field:  field,
		Reason: fmt.Sprintf(reasonFormat, args...),
	}
}

// ParseFormula maps a user supplied formula name onto a known formula.
// An empty name falls back to DefaultFormula, anything unknown is rejected.
func ParseFormula(name string) (Formula, error) {
	switch f := Formula(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return DefaultFormula, nil
	case Brzycki, Epley, Lander:
		return f, nil
	default:
		return "", newValidationError("formula", "unsupported formula [%s]", name)
	}
}

// Estimate returns the estimated one-repetition maximum for the given lift.
func Estimate(weightKg float64, reps int, formula Formula) (float64, error) {
	if weightKg <= 0 || math.IsNaN(weightKg) || math.IsInf(weightKg, 0) {
		return 0, newValidationError("weight", "must be positive, got %v", weightKg)
	}
	if reps < 1 {
		return 0, newValidationError("reps", "must be at least 1, got %d", reps)
	}

	switch formula {
	case Brzycki, Epley, Lander:
	default:
		return 0, newValidationError("formula", "unsupported formula [%s]", formula)
	}

	if reps == 1 {
		return weightKg, nil
	}

	r := float64(reps)
	switch formula {
	case Brzycki:
		if reps > brzyckiMaxReps {
			return 0, newValidationError("reps", "brzycki is undefined for %d reps (max %d)", reps, brzyckiMaxReps)
		}
		return weightKg * 36 / (37 - r), nil
	case Epley:
		return weightKg * (1 + r/30), nil
	default:
		denominator := 101.3 - 2.67123*r
		if denominator <= 0 {
			return 0, newValidationError("reps", "lander is undefined for %d reps", reps)
		}
		return 100 * weightKg / denominator, nil
	}
}

// TargetWeight scales a 1RM down to the given training intensity.
func TargetWeight(oneRM float64, percentage int) (float64, error) {
	if err := ValidatePercentage(percentage); err != nil {
		return 0, err
	}
	return oneRM * float64(percentage) / 100, nil
}

func ValidatePercentage(percentage int) error {
	if percentage < MinPercentage || percentage > MaxPercentage {
		return newValidationError(
			"percentage", "must be within [%d, %d], got %d",
			MinPercentage, MaxPercentage, percentage,
		)
	}
	return nil
}

// TargetReps suggests a rep count for working at the given share of 1RM.
func TargetReps(percentage int) int {
	switch {
	case percentage >= 90:
		return 3
	case percentage >= 85:
		return 5
	case percentage >= 75:
		return 8
	case percentage >= 65:
		return 12
	default:
		return 15
	}
}

type Set struct {
	Reps     int     `json:"reps"`
	WeightKg float64 `json:"weightKg"`
}

// GenerateSets copies the same reps/weight pair into numSets sets.
func GenerateSets(targetWeight float64, reps, numSets int) ([]Set, error) {
	if numSets < 1 || numSets > MaxSetsCount {
		return nil, newValidationError("sets", "must be within [1, %d], got %d", MaxSetsCount, numSets)
	}
	if reps < 1 {
		return nil, newValidationError("reps", "must be at least 1, got %d", reps)
	}

	sets := make([]Set, numSets)
	for i := range sets {
		sets[i] = Set{
			Reps:     reps,
			WeightKg: targetWeight,
		}
	}
	return sets, nil
}

type Plan struct {
	OneRM        float64 `json:"oneRM"`
	TargetWeight float64 `json:"targetWeight"`
	TargetReps   int     `json:"targetReps"`
	Formula      Formula `json:"formula"`
	Sets         []Set   `json:"sets"`
}

// Calculate runs the whole estimate -> target -> sets chain. Sets in the
// returned plan use the target weight rounded to a whole kilo.
func Calculate(weightKg float64, reps, percentage int, formula Formula, numSets int) (*Plan, error) {
	oneRM, err := Estimate(weightKg, reps, formula)
	if err != nil {
		return nil, err
	}

	targetWeight, err := TargetWeight(oneRM, percentage)
	if err != nil {
		return nil, err
	}

	targetReps := TargetReps(percentage)
	sets, err := GenerateSets(math.Round(targetWeight), targetReps, numSets)
	if err != nil {
		return nil, err
	}

	return &Plan{
		OneRM:        oneRM,
		TargetWeight: targetWeight,
		TargetReps:   targetReps,
		Formula:      formula,
		Sets:         sets,
	}, nil
}
