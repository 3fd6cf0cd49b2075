package catalog

import (
	"errors"
	"strings"
)

var (
	ErrExerciseNotFound   = errors.New("exercise not found")
	ErrExerciseExists     = errors.New("exercise already exists")
	ErrExercisePredefined = errors.New("predefined exercises cannot be deleted")
)

const (
	CategoryCompound  = "compound"
	CategoryIsolation = "isolation"
)

type Exercise struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	MuscleGroup string `json:"muscleGroup"`
	IsCustom    bool   `json:"isCustom"`
}

func (e *Exercise) Normalize() error {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return errors.New("name empty")
	}
	e.MuscleGroup = strings.ToLower(strings.TrimSpace(e.MuscleGroup))
	e.Category = strings.ToLower(strings.TrimSpace(e.Category))
	return nil
}

// DefaultExercises is the built-in catalog an empty database is seeded with.
var DefaultExercises = []Exercise{
	{Name: "Bench Press", Category: CategoryCompound, MuscleGroup: "chest", Description: "Flat barbell press, bar to mid chest."},
	{Name: "Incline Bench Press", Category: CategoryCompound, MuscleGroup: "chest", Description: "Barbell press on a 30-45 degree bench."},
	{Name: "Dumbbell Bench Press", Category: CategoryCompound, MuscleGroup: "chest", Description: "Flat press with dumbbells."},
	{Name: "Dumbbell Fly", Category: CategoryIsolation, MuscleGroup: "chest", Description: "Arc the dumbbells out with soft elbows."},
	{Name: "Dips", Category: CategoryCompound, MuscleGroup: "chest", Description: "Parallel bar dips with a forward lean."},
	{Name: "Push-up", Category: CategoryCompound, MuscleGroup: "chest", Description: "Bodyweight press from the floor."},
	{Name: "Deadlift", Category: CategoryCompound, MuscleGroup: "back", Description: "Pull the bar from the floor with a neutral spine."},
	{Name: "Romanian Deadlift", Category: CategoryCompound, MuscleGroup: "back", Description: "Stiff-legged hinge for the posterior chain."},
	{Name: "Pull-up", Category: CategoryCompound, MuscleGroup: "back", Description: "Wide grip pull-up."},
	{Name: "Barbell Row", Category: CategoryCompound, MuscleGroup: "back", Description: "Bent-over row to the waist."},
	{Name: "One-Arm Dumbbell Row", Category: CategoryCompound, MuscleGroup: "back", Description: "Supported single arm row."},
	{Name: "Lat Pulldown", Category: CategoryCompound, MuscleGroup: "back", Description: "Cable pulldown to the upper chest."},
	{Name: "Seated Cable Row", Category: CategoryCompound, MuscleGroup: "back", Description: "Seated row to the waist."},
	{Name: "Squat", Category: CategoryCompound, MuscleGroup: "legs", Description: "Back squat to parallel or below."},
	{Name: "Front Squat", Category: CategoryCompound, MuscleGroup: "legs", Description: "Squat with the bar in the front rack."},
	{Name: "Leg Press", Category: CategoryCompound, MuscleGroup: "legs", Description: "Machine press, full range."},
	{Name: "Lunge", Category: CategoryCompound, MuscleGroup: "legs", Description: "Alternating walking lunges."},
	{Name: "Leg Extension", Category: CategoryIsolation, MuscleGroup: "legs", Description: "Machine knee extension."},
	{Name: "Leg Curl", Category: CategoryIsolation, MuscleGroup: "legs", Description: "Machine knee flexion."},
	{Name: "Calf Raise", Category: CategoryIsolation, MuscleGroup: "legs", Description: "Standing calf raise."},
	{Name: "Overhead Press", Category: CategoryCompound, MuscleGroup: "shoulders", Description: "Standing barbell press overhead."},
	{Name: "Dumbbell Shoulder Press", Category: CategoryCompound, MuscleGroup: "shoulders", Description: "Seated dumbbell press."},
	{Name: "Lateral Raise", Category: CategoryIsolation, MuscleGroup: "shoulders", Description: "Raise the dumbbells to the sides."},
	{Name: "Face Pull", Category: CategoryIsolation, MuscleGroup: "shoulders", Description: "Cable pull to the face, elbows high."},
	{Name: "Barbell Curl", Category: CategoryIsolation, MuscleGroup: "arms", Description: "Standing barbell biceps curl."},
	{Name: "Hammer Curl", Category: CategoryIsolation, MuscleGroup: "arms", Description: "Neutral grip dumbbell curl."},
	{Name: "Triceps Pushdown", Category: CategoryIsolation, MuscleGroup: "arms", Description: "Cable pushdown."},
	{Name: "Close-Grip Bench Press", Category: CategoryCompound, MuscleGroup: "arms", Description: "Narrow grip press for the triceps."},
	{Name: "Plank", Category: CategoryIsolation, MuscleGroup: "core", Description: "Hold a straight line on the forearms."},
	{Name: "Hanging Leg Raise", Category: CategoryIsolation, MuscleGroup: "core", Description: "Raise straight legs while hanging."},
}
