package analytics

import "fmt"

const (
	// MinWeeklyFrequency is the lowest acceptable average of workouts per week.
	MinWeeklyFrequency = 2.0
	// MuscleImbalanceThresholdPct flags a muscle group holding less than this
	// share of total volume (only when more than one group is trained).
	MuscleImbalanceThresholdPct = 10.0
	// MinExerciseVariety is the number of distinct exercises below which a
	// more varied program is suggested.
	MinExerciseVariety = 5

	BMIUnderweight = 18.5
	BMIOverweight  = 25.0
)

const (
	GoalStrength   = "strength"
	GoalMass       = "mass"
	GoalEndurance  = "endurance"
	GoalWeightLoss = "weight_loss"
)

type RecommendationKind string

const (
	KindMuscleImbalance RecommendationKind = "muscle_imbalance"
	KindLowFrequency    RecommendationKind = "low_frequency"
	KindNoProgress      RecommendationKind = "no_progress"
	KindBMIUnderweight  RecommendationKind = "bmi_underweight"
	KindBMIOverweight   RecommendationKind = "bmi_overweight"
	KindLowVariety      RecommendationKind = "low_variety"
	KindGoalTip         RecommendationKind = "goal_tip"
	KindKeepGoing       RecommendationKind = "keep_going"
)

type Recommendation struct {
	Kind    RecommendationKind `json:"kind"`
	Subject string             `json:"subject,omitempty"`
	Text    string             `json:"text"`
}

var goalTips = map[string]string{
	GoalStrength:   "For strength, work at 85-95% of your 1RM with 1-5 reps per set.",
	GoalMass:       "For muscle mass, 70-85% of 1RM with 6-12 reps per set works best.",
	GoalEndurance:  "For endurance, use 50-70% of 1RM with 15-20+ reps per set.",
	GoalWeightLoss: "For weight loss, combine strength work with cardio and keep an eye on calories.",
}

// recommend builds the ordered advice list; earlier entries have higher priority.
func recommend(profile Profile, a *Analytics) []Recommendation {
	var recs []Recommendation

	if len(a.MuscleGroups) > 1 {
		for _, mg := range a.MuscleGroups {
			if mg.Percentage < MuscleImbalanceThresholdPct {
				recs = append(recs, Recommendation{
					Kind:    KindMuscleImbalance,
					Subject: mg.MuscleGroup,
					Text: fmt.Sprintf(
						"Muscle group %s gets only %.1f%% of your training volume, give it more attention.",
						mg.MuscleGroup, mg.Percentage,
					),
				})
			}
		}
	}

	if a.Progress.FrequencyPerWeek < MinWeeklyFrequency {
		recs = append(recs, Recommendation{
			Kind: KindLowFrequency,
			Text: fmt.Sprintf(
				"You train %.1f times per week on average, aim for at least %.0f (ideally 3-4).",
				a.Progress.FrequencyPerWeek, MinWeeklyFrequency,
			),
		})
	}

	for _, ex := range a.Exercises {
		if ex.weeksRecorded < 2 || ex.Progress > 0 {
			continue
		}
		recs = append(recs, Recommendation{
			Kind:    KindNoProgress,
			Subject: ex.Exercise,
			Text:    fmt.Sprintf("No weight progress recorded for %s in this period.", ex.Exercise),
		})
	}

	if bmi := a.Profile.BMI; bmi != nil {
		switch {
		case *bmi < BMIUnderweight:
			recs = append(recs, Recommendation{
				Kind: KindBMIUnderweight,
				Text: "Your BMI is below normal. Increase calorie intake and focus on gaining muscle mass.",
			})
		case *bmi > BMIOverweight:
			recs = append(recs, Recommendation{
				Kind: KindBMIOverweight,
				Text: "Your BMI is above normal. Add cardio and keep calorie intake under control.",
			})
		}
	}

	if a.Profile.TotalExercises < MinExerciseVariety {
		recs = append(recs, Recommendation{
			Kind: KindLowVariety,
			Text: "Add more variety to the program, 8-12 different exercises is a good target.",
		})
	}

	if tip, ok := goalTips[profile.Goal]; ok {
		recs = append(recs, Recommendation{
			Kind:    KindGoalTip,
			Subject: profile.Goal,
			Text:    tip,
		})
	}

	if len(recs) == 0 {
		recs = append(recs, Recommendation{
			Kind: KindKeepGoing,
			Text: "Great work! Keep it up.",
		})
	}

	return recs
}
