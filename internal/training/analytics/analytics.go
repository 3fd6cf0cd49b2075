package analytics

import (
	"cmp"
	"maps"
	"slices"
	"time"

	"github.com/2beens/trainingtracker/internal/training/setmatrix"
)

const UnknownMuscleGroup = "other"

// Profile holds the person-level inputs the engine needs.
type Profile struct {
	WeightKg *float64
	HeightCm *float64
	Goal     string
}

// MuscleGroupResolver maps an exercise name to its primary muscle group.
type MuscleGroupResolver func(exercise string) string

type ProfileMetrics struct {
	TotalWorkouts    int      `json:"totalWorkouts"`
	TotalExercises   int      `json:"totalExercises"`
	TotalVolume      float64  `json:"totalVolume"`
	AverageIntensity float64  `json:"averageIntensity"`
	BMI              *float64 `json:"bmi,omitempty"`
}

type ProgressMetrics struct {
	WeightProgressPct    float64 `json:"weightProgress"`
	VolumeProgressPct    float64 `json:"volumeProgress"`
	FrequencyPerWeek     float64 `json:"frequencyPerWeek"`
	MostImprovedExercise string  `json:"mostImprovedExercise"`
}

type MuscleGroupStat struct {
	MuscleGroup string  `json:"muscleGroup"`
	Exercises   int     `json:"count"`
	Volume      float64 `json:"volume"`
	Percentage  float64 `json:"percentage"`
}

type ExerciseStat struct {
	Exercise    string  `json:"exercise"`
	MaxWeight   float64 `json:"maxWeight"`
	TotalVolume float64 `json:"totalVolume"`
	// Progress is the mean weight change between the earliest and the latest
	// week with data, in percent. Zero when only one week was recorded.
	Progress float64 `json:"progress"`

	weeksRecorded int
}

type Analytics struct {
	Profile         ProfileMetrics    `json:"profile"`
	Progress        ProgressMetrics   `json:"progress"`
	MuscleGroups    []MuscleGroupStat `json:"muscleGroupBalance"`
	Exercises       []ExerciseStat    `json:"exerciseStats"`
	Recommendations []Recommendation  `json:"recommendations"`
}

type weekBucket struct {
	weightSum float64
	sets      int
	volume    float64
}

func (b *weekBucket) meanWeight() float64 {
	if b.sets == 0 {
		return 0
	}
	return b.weightSum / float64(b.sets)
}

type exerciseAggregate struct {
	name      string
	maxWeight float64
	volume    float64
	weeks     map[time.Time]*weekBucket
}

// Compute derives profile statistics from the logs recorded within period.
// It returns nil when no log holds a recorded set inside the period, which
// callers treat as "not enough data" rather than an error.
func Compute(
	logs []*setmatrix.ExerciseLog,
	profile Profile,
	muscleGroupOf MuscleGroupResolver,
	period Period,
	now time.Time,
) *Analytics {
	from, to := period.Window(now)

	var active []*setmatrix.ExerciseLog
	for _, l := range logs {
		if l == nil {
			continue
		}
		if period != PeriodAll {
			l = l.Restrict(from, to)
		}
		if l.HasData() {
			active = append(active, l)
		}
	}
	if len(active) == 0 {
		return nil
	}

	workoutDays := make(map[time.Time]struct{})
	trainingWeeks := make(map[time.Time]*weekBucket)
	exercises := make(map[string]*exerciseAggregate)

	var intensitySum float64
	var intensityLogs int
	var totalVolume float64

	for _, l := range active {
		agg, ok := exercises[l.ExerciseName]
		if !ok {
			agg = &exerciseAggregate{
				name:  l.ExerciseName,
				weeks: make(map[time.Time]*weekBucket),
			}
			exercises[l.ExerciseName] = agg
		}

		for e := range l.NonEmptyEntries() {
			workoutDays[dayOf(l.Date(e.Week, e.Day))] = struct{}{}
			weekStart := dayOf(l.Date(e.Week, 1))

			bucket, ok := agg.weeks[weekStart]
			if !ok {
				bucket = &weekBucket{}
				agg.weeks[weekStart] = bucket
			}
			bucket.weightSum += e.WeightKg
			bucket.sets++
			bucket.volume += e.Volume()

			overall, ok := trainingWeeks[weekStart]
			if !ok {
				overall = &weekBucket{}
				trainingWeeks[weekStart] = overall
			}
			overall.volume += e.Volume()

			agg.maxWeight = max(agg.maxWeight, e.WeightKg)
			agg.volume += e.Volume()
			totalVolume += e.Volume()
		}

		if maxWeight := l.MaxWeight(); maxWeight > 0 {
			intensitySum += l.AverageWeight() / maxWeight * 100
			intensityLogs++
		}
	}

	result := &Analytics{
		Profile: ProfileMetrics{
			TotalWorkouts:  len(workoutDays),
			TotalExercises: len(exercises),
			TotalVolume:    totalVolume,
			BMI:            BMI(profile),
		},
	}
	if intensityLogs > 0 {
		result.Profile.AverageIntensity = intensitySum / float64(intensityLogs)
	}

	result.Exercises = exerciseStats(exercises)
	result.Progress = progressMetrics(result.Exercises, trainingWeeks, len(workoutDays))
	result.MuscleGroups = muscleGroupBalance(exercises, muscleGroupOf)
	result.Recommendations = recommend(profile, result)

	return result
}

// BMI returns weight / height(m)^2 when the profile carries both values.
func BMI(profile Profile) *float64 {
	if profile.WeightKg == nil || profile.HeightCm == nil {
		return nil
	}
	if *profile.WeightKg <= 0 || *profile.HeightCm <= 0 {
		return nil
	}
	heightM := *profile.HeightCm / 100
	bmi := *profile.WeightKg / (heightM * heightM)
	return &bmi
}

func exerciseStats(exercises map[string]*exerciseAggregate) []ExerciseStat {
	stats := make([]ExerciseStat, 0, len(exercises))
	for _, agg := range exercises {
		weeks := slices.SortedFunc(maps.Keys(agg.weeks), time.Time.Compare)
		stat := ExerciseStat{
			Exercise:      agg.name,
			MaxWeight:     agg.maxWeight,
			TotalVolume:   agg.volume,
			weeksRecorded: len(weeks),
		}
		if len(weeks) >= 2 {
			first := agg.weeks[weeks[0]].meanWeight()
			last := agg.weeks[weeks[len(weeks)-1]].meanWeight()
			stat.Progress = percentChange(first, last)
		}
		stats = append(stats, stat)
	}

	slices.SortFunc(stats, func(a, b ExerciseStat) int {
		if c := cmp.Compare(b.TotalVolume, a.TotalVolume); c != 0 {
			return c
		}
		return cmp.Compare(a.Exercise, b.Exercise)
	})
	return stats
}

func progressMetrics(stats []ExerciseStat, trainingWeeks map[time.Time]*weekBucket, totalWorkouts int) ProgressMetrics {
	var progress ProgressMetrics

	// stats are already ordered by volume desc then name asc, so the first
	// strictly greater progress wins ties the right way
	for _, stat := range stats {
		if stat.Progress > progress.WeightProgressPct {
			progress.WeightProgressPct = stat.Progress
			progress.MostImprovedExercise = stat.Exercise
		}
	}

	weeks := slices.SortedFunc(maps.Keys(trainingWeeks), time.Time.Compare)
	if len(weeks) >= 2 {
		first := trainingWeeks[weeks[0]].volume
		last := trainingWeeks[weeks[len(weeks)-1]].volume
		progress.VolumeProgressPct = max(0, percentChange(first, last))
	}
	if len(weeks) > 0 {
		progress.FrequencyPerWeek = float64(totalWorkouts) / float64(len(weeks))
	}

	return progress
}

func muscleGroupBalance(exercises map[string]*exerciseAggregate, muscleGroupOf MuscleGroupResolver) []MuscleGroupStat {
	groups := make(map[string]*MuscleGroupStat)
	var total float64
	for _, agg := range exercises {
		group := ""
		if muscleGroupOf != nil {
			group = muscleGroupOf(agg.name)
		}
		if group == "" {
			group = UnknownMuscleGroup
		}

		stat, ok := groups[group]
		if !ok {
			stat = &MuscleGroupStat{MuscleGroup: group}
			groups[group] = stat
		}
		stat.Exercises++
		stat.Volume += agg.volume
		total += agg.volume
	}

	result := make([]MuscleGroupStat, 0, len(groups))
	for _, stat := range groups {
		if total > 0 {
			stat.Percentage = stat.Volume * 100 / total
		}
		result = append(result, *stat)
	}
	slices.SortFunc(result, func(a, b MuscleGroupStat) int {
		if c := cmp.Compare(b.Volume, a.Volume); c != 0 {
			return c
		}
		return cmp.Compare(a.MuscleGroup, b.MuscleGroup)
	})
	return result
}

func percentChange(from, to float64) float64 {
	if from <= 0 {
		return 0
	}
	return (to - from) / from * 100
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
