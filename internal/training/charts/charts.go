package charts

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/2beens/trainingtracker/internal/training/analytics"
	"github.com/2beens/trainingtracker/internal/training/setmatrix"
)

var (
	ErrInvalidMetric  = errors.New("invalid metric")
	ErrLabelCollision = errors.New("exercise name collides with the row label key")
)

// LabelKey holds the week label in a flattened row, no exercise may use it.
const LabelKey = "week"

// ReservedExerciseName reports whether name would clash with LabelKey.
func ReservedExerciseName(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), LabelKey)
}

type Metric string

const (
	MetricWeight    Metric = "weight"
	MetricVolume    Metric = "volume"
	MetricIntensity Metric = "intensity"
)

func ParseMetric(s string) (Metric, error) {
	switch m := Metric(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return MetricWeight, nil
	case MetricWeight, MetricVolume, MetricIntensity:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidMetric, s)
	}
}

// Row is one point on the chart x-axis: a program week with a value per exercise.
type Row struct {
	Week   int
	Label  string
	Values map[string]float64
}

// MarshalJSON flattens the row into {"week": label, "<exercise>": value, ...},
// the shape line/area chart components consume directly.
func (r Row) MarshalJSON() ([]byte, error) {
	if _, ok := r.Values[LabelKey]; ok {
		return nil, fmt.Errorf("%w: week %d", ErrLabelCollision, r.Week)
	}

	flat := make(map[string]any, len(r.Values)+1)
	for exercise, v := range r.Values {
		flat[exercise] = v
	}
	flat[LabelKey] = r.Label
	return json.Marshal(flat)
}

type Series struct {
	Rows      []Row    `json:"series"`
	Exercises []string `json:"exercises"`
	Metric    Metric   `json:"metric"`
	Period    string   `json:"period"`
}

type weekStats struct {
	maxWeight float64
	weightSum float64
	sets      int
	volume    float64
}

func (w weekStats) value(metric Metric) float64 {
	switch metric {
	case MetricVolume:
		return w.volume
	case MetricIntensity:
		if w.maxWeight == 0 || w.sets == 0 {
			return 0
		}
		return w.weightSum / float64(w.sets) / w.maxWeight * 100
	default:
		return w.maxWeight
	}
}

func WeekLabel(week int) string {
	return fmt.Sprintf("Week %d", week)
}

// BuildSeries turns logs into per-week chart rows for the chosen exercises.
// An empty selection means every exercise with data in the period. Weeks with
// no data are zero-filled from week 1 up to the last week with data.
func BuildSeries(
	logs []*setmatrix.ExerciseLog,
	exercises []string,
	metric Metric,
	period analytics.Period,
	now time.Time,
) (*Series, error) {
	switch metric {
	case MetricWeight, MetricVolume, MetricIntensity:
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidMetric, metric)
	}

	from, to := period.Window(now)
	perExercise := make(map[string]map[int]*weekStats)
	lastWeek := 0

	selected := make(map[string]bool, len(exercises))
	for _, e := range exercises {
		selected[e] = true
	}

	for _, l := range logs {
		if l == nil {
			continue
		}
		if len(selected) > 0 && !selected[l.ExerciseName] {
			continue
		}
		if period != analytics.PeriodAll {
			l = l.Restrict(from, to)
		}

		for e := range l.NonEmptyEntries() {
			weeks, ok := perExercise[l.ExerciseName]
			if !ok {
				weeks = make(map[int]*weekStats)
				perExercise[l.ExerciseName] = weeks
			}
			ws, ok := weeks[e.Week]
			if !ok {
				ws = &weekStats{}
				weeks[e.Week] = ws
			}
			ws.maxWeight = max(ws.maxWeight, e.WeightKg)
			ws.weightSum += e.WeightKg
			ws.sets++
			ws.volume += e.Volume()
			lastWeek = max(lastWeek, e.Week)
		}
	}

	var names []string
	if len(exercises) > 0 {
		seen := make(map[string]bool, len(exercises))
		for _, e := range exercises {
			if !seen[e] {
				seen[e] = true
				names = append(names, e)
			}
		}
	} else {
		names = slices.Sorted(maps.Keys(perExercise))
	}

	rows := make([]Row, 0, lastWeek)
	for week := 1; week <= lastWeek; week++ {
		row := Row{
			Week:   week,
			Label:  WeekLabel(week),
			Values: make(map[string]float64, len(names)),
		}
		for _, name := range names {
			var v float64
			if ws, ok := perExercise[name][week]; ok {
				v = ws.value(metric)
			}
			row.Values[name] = v
		}
		rows = append(rows, row)
	}

	if names == nil {
		names = []string{}
	}

	return &Series{
		Rows:      rows,
		Exercises: names,
		Metric:    metric,
		Period:    string(period),
	}, nil
}
