package stats_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/2beens/trainingtracker/internal/telemetry/metrics"
	"github.com/2beens/trainingtracker/internal/training/analytics"
	"github.com/2beens/trainingtracker/internal/training/charts"
	"github.com/2beens/trainingtracker/internal/training/profiles"
	"github.com/2beens/trainingtracker/internal/training/setmatrix"
	"github.com/2beens/trainingtracker/internal/training/stats"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	profiles     *MockprofileGetter
	logs         *MocklogsLister
	muscleGroups *MockmuscleGroupResolver
	store        *MockanalyticsStore
	metrics      *metrics.Manager
}

func newTestService(t *testing.T) (*stats.Service, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		profiles:     NewMockprofileGetter(ctrl),
		logs:         NewMocklogsLister(ctrl),
		muscleGroups: NewMockmuscleGroupResolver(ctrl),
		store:        NewMockanalyticsStore(ctrl),
		metrics:      metrics.NewTestManager(),
	}
	return stats.NewService(m.profiles, m.logs, m.muscleGroups, m.store, m.metrics), m
}

func benchPressLog(t *testing.T) *setmatrix.ExerciseLog {
	t.Helper()
	// recent enough to fall inside every period
	start := time.Now().AddDate(0, 0, -3)
	l := setmatrix.NewExerciseLog("Bench Press", 4, start)
	require.NoError(t, l.Set(setmatrix.Slot{Week: 1, Day: 1, Set: 1}, setmatrix.Cell{Reps: 8, WeightKg: 80}))
	require.NoError(t, l.Set(setmatrix.Slot{Week: 1, Day: 1, Set: 2}, setmatrix.Cell{Reps: 8, WeightKg: 100}))
	return l
}

func TestService_Analytics_CacheHit(t *testing.T) {
	service, m := newTestService(t)

	cached := &analytics.Analytics{Profile: analytics.ProfileMetrics{TotalWorkouts: 9}}
	m.store.EXPECT().Get(gomock.Any(), 4, analytics.PeriodMonth).Return(cached, true, nil)

	result, err := service.Analytics(context.Background(), 4, analytics.PeriodMonth)
	require.NoError(t, err)
	assert.Same(t, cached, result)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.metrics.CounterAnalyticsCacheHits))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.metrics.CounterAnalyticsComputed))
}

func TestService_Analytics_Compute(t *testing.T) {
	service, m := newTestService(t)
	bench := benchPressLog(t)

	gomock.InOrder(
		m.store.EXPECT().Get(gomock.Any(), 4, analytics.PeriodAll).Return(nil, false, nil),
		m.profiles.EXPECT().Get(gomock.Any(), 4).Return(&profiles.Profile{ID: 4, Goal: "strength"}, nil),
		m.logs.EXPECT().ListForProfile(gomock.Any(), 4).Return([]*setmatrix.ExerciseLog{bench}, nil),
		m.muscleGroups.EXPECT().Resolve(gomock.Any(), []string{"Bench Press"}).
			Return(map[string]string{"Bench Press": "chest"}, nil),
		m.store.EXPECT().Set(gomock.Any(), 4, analytics.PeriodAll, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int, _ analytics.Period, result *analytics.Analytics) error {
				require.NotNil(t, result)
				assert.Equal(t, 1440.0, result.Profile.TotalVolume)
				return nil
			}),
	)

	result, err := service.Analytics(context.Background(), 4, analytics.PeriodAll)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 1, result.Profile.TotalExercises)
	require.Len(t, result.MuscleGroups, 1)
	assert.Equal(t, "chest", result.MuscleGroups[0].MuscleGroup)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.metrics.CounterAnalyticsCacheMiss))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.metrics.CounterAnalyticsComputed))
	assert.Equal(t, 1, testutil.CollectAndCount(m.metrics.HistogramAnalyticsDuration))
}

func TestService_Analytics_NoDataIsCached(t *testing.T) {
	service, m := newTestService(t)

	m.store.EXPECT().Get(gomock.Any(), 4, analytics.PeriodWeek).Return(nil, false, nil)
	m.profiles.EXPECT().Get(gomock.Any(), 4).Return(&profiles.Profile{ID: 4}, nil)
	m.logs.EXPECT().ListForProfile(gomock.Any(), 4).Return(nil, nil)
	m.muscleGroups.EXPECT().Resolve(gomock.Any(), []string{}).Return(map[string]string{}, nil)
	m.store.EXPECT().Set(gomock.Any(), 4, analytics.PeriodWeek, gomock.Nil()).Return(nil)

	result, err := service.Analytics(context.Background(), 4, analytics.PeriodWeek)
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestService_Analytics_CacheFailuresAreNotFatal(t *testing.T) {
	service, m := newTestService(t)

	m.store.EXPECT().Get(gomock.Any(), 4, analytics.PeriodAll).Return(nil, false, errors.New("redis down"))
	m.profiles.EXPECT().Get(gomock.Any(), 4).Return(&profiles.Profile{ID: 4}, nil)
	m.logs.EXPECT().ListForProfile(gomock.Any(), 4).Return([]*setmatrix.ExerciseLog{benchPressLog(t)}, nil)
	m.muscleGroups.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(map[string]string{}, nil)
	m.store.EXPECT().Set(gomock.Any(), 4, analytics.PeriodAll, gomock.Any()).Return(errors.New("redis down"))

	result, err := service.Analytics(context.Background(), 4, analytics.PeriodAll)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, result.MuscleGroups, 1)
	assert.Equal(t, analytics.UnknownMuscleGroup, result.MuscleGroups[0].MuscleGroup)
}

func TestService_Analytics_Errors(t *testing.T) {
	service, m := newTestService(t)

	m.store.EXPECT().Get(gomock.Any(), 4, analytics.PeriodAll).Return(nil, false, nil).Times(2)
	m.profiles.EXPECT().Get(gomock.Any(), 4).Return(nil, profiles.ErrProfileNotFound)
	_, err := service.Analytics(context.Background(), 4, analytics.PeriodAll)
	assert.ErrorIs(t, err, profiles.ErrProfileNotFound)

	m.profiles.EXPECT().Get(gomock.Any(), 4).Return(&profiles.Profile{ID: 4}, nil)
	m.logs.EXPECT().ListForProfile(gomock.Any(), 4).Return(nil, errors.New("db down"))
	_, err = service.Analytics(context.Background(), 4, analytics.PeriodAll)
	assert.Error(t, err)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.metrics.CounterAnalyticsComputed))
}

func TestService_Charts(t *testing.T) {
	service, m := newTestService(t)

	m.profiles.EXPECT().Get(gomock.Any(), 4).Return(&profiles.Profile{ID: 4}, nil)
	m.logs.EXPECT().ListForProfile(gomock.Any(), 4).Return([]*setmatrix.ExerciseLog{benchPressLog(t)}, nil)

	series, err := service.Charts(context.Background(), 4, nil, charts.MetricWeight, analytics.PeriodAll)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bench Press"}, series.Exercises)
	require.Len(t, series.Rows, 1)
	assert.Equal(t, 100.0, series.Rows[0].Values["Bench Press"])

	m.profiles.EXPECT().Get(gomock.Any(), 5).Return(nil, profiles.ErrProfileNotFound)
	_, err = service.Charts(context.Background(), 5, nil, charts.MetricWeight, analytics.PeriodAll)
	assert.ErrorIs(t, err, profiles.ErrProfileNotFound)
}
