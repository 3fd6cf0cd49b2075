package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/trainingtracker/internal/telemetry/metrics"
	"github.com/2beens/trainingtracker/internal/telemetry/tracing"
	"github.com/2beens/trainingtracker/internal/training/analytics"
	"github.com/2beens/trainingtracker/internal/training/charts"
	"github.com/2beens/trainingtracker/internal/training/profiles"
	"github.com/2beens/trainingtracker/internal/training/setmatrix"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=stats_test

type profileGetter interface {
	Get(ctx context.Context, id int) (*profiles.Profile, error)
}

type logsLister interface {
	ListForProfile(ctx context.Context, profileID int) ([]*setmatrix.ExerciseLog, error)
}

type muscleGroupResolver interface {
	Resolve(ctx context.Context, exercises []string) (map[string]string, error)
}

type analyticsStore interface {
	Get(ctx context.Context, profileID int, period analytics.Period) (*analytics.Analytics, bool, error)
	Set(ctx context.Context, profileID int, period analytics.Period, result *analytics.Analytics) error
}

type Service struct {
	profiles     profileGetter
	logs         logsLister
	muscleGroups muscleGroupResolver
	store        analyticsStore
	metrics      *metrics.Manager
	now          func() time.Time
}

func NewService(
	profiles profileGetter,
	logs logsLister,
	muscleGroups muscleGroupResolver,
	store analyticsStore,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		profiles:     profiles,
		logs:         logs,
		muscleGroups: muscleGroups,
		store:        store,
		metrics:      metricsManager,
		now:          time.Now,
	}
}

// Analytics returns the profile analytics for the period, served from the
// cache when possible. A nil result means the period holds no recorded sets.
func (s *Service) Analytics(ctx context.Context, profileID int, period analytics.Period) (_ *analytics.Analytics, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.stats.analytics")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("profile.id", profileID),
		attribute.String("period", string(period)),
	)

	cached, found, err := s.store.Get(ctx, profileID, period)
	if err != nil {
		log.Errorf("get cached analytics for profile %d: %s", profileID, err)
	} else if found {
		s.metrics.CounterAnalyticsCacheHits.Inc()
		return cached, nil
	}
	s.metrics.CounterAnalyticsCacheMiss.Inc()

	profile, err := s.profiles.Get(ctx, profileID)
	if err != nil {
		return nil, err
	}

	logs, err := s.logs.ListForProfile(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}

	names := make([]string, 0, len(logs))
	for _, l := range logs {
		names = append(names, l.ExerciseName)
	}
	groups, err := s.muscleGroups.Resolve(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("resolve muscle groups: %w", err)
	}

	start := time.Now()
	result := analytics.Compute(logs, profile.AnalyticsInput(), func(exercise string) string {
		return groups[exercise]
	}, period, s.now())
	s.metrics.HistogramAnalyticsDuration.Observe(time.Since(start).Seconds())
	s.metrics.CounterAnalyticsComputed.Inc()

	if err := s.store.Set(ctx, profileID, period, result); err != nil {
		log.Errorf("cache analytics for profile %d: %s", profileID, err)
	}

	return result, nil
}

// Charts builds the weekly chart series of the profile's logs.
func (s *Service) Charts(
	ctx context.Context,
	profileID int,
	exercises []string,
	metric charts.Metric,
	period analytics.Period,
) (_ *charts.Series, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.stats.charts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("profile.id", profileID),
		attribute.String("metric", string(metric)),
		attribute.String("period", string(period)),
	)

	// existence check, so an unknown profile is a 404 rather than an empty chart
	if _, err := s.profiles.Get(ctx, profileID); err != nil {
		return nil, err
	}

	logs, err := s.logs.ListForProfile(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}

	return charts.BuildSeries(logs, exercises, metric, period, s.now())
}
