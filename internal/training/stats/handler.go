package stats

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/2beens/trainingtracker/internal/telemetry/metrics"
	"github.com/2beens/trainingtracker/internal/telemetry/tracing"
	"github.com/2beens/trainingtracker/internal/training/analytics"
	"github.com/2beens/trainingtracker/internal/training/charts"
	"github.com/2beens/trainingtracker/internal/training/onerm"
	"github.com/2beens/trainingtracker/internal/training/profiles"
	"github.com/2beens/trainingtracker/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=stats_test

type statsService interface {
	Analytics(ctx context.Context, profileID int, period analytics.Period) (*analytics.Analytics, error)
	Charts(ctx context.Context, profileID int, exercises []string, metric charts.Metric, period analytics.Period) (*charts.Series, error)
}

type Handler struct {
	service statsService
	metrics *metrics.Manager
}

func NewHandler(service statsService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service: service,
		metrics: metricsManager,
	}
}

type AnalyticsResponse struct {
	Analytics *analytics.Analytics `json:"analytics"`
}

type CalculateRequest struct {
	Weight     float64 `json:"weight"`
	Reps       int     `json:"reps"`
	Percentage int     `json:"percentage"`
	Formula    string  `json:"formula"`
	Sets       int     `json:"sets"`
}

func (h *Handler) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.analytics")
	defer span.End()

	profileID, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	period, err := analytics.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	top := 0
	if raw := r.URL.Query().Get("top"); raw != "" {
		top, err = strconv.Atoi(raw)
		if err != nil || top < 0 {
			http.Error(w, "invalid top", http.StatusBadRequest)
			return
		}
	}
	span.SetAttributes(
		attribute.Int("profile.id", profileID),
		attribute.String("period", string(period)),
	)

	result, err := h.service.Analytics(ctx, profileID, period)
	if err != nil {
		if errors.Is(err, profiles.ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to compute analytics for profile %d: %s", profileID, err)
		http.Error(w, "failed to compute analytics", http.StatusInternalServerError)
		return
	}

	if result != nil && top > 0 && len(result.Exercises) > top {
		limited := *result
		limited.Exercises = result.Exercises[:top]
		result = &limited
	}

	pkg.WriteJSON(w, AnalyticsResponse{Analytics: result}, http.StatusOK)
}

func (h *Handler) HandleCharts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.charts")
	defer span.End()

	profileID, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	query := r.URL.Query()
	period, err := analytics.ParsePeriod(query.Get("period"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	metric, err := charts.ParseMetric(query.Get("metric"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(
		attribute.Int("profile.id", profileID),
		attribute.String("metric", string(metric)),
	)

	series, err := h.service.Charts(ctx, profileID, query["exercise"], metric, period)
	if err != nil {
		if errors.Is(err, profiles.ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to build charts for profile %d: %s", profileID, err)
		http.Error(w, "failed to build charts", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, series, http.StatusOK)
}

func (h *Handler) HandleCalculateOneRM(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.onerm")
	defer span.End()

	if !pkg.IsJSONRequest(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("calculate 1rm, unmarshal json params: %s", err)
		http.Error(w, "calculate failed", http.StatusBadRequest)
		return
	}
	if req.Sets == 0 {
		req.Sets = onerm.DefaultSetsCount
	}

	formula, err := onerm.ParseFormula(req.Formula)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("formula", string(formula)))

	plan, err := onerm.Calculate(req.Weight, req.Reps, req.Percentage, formula, req.Sets)
	if err != nil {
		var validationErr *onerm.ValidationError
		if errors.As(err, &validationErr) {
			log.Tracef("calculate 1rm: %s", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("calculate 1rm: %s", err)
		http.Error(w, "calculate failed", http.StatusInternalServerError)
		return
	}
	h.metrics.CounterOneRMEstimations.WithLabelValues(string(formula)).Inc()

	plan.TargetWeight = math.Round(plan.TargetWeight)
	pkg.WriteJSON(w, plan, http.StatusOK)
}
