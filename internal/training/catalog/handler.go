package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/trainingtracker/internal/telemetry/tracing"
	"github.com/2beens/trainingtracker/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=catalog_test

type catalogRepo interface {
	Add(ctx context.Context, exercise Exercise) (*Exercise, error)
	List(ctx context.Context, muscleGroup string) ([]Exercise, error)
	Delete(ctx context.Context, id int) error
}

type muscleGroupCache interface {
	Forget(exercise string)
	Clear()
}

// analyticsCache holds analytics grouped by the muscle groups known at the time.
type analyticsCache interface {
	InvalidateAll(ctx context.Context) error
}

type Handler struct {
	repo      catalogRepo
	cache     muscleGroupCache
	analytics analyticsCache
}

func NewHandler(repo catalogRepo, cache muscleGroupCache, analytics analyticsCache) *Handler {
	return &Handler{
		repo:      repo,
		cache:     cache,
		analytics: analytics,
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.list")
	defer span.End()

	muscleGroup := r.URL.Query().Get("muscleGroup")
	span.SetAttributes(attribute.String("muscle_group", muscleGroup))

	exercises, err := h.repo.List(ctx, muscleGroup)
	if err != nil {
		log.Errorf("failed to list catalog exercises: %s", err)
		http.Error(w, "failed to list exercises", http.StatusInternalServerError)
		return
	}
	if exercises == nil {
		exercises = []Exercise{}
	}

	pkg.WriteJSON(w, exercises, http.StatusOK)
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.add")
	defer span.End()

	if !pkg.IsJSONRequest(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var exercise Exercise
	if err := json.NewDecoder(r.Body).Decode(&exercise); err != nil {
		log.Tracef("new catalog exercise, unmarshal json params: %s", err)
		http.Error(w, "add exercise failed", http.StatusBadRequest)
		return
	}
	if err := exercise.Normalize(); err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	// exercises added through the api are always custom
	exercise.IsCustom = true

	added, err := h.repo.Add(ctx, exercise)
	if err != nil {
		if errors.Is(err, ErrExerciseExists) {
			http.Error(w, "exercise already exists", http.StatusConflict)
			return
		}
		log.Errorf("failed to add catalog exercise [%s]: %s", exercise.Name, err)
		http.Error(w, "failed to add exercise", http.StatusInternalServerError)
		return
	}

	// drop a cached "unknown" group for that name
	h.cache.Forget(added.Name)
	h.invalidateAnalytics(ctx)

	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.delete")
	defer span.End()

	id, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	if err := h.repo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, ErrExerciseNotFound):
			http.Error(w, "exercise not found", http.StatusNotFound)
		case errors.Is(err, ErrExercisePredefined):
			http.Error(w, "cannot delete predefined exercises", http.StatusForbidden)
		default:
			log.Errorf("failed to delete catalog exercise %d: %s", id, err)
			http.Error(w, "failed to delete exercise", http.StatusInternalServerError)
		}
		return
	}

	h.cache.Clear()
	h.invalidateAnalytics(ctx)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) invalidateAnalytics(ctx context.Context) {
	if err := h.analytics.InvalidateAll(ctx); err != nil {
		log.Errorf("invalidate analytics cache after catalog change: %s", err)
	}
}
