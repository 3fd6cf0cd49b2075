package goals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/trainingtracker/internal/telemetry/tracing"
	"github.com/2beens/trainingtracker/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=goals_test

type goalsRepo interface {
	Add(ctx context.Context, goal *Goal) error
	Get(ctx context.Context, id int) (*Goal, error)
	ListForProfile(ctx context.Context, profileID int) ([]*Goal, error)
	Update(ctx context.Context, goal *Goal) error
	UpdateProgress(ctx context.Context, goal *Goal) error
	Delete(ctx context.Context, id int) error
}

type Handler struct {
	repo goalsRepo
	now  func() time.Time
}

func NewHandler(repo goalsRepo) *Handler {
	return &Handler{
		repo: repo,
		now:  time.Now,
	}
}

type ProgressRequest struct {
	CurrentValue float64 `json:"currentValue"`
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.add")
	defer span.End()

	if !pkg.IsJSONRequest(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	profileID, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("profile.id", profileID))

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("new goal, unmarshal json params: %s", err)
		http.Error(w, "add goal failed", http.StatusBadRequest)
		return
	}
	goal, err := req.Goal(profileID, h.now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.repo.Add(ctx, goal); err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to add goal [%s] for profile %d: %s", goal.Title, profileID, err)
		http.Error(w, "error, failed to add goal", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, goal, http.StatusCreated)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.list")
	defer span.End()

	profileID, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("profile.id", profileID))

	goals, err := h.repo.ListForProfile(ctx, profileID)
	if err != nil {
		log.Errorf("failed to list goals for profile %d: %s", profileID, err)
		http.Error(w, "failed to list goals", http.StatusInternalServerError)
		return
	}
	if goals == nil {
		goals = []*Goal{}
	}

	pkg.WriteJSON(w, goals, http.StatusOK)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.update")
	defer span.End()

	if !pkg.IsJSONRequest(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	id, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update goal, unmarshal json params: %s", err)
		http.Error(w, "update goal failed", http.StatusBadRequest)
		return
	}

	goal, err := h.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get goal %d: %s", id, err)
		http.Error(w, "failed to update goal", http.StatusInternalServerError)
		return
	}
	if err := goal.Apply(req, h.now()); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.repo.Update(ctx, goal); err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update goal %d: %s", id, err)
		http.Error(w, "failed to update goal", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, goal, http.StatusOK)
}

func (h *Handler) HandleUpdateProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.progress")
	defer span.End()

	if !pkg.IsJSONRequest(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	id, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	var req ProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("goal progress, unmarshal json params: %s", err)
		http.Error(w, "update goal progress failed", http.StatusBadRequest)
		return
	}

	goal, err := h.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get goal %d: %s", id, err)
		http.Error(w, "failed to update goal progress", http.StatusInternalServerError)
		return
	}

	wasAchieved := goal.Achieved
	if err := goal.SetProgress(req.CurrentValue, h.now()); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.repo.UpdateProgress(ctx, goal); err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update goal %d progress: %s", id, err)
		http.Error(w, "failed to update goal progress", http.StatusInternalServerError)
		return
	}
	if goal.Achieved && !wasAchieved {
		log.Debugf("goal %d achieved by profile %d", id, goal.ProfileID)
	}

	pkg.WriteJSON(w, goal, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.delete")
	defer span.End()

	id, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	if err := h.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete goal %d: %s", id, err)
		http.Error(w, "failed to delete goal", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
