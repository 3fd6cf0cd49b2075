package logs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/trainingtracker/internal/telemetry/tracing"
	"github.com/2beens/trainingtracker/internal/training/calendar"
	"github.com/2beens/trainingtracker/internal/training/charts"
	"github.com/2beens/trainingtracker/internal/training/onerm"
	"github.com/2beens/trainingtracker/internal/training/setmatrix"
	"github.com/2beens/trainingtracker/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=logs_test

type logsRepo interface {
	AddLog(ctx context.Context, profileID int, exerciseName string, weeks int, startDate time.Time) (*setmatrix.ExerciseLog, error)
	GetLog(ctx context.Context, id int) (*setmatrix.ExerciseLog, error)
	ListForProfile(ctx context.Context, profileID int) ([]*setmatrix.ExerciseLog, error)
	ExerciseNames(ctx context.Context, profileID int) ([]string, error)
	SetEntry(ctx context.Context, logID int, slot setmatrix.Slot, cell setmatrix.Cell) error
	FillWeeks(ctx context.Context, logID int, weeks []int, day int, sets []onerm.Set) error
	DeleteLog(ctx context.Context, id int) (int, error)
}

type analyticsCache interface {
	Invalidate(ctx context.Context, profileID int) error
}

type Handler struct {
	repo  logsRepo
	cache analyticsCache
	now   func() time.Time
}

func NewHandler(repo logsRepo, cache analyticsCache) *Handler {
	return &Handler{
		repo:  repo,
		cache: cache,
		now:   time.Now,
	}
}

type AddLogRequest struct {
	ExerciseName string `json:"exerciseName"`
	Weeks        int    `json:"weeks"`
	// StartDate is YYYY-MM-DD, today when empty.
	StartDate string `json:"startDate"`
}

type SetEntryRequest struct {
	Week     int     `json:"week"`
	Day      int     `json:"day"`
	Set      int     `json:"set"`
	Reps     int     `json:"reps"`
	WeightKg float64 `json:"weightKg"`
}

// FillRequest drives the estimate -> target -> sets chain and writes the
// generated sets into the log. Week 0 fills every week of the log.
type FillRequest struct {
	WeightKg   float64 `json:"weight"`
	Reps       int     `json:"reps"`
	Percentage int     `json:"percentage"`
	Formula    string  `json:"formula"`
	Week       int     `json:"week"`
	Day        int     `json:"day"`
	Sets       int     `json:"sets"`
}

type FillResponse struct {
	Plan *onerm.Plan            `json:"plan"`
	Log  *setmatrix.ExerciseLog `json:"log"`
}

type ExercisesResponse struct {
	Exercises []string `json:"exercises"`
}

type DeleteLogResponse struct {
	DeletedID int `json:"deletedId"`
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logs.add")
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

	var req AddLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("new log, unmarshal json params: %s", err)
		http.Error(w, "add log failed", http.StatusBadRequest)
		return
	}

	req.ExerciseName = strings.TrimSpace(req.ExerciseName)
	if req.ExerciseName == "" {
		http.Error(w, "exercise name is required", http.StatusBadRequest)
		return
	}
	if charts.ReservedExerciseName(req.ExerciseName) {
		http.Error(w, "exercise name is reserved: "+req.ExerciseName, http.StatusBadRequest)
		return
	}
	if req.Weeks != 0 {
		req.Weeks = setmatrix.ClampWeeks(req.Weeks)
	}

	startDate := calendar.Date(h.now())
	if req.StartDate != "" {
		startDate, err = time.Parse(calendar.DateLayout, req.StartDate)
		if err != nil {
			http.Error(w, "invalid start date", http.StatusBadRequest)
			return
		}
	}

	added, err := h.repo.AddLog(ctx, profileID, req.ExerciseName, req.Weeks, startDate)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to add log [%s] for profile %d: %s", req.ExerciseName, profileID, err)
		http.Error(w, "error, failed to add log", http.StatusInternalServerError)
		return
	}

	log.Debugf("new exercise log added: %d", added.ID)
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logs.list")
	defer span.End()

	profileID, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("profile.id", profileID))

	logs, err := h.repo.ListForProfile(ctx, profileID)
	if err != nil {
		log.Errorf("failed to list logs for profile %d: %s", profileID, err)
		http.Error(w, "failed to list logs", http.StatusInternalServerError)
		return
	}
	if logs == nil {
		logs = []*setmatrix.ExerciseLog{}
	}

	pkg.WriteJSON(w, logs, http.StatusOK)
}

// HandleExercises lists the exercises the profile has logs for.
func (h *Handler) HandleExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logs.exercises")
	defer span.End()

	profileID, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("profile.id", profileID))

	names, err := h.repo.ExerciseNames(ctx, profileID)
	if err != nil {
		log.Errorf("failed to list exercises for profile %d: %s", profileID, err)
		http.Error(w, "failed to list exercises", http.StatusInternalServerError)
		return
	}
	if names == nil {
		names = []string{}
	}

	pkg.WriteJSON(w, ExercisesResponse{Exercises: names}, http.StatusOK)
}

func (h *Handler) HandleSetEntry(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logs.setentry")
	defer span.End()

	if !pkg.IsJSONRequest(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	logID, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("log.id", logID))

	var req SetEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("set entry, unmarshal json params: %s", err)
		http.Error(w, "set entry failed", http.StatusBadRequest)
		return
	}

	exerciseLog, ok := h.getLog(ctx, w, logID)
	if !ok {
		return
	}

	slot := setmatrix.Slot{Week: req.Week, Day: req.Day, Set: req.Set}
	cell := setmatrix.Cell{Reps: req.Reps, WeightKg: req.WeightKg}
	// validates against the log's own week count
	if err := exerciseLog.Set(slot, cell); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.repo.SetEntry(ctx, logID, slot, cell); err != nil {
		log.Errorf("failed to set entry %+v of log %d: %s", slot, logID, err)
		http.Error(w, "failed to set entry", http.StatusInternalServerError)
		return
	}
	h.invalidate(ctx, exerciseLog.ProfileID)

	pkg.WriteJSON(w, exerciseLog, http.StatusOK)
}

func (h *Handler) HandleFill(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logs.fill")
	defer span.End()

	if !pkg.IsJSONRequest(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	logID, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("log.id", logID))

	var req FillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("fill log, unmarshal json params: %s", err)
		http.Error(w, "fill log failed", http.StatusBadRequest)
		return
	}
	if req.Day == 0 {
		req.Day = 1
	}
	if req.Sets == 0 {
		req.Sets = onerm.DefaultSetsCount
	}

	formula, err := onerm.ParseFormula(req.Formula)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	plan, err := onerm.Calculate(req.WeightKg, req.Reps, req.Percentage, formula, req.Sets)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	exerciseLog, ok := h.getLog(ctx, w, logID)
	if !ok {
		return
	}

	var weeks []int
	if req.Week == 0 {
		for week := 1; week <= exerciseLog.Weeks; week++ {
			weeks = append(weeks, week)
		}
	} else {
		weeks = []int{req.Week}
	}

	for _, week := range weeks {
		for i, s := range plan.Sets {
			slot := setmatrix.Slot{Week: week, Day: req.Day, Set: i + 1}
			if err := exerciseLog.Set(slot, setmatrix.Cell{Reps: s.Reps, WeightKg: s.WeightKg}); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}
	}

	if err := h.repo.FillWeeks(ctx, logID, weeks, req.Day, plan.Sets); err != nil {
		log.Errorf("failed to fill log %d: %s", logID, err)
		http.Error(w, "failed to fill log", http.StatusInternalServerError)
		return
	}
	h.invalidate(ctx, exerciseLog.ProfileID)

	pkg.WriteJSON(w, FillResponse{Plan: plan, Log: exerciseLog}, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logs.delete")
	defer span.End()

	logID, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("log.id", logID))

	profileID, err := h.repo.DeleteLog(ctx, logID)
	if err != nil {
		if errors.Is(err, ErrLogNotFound) {
			http.Error(w, "log not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete log %d: %s", logID, err)
		http.Error(w, "failed to delete log", http.StatusInternalServerError)
		return
	}
	h.invalidate(ctx, profileID)

	pkg.WriteJSON(w, DeleteLogResponse{DeletedID: logID}, http.StatusOK)
}

func (h *Handler) getLog(ctx context.Context, w http.ResponseWriter, id int) (*setmatrix.ExerciseLog, bool) {
	exerciseLog, err := h.repo.GetLog(ctx, id)
	if err != nil {
		if errors.Is(err, ErrLogNotFound) {
			http.Error(w, "log not found", http.StatusNotFound)
			return nil, false
		}
		log.Errorf("failed to get log %d: %s", id, err)
		http.Error(w, "failed to get log", http.StatusInternalServerError)
		return nil, false
	}
	return exerciseLog, true
}

func (h *Handler) invalidate(ctx context.Context, profileID int) {
	if err := h.cache.Invalidate(ctx, profileID); err != nil {
		log.Errorf("invalidate analytics cache for profile %d: %s", profileID, err)
	}
}
