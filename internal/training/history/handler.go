package history

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/trainingtracker/internal/telemetry/tracing"
	"github.com/2beens/trainingtracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=history_test

type historyRepo interface {
	AddSession(ctx context.Context, session *Session) error
	ListPage(ctx context.Context, profileID, page, size int) ([]*Session, bool, error)
	GetSession(ctx context.Context, profileID, id int) (*Session, error)
	UpdateSession(ctx context.Context, session *Session) error
	EditSession(ctx context.Context, profileID, id int, edit func(*Session) error) (*Session, error)
	DeleteSession(ctx context.Context, profileID, id int) error
}

type Handler struct {
	repo historyRepo
	now  func() time.Time
}

func NewHandler(repo historyRepo) *Handler {
	return &Handler{
		repo: repo,
		now:  time.Now,
	}
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.add")
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

	var req SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("new training session, unmarshal json params: %s", err)
		http.Error(w, "add training session failed", http.StatusBadRequest)
		return
	}
	session, err := req.Session(profileID, h.now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.repo.AddSession(ctx, session); err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to add training session for profile %d: %s", profileID, err)
		http.Error(w, "error, failed to add training session", http.StatusInternalServerError)
		return
	}

	log.Debugf("new training session added: %d", session.ID)
	pkg.WriteJSON(w, session, http.StatusCreated)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.list")
	defer span.End()

	profileID, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		http.Error(w, "error, page NaN", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		http.Error(w, "error, size NaN", http.StatusBadRequest)
		return
	}
	page, size = NormalizePage(page, size)
	span.SetAttributes(
		attribute.Int("profile.id", profileID),
		attribute.Int("page", page),
		attribute.Int("size", size),
	)

	sessions, hasMore, err := h.repo.ListPage(ctx, profileID, page, size)
	if err != nil {
		log.Errorf("failed to list training sessions for profile %d: %s", profileID, err)
		http.Error(w, "failed to list training sessions", http.StatusInternalServerError)
		return
	}
	if sessions == nil {
		sessions = []*Session{}
	}

	pkg.WriteJSON(w, Page{
		Sessions: sessions,
		Page:     page,
		Size:     size,
		HasMore:  hasMore,
	}, http.StatusOK)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.get")
	defer span.End()

	profileID, id, ok := sessionIDs(w, r)
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("profile.id", profileID), attribute.Int("id", id))

	session, err := h.repo.GetSession(ctx, profileID, id)
	if err != nil {
		h.writeRepoError(w, "get training session", id, err)
		return
	}

	pkg.WriteJSON(w, session, http.StatusOK)
}

// HandleUpdate replaces the whole session, its exercise list included.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.update")
	defer span.End()

	if !pkg.IsJSONRequest(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	profileID, id, ok := sessionIDs(w, r)
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("profile.id", profileID), attribute.Int("id", id))

	var req SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update training session, unmarshal json params: %s", err)
		http.Error(w, "update training session failed", http.StatusBadRequest)
		return
	}
	session, err := req.Session(profileID, h.now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	session.ID = id

	if err := h.repo.UpdateSession(ctx, session); err != nil {
		h.writeRepoError(w, "update training session", id, err)
		return
	}

	pkg.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.delete")
	defer span.End()

	profileID, id, ok := sessionIDs(w, r)
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("profile.id", profileID), attribute.Int("id", id))

	if err := h.repo.DeleteSession(ctx, profileID, id); err != nil {
		h.writeRepoError(w, "delete training session", id, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.addexercise")
	defer span.End()

	profileID, id, exercise, ok := h.exerciseRequest(w, r)
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("profile.id", profileID), attribute.Int("id", id))

	session, err := h.repo.EditSession(ctx, profileID, id, func(s *Session) error {
		_, err := s.AddExercise(exercise)
		return err
	})
	if err != nil {
		h.writeRepoError(w, "add session exercise", id, err)
		return
	}

	pkg.WriteJSON(w, session, http.StatusCreated)
}

func (h *Handler) HandleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.updateexercise")
	defer span.End()

	position, err := pkg.IntPathVar(r, "position")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	profileID, id, exercise, ok := h.exerciseRequest(w, r)
	if !ok {
		return
	}
	span.SetAttributes(
		attribute.Int("profile.id", profileID),
		attribute.Int("id", id),
		attribute.Int("position", position),
	)

	session, err := h.repo.EditSession(ctx, profileID, id, func(s *Session) error {
		return s.ReplaceExercise(position, exercise)
	})
	if err != nil {
		h.writeRepoError(w, "update session exercise", id, err)
		return
	}

	pkg.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) HandleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.deleteexercise")
	defer span.End()

	profileID, id, ok := sessionIDs(w, r)
	if !ok {
		return
	}
	position, err := pkg.IntPathVar(r, "position")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(
		attribute.Int("profile.id", profileID),
		attribute.Int("id", id),
		attribute.Int("position", position),
	)

	session, err := h.repo.EditSession(ctx, profileID, id, func(s *Session) error {
		return s.RemoveExercise(position)
	})
	if err != nil {
		h.writeRepoError(w, "delete session exercise", id, err)
		return
	}

	pkg.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) exerciseRequest(w http.ResponseWriter, r *http.Request) (int, int, ExerciseSets, bool) {
	if !pkg.IsJSONRequest(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return 0, 0, ExerciseSets{}, false
	}
	profileID, id, ok := sessionIDs(w, r)
	if !ok {
		return 0, 0, ExerciseSets{}, false
	}

	var exercise ExerciseSets
	if err := json.NewDecoder(r.Body).Decode(&exercise); err != nil {
		log.Tracef("session exercise, unmarshal json params: %s", err)
		http.Error(w, "session exercise failed", http.StatusBadRequest)
		return 0, 0, ExerciseSets{}, false
	}
	return profileID, id, exercise, true
}

func (h *Handler) writeRepoError(w http.ResponseWriter, action string, id int, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		http.Error(w, "training session not found", http.StatusNotFound)
	case errors.Is(err, ErrExerciseNotFound):
		http.Error(w, "session exercise not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidSession):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("failed to %s %d: %s", action, id, err)
		http.Error(w, "failed to "+action, http.StatusInternalServerError)
	}
}

func sessionIDs(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	profileID, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return 0, 0, false
	}
	id, err := pkg.IntPathVar(r, "sessionId")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return 0, 0, false
	}
	return profileID, id, true
}
