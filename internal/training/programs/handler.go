package programs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/trainingtracker/internal/telemetry/tracing"
	"github.com/2beens/trainingtracker/internal/training/calendar"
	"github.com/2beens/trainingtracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=programs_test

type programsRepo interface {
	Add(ctx context.Context, program calendar.Program) (*calendar.Program, error)
	Get(ctx context.Context, id int) (*calendar.Program, error)
	ListForProfile(ctx context.Context, profileID int) ([]calendar.Program, error)
	Update(ctx context.Context, program *calendar.Program) error
	Delete(ctx context.Context, id int) error
	Activate(ctx context.Context, id int) (*calendar.Program, error)
	AddExercise(ctx context.Context, exercise calendar.ProgramExercise) (*calendar.ProgramExercise, error)
	ListExercises(ctx context.Context, programID int) ([]calendar.ProgramExercise, error)
	UpdateExercise(ctx context.Context, exercise *calendar.ProgramExercise) error
	DeleteExercise(ctx context.Context, programID, exerciseID int) error
	UpsertSession(ctx context.Context, session calendar.Session) (*calendar.Session, error)
	SessionsOn(ctx context.Context, programID int, date time.Time) ([]calendar.Session, error)
	ListSessions(ctx context.Context, programID, year int, month time.Month) ([]calendar.Session, error)
	DeleteSession(ctx context.Context, programID int, date time.Time) error
}

type Handler struct {
	repo programsRepo
	now  func() time.Time
}

func NewHandler(repo programsRepo) *Handler {
	return &Handler{
		repo: repo,
		now:  time.Now,
	}
}

type DeleteResponse struct {
	DeletedID int `json:"deletedId"`
}

type PlanDaysResponse struct {
	Year  int      `json:"year"`
	Month int      `json:"month"`
	Days  []string `json:"days"`
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.add")
	defer span.End()

	if !pkg.IsJSONRequest(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req ProgramRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("new program, unmarshal json params: %s", err)
		http.Error(w, "add program failed", http.StatusBadRequest)
		return
	}
	program, err := req.Program()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("profile.id", program.ProfileID))

	added, err := h.repo.Add(ctx, program)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to add program [%s]: %s", program.Name, err)
		http.Error(w, "error, failed to add program", http.StatusInternalServerError)
		return
	}

	log.Debugf("new program added: %d", added.ID)
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.list")
	defer span.End()

	profileID, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("profile.id", profileID))

	programs, err := h.repo.ListForProfile(ctx, profileID)
	if err != nil {
		log.Errorf("failed to list programs for profile %d: %s", profileID, err)
		http.Error(w, "failed to list programs", http.StatusInternalServerError)
		return
	}
	if programs == nil {
		programs = []calendar.Program{}
	}

	pkg.WriteJSON(w, programs, http.StatusOK)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.get")
	defer span.End()

	program, ok := h.program(ctx, w, r)
	if !ok {
		return
	}
	pkg.WriteJSON(w, program, http.StatusOK)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.update")
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

	var req ProgramRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update program, unmarshal json params: %s", err)
		http.Error(w, "update program failed", http.StatusBadRequest)
		return
	}
	program, err := req.Program()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	program.ID = id

	if err := h.repo.Update(ctx, &program); err != nil {
		if errors.Is(err, calendar.ErrProgramNotFound) {
			http.Error(w, "program not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update program %d: %s", id, err)
		http.Error(w, "failed to update program", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, program, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.delete")
	defer span.End()

	id, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	if err := h.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, calendar.ErrProgramNotFound) {
			http.Error(w, "program not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete program %d: %s", id, err)
		http.Error(w, "failed to delete program", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, DeleteResponse{DeletedID: id}, http.StatusOK)
}

func (h *Handler) HandleActivate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.activate")
	defer span.End()

	id, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	program, err := h.repo.Activate(ctx, id)
	if err != nil {
		if errors.Is(err, calendar.ErrProgramNotFound) {
			http.Error(w, "program not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to activate program %d: %s", id, err)
		http.Error(w, "failed to activate program", http.StatusInternalServerError)
		return
	}

	log.Debugf("program %d activated for profile %d", id, program.ProfileID)
	pkg.WriteJSON(w, program, http.StatusOK)
}

func (h *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.addexercise")
	defer span.End()

	if !pkg.IsJSONRequest(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	programID, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("program.id", programID))

	var exercise calendar.ProgramExercise
	if err := json.NewDecoder(r.Body).Decode(&exercise); err != nil {
		log.Tracef("new program exercise, unmarshal json params: %s", err)
		http.Error(w, "add program exercise failed", http.StatusBadRequest)
		return
	}
	exercise.ProgramID = programID
	if err := ValidateExercise(&exercise); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	added, err := h.repo.AddExercise(ctx, exercise)
	if err != nil {
		if errors.Is(err, calendar.ErrProgramNotFound) {
			http.Error(w, "program not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to add exercise [%s] to program %d: %s", exercise.Exercise, programID, err)
		http.Error(w, "error, failed to add program exercise", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) HandleListExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.listexercises")
	defer span.End()

	programID, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("program.id", programID))

	exercises, err := h.repo.ListExercises(ctx, programID)
	if err != nil {
		log.Errorf("failed to list exercises of program %d: %s", programID, err)
		http.Error(w, "failed to list program exercises", http.StatusInternalServerError)
		return
	}
	if exercises == nil {
		exercises = []calendar.ProgramExercise{}
	}

	pkg.WriteJSON(w, exercises, http.StatusOK)
}

func (h *Handler) HandleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.updateexercise")
	defer span.End()

	if !pkg.IsJSONRequest(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	programID, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	exerciseID, err := pkg.IntPathVar(r, "exid")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(
		attribute.Int("program.id", programID),
		attribute.Int("exercise.id", exerciseID),
	)

	var exercise calendar.ProgramExercise
	if err := json.NewDecoder(r.Body).Decode(&exercise); err != nil {
		log.Tracef("update program exercise, unmarshal json params: %s", err)
		http.Error(w, "update program exercise failed", http.StatusBadRequest)
		return
	}
	exercise.ID = exerciseID
	exercise.ProgramID = programID
	if err := ValidateExercise(&exercise); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.repo.UpdateExercise(ctx, &exercise); err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "program exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update exercise %d of program %d: %s", exerciseID, programID, err)
		http.Error(w, "failed to update program exercise", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, exercise, http.StatusOK)
}

func (h *Handler) HandleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.deleteexercise")
	defer span.End()

	programID, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	exerciseID, err := pkg.IntPathVar(r, "exid")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(
		attribute.Int("program.id", programID),
		attribute.Int("exercise.id", exerciseID),
	)

	if err := h.repo.DeleteExercise(ctx, programID, exerciseID); err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "program exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete exercise %d of program %d: %s", exerciseID, programID, err)
		http.Error(w, "failed to delete program exercise", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, DeleteResponse{DeletedID: exerciseID}, http.StatusOK)
}

// HandlePlan returns the slots scheduled on ?date=, today when omitted.
func (h *Handler) HandlePlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.plan")
	defer span.End()

	date := calendar.Date(h.now())
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(calendar.DateLayout, raw)
		if err != nil {
			http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		date = parsed
	}
	span.SetAttributes(attribute.String("date", date.Format(calendar.DateLayout)))

	program, ok := h.program(ctx, w, r)
	if !ok {
		return
	}
	slots, err := h.repo.ListExercises(ctx, program.ID)
	if err != nil {
		log.Errorf("failed to list exercises of program %d: %s", program.ID, err)
		http.Error(w, "failed to resolve plan", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, calendar.ResolvePlanForDate(*program, slots, date), http.StatusOK)
}

func (h *Handler) HandlePlanDays(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.plandays")
	defer span.End()

	year, month, err := h.yearMonth(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("year", year), attribute.Int("month", int(month)))

	program, ok := h.program(ctx, w, r)
	if !ok {
		return
	}
	slots, err := h.repo.ListExercises(ctx, program.ID)
	if err != nil {
		log.Errorf("failed to list exercises of program %d: %s", program.ID, err)
		http.Error(w, "failed to resolve plan days", http.StatusInternalServerError)
		return
	}

	resp := PlanDaysResponse{
		Year:  year,
		Month: int(month),
		Days:  []string{},
	}
	for _, d := range calendar.PlanDaysForMonth(*program, slots, year, month) {
		resp.Days = append(resp.Days, d.Format(calendar.DateLayout))
	}
	pkg.WriteJSON(w, resp, http.StatusOK)
}

// HandleUpsertSession sets the completion flag of the session on a date,
// creating the session when the day was unplanned.
func (h *Handler) HandleUpsertSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.upsertsession")
	defer span.End()

	if !pkg.IsJSONRequest(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("upsert session, unmarshal json params: %s", err)
		http.Error(w, "upsert session failed", http.StatusBadRequest)
		return
	}
	date, err := parseDate("date", req.Date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	program, ok := h.program(ctx, w, r)
	if !ok {
		return
	}
	if !program.InWindow(date) {
		http.Error(w, "date outside the program window", http.StatusBadRequest)
		return
	}

	existing, err := h.repo.SessionsOn(ctx, program.ID, date)
	if err != nil {
		log.Errorf("failed to get sessions of program %d on %s: %s", program.ID, req.Date, err)
		http.Error(w, "failed to upsert session", http.StatusInternalServerError)
		return
	}
	state, err := calendar.Toggle(calendar.CanonicalSession(existing), req.Completed)
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	stored, err := h.repo.UpsertSession(ctx, calendar.Session{
		ProgramID: program.ID,
		Date:      date,
		Completed: state == calendar.StateCompleted,
		Notes:     req.Notes,
	})
	if err != nil {
		log.Errorf("failed to upsert session of program %d on %s: %s", program.ID, req.Date, err)
		http.Error(w, "failed to upsert session", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, SessionResponse{Session: stored, State: state}, http.StatusOK)
}

func (h *Handler) HandleListSessions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.listsessions")
	defer span.End()

	programID, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	year, month, err := h.yearMonth(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(
		attribute.Int("program.id", programID),
		attribute.Int("year", year),
		attribute.Int("month", int(month)),
	)

	sessions, err := h.repo.ListSessions(ctx, programID, year, month)
	if err != nil {
		log.Errorf("failed to list sessions of program %d: %s", programID, err)
		http.Error(w, "failed to list sessions", http.StatusInternalServerError)
		return
	}
	if sessions == nil {
		sessions = []calendar.Session{}
	}

	pkg.WriteJSON(w, sessions, http.StatusOK)
}

func (h *Handler) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.deletesession")
	defer span.End()

	programID, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	date, err := parseDate("date", mux.Vars(r)["date"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("program.id", programID))

	existing, err := h.repo.SessionsOn(ctx, programID, date)
	if err != nil {
		log.Errorf("failed to get sessions of program %d: %s", programID, err)
		http.Error(w, "failed to delete session", http.StatusInternalServerError)
		return
	}
	if _, err := calendar.Transition(calendar.StateOf(calendar.CanonicalSession(existing)), calendar.EventDelete); err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	if err := h.repo.DeleteSession(ctx, programID, date); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete session of program %d: %s", programID, err)
		http.Error(w, "failed to delete session", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) program(ctx context.Context, w http.ResponseWriter, r *http.Request) (*calendar.Program, bool) {
	id, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return nil, false
	}

	program, err := h.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, calendar.ErrProgramNotFound) {
			http.Error(w, "program not found", http.StatusNotFound)
			return nil, false
		}
		log.Errorf("failed to get program %d: %s", id, err)
		http.Error(w, "failed to get program", http.StatusInternalServerError)
		return nil, false
	}
	return program, true
}

// yearMonth reads ?year=&month=, each defaulting to the current one.
func (h *Handler) yearMonth(r *http.Request) (int, time.Month, error) {
	now := h.now()
	year, month := now.Year(), now.Month()

	if raw := r.URL.Query().Get("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 1 {
			return 0, 0, errors.New("invalid year")
		}
		year = y
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, errors.New("invalid month")
		}
		month = time.Month(m)
	}
	return year, month, nil
}
