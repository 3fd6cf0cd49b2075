package records

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

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=records_test

type recordsRepo interface {
	AddRecord(ctx context.Context, record *PersonalRecord) error
	ListRecords(ctx context.Context, profileID int) ([]*PersonalRecord, error)
	DeleteRecord(ctx context.Context, profileID, id int) error
	UpsertBodyWeight(ctx context.Context, entry *BodyWeight) error
	ListBodyWeight(ctx context.Context, profileID int) ([]*BodyWeight, error)
	UpdateBodyWeight(ctx context.Context, entry *BodyWeight) error
	DeleteBodyWeight(ctx context.Context, profileID, id int) error
}

type Handler struct {
	repo recordsRepo
	now  func() time.Time
}

func NewHandler(repo recordsRepo) *Handler {
	return &Handler{
		repo: repo,
		now:  time.Now,
	}
}

func (h *Handler) HandleAddRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.add")
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

	var req RecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("new record, unmarshal json params: %s", err)
		http.Error(w, "add record failed", http.StatusBadRequest)
		return
	}
	record, err := req.Record(profileID, h.now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.repo.AddRecord(ctx, record); err != nil {
		switch {
		case errors.Is(err, ErrNotImproving):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, ErrProfileNotFound):
			http.Error(w, "profile not found", http.StatusNotFound)
		default:
			log.Errorf("failed to add record [%s] for profile %d: %s", record.Exercise, profileID, err)
			http.Error(w, "error, failed to add record", http.StatusInternalServerError)
		}
		return
	}

	log.Debugf("new personal record %s %.1f kg for profile %d", record.Exercise, record.WeightKg, profileID)
	pkg.WriteJSON(w, record, http.StatusCreated)
}

func (h *Handler) HandleListRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.list")
	defer span.End()

	profileID, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("profile.id", profileID))

	records, err := h.repo.ListRecords(ctx, profileID)
	if err != nil {
		log.Errorf("failed to list records for profile %d: %s", profileID, err)
		http.Error(w, "failed to list records", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []*PersonalRecord{}
	}

	pkg.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) HandleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.delete")
	defer span.End()

	profileID, id, ok := profileAndItemID(w, r, "recordId")
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("profile.id", profileID), attribute.Int("id", id))

	if err := h.repo.DeleteRecord(ctx, profileID, id); err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			http.Error(w, "personal record not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete record %d of profile %d: %s", id, profileID, err)
		http.Error(w, "failed to delete record", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleUpsertBodyWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.upsertbodyweight")
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

	var req BodyWeightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("body weight, unmarshal json params: %s", err)
		http.Error(w, "body weight failed", http.StatusBadRequest)
		return
	}
	entry, err := req.BodyWeight(profileID, h.now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.repo.UpsertBodyWeight(ctx, entry); err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to store body weight for profile %d: %s", profileID, err)
		http.Error(w, "error, failed to store body weight", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) HandleListBodyWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.listbodyweight")
	defer span.End()

	profileID, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("profile.id", profileID))

	entries, err := h.repo.ListBodyWeight(ctx, profileID)
	if err != nil {
		log.Errorf("failed to list body weight for profile %d: %s", profileID, err)
		http.Error(w, "failed to list body weight", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []*BodyWeight{}
	}

	pkg.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) HandleUpdateBodyWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.updatebodyweight")
	defer span.End()

	if !pkg.IsJSONRequest(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	profileID, id, ok := profileAndItemID(w, r, "weightId")
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("profile.id", profileID), attribute.Int("id", id))

	var req BodyWeightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update body weight, unmarshal json params: %s", err)
		http.Error(w, "update body weight failed", http.StatusBadRequest)
		return
	}
	entry, err := req.BodyWeight(profileID, h.now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	entry.ID = id

	if err := h.repo.UpdateBodyWeight(ctx, entry); err != nil {
		switch {
		case errors.Is(err, ErrBodyWeightNotFound):
			http.Error(w, "body weight entry not found", http.StatusNotFound)
		case errors.Is(err, ErrBodyWeightTaken):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			log.Errorf("failed to update body weight %d of profile %d: %s", id, profileID, err)
			http.Error(w, "failed to update body weight", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) HandleDeleteBodyWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.deletebodyweight")
	defer span.End()

	profileID, id, ok := profileAndItemID(w, r, "weightId")
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("profile.id", profileID), attribute.Int("id", id))

	if err := h.repo.DeleteBodyWeight(ctx, profileID, id); err != nil {
		if errors.Is(err, ErrBodyWeightNotFound) {
			http.Error(w, "body weight entry not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete body weight %d of profile %d: %s", id, profileID, err)
		http.Error(w, "failed to delete body weight", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func profileAndItemID(w http.ResponseWriter, r *http.Request, itemVar string) (int, int, bool) {
	profileID, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return 0, 0, false
	}
	id, err := pkg.IntPathVar(r, itemVar)
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return 0, 0, false
	}
	return profileID, id, true
}
