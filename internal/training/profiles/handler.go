package profiles

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

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=profiles_test

type profilesRepo interface {
	Add(ctx context.Context, profile Profile) (*Profile, error)
	Get(ctx context.Context, id int) (*Profile, error)
	List(ctx context.Context) ([]Profile, error)
	Update(ctx context.Context, profile *Profile) error
	Delete(ctx context.Context, id int) error
}

// analyticsCache drops cached analytics derived from a profile.
type analyticsCache interface {
	Invalidate(ctx context.Context, profileID int) error
}

type Handler struct {
	repo  profilesRepo
	cache analyticsCache
}

func NewHandler(repo profilesRepo, cache analyticsCache) *Handler {
	return &Handler{
		repo:  repo,
		cache: cache,
	}
}

type DeleteProfileResponse struct {
	DeletedID int `json:"deletedId"`
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.add")
	defer span.End()

	if !pkg.IsJSONRequest(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var profile Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		log.Tracef("new profile, unmarshal json params: %s", err)
		http.Error(w, "add profile failed", http.StatusBadRequest)
		return
	}
	if err := profile.Normalize(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	added, err := h.repo.Add(ctx, profile)
	if err != nil {
		if errors.Is(err, ErrInvalidProfile) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("failed to add profile [%s]: %s", profile.Name, err)
		http.Error(w, "error, failed to add profile", http.StatusInternalServerError)
		return
	}

	log.Debugf("new profile added: %d", added.ID)
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.get")
	defer span.End()

	id, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	profile, err := h.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get profile %d: %s", id, err)
		http.Error(w, "failed to get profile", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.list")
	defer span.End()

	profiles, err := h.repo.List(ctx)
	if err != nil {
		log.Errorf("failed to list profiles: %s", err)
		http.Error(w, "failed to list profiles", http.StatusInternalServerError)
		return
	}
	if profiles == nil {
		profiles = []Profile{}
	}

	pkg.WriteJSON(w, profiles, http.StatusOK)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.update")
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

	var profile Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		log.Tracef("update profile, unmarshal json params: %s", err)
		http.Error(w, "update profile failed", http.StatusBadRequest)
		return
	}
	profile.ID = id
	if err := profile.Normalize(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.repo.Update(ctx, &profile); err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, ErrInvalidProfile) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("failed to update profile %d: %s", id, err)
		http.Error(w, "failed to update profile", http.StatusInternalServerError)
		return
	}

	// weight, height and goal feed the analytics
	if err := h.cache.Invalidate(ctx, id); err != nil {
		log.Errorf("invalidate analytics cache for profile %d: %s", id, err)
	}

	pkg.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.delete")
	defer span.End()

	id, err := pkg.IntPathVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	if err := h.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete profile %d: %s", id, err)
		http.Error(w, "failed to delete profile", http.StatusInternalServerError)
		return
	}

	if err := h.cache.Invalidate(ctx, id); err != nil {
		log.Errorf("invalidate analytics cache for profile %d: %s", id, err)
	}

	pkg.WriteJSON(w, DeleteProfileResponse{DeletedID: id}, http.StatusOK)
}
