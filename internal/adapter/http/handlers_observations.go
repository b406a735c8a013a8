package adapthttp

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"weathervane/internal/app"
	"weathervane/internal/domain"
)

var validate = validator.New()

func (s *Server) handleListObservations(w http.ResponseWriter, r *http.Request) {
	page, err := intQuery(r, "page", app.DefaultPage)
	if err != nil || page < 1 {
		writeError(w, http.StatusBadRequest, errors.New("page must be an integer >= 1"))
		return
	}
	limit, err := intQuery(r, "limit", app.DefaultLimit)
	if err != nil || limit < 1 || limit > app.MaxLimit {
		writeError(w, http.StatusBadRequest, fmt.Errorf("limit must be an integer between 1 and %d", app.MaxLimit))
		return
	}

	items, err := s.obs.List(r.Context(), page, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleCreateObservation(w http.ResponseWriter, r *http.Request) {
	in, ok := parseObservationInput(w, r)
	if !ok {
		return
	}
	obs, err := s.obs.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, obs)
}

func (s *Server) handleGetObservation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	obs, err := s.obs.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, obs)
}

func (s *Server) handleReplaceObservation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	in, ok := parseObservationInput(w, r)
	if !ok {
		return
	}
	obs, err := s.obs.Replace(r.Context(), id, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, obs)
}

func (s *Server) handleMergeObservation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in domain.ObservationInput
	if err := parseJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	// merge bodies may omit collection_time, so only the field-level rules apply
	if in.Description != nil {
		if err := validate.Var(*in.Description, "max=200"); err != nil {
			writeError(w, http.StatusBadRequest, errors.New("description must be at most 200 characters"))
			return
		}
	}

	obs, err := s.obs.Merge(r.Context(), id, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, obs)
}

func (s *Server) handleDeleteObservation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.obs.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"detail": fmt.Sprintf("weather observation with id %d deleted successfully", id),
	})
}

func parseObservationInput(w http.ResponseWriter, r *http.Request) (domain.ObservationInput, bool) {
	var in domain.ObservationInput
	if err := parseJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return in, false
	}
	if err := validate.Struct(in); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return in, false
	}
	return in, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	var nf *app.NotFoundError
	if errors.As(err, &nf) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeError(w, http.StatusInternalServerError, fmt.Errorf("internal server error: %w", err))
}
