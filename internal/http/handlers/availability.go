package handlers

import (
	"net/http"

	"ecodeli-dispatch/internal/logx"
)

// AvailabilityHandler serves availability endpoints.
type AvailabilityHandler struct {
	logger logx.Logger
	uc     availabilityUsecase
}

// NewAvailabilityHandler wires an availabilityUsecase into HTTP handlers.
func NewAvailabilityHandler(logger logx.Logger, uc availabilityUsecase) *AvailabilityHandler {
	return &AvailabilityHandler{logger: orNop(logger), uc: uc}
}

// Create handles POST /availabilities.
func (h *AvailabilityHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorOf(h.logger, w, r)
	if !ok {
		return
	}
	var req createAvailabilityRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	a, err := req.toModel(actor.ID)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}

	res, err := h.uc.Create(r.Context(), a)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	w.Header().Set("Location", "/availabilities/"+res.Availability.ID)
	writeJSON(h.logger, w, r, http.StatusCreated, createAvailabilityResponse{
		Availability:    availabilityToResponse(res.Availability),
		Occurrences:     occurrencesToResponse(res.Occurrences),
		OccurrenceCount: len(res.Occurrences),
	})
}

// Get handles GET /availabilities/{id}.
func (h *AvailabilityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	a, err := h.uc.Get(r.Context(), id)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, availabilityToResponse(*a))
}

// Occurrences handles GET /availabilities/{id}/occurrences.
func (h *AvailabilityHandler) Occurrences(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	list, err := h.uc.ListOccurrences(r.Context(), id)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, occurrencesToResponse(list))
}

// Regenerate handles POST /availabilities/{id}/regenerate.
func (h *AvailabilityHandler) Regenerate(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	res, err := h.uc.Regenerate(r.Context(), id)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, regenerateResponse{Generated: res.Generated, Inserted: res.Inserted})
}
