package handlers

import (
	"net/http"
	"strings"

	"ecodeli-dispatch/internal/domain"
	"ecodeli-dispatch/internal/logx"
)

// ApplicationHandler serves application reviews.
type ApplicationHandler struct {
	logger logx.Logger
	uc     assignmentUsecase
}

// NewApplicationHandler wires an assignmentUsecase into HTTP handlers.
func NewApplicationHandler(logger logx.Logger, uc assignmentUsecase) *ApplicationHandler {
	return &ApplicationHandler{logger: orNop(logger), uc: uc}
}

// Resolve handles POST /applications/{id}/resolve with {"status":"ACCEPTED"|"REJECTED"}.
func (h *ApplicationHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorOf(h.logger, w, r)
	if !ok {
		return
	}
	id, err := idFromURL(r, "id")
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	var req resolveRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	target := domain.ApplicationStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	res, err := h.uc.Resolve(r.Context(), id, target, actor)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, resolveToResponse(res))
}
