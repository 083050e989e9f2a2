package handlers

import (
	"net/http"
	"strings"

	"ecodeli-dispatch/internal/apperr"
	"ecodeli-dispatch/internal/domain"
	"ecodeli-dispatch/internal/logx"
)

// RouteHandler serves planned route endpoints.
type RouteHandler struct {
	logger  logx.Logger
	routes  routeUsecase
	matcher matchingUsecase
}

// NewRouteHandler wires route and matching usecases into HTTP handlers.
func NewRouteHandler(logger logx.Logger, routes routeUsecase, matcher matchingUsecase) *RouteHandler {
	return &RouteHandler{logger: orNop(logger), routes: routes, matcher: matcher}
}

// Create handles POST /routes.
func (h *RouteHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorOf(h.logger, w, r)
	if !ok {
		return
	}
	var req createRouteRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	route, err := req.toModel(actor.ID)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}

	created, err := h.routes.Create(r.Context(), route)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	w.Header().Set("Location", "/routes/"+created.ID)
	writeJSON(h.logger, w, r, http.StatusCreated, routeToResponse(created))
}

// Get handles GET /routes/{id}.
func (h *RouteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	route, err := h.routes.Get(r.Context(), id)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, routeToResponse(route))
}

// List handles GET /routes. Deliverers see their own routes; admins pass
// deliverer_id.
func (h *RouteHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorOf(h.logger, w, r)
	if !ok {
		return
	}
	delivererID := actor.ID
	if actor.Role == domain.RoleAdmin {
		delivererID = strings.TrimSpace(r.URL.Query().Get("deliverer_id"))
		if delivererID == "" {
			writeAppError(h.logger, w, r, apperr.Validation("deliverer_id is required"))
			return
		}
	}

	list, err := h.routes.ListByDeliverer(r.Context(), delivererID)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, routesToResponse(list))
}

// Matches handles GET /routes/{id}/matches. A deliverer may only match their
// own routes.
func (h *RouteHandler) Matches(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorOf(h.logger, w, r)
	if !ok {
		return
	}
	id, err := idFromURL(r, "id")
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}

	route, matches, err := h.matcher.MatchRouteByID(r.Context(), id)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	if actor.Role == domain.RoleDeliverer && route.DelivererID != actor.ID {
		writeAppError(h.logger, w, r, apperr.NotFound("route"))
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, routeMatchesResponse{
		Route:   routeToResponse(*route),
		Matches: matchesToResponse(matches),
	})
}
