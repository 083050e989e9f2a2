package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"ecodeli-dispatch/internal/apperr"
	"ecodeli-dispatch/internal/domain"
	"ecodeli-dispatch/internal/geo"
	"ecodeli-dispatch/internal/logx"
)

// AnnouncementHandler serves delivery request browsing and applications.
type AnnouncementHandler struct {
	logger   logx.Logger
	matcher  matchingUsecase
	assigner assignmentUsecase
}

// NewAnnouncementHandler wires matching and assignment usecases into HTTP handlers.
func NewAnnouncementHandler(logger logx.Logger, matcher matchingUsecase, assigner assignmentUsecase) *AnnouncementHandler {
	return &AnnouncementHandler{logger: orNop(logger), matcher: matcher, assigner: assigner}
}

// Search handles GET /announcements/search.
func (h *AnnouncementHandler) Search(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r.URL.Query())
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	list, err := h.matcher.Search(r.Context(), f)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, scoredToResponse(list))
}

// Apply handles POST /announcements/{id}/applications.
func (h *AnnouncementHandler) Apply(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorOf(h.logger, w, r)
	if !ok {
		return
	}
	id, err := idFromURL(r, "id")
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	var req applyRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	app, err := h.assigner.Apply(r.Context(), actor.ID, id, req.toModel())
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, applicationToResponse(app))
}

func filterFromQuery(q url.Values) (domain.AnnouncementFilter, error) {
	var (
		f   domain.AnnouncementFilter
		err error
	)
	if f.MinPrice, err = queryFloat(q, "min_price"); err != nil {
		return f, err
	}
	if f.MaxPrice, err = queryFloat(q, "max_price"); err != nil {
		return f, err
	}
	if f.MaxDistanceKm, err = queryFloat(q, "max_distance_km"); err != nil {
		return f, err
	}

	for _, v := range q["delivery_type"] {
		for _, t := range strings.Split(v, ",") {
			if t = strings.TrimSpace(t); t != "" {
				f.DeliveryTypes = append(f.DeliveryTypes, t)
			}
		}
	}
	if v := strings.TrimSpace(q.Get("urgency")); v != "" {
		u := domain.Urgency(strings.ToUpper(v))
		f.Urgency = &u
	}
	if v := q.Get("pickup_from"); v != "" {
		d, err := parseDate("pickup_from", v)
		if err != nil {
			return f, err
		}
		f.PickupFrom = &d
	}
	if v := q.Get("pickup_to"); v != "" {
		d, err := parseDate("pickup_to", v)
		if err != nil {
			return f, err
		}
		f.PickupTo = &d
	}

	lat, err := queryFloat(q, "lat")
	if err != nil {
		return f, err
	}
	lon, err := queryFloat(q, "lon")
	if err != nil {
		return f, err
	}
	switch {
	case lat != nil && lon != nil:
		f.Near = &geo.Point{Lat: *lat, Lon: *lon}
	case lat != nil || lon != nil:
		return f, apperr.Validation("lat and lon must be given together")
	}

	if v := strings.TrimSpace(q.Get("limit")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return f, apperr.Validation("invalid limit")
		}
		f.Limit = n
	}
	return f, nil
}
