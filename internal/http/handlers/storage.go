package handlers

import (
	"net/http"

	"ecodeli-dispatch/internal/apperr"
	"ecodeli-dispatch/internal/geo"
	"ecodeli-dispatch/internal/logx"
)

// StorageHandler serves storage location lookups.
type StorageHandler struct {
	logger logx.Logger
	uc     storageUsecase
}

// NewStorageHandler wires a storageUsecase into HTTP handlers.
func NewStorageHandler(logger logx.Logger, uc storageUsecase) *StorageHandler {
	return &StorageHandler{logger: orNop(logger), uc: uc}
}

// Nearby handles GET /storage/nearby?lat=&lon=&max_distance_km=.
func (h *StorageHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, err := queryFloat(q, "lat")
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	lon, err := queryFloat(q, "lon")
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	if lat == nil || lon == nil {
		writeAppError(h.logger, w, r, apperr.Validation("lat and lon are required"))
		return
	}
	maxKm, err := queryFloat(q, "max_distance_km")
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	var radius float64
	if maxKm != nil {
		radius = *maxKm
	}

	list, err := h.uc.Nearby(r.Context(), geo.Point{Lat: *lat, Lon: *lon}, radius)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, nearbyToResponse(list))
}
