package handlers

import (
	"net/http"

	"github.com/stayhub/stayhub/internal/application/services"
)

// PlaceHandler handles place-related HTTP requests
type PlaceHandler struct {
	service *services.PlaceService
}

// NewPlaceHandler creates a new place handler
func NewPlaceHandler(service *services.PlaceService) *PlaceHandler {
	return &PlaceHandler{service: service}
}

// ListPlaces handles GET /api/v1/places
func (h *PlaceHandler) ListPlaces(w http.ResponseWriter, r *http.Request) {
	places, err := h.service.List(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, places)
}

// CreatePlace handles POST /api/v1/places
func (h *PlaceHandler) CreatePlace(w http.ResponseWriter, r *http.Request) {
	place, err := h.service.Create(r.Context(), decodeBody(r))
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, place)
}

// GetPlace handles GET /api/v1/places/{id}. The single-place read returns
// the extended view with owner and amenities embedded.
func (h *PlaceHandler) GetPlace(w http.ResponseWriter, r *http.Request) {
	details, err := h.service.GetDetails(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, details)
}

// UpdatePlace handles PUT /api/v1/places/{id}
func (h *PlaceHandler) UpdatePlace(w http.ResponseWriter, r *http.Request) {
	place, err := h.service.Update(r.Context(), r.PathValue("id"), decodeBody(r))
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, place)
}

// DeletePlace handles DELETE /api/v1/places/{id}
func (h *PlaceHandler) DeletePlace(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("id")); err != nil {
		respondWithAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
