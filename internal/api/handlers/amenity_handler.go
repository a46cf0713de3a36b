package handlers

import (
	"net/http"

	"github.com/stayhub/stayhub/internal/application/services"
)

// AmenityHandler handles amenity-related HTTP requests
type AmenityHandler struct {
	service *services.AmenityService
}

// NewAmenityHandler creates a new amenity handler
func NewAmenityHandler(service *services.AmenityService) *AmenityHandler {
	return &AmenityHandler{service: service}
}

// ListAmenities handles GET /api/v1/amenities
func (h *AmenityHandler) ListAmenities(w http.ResponseWriter, r *http.Request) {
	amenities, err := h.service.List(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, amenities)
}

// CreateAmenity handles POST /api/v1/amenities
func (h *AmenityHandler) CreateAmenity(w http.ResponseWriter, r *http.Request) {
	amenity, err := h.service.Create(r.Context(), decodeBody(r))
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, amenity)
}

// GetAmenity handles GET /api/v1/amenities/{id}
func (h *AmenityHandler) GetAmenity(w http.ResponseWriter, r *http.Request) {
	amenity, err := h.service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, amenity)
}

// UpdateAmenity handles PUT /api/v1/amenities/{id}
func (h *AmenityHandler) UpdateAmenity(w http.ResponseWriter, r *http.Request) {
	amenity, err := h.service.Update(r.Context(), r.PathValue("id"), decodeBody(r))
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, amenity)
}

// DeleteAmenity handles DELETE /api/v1/amenities/{id}
func (h *AmenityHandler) DeleteAmenity(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("id")); err != nil {
		respondWithAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
