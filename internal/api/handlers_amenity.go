package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/stayhub/stayhub/internal/api/respond"
	"github.com/stayhub/stayhub/internal/services"
)

// AmenityHandler provides HTTP transport for amenity operations.
type AmenityHandler struct {
	svc *services.Facade
}

func NewAmenityHandler(svc *services.Facade) *AmenityHandler { return &AmenityHandler{svc: svc} }

// CreateAmenity POST /api/v1/amenities
func (h *AmenityHandler) CreateAmenity(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	a, err := h.svc.CreateAmenity(r.Context(), services.CreateAmenityRequest{Name: in.Name})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, a)
}

// ListAmenities GET /api/v1/amenities
func (h *AmenityHandler) ListAmenities(w http.ResponseWriter, r *http.Request) {
	amenities, err := h.svc.ListAmenities(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, amenities)
}

// GetAmenity GET /api/v1/amenities/{amenityId}
func (h *AmenityHandler) GetAmenity(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.GetAmenity(r.Context(), mux.Vars(r)["amenityId"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if a == nil {
		respond.WriteNotFound(w, "amenity not found")
		return
	}
	respond.WriteJSON(w, http.StatusOK, a)
}

// UpdateAmenity PUT /api/v1/amenities/{amenityId}
func (h *AmenityHandler) UpdateAmenity(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	a, err := h.svc.UpdateAmenity(r.Context(), mux.Vars(r)["amenityId"], fields)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if a == nil {
		respond.WriteNotFound(w, "amenity not found")
		return
	}
	respond.WriteJSON(w, http.StatusOK, a)
}

// DeleteAmenity DELETE /api/v1/amenities/{amenityId}
func (h *AmenityHandler) DeleteAmenity(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.svc.DeleteAmenity(r.Context(), mux.Vars(r)["amenityId"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if !deleted {
		respond.WriteNotFound(w, "amenity not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
