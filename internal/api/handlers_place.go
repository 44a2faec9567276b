package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/stayhub/stayhub/internal/api/respond"
	"github.com/stayhub/stayhub/internal/model"
	"github.com/stayhub/stayhub/internal/services"
)

// PlaceHandler provides HTTP transport for place operations, including
// the place-amenity association endpoints.
type PlaceHandler struct {
	svc *services.Facade
}

func NewPlaceHandler(svc *services.Facade) *PlaceHandler { return &PlaceHandler{svc: svc} }

// CreatePlace POST /api/v1/places
func (h *PlaceHandler) CreatePlace(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Price       float64  `json:"price"`
		Latitude    float64  `json:"latitude"`
		Longitude   float64  `json:"longitude"`
		OwnerID     string   `json:"owner_id"`
		Amenities   []string `json:"amenities"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	p, err := h.svc.CreatePlace(r.Context(), services.CreatePlaceRequest{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		OwnerID:     in.OwnerID,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	// Optional amenity ids; unknown ids are skipped rather than failing
	// the whole create.
	for _, amenityID := range in.Amenities {
		if err := h.svc.AddAmenityToPlace(r.Context(), p.ID, amenityID); err != nil {
			if model.IsNotFoundError(err) {
				continue
			}
			writeDomainError(w, err)
			return
		}
	}
	if len(in.Amenities) > 0 {
		// Re-read so the response reflects the attached amenities.
		fresh, err := h.svc.GetPlace(r.Context(), p.ID)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		if fresh != nil {
			p = fresh
		}
	}
	respond.WriteJSON(w, http.StatusCreated, p)
}

// ListPlaces GET /api/v1/places
func (h *PlaceHandler) ListPlaces(w http.ResponseWriter, r *http.Request) {
	places, err := h.svc.ListPlaces(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, places)
}

// GetPlace GET /api/v1/places/{placeId}
func (h *PlaceHandler) GetPlace(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetPlace(r.Context(), mux.Vars(r)["placeId"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if p == nil {
		respond.WriteNotFound(w, "place not found")
		return
	}
	respond.WriteJSON(w, http.StatusOK, p)
}

// UpdatePlace PUT /api/v1/places/{placeId}
func (h *PlaceHandler) UpdatePlace(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	p, err := h.svc.UpdatePlace(r.Context(), mux.Vars(r)["placeId"], fields)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if p == nil {
		respond.WriteNotFound(w, "place not found")
		return
	}
	respond.WriteJSON(w, http.StatusOK, p)
}

// DeletePlace DELETE /api/v1/places/{placeId}
func (h *PlaceHandler) DeletePlace(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.svc.DeletePlace(r.Context(), mux.Vars(r)["placeId"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if !deleted {
		respond.WriteNotFound(w, "place not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListPlaceReviews GET /api/v1/places/{placeId}/reviews
func (h *PlaceHandler) ListPlaceReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.svc.ListReviewsByPlace(r.Context(), mux.Vars(r)["placeId"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, reviews)
}

// AddAmenity POST /api/v1/places/{placeId}/amenities/{amenityId}
func (h *PlaceHandler) AddAmenity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.svc.AddAmenityToPlace(r.Context(), vars["placeId"], vars["amenityId"]); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveAmenity DELETE /api/v1/places/{placeId}/amenities/{amenityId}
func (h *PlaceHandler) RemoveAmenity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.svc.RemoveAmenityFromPlace(r.Context(), vars["placeId"], vars["amenityId"]); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
