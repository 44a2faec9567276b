package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/stayhub/stayhub/internal/api/respond"
	"github.com/stayhub/stayhub/internal/services"
)

// ReviewHandler provides HTTP transport for review operations.
type ReviewHandler struct {
	svc *services.Facade
}

func NewReviewHandler(svc *services.Facade) *ReviewHandler { return &ReviewHandler{svc: svc} }

// CreateReview POST /api/v1/reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Text    string `json:"text"`
		Rating  int    `json:"rating"`
		PlaceID string `json:"place_id"`
		UserID  string `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	rv, err := h.svc.CreateReview(r.Context(), services.CreateReviewRequest{
		Text:    in.Text,
		Rating:  in.Rating,
		PlaceID: in.PlaceID,
		UserID:  in.UserID,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, rv)
}

// ListReviews GET /api/v1/reviews
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.svc.ListReviews(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, reviews)
}

// GetReview GET /api/v1/reviews/{reviewId}
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	rv, err := h.svc.GetReview(r.Context(), mux.Vars(r)["reviewId"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if rv == nil {
		respond.WriteNotFound(w, "review not found")
		return
	}
	respond.WriteJSON(w, http.StatusOK, rv)
}

// UpdateReview PUT /api/v1/reviews/{reviewId}
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	rv, err := h.svc.UpdateReview(r.Context(), mux.Vars(r)["reviewId"], fields)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if rv == nil {
		respond.WriteNotFound(w, "review not found")
		return
	}
	respond.WriteJSON(w, http.StatusOK, rv)
}

// DeleteReview DELETE /api/v1/reviews/{reviewId}
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.svc.DeleteReview(r.Context(), mux.Vars(r)["reviewId"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if !deleted {
		respond.WriteNotFound(w, "review not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
