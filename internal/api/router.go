package api

import (
	"github.com/gorilla/mux"

	"github.com/stayhub/stayhub/internal/api/recovery"
	"github.com/stayhub/stayhub/internal/services"
	"github.com/stayhub/stayhub/internal/store"
)

// NewRouter wires all API routes to their handlers over a single
// facade built from the given store.
func NewRouter(s store.Store) *mux.Router {
	router := mux.NewRouter()
	router.Use(recovery.Middleware)

	facade := services.New(s)

	healthHandler := NewHealthHandler(s)
	userHandler := NewUserHandler(facade)
	placeHandler := NewPlaceHandler(facade)
	reviewHandler := NewReviewHandler(facade)
	amenityHandler := NewAmenityHandler(facade)

	// Health
	router.HandleFunc("/api/v1/health", healthHandler.CheckHealth).Methods("GET")

	// Users
	router.HandleFunc("/api/v1/users", userHandler.CreateUser).Methods("POST")
	router.HandleFunc("/api/v1/users", userHandler.ListUsers).Methods("GET")
	router.HandleFunc("/api/v1/users/{userId}", userHandler.GetUser).Methods("GET")
	router.HandleFunc("/api/v1/users/{userId}", userHandler.UpdateUser).Methods("PUT")
	router.HandleFunc("/api/v1/users/{userId}", userHandler.DeleteUser).Methods("DELETE")

	// Places
	router.HandleFunc("/api/v1/places", placeHandler.CreatePlace).Methods("POST")
	router.HandleFunc("/api/v1/places", placeHandler.ListPlaces).Methods("GET")
	router.HandleFunc("/api/v1/places/{placeId}", placeHandler.GetPlace).Methods("GET")
	router.HandleFunc("/api/v1/places/{placeId}", placeHandler.UpdatePlace).Methods("PUT")
	router.HandleFunc("/api/v1/places/{placeId}", placeHandler.DeletePlace).Methods("DELETE")
	router.HandleFunc("/api/v1/places/{placeId}/reviews", placeHandler.ListPlaceReviews).Methods("GET")
	router.HandleFunc("/api/v1/places/{placeId}/amenities/{amenityId}", placeHandler.AddAmenity).Methods("POST")
	router.HandleFunc("/api/v1/places/{placeId}/amenities/{amenityId}", placeHandler.RemoveAmenity).Methods("DELETE")

	// Reviews
	router.HandleFunc("/api/v1/reviews", reviewHandler.CreateReview).Methods("POST")
	router.HandleFunc("/api/v1/reviews", reviewHandler.ListReviews).Methods("GET")
	router.HandleFunc("/api/v1/reviews/{reviewId}", reviewHandler.GetReview).Methods("GET")
	router.HandleFunc("/api/v1/reviews/{reviewId}", reviewHandler.UpdateReview).Methods("PUT")
	router.HandleFunc("/api/v1/reviews/{reviewId}", reviewHandler.DeleteReview).Methods("DELETE")

	// Amenities
	router.HandleFunc("/api/v1/amenities", amenityHandler.CreateAmenity).Methods("POST")
	router.HandleFunc("/api/v1/amenities", amenityHandler.ListAmenities).Methods("GET")
	router.HandleFunc("/api/v1/amenities/{amenityId}", amenityHandler.GetAmenity).Methods("GET")
	router.HandleFunc("/api/v1/amenities/{amenityId}", amenityHandler.UpdateAmenity).Methods("PUT")
	router.HandleFunc("/api/v1/amenities/{amenityId}", amenityHandler.DeleteAmenity).Methods("DELETE")

	return router
}
