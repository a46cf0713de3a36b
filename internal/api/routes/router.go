package routes

import (
	"net/http"

	"github.com/stayhub/stayhub/internal/api/handlers"
	"github.com/stayhub/stayhub/internal/api/middleware"
	"github.com/stayhub/stayhub/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	userHandler    *handlers.UserHandler
	amenityHandler *handlers.AmenityHandler
	placeHandler   *handlers.PlaceHandler
	reviewHandler  *handlers.ReviewHandler

	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	userHandler *handlers.UserHandler,
	amenityHandler *handlers.AmenityHandler,
	placeHandler *handlers.PlaceHandler,
	reviewHandler *handlers.ReviewHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		userHandler:    userHandler,
		amenityHandler: amenityHandler,
		placeHandler:   placeHandler,
		reviewHandler:  reviewHandler,

		cacheMiddleware: cacheMiddleware,
		metrics:         metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// User endpoints
	r.mux.HandleFunc("GET /api/v1/users", r.userHandler.ListUsers)
	r.mux.HandleFunc("POST /api/v1/users", r.userHandler.CreateUser)
	r.mux.HandleFunc("GET /api/v1/users/{id}", r.userHandler.GetUser)
	r.mux.HandleFunc("PUT /api/v1/users/{id}", r.userHandler.UpdateUser)
	r.mux.HandleFunc("DELETE /api/v1/users/{id}", r.userHandler.DeleteUser)

	// Amenity endpoints
	r.mux.HandleFunc("GET /api/v1/amenities", r.amenityHandler.ListAmenities)
	r.mux.HandleFunc("POST /api/v1/amenities", r.amenityHandler.CreateAmenity)
	r.mux.HandleFunc("GET /api/v1/amenities/{id}", r.amenityHandler.GetAmenity)
	r.mux.HandleFunc("PUT /api/v1/amenities/{id}", r.amenityHandler.UpdateAmenity)
	r.mux.HandleFunc("DELETE /api/v1/amenities/{id}", r.amenityHandler.DeleteAmenity)

	// Place endpoints (single GET returns the extended view)
	r.mux.HandleFunc("GET /api/v1/places", r.placeHandler.ListPlaces)
	r.mux.HandleFunc("POST /api/v1/places", r.placeHandler.CreatePlace)
	r.mux.HandleFunc("GET /api/v1/places/{id}", r.placeHandler.GetPlace)
	r.mux.HandleFunc("PUT /api/v1/places/{id}", r.placeHandler.UpdatePlace)
	r.mux.HandleFunc("DELETE /api/v1/places/{id}", r.placeHandler.DeletePlace)
	r.mux.HandleFunc("GET /api/v1/places/{id}/reviews", r.reviewHandler.ListPlaceReviews)

	// Review endpoints
	r.mux.HandleFunc("GET /api/v1/reviews", r.reviewHandler.ListReviews)
	r.mux.HandleFunc("POST /api/v1/reviews", r.reviewHandler.CreateReview)
	r.mux.HandleFunc("GET /api/v1/reviews/{id}", r.reviewHandler.GetReview)
	r.mux.HandleFunc("PUT /api/v1/reviews/{id}", r.reviewHandler.UpdateReview)
	r.mux.HandleFunc("DELETE /api/v1/reviews/{id}", r.reviewHandler.DeleteReview)

	// Apply middleware in reverse order (last middleware wraps first).
	// CORS must be outermost so cached responses also get CORS headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	if r.metrics != nil {
		handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	}

	handler = middleware.CORSMiddleware(handler)

	return handler
}
