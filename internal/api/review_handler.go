package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/sercanumit/bootcamp-112/internal/api/shared"
	"github.com/sercanumit/bootcamp-112/internal/domain"
	"github.com/sercanumit/bootcamp-112/internal/service/review"
)

// ReviewHandler handles topic review scheduling requests.
type ReviewHandler struct {
	reviews review.Service
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviews review.Service) *ReviewHandler {
	if reviews == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("reviews cannot be nil for ReviewHandler")
	}
	return &ReviewHandler{reviews: reviews}
}

// SubmitReview handles POST /api/reviews/{topic}.
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(w, r)
	if !ok {
		return
	}

	topic, err := url.PathUnescape(chi.URLParam(r, "topic"))
	if err != nil || topic == "" {
		HandleAPIError(w, r, domain.NewValidationError("topic", "is required", nil), "")
		return
	}

	var req SubmitReviewRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	state, err := h.reviews.SubmitReview(r.Context(), userID, topic, req.Subject, *req.Quality)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to submit review")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, state)
}

// DueReviews handles GET /api/reviews/due.
func (h *ReviewHandler) DueReviews(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(w, r)
	if !ok {
		return
	}

	states, err := h.reviews.DueReviews(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list due reviews")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, DueReviewsResponse{Count: len(states), Reviews: states})
}
