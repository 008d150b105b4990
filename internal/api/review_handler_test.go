package api

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sercanumit/bootcamp-112/internal/domain"
	"github.com/sercanumit/bootcamp-112/internal/service/review"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockReviewService struct {
	submitFn func(userID uuid.UUID, topic, subject string, quality int) (*domain.SpacedRepetitionState, error)
	dueFn    func(userID uuid.UUID) ([]*domain.SpacedRepetitionState, error)
}

func (m *mockReviewService) SubmitReview(
	_ context.Context,
	userID uuid.UUID,
	topic, subject string,
	quality int,
) (*domain.SpacedRepetitionState, error) {
	return m.submitFn(userID, topic, subject, quality)
}

func (m *mockReviewService) DueReviews(_ context.Context, userID uuid.UUID) ([]*domain.SpacedRepetitionState, error) {
	return m.dueFn(userID)
}

func reviewRouter(userID uuid.UUID, svc review.Service) http.Handler {
	h := NewReviewHandler(svc)
	return newTestRouter(userID, func(r chi.Router) {
		r.Get("/api/reviews/due", h.DueReviews)
		r.Post("/api/reviews/{topic}", h.SubmitReview)
	})
}

func TestSubmitReviewEndpoint(t *testing.T) {
	t.Parallel()
	userID := uuid.New()

	svc := &mockReviewService{
		submitFn: func(uid uuid.UUID, topic, subject string, quality int) (*domain.SpacedRepetitionState, error) {
			assert.Equal(t, userID, uid)
			assert.Equal(t, "Türev Alma", topic)
			assert.Equal(t, "Matematik", subject)
			assert.Equal(t, 0, quality, "zero quality is a valid review")
			next := time.Now().Add(24 * time.Hour)
			return &domain.SpacedRepetitionState{UserID: uid, Topic: topic, IntervalDays: 1, NextReview: &next}, nil
		},
	}

	rr := doJSON(t, reviewRouter(userID, svc), http.MethodPost,
		"/api/reviews/"+url.PathEscape("Türev Alma"),
		map[string]interface{}{"subject": "Matematik", "quality": 0})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var state domain.SpacedRepetitionState
	decodeBody(t, rr, &state)
	assert.Equal(t, 1, state.IntervalDays)
}

func TestSubmitReviewEndpointErrors(t *testing.T) {
	t.Parallel()
	userID := uuid.New()

	svc := &mockReviewService{
		submitFn: func(uuid.UUID, string, string, int) (*domain.SpacedRepetitionState, error) {
			return nil, domain.NewValidationError("subject", "is required for the first review", review.ErrSubjectRequired)
		},
	}
	router := reviewRouter(userID, svc)

	rr := doJSON(t, router, http.MethodPost, "/api/reviews/Optik", map[string]interface{}{"quality": 6})
	assert.Equal(t, http.StatusBadRequest, rr.Code, "quality above 5")

	rr = doJSON(t, router, http.MethodPost, "/api/reviews/Optik", map[string]interface{}{"subject": "Fizik"})
	assert.Equal(t, http.StatusBadRequest, rr.Code, "quality missing")

	rr = doJSON(t, router, http.MethodPost, "/api/reviews/Optik", map[string]interface{}{"quality": 4})
	assert.Equal(t, http.StatusBadRequest, rr.Code, "first review without subject")
}

func TestDueReviewsEndpoint(t *testing.T) {
	t.Parallel()
	userID := uuid.New()

	svc := &mockReviewService{
		dueFn: func(uid uuid.UUID) ([]*domain.SpacedRepetitionState, error) {
			return []*domain.SpacedRepetitionState{{UserID: uid, Topic: "Optik"}}, nil
		},
	}

	rr := doJSON(t, reviewRouter(userID, svc), http.MethodGet, "/api/reviews/due", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp DueReviewsResponse
	decodeBody(t, rr, &resp)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "Optik", resp.Reviews[0].Topic)
}
