package api

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sercanumit/bootcamp-112/internal/api/shared"
	"github.com/sercanumit/bootcamp-112/internal/domain/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analysisRouter() http.Handler {
	h := NewAnalysisHandler(analysis.NewDefaultAnalyzer(), nil)
	return newTestRouter(uuid.Nil, func(r chi.Router) {
		r.Post("/api/analysis", h.Analyze)
		r.Post("/api/roadmap", h.Roadmap)
		r.Post("/api/progress", h.Progress)
	})
}

func TestAnalyzeEndpoint(t *testing.T) {
	t.Parallel()
	router := analysisRouter()

	rr := doJSON(t, router, http.MethodPost, "/api/analysis", map[string]interface{}{
		"attempts": []map[string]interface{}{
			{"topic": "Türev", "subject": "Matematik", "user_answer": "A", "correct_answer": "A"},
			{"topic": "Türev", "subject": "Matematik", "user_answer": "B", "correct_answer": "C"},
			{"topic": "Türev", "subject": "Matematik", "correct_answer": "D", "is_blank": true},
		},
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(shared.TraceIDHeader))

	var result analysis.Result
	decodeBody(t, rr, &result)
	assert.Equal(t, 3, result.GeneralStats.TotalQuestions)
	assert.InDelta(t, 0.75, result.GeneralStats.Net, 1e-9)
	require.Len(t, result.WeakTopics, 1)
	assert.Equal(t, "Türev", result.WeakTopics[0].TopicName)
}

func TestAnalyzeEndpointErrors(t *testing.T) {
	t.Parallel()
	router := analysisRouter()

	tests := []struct {
		name      string
		body      interface{}
		wantField string
		wantMsg   string
	}{
		{
			name: "missing subject names the record",
			body: map[string]interface{}{"attempts": []map[string]interface{}{
				{"topic": "T", "subject": "S", "correct_answer": "A"},
				{"topic": "T", "correct_answer": "A"},
			}},
			wantField: "subject",
			wantMsg:   "record 1: subject cannot be empty",
		},
		{name: "malformed json", body: `{"attempts": [`, wantMsg: "Invalid request body"},
		{name: "unknown field", body: `{"attempts": [], "extra": 1}`, wantMsg: "Invalid request body"},
		{name: "negative top_n", body: map[string]interface{}{"top_n": -1}, wantMsg: "Invalid top_n: too small"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rr := doJSON(t, router, http.MethodPost, "/api/analysis", tt.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)

			var resp shared.ErrorResponse
			decodeBody(t, rr, &resp)
			assert.Equal(t, tt.wantMsg, resp.Error)
			assert.Equal(t, tt.wantField, resp.Field)
			assert.NotEmpty(t, resp.TraceID)
		})
	}
}

func TestRoadmapEndpoint(t *testing.T) {
	t.Parallel()
	router := analysisRouter()

	topics := []analysis.WeakTopicEntry{
		{Rank: 1, TopicName: "Türev", Subject: "Matematik"},
		{Rank: 2, TopicName: "Limit", Subject: "Matematik"},
		{Rank: 3, TopicName: "Optik", Subject: "Fizik", AccuracyRate: 0.7},
		{Rank: 4, TopicName: "Asit", Subject: "Kimya"},
	}

	rr := doJSON(t, router, http.MethodPost, "/api/roadmap", map[string]interface{}{"weak_topics": topics})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var roadmap analysis.Roadmap
	decodeBody(t, rr, &roadmap)
	assert.Equal(t, 2, roadmap.TotalWeeks)
	assert.Equal(t, 3, roadmap.TopicsPerWeek)
	assert.Equal(t, 15, roadmap.WeeklyPlans[0].EstimatedStudyHours)

	rr = doJSON(t, router, http.MethodPost, "/api/roadmap", map[string]interface{}{
		"weak_topics":         topics,
		"max_topics_per_week": 0,
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestProgressEndpoint(t *testing.T) {
	t.Parallel()
	router := analysisRouter()

	rr := doJSON(t, router, http.MethodPost, "/api/progress", map[string]interface{}{
		"previous": []map[string]interface{}{
			{"topic": "Türev", "subject": "Matematik", "user_answer": "B", "correct_answer": "A"},
		},
		"current": []map[string]interface{}{
			{"topic": "Türev", "subject": "Matematik", "user_answer": "A", "correct_answer": "A"},
		},
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var progress analysis.ProgressResult
	decodeBody(t, rr, &progress)
	assert.InDelta(t, 1.25, progress.NetChange, 1e-9)
	assert.Equal(t, analysis.StatusImproved, progress.OverallProgress)
}
