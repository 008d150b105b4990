package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/sercanumit/bootcamp-112/internal/api/shared"
	"github.com/sercanumit/bootcamp-112/internal/domain"
	"github.com/sercanumit/bootcamp-112/internal/platform/logger"
	"github.com/sercanumit/bootcamp-112/internal/service/performance"
)

// ExamHandler handles stored exam requests for the authenticated user.
type ExamHandler struct {
	exams  performance.Service
	logger *slog.Logger
}

// NewExamHandler creates a new ExamHandler.
func NewExamHandler(exams performance.Service, logger *slog.Logger) *ExamHandler {
	if exams == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("exams cannot be nil for ExamHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ExamHandler{
		exams:  exams,
		logger: logger.With(slog.String("component", "exam_handler")),
	}
}

// RecordExam handles POST /api/exams.
func (h *ExamHandler) RecordExam(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(w, r)
	if !ok {
		return
	}

	var req RecordExamRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	var takenAt time.Time
	if req.TakenAt != nil {
		takenAt = *req.TakenAt
	}

	exam, err := h.exams.RecordExam(r.Context(), userID, req.ExamName, req.ExamType, takenAt, req.Attempts)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to record exam")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("exam recorded",
		slog.String("exam_id", exam.ID.String()))

	shared.RespondWithJSON(w, r, http.StatusCreated, toExamResponse(exam))
}

// ListExams handles GET /api/exams.
func (h *ExamHandler) ListExams(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(w, r)
	if !ok {
		return
	}

	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	exams, err := h.exams.ListExams(r.Context(), userID, limit)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list exams")
		return
	}

	resp := make([]ExamResponse, 0, len(exams))
	for _, e := range exams {
		resp = append(resp, toExamResponse(e))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// AnalyzeExam handles GET /api/exams/{id}/analysis.
func (h *ExamHandler) AnalyzeExam(w http.ResponseWriter, r *http.Request) {
	userID, examID, ok := handleUserIDAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	topN, err := queryInt(r, "top_n", 0)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	result, err := h.exams.AnalyzeExam(r.Context(), userID, examID, topN)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to analyze exam")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// ExamRoadmap handles GET /api/exams/{id}/roadmap.
func (h *ExamHandler) ExamRoadmap(w http.ResponseWriter, r *http.Request) {
	userID, examID, ok := handleUserIDAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	perWeek, err := queryInt(r, "max_topics_per_week", 0)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if perWeek > maxTopicsPerWeek {
		HandleAPIError(w, r, domain.NewRangeError("max_topics_per_week",
			float64(perWeek), 1, maxTopicsPerWeek), "")
		return
	}

	report, err := h.exams.ExamRoadmap(r.Context(), userID, examID, perWeek)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate roadmap")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, report)
}

// CompareExams handles GET /api/exams/progress?previous={id}&current={id}.
func (h *ExamHandler) CompareExams(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(w, r)
	if !ok {
		return
	}

	previousID, err := parseUUID(r.URL.Query().Get("previous"), "previous")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	currentID, err := parseUUID(r.URL.Query().Get("current"), "current")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	progress, err := h.exams.CompareExams(r.Context(), userID, previousID, currentID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to compare exams")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, progress)
}
