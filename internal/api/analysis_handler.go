package api

import (
	"log/slog"
	"net/http"

	"github.com/sercanumit/bootcamp-112/internal/api/shared"
	"github.com/sercanumit/bootcamp-112/internal/domain/analysis"
	"github.com/sercanumit/bootcamp-112/internal/platform/logger"
)

// AnalysisHandler serves the stateless analysis endpoints. Nothing is stored.
type AnalysisHandler struct {
	analyzer *analysis.Analyzer
	logger   *slog.Logger
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(analyzer *analysis.Analyzer, logger *slog.Logger) *AnalysisHandler {
	if analyzer == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("analyzer cannot be nil for AnalysisHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalysisHandler{
		analyzer: analyzer,
		logger:   logger.With(slog.String("component", "analysis_handler")),
	}
}

// Analyze handles POST /api/analysis.
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalysisRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.analyzer.Analyze(req.Attempts, req.TopN)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to analyze attempts")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("attempts analyzed",
		slog.Int("attempt_count", len(req.Attempts)),
		slog.Int("weak_topic_count", len(result.WeakTopics)))

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// Roadmap handles POST /api/roadmap.
func (h *AnalysisHandler) Roadmap(w http.ResponseWriter, r *http.Request) {
	var req RoadmapRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	perWeek := analysis.DefaultTopicsPerWeek
	if req.MaxTopicsPerWeek != nil {
		perWeek = *req.MaxTopicsPerWeek
	}

	roadmap, err := h.analyzer.GenerateRoadmap(req.WeakTopics, perWeek)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate roadmap")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, roadmap)
}

// Progress handles POST /api/progress.
func (h *AnalysisHandler) Progress(w http.ResponseWriter, r *http.Request) {
	var req ProgressRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	progress, err := h.analyzer.Compare(req.Previous, req.Current)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to compare attempts")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, progress)
}
