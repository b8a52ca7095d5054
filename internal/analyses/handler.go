package analyses

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"syllabus-analyzer/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc     *Service
	Current *CurrentStore
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, current *CurrentStore) *Handler {
	return &Handler{Svc: svc, Current: current}
}

// RegisterRoutes attaches analysis routes to the router group. Extra handlers
// (rate limiting) run only on the route that calls the provider.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, analyzeMiddleware ...gin.HandlerFunc) {
	rg.POST("/analyses", append(analyzeMiddleware, h.analyze)...)
	rg.GET("/analyses/current", h.current)
}

type analyzeRequest struct {
	Syllabus string `json:"syllabus"`
	Exam     string `json:"exam"`
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if details := ValidateInput(req.Syllabus, req.Exam); len(details) > 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "syllabus and exam are required", details)
		return
	}

	result, err := h.Svc.Analyze(c.Request.Context(), req.Syllabus, req.Exam)
	if err != nil {
		status, code := StatusFor(err)
		respond.Error(c, status, code, UserMessage(err), nil)
		return
	}
	c.Set("analysisId", result.ID)
	respond.OK(c, result)
}

func (h *Handler) current(c *gin.Context) {
	result, err := h.Current.Get(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "no analysis results to display", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch analysis", nil)
		}
		return
	}
	respond.OK(c, result)
}

// ValidateInput returns one detail entry per blank input.
func ValidateInput(syllabus, exam string) []map[string]string {
	var details []map[string]string
	if strings.TrimSpace(syllabus) == "" {
		details = append(details, map[string]string{"field": "syllabus", "issue": "required"})
	}
	if strings.TrimSpace(exam) == "" {
		details = append(details, map[string]string{"field": "exam", "issue": "required"})
	}
	return details
}

// StatusFor maps an analysis error to an HTTP status and error code.
func StatusFor(err error) (int, string) {
	switch KindOf(err) {
	case KindConfiguration:
		return http.StatusServiceUnavailable, "ai_unavailable"
	case KindProvider:
		return http.StatusBadGateway, "provider_error"
	case KindMalformedResponse:
		return http.StatusBadGateway, "malformed_response"
	case KindUnexpectedFormat:
		return http.StatusBadGateway, "unexpected_format"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
