package report

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"syllabus-analyzer/internal/analyses"
	"syllabus-analyzer/internal/shared/metrics"
	"syllabus-analyzer/internal/shared/server/respond"
	"syllabus-analyzer/internal/shared/telemetry"
)

// Source supplies the record sequence to export.
type Source interface {
	Items(ctx context.Context) []analyses.AnalysisResultItem
}

// Handler serves exports of the current result.
type Handler struct {
	Source Source
}

func NewHandler(source Source) *Handler {
	return &Handler{Source: source}
}

// RegisterRoutes attaches export routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/analyses/current/json", h.exportJSON)
	rg.GET("/analyses/current/xlsx", h.exportXLSX)
}

func (h *Handler) exportJSON(c *gin.Context) {
	text, err := CopyText(h.Source.Items(c.Request.Context()))
	if err != nil {
		h.fail(c, "json", err)
		return
	}
	metrics.IncExport("json")
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(text))
}

func (h *Handler) exportXLSX(c *gin.Context) {
	body, err := XLSX(h.Source.Items(c.Request.Context()))
	if err != nil {
		h.fail(c, "xlsx", err)
		return
	}
	metrics.IncExport("xlsx")
	respond.Attachment(c, XLSXFilename, XLSXContentType, body)
}

func (h *Handler) fail(c *gin.Context, format string, err error) {
	telemetry.Error("export.failed", map[string]any{
		"format": format,
		"error":  err.Error(),
	})
	respond.Error(c, http.StatusInternalServerError, "export_failed", "Failed to export analysis results", nil)
}
