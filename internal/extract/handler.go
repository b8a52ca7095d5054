package extract

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"syllabus-analyzer/internal/shared/server/middleware"
	"syllabus-analyzer/internal/shared/server/respond"
	"syllabus-analyzer/internal/shared/telemetry"
)

// Handler serves document-to-text conversion for the input boxes.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches the extract route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents/extract", h.extract)
}

type extractResponse struct {
	Text     string `json:"text"`
	FileName string `json:"fileName"`
	MIMEType string `json:"mimeType"`
}

func (h *Handler) extract(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadBytes+1<<20)
	fh, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "file exceeds 10MB", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", []map[string]string{{"field": "file", "issue": "required"}})
		return
	}
	if fh.Size > MaxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "file exceeds 10MB", nil)
		return
	}

	f, err := fh.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, MaxUploadBytes+1))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	name := cleanFileName(fh.Filename)
	kind := DetectType(data, name)
	text, err := Text(c.Request.Context(), data, name)
	if err != nil {
		telemetry.Error("extract.failed", map[string]any{
			"request_id": middleware.RequestIDFromContext(c),
			"file_name":  name,
			"mime_type":  kind,
			"size":       len(data),
			"error":      err.Error(),
		})
		switch {
		case errors.Is(err, ErrUnsupportedType):
			respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_type", "only PDF, DOCX and plain text files are supported", nil)
		case errors.Is(err, ErrEmptyDocument):
			respond.Error(c, http.StatusUnprocessableEntity, "empty_document", "no text found in document", nil)
		default:
			respond.Error(c, http.StatusUnprocessableEntity, "extract_failed", "failed to read document text", nil)
		}
		return
	}

	telemetry.Info("extract.complete", map[string]any{
		"request_id": middleware.RequestIDFromContext(c),
		"file_name":  name,
		"mime_type":  kind,
		"size":       len(data),
		"chars":      len(text),
	})
	respond.OK(c, extractResponse{Text: text, FileName: name, MIMEType: kind})
}

// cleanFileName keeps only the base name for logs and responses.
func cleanFileName(name string) string {
	name = strings.ReplaceAll(strings.TrimSpace(name), "\\", "/")
	base := filepath.Base(name)
	if base == "." || base == "/" || base == ".." {
		return "upload"
	}
	return base
}
