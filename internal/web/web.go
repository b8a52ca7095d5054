// Package web renders the browser page: two input boxes, the results table and
// the copy/export controls.
package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"syllabus-analyzer/internal/analyses"
	"syllabus-analyzer/internal/report"
	"syllabus-analyzer/internal/shared/config"
)

// Banner is shown in the header while no API key is configured.
const Banner = config.MissingKeyBanner

// MessageMissingInput is shown when the form is posted with a blank box.
const MessageMissingInput = "Please provide both syllabus and exam content."

//go:embed templates/*.html
var templateFS embed.FS

// Handler serves the page and the form post.
type Handler struct {
	Svc *analyses.Service

	tmpl *template.Template
}

// NewHandler parses the embedded templates.
func NewHandler(svc *analyses.Service) *Handler {
	return &Handler{
		Svc:  svc,
		tmpl: template.Must(template.New("").ParseFS(templateFS, "templates/*.html")),
	}
}

// RegisterRoutes attaches GET / and POST /analyze. Extra handlers run only on
// the form post.
func (h *Handler) RegisterRoutes(r gin.IRoutes, analyzeMiddleware ...gin.HandlerFunc) {
	r.GET("/", h.index)
	r.POST("/analyze", append(analyzeMiddleware, h.analyze)...)
}

type pageData struct {
	AIEnabled           bool
	Banner              string
	Syllabus            string
	Exam                string
	SyllabusPlaceholder string
	ExamPlaceholder     string
	Error               string

	Empty        bool
	EmptyMessage string
	Rows         []report.Row
	CopyText     string

	CopyLabel       string
	CopyIdleLabel   string
	CopiedLabel     string
	CopyFailedLabel string
	CopyResetMs     int64
}

func (h *Handler) index(c *gin.Context) {
	h.render(c, http.StatusOK, "", "", "", nil)
}

func (h *Handler) analyze(c *gin.Context) {
	syllabus := c.PostForm("syllabus")
	exam := c.PostForm("exam")
	if len(analyses.ValidateInput(syllabus, exam)) > 0 {
		h.render(c, http.StatusBadRequest, syllabus, exam, MessageMissingInput, nil)
		return
	}

	result, err := h.Svc.Analyze(c.Request.Context(), syllabus, exam)
	if err != nil {
		status, _ := analyses.StatusFor(err)
		h.render(c, status, syllabus, exam, analyses.UserMessage(err), nil)
		return
	}
	c.Set("analysisId", result.ID)
	h.render(c, http.StatusOK, syllabus, exam, "", result.Items)
}

// render draws the page with the records of this request only; a reload or a
// failed run shows the empty state.
func (h *Handler) render(c *gin.Context, status int, syllabus, exam, errMsg string, items []analyses.AnalysisResultItem) {
	copyText, err := report.CopyText(items)
	if err != nil {
		copyText = "[]"
	}
	data := pageData{
		AIEnabled:           h.Svc.Enabled(),
		Banner:              Banner,
		Syllabus:            syllabus,
		Exam:                exam,
		SyllabusPlaceholder: analyses.SampleSyllabus(),
		ExamPlaceholder:     analyses.SampleExam(),
		Error:               errMsg,
		Empty:               report.Empty(items),
		EmptyMessage:        report.EmptyMessage,
		Rows:                report.Rows(items),
		CopyText:            copyText,
		CopyLabel:           report.LabelCopy,
		CopyIdleLabel:       report.LabelCopy,
		CopiedLabel:         report.LabelCopied,
		CopyFailedLabel:     report.LabelCopyFailed,
		CopyResetMs:         report.DefaultCopyReset.Milliseconds(),
	}
	c.Render(status, render.HTML{Template: h.tmpl, Name: "index", Data: data})
}
