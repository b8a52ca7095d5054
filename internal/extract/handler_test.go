package extract

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"syllabus-analyzer/internal/shared/telemetry"
)

func newUploadRequest(t *testing.T, field, name string, body []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, name)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(body); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/extract", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler().RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestExtractHandlerPlainText(t *testing.T) {
	restore := telemetry.SetOutput(io.Discard)
	defer restore()

	resp := httptest.NewRecorder()
	newRouter().ServeHTTP(resp, newUploadRequest(t, "file", "../exam.txt", []byte("1. Which organelle is the powerhouse of the cell?")))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var payload extractResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Text != "1. Which organelle is the powerhouse of the cell?" {
		t.Fatalf("unexpected text %q", payload.Text)
	}
	if payload.FileName != "exam.txt" {
		t.Fatalf("unexpected file name %q", payload.FileName)
	}
	if payload.MIMEType != MIMEPlain {
		t.Fatalf("unexpected mime type %q", payload.MIMEType)
	}
}

func TestExtractHandlerMissingFile(t *testing.T) {
	restore := telemetry.SetOutput(io.Discard)
	defer restore()

	resp := httptest.NewRecorder()
	newRouter().ServeHTTP(resp, newUploadRequest(t, "other", "exam.txt", []byte("hello")))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestExtractHandlerUnsupported(t *testing.T) {
	restore := telemetry.SetOutput(io.Discard)
	defer restore()

	resp := httptest.NewRecorder()
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01")
	newRouter().ServeHTTP(resp, newUploadRequest(t, "file", "scan.png", png))

	if resp.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected 415, got %d", resp.Code)
	}
	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Error.Code != "unsupported_type" {
		t.Fatalf("unexpected code %q", payload.Error.Code)
	}
}
