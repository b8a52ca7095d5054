package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
)

const (
	MIMEPDF   = "application/pdf"
	MIMEDOCX  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEPlain = "text/plain"

	// MaxUploadBytes caps an imported document.
	MaxUploadBytes = 10 << 20
)

var (
	// ErrUnsupportedType is returned for formats other than PDF, DOCX and plain text.
	ErrUnsupportedType = errors.New("unsupported document type")
	// ErrEmptyDocument is returned when no text could be read.
	ErrEmptyDocument = errors.New("document contains no text")
)

// Text turns an uploaded syllabus or exam document into plain text. The type
// is sniffed from content; fileName only breaks ties for zip containers.
func Text(ctx context.Context, data []byte, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", ErrEmptyDocument
	}

	var (
		text string
		err  error
	)
	switch kind := DetectType(data, fileName); kind {
	case MIMEPDF:
		text, err = extractPDF(data)
	case MIMEDOCX:
		text, err = extractDOCX(data)
	case MIMEPlain:
		text, err = extractPlain(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, kind)
	}
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyDocument
	}
	return text, nil
}

// DetectType returns MIMEPDF, MIMEDOCX, MIMEPlain or the sniffed type of data.
func DetectType(data []byte, fileName string) string {
	mt := mimetype.Detect(data)
	for m := mt; m != nil; m = m.Parent() {
		switch {
		case m.Is(MIMEPDF):
			return MIMEPDF
		case m.Is(MIMEDOCX):
			return MIMEDOCX
		case m.Is(MIMEPlain):
			return MIMEPlain
		}
	}
	if mt.Is("application/zip") && strings.EqualFold(filepath.Ext(fileName), ".docx") && hasDocumentXML(data) {
		return MIMEDOCX
	}
	return strings.Split(mt.String(), ";")[0]
}

func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return buf.String(), nil
}

func extractPlain(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: text is not valid UTF-8", ErrUnsupportedType)
	}
	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}

func extractDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	doc := findDocumentXML(zr)
	if doc == nil {
		return "", errors.New("open docx: word/document.xml not found")
	}
	rc, err := doc.Open()
	if err != nil {
		return "", fmt.Errorf("open docx body: %w", err)
	}
	defer rc.Close()
	return docxText(rc)
}

func hasDocumentXML(data []byte) bool {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false
	}
	return findDocumentXML(zr) != nil
}

func findDocumentXML(zr *zip.Reader) *zip.File {
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			return f
		}
	}
	return nil
}

// docxText keeps run text, one line per paragraph; tabs and breaks are kept.
func docxText(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)
	var (
		buf    strings.Builder
		inText bool
	)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse docx body: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				buf.WriteByte('\t')
			case "br":
				buf.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				buf.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				buf.Write(t)
			}
		}
	}
	return buf.String(), nil
}
