// Package curriculum extracts plain text from uploaded study material so the
// chat assistant can ground its answers in it.
package curriculum

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// MaxDocumentBytes caps uploaded files. Larger documents would blow past the
// model's context anyway.
const MaxDocumentBytes = 4 << 20

// UnsupportedTypeError reports a file whose format cannot be extracted.
type UnsupportedTypeError struct {
	Name string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported document type %q (want .txt, .md, or .pdf)", e.Name)
}

// Extract returns the plain text content of an uploaded document. Plain text
// and markdown files pass through unchanged; PDFs are converted to text.
func Extract(name string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("document %q is empty", name)
	}
	if len(data) > MaxDocumentBytes {
		return "", fmt.Errorf("document %q is too large (%d bytes, max %d)", name, len(data), MaxDocumentBytes)
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".md":
		if !utf8.Valid(data) {
			return "", fmt.Errorf("document %q is not valid UTF-8 text", name)
		}
		text := strings.TrimSpace(string(data))
		if text == "" {
			return "", fmt.Errorf("document %q has no text content", name)
		}
		return text, nil
	case ".pdf":
		return extractPDF(name, data)
	default:
		return "", &UnsupportedTypeError{Name: name}
	}
}

func extractPDF(name string, data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("reading pdf %q: %w", name, err)
	}

	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extracting text from pdf %q: %w", name, err)
	}

	var b strings.Builder
	if _, err := io.Copy(&b, plain); err != nil {
		return "", fmt.Errorf("extracting text from pdf %q: %w", name, err)
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", fmt.Errorf("pdf %q has no extractable text", name)
	}
	return text, nil
}
