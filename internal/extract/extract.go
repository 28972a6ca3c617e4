// Package extract converts uploaded resume files into plain text. The
// analysis core treats the returned string as opaque content; everything
// format-specific lives here.
package extract

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// MIME types accepted by Text.
const (
	MimePlainText = "text/plain"
	MimeHTML      = "text/html"
	MimePDF       = "application/pdf"
	MimeDocx      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeDoc       = "application/msword"
)

// extensionMimes maps file extensions to MIME types for callers (the CLI)
// that only have a filename.
var extensionMimes = map[string]string{
	".txt":  MimePlainText,
	".html": MimeHTML,
	".htm":  MimeHTML,
	".pdf":  MimePDF,
	".docx": MimeDocx,
	".doc":  MimeDoc,
}

// MimeForExtension returns the MIME type for a file extension (with leading
// dot, case-insensitive), or "" if the extension is not recognized.
func MimeForExtension(ext string) string {
	return extensionMimes[strings.ToLower(ext)]
}

// Text extracts plain text from file bytes according to the declared MIME
// type. Unrecognized types fail with ErrUnsupportedFormat; parse failures
// fail with an ExtractionError wrapping the cause.
func Text(data []byte, mimeType string) (string, error) {
	switch mimeType {
	case MimePlainText:
		return string(data), nil
	case MimeHTML:
		return htmlText(data)
	case MimePDF:
		return pdfText(data)
	case MimeDocx, MimeDoc:
		// Legacy .doc uploads only parse when the file is actually an
		// OOXML container; true binary .doc fails as ExtractionError.
		return docxText(data)
	default:
		return "", ErrUnsupportedFormat
	}
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: MimePDF, Cause: err}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: MimeDocx, Cause: err}
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}

// htmlText strips markup and returns the visible text of an HTML document.
func htmlText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", &ExtractionError{Format: MimeHTML, Cause: err}
	}

	doc.Find("script, style, noscript").Remove()
	text := doc.Find("body").Text()
	if strings.TrimSpace(text) == "" {
		text = doc.Text()
	}
	return collapseWhitespace(text), nil
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
