package extraction

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Supported upload media types.
const (
	MediaTypePDF  = "application/pdf"
	MediaTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// minReadableChars is the floor below which an extraction is treated as
// unreadable (scanned PDFs typically extract to nothing).
const minReadableChars = 30

// xmlTagPattern strips markup left over from DOCX body XML.
var xmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// Extract converts a resume document into plain text. Dispatch is on the
// declared media type first, then on the filename extension. The returned
// text is raw extractor output; callers normalize it with Normalize.
func Extract(fileName, mediaType string, data []byte) (string, error) {
	lowerName := strings.ToLower(fileName)

	var text string
	var err error
	switch {
	case mediaType == MediaTypePDF || strings.HasSuffix(lowerName, ".pdf"):
		text, err = extractPDFText(data)
	case mediaType == MediaTypeDOCX || strings.HasSuffix(lowerName, ".docx"):
		text, err = extractDocxText(data)
	default:
		return "", &UnsupportedFormatError{MediaType: mediaType, FileName: fileName}
	}
	if err != nil {
		return "", err
	}

	if len(strings.TrimSpace(text)) < minReadableChars {
		return "", &UnreadableDocumentError{
			Message: "document appears to be scanned or empty; upload a text-based PDF or DOCX",
		}
	}

	return text, nil
}

// extractPDFText concatenates the plain text of every page.
func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &UnreadableDocumentError{Message: "failed to read PDF", Cause: err}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		sb.WriteString(text)
	}
	return sb.String(), nil
}

// extractDocxText reads the document body and strips its XML markup.
func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &UnreadableDocumentError{Message: "failed to parse DOCX", Cause: err}
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	return xmlTagPattern.ReplaceAllString(content, " "), nil
}
