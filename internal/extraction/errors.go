// Package extraction converts uploaded resume documents into normalized plain text.
package extraction

import "fmt"

// UnsupportedFormatError indicates the upload's declared media type and
// filename extension are both outside the supported set (PDF, DOCX).
type UnsupportedFormatError struct {
	MediaType string
	FileName  string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file type %q (%s): please upload PDF or DOCX only", e.MediaType, e.FileName)
}

// UnreadableDocumentError indicates the document could not be parsed, or
// parsed to effectively no text (scanned/image-based files, empty files).
type UnreadableDocumentError struct {
	Message string
	Cause   error
}

func (e *UnreadableDocumentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("unreadable document: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("unreadable document: %s", e.Message)
}

func (e *UnreadableDocumentError) Unwrap() error {
	return e.Cause
}
