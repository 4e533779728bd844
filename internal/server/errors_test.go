package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"email exists", &ErrEmailAlreadyExists{Email: "a@b.c"}, http.StatusConflict},
		{"invalid credentials", &ErrInvalidCredentials{}, http.StatusUnauthorized},
		{"password mismatch", &ErrPasswordMismatch{}, http.StatusUnauthorized},
		{"user not found", &ErrUserNotFound{UserID: uuid.New()}, http.StatusNotFound},
		{"resume not found", &ErrResumeNotFound{ResumeID: uuid.New()}, http.StatusNotFound},
		{"validation", &ErrValidation{Field: "email", Message: "required"}, http.StatusBadRequest},
		{"unsupported format", &extraction.UnsupportedFormatError{FileName: "x.txt"}, http.StatusBadRequest},
		{"unreadable document", &extraction.UnreadableDocumentError{Message: "empty"}, http.StatusUnprocessableEntity},
		{"wrapped unreadable", fmt.Errorf("analyze: %w", &extraction.UnreadableDocumentError{Message: "empty"}), http.StatusUnprocessableEntity},
		{"similarity unavailable", &ErrSimilarityUnavailable{Cause: fmt.Errorf("quota")}, http.StatusInternalServerError},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
