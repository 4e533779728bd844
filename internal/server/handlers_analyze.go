package server

import (
	"encoding/json"
	"io"
	"log"
	"math"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/server/middleware"
)

// maxUploadBytes bounds the multipart upload size.
const maxUploadBytes = 10 << 20 // 10 MB

// AnalyzeResponse is the analysis result plus the ID of the stored record.
type AnalyzeResponse struct {
	analysis.Assessment
	ID uuid.UUID `json:"id"`
}

// handleAnalyze accepts a resume upload, extracts and scores its text, and
// persists the assessment for the authenticated user.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "No file uploaded")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	text, err := s.extract(header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	text = extraction.Normalize(text)
	if len(text) < extraction.MinResumeChars {
		s.errorResponse(w, http.StatusBadRequest, "Resume content is too short to analyze")
		return
	}

	policy, similarity, err := s.similarityScore(r, text)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	assessment := policy.Evaluate(text, similarity)

	doc, err := json.Marshal(assessment)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to encode assessment")
		return
	}
	if s.schemaPath != "" {
		if err := schemas.ValidateBytes(s.schemaPath, doc); err != nil {
			log.Printf("Assessment failed schema validation: %v", err)
			s.errorResponse(w, http.StatusInternalServerError, "Assessment failed validation")
			return
		}
	}

	id, err := s.resumes.SaveResume(r.Context(), userID, header.Filename, assessment.Score, assessment)
	if err != nil {
		log.Printf("Failed to save resume analysis: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save analysis")
		return
	}

	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{
		Assessment: assessment,
		ID:         id,
	})
}

// similarityScore resolves the scoring policy and similarity input for one
// request. When the hybrid policy is active and the similarity collaborator
// fails, the request degrades to the local policy unless the configuration
// requires similarity.
func (s *Server) similarityScore(r *http.Request, text string) (analysis.ScoringPolicy, int, error) {
	if s.scorer == nil || s.policy.Name() != "hybrid" {
		return s.policy, 0, nil
	}

	sim, err := s.scorer.Score(r.Context(), text)
	if err != nil {
		if s.similarityRequired {
			return nil, 0, &ErrSimilarityUnavailable{Cause: err}
		}
		log.Printf("Similarity scoring failed, degrading to local policy: %v", err)
		return s.localPolicy, 0, nil
	}

	return s.policy, int(math.Round(sim * 100)), nil
}
