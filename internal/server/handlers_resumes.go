package server

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/server/middleware"
)

// ResumeStore is the subset of database operations the resume handlers
// need. Satisfied by *db.DB; tests substitute a stub.
type ResumeStore interface {
	SaveResume(ctx context.Context, userID uuid.UUID, fileName string, score int, assessment any) (uuid.UUID, error)
	GetResume(ctx context.Context, id, userID uuid.UUID) (*db.ResumeRecord, error)
	ListResumesByUser(ctx context.Context, userID uuid.UUID, limit int) ([]db.ResumeSummary, error)
	DeleteResume(ctx context.Context, id, userID uuid.UUID) error
}

// handleListResumes returns the authenticated user's stored analyses,
// newest first.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil || limit < 0 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
	}

	summaries, err := s.resumes.ListResumesByUser(r.Context(), userID, limit)
	if err != nil {
		log.Printf("Failed to list resumes: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list resumes")
		return
	}
	if summaries == nil {
		summaries = []db.ResumeSummary{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"resumes": summaries})
}

// handleGetResume returns one stored analysis, including the full
// assessment document.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return
	}

	rec, err := s.resumes.GetResume(r.Context(), id, userID)
	if err != nil {
		log.Printf("Failed to get resume: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get resume")
		return
	}
	if rec == nil {
		s.errorResponse(w, http.StatusNotFound, (&ErrResumeNotFound{ResumeID: id}).Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, rec)
}

// handleDeleteResume removes one stored analysis owned by the
// authenticated user.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return
	}

	rec, err := s.resumes.GetResume(r.Context(), id, userID)
	if err != nil {
		log.Printf("Failed to look up resume: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete resume")
		return
	}
	if rec == nil {
		s.errorResponse(w, http.StatusNotFound, (&ErrResumeNotFound{ResumeID: id}).Error())
		return
	}

	if err := s.resumes.DeleteResume(r.Context(), id, userID); err != nil {
		log.Printf("Failed to delete resume: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete resume")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Resume deleted"})
}
