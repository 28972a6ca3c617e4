package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/extract"
)

// UploadResponse is the response body for POST /resumes/upload.
type UploadResponse struct {
	ID        string          `json:"id"`
	FileName  string          `json:"file_name"`
	Content   string          `json:"content"`
	Analysis  analysis.Result `json:"analysis"`
	ATSScore  int             `json:"ats_score"`
	CreatedAt string          `json:"created_at"`
}

// KeywordRequest is the request body for POST /resumes/{id}/keywords.
type KeywordRequest struct {
	JobDescription string `json:"job_description" validate:"required"`
}

// handleUploadResume accepts a multipart resume file, extracts its text,
// runs the initial analysis and stores the record.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Please upload a file in the 'file' field")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = extract.MimeForExtension(filepath.Ext(header.Filename))
	}

	content, err := extract.Text(data, mimeType)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result := s.analyzer.Analyze(content)

	record, err := s.db.CreateResume(r.Context(), header.Filename, mimeType, content, result, result.ATSScore)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, UploadResponse{
		ID:        record.ID.String(),
		FileName:  record.FileName,
		Content:   record.Content,
		Analysis:  result,
		ATSScore:  result.ATSScore,
		CreatedAt: record.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// handleListResumes returns stored resumes without content bodies.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	filters := db.ResumeFilters{
		FileName: r.URL.Query().Get("file_name"),
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			filters.Limit = limit
		}
	}

	resumes, err := s.db.ListResumes(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"resumes": resumes,
		"count":   len(resumes),
	})
}

// handleGetResume returns one resume record including content and analysis.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.loadResume(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, resume)
}

// handleDeleteResume deletes a resume and its suggestion history.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.loadResume(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteResume(r.Context(), resume.ID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleGetSuggestions generates suggestions for one category and appends
// them to the resume's suggestion history.
func (s *Server) handleGetSuggestions(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.loadResume(w, r)
	if !ok {
		return
	}

	category, err := analysis.ParseCategory(r.URL.Query().Get("type"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	jobDescription := r.URL.Query().Get("jobDescription")

	set, err := s.analyzer.Suggest(category, resume.Content, jobDescription)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := s.db.SaveSuggestionSet(r.Context(), resume.ID, string(set.Category), set.Items, jobDescription); err != nil {
		// History is best-effort; the generated suggestions are still valid.
		log.Printf("Failed to save suggestion history for %s: %v", resume.ID, err)
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":     true,
		"type":        set.Category,
		"suggestions": set.Items,
	})
}

// handleGetATSScore recomputes and stores the deterministic ATS score.
func (s *Server) handleGetATSScore(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.loadResume(w, r)
	if !ok {
		return
	}

	score := s.analyzer.Score(s.analyzer.Tokenize(resume.Content))

	if err := s.db.UpdateATSScore(r.Context(), resume.ID, score); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"score":   score,
	})
}

// handleKeywordAnalysis compares the resume against a job description.
func (s *Server) handleKeywordAnalysis(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.loadResume(w, r)
	if !ok {
		return
	}

	var req KeywordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "job_description is required")
		return
	}

	report := s.analyzer.MatchKeywords(
		s.analyzer.Tokenize(resume.Content),
		s.analyzer.Tokenize(req.JobDescription),
	)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":  true,
		"analysis": report,
	})
}

// handleActionVerbs returns the action-verb histogram and weak-verb
// replacement suggestions for a resume.
func (s *Server) handleActionVerbs(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.loadResume(w, r)
	if !ok {
		return
	}

	tokens := s.analyzer.Tokenize(resume.Content)
	features := s.analyzer.ExtractFeatures(tokens, resume.Content)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":      true,
		"action_verbs": features.ActionVerbs,
		"replacements": s.analyzer.ActionVerbReplacements(tokens),
	})
}

// loadResume parses the {id} path value and fetches the resume, writing
// the error response itself when either step fails.
func (s *Server) loadResume(w http.ResponseWriter, r *http.Request) (*db.Resume, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID format")
		return nil, false
	}

	resume, err := s.db.GetResume(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return nil, false
	}
	if resume == nil {
		notFound := &ErrResumeNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return nil, false
	}
	return resume, true
}
