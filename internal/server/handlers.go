package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/extraction"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/pipeline"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/types"
)

// SessionResponse is returned when a session is created or its resume read.
type SessionResponse struct {
	SessionID string              `json:"session_id"`
	Resume    *types.ResumeRecord `json:"resume"`
}

// GenerateResponse carries the generated resume content.
type GenerateResponse struct {
	Content string `json:"content"`
}

// RunRequest represents a one-shot pipeline request.
type RunRequest struct {
	ResumeText     string              `json:"resume_text,omitempty"`
	Resume         *types.ResumeRecord `json:"resume,omitempty"`
	JobDescription string              `json:"job_description,omitempty"`
	JobURL         string              `json:"job_url,omitempty"`
}

// RunResponse carries the outputs of a one-shot pipeline run.
type RunResponse struct {
	Resume   *types.ResumeRecord   `json:"resume"`
	Analysis *types.AnalysisResult `json:"analysis"`
	Content  string                `json:"content"`
}

// handleCreateSession creates a new editing session with an empty record.
func (s *Server) handleCreateSession(w http.ResponseWriter, _ *http.Request) {
	sess := s.sessions.Create()
	s.jsonResponse(w, http.StatusCreated, SessionResponse{
		SessionID: sess.ID,
		Resume:    sess.Resume,
	})
}

// handleGetResume returns the session's current resume record.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, SessionResponse{
		SessionID: sess.ID,
		Resume:    sess.Resume,
	})
}

// handlePutResume replaces the session's resume record wholesale.
func (s *Server) handlePutResume(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var record types.ResumeRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	record.EnsureIDs()
	s.sessions.SetResume(sess.ID, &record)
	s.jsonResponse(w, http.StatusOK, SessionResponse{
		SessionID: sess.ID,
		Resume:    &record,
	})
}

// handleUpload accepts a multipart DOCX upload, extracts its text and seeds
// the session's record from it.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(document.MaxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "resume file is required")
		return
	}
	defer file.Close()

	if err := document.ValidateUpload(header.Header.Get("Content-Type"), header.Size); err != nil {
		s.errorResponse(w, HTTPStatus(&ErrUpload{Message: err.Error()}), err.Error())
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, document.MaxUploadBytes+1))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to read upload: "+err.Error())
		return
	}
	if int64(len(data)) > document.MaxUploadBytes {
		s.errorResponse(w, http.StatusBadRequest, "File size must be less than 5MB")
		return
	}

	text, err := document.DecodeText(data)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read document: "+err.Error())
		return
	}

	record := extraction.Extract(ingestion.CleanText(text))
	record.EnsureIDs()
	s.sessions.SetResume(sess.ID, record)

	s.jsonResponse(w, http.StatusOK, SessionResponse{
		SessionID: sess.ID,
		Resume:    record,
	})
}

// handleAnalyze scores the session's resume against a job description.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Either job_description or job_url is required")
		return
	}

	jobDescription, err := s.resolveJobDescription(r, req.JobDescription, req.JobURL)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Failed to fetch job posting: "+err.Error())
		return
	}

	resumeText := rendering.Render(sess.Resume)
	result := s.analyzer.Analyze(r.Context(), resumeText, jobDescription)
	s.sessions.SetAnalysis(sess.ID, result)

	s.jsonResponse(w, http.StatusOK, result)
}

// handleGenerate produces improved resume content for the session's record.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var req types.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	jobDescription, err := s.resolveJobDescription(r, req.JobDescription, req.JobURL)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Failed to fetch job posting: "+err.Error())
		return
	}

	content := s.generator.Generate(r.Context(), sess.Resume, jobDescription)
	s.jsonResponse(w, http.StatusOK, GenerateResponse{Content: content})
}

// handleExport renders the session's record and returns it as a DOCX download.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	data, err := document.EncodeCanonical(rendering.Render(sess.Resume))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to build document: "+err.Error())
		return
	}

	filename := document.ExportFilename(sess.Resume)
	w.Header().Set("Content-Type", document.DocxMIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		return
	}
}

// handleRun executes the full pipeline without a session.
func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	var req RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.ResumeText == "" && req.Resume == nil {
		s.errorResponse(w, http.StatusBadRequest, "Either resume_text or resume is required")
		return
	}
	if req.JobDescription == "" && req.JobURL == "" {
		s.errorResponse(w, http.StatusBadRequest, "Either job_description or job_url is required")
		return
	}

	result, err := pipeline.Run(r.Context(), s.client, pipeline.RunOptions{
		ResumeText:     req.ResumeText,
		Record:         req.Resume,
		JobDescription: req.JobDescription,
		JobURL:         req.JobURL,
		UseBrowser:     s.useBrowser,
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Pipeline failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, RunResponse{
		Resume:   result.Record,
		Analysis: result.Analysis,
		Content:  result.Content,
	})
}

// session resolves the {id} path parameter to a live session, writing a 404
// when it is missing or expired.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := r.PathValue("id")
	sess := s.sessions.Get(id)
	if sess == nil {
		err := &ErrSessionNotFound{SessionID: id}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return nil, false
	}
	return sess, true
}

// resolveJobDescription returns inline text when present, otherwise fetches
// and ingests the job posting URL.
func (s *Server) resolveJobDescription(r *http.Request, inline, jobURL string) (string, error) {
	if inline != "" {
		return inline, nil
	}
	if jobURL == "" {
		return "", nil
	}
	return ingestion.IngestFromURL(r.Context(), jobURL, s.useBrowser)
}
