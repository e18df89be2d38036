// Package api exposes the project store, the story compiler and the
// render pipeline over HTTP with JSON bodies.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/skip2/go-qrcode"

	"github.com/ivlev/story2video/internal/compiler"
	"github.com/ivlev/story2video/internal/project"
	"github.com/ivlev/story2video/internal/store"
	"github.com/ivlev/story2video/internal/tts"
)

// Renderer produces the final video file for a project. The video
// pipeline satisfies this; tests swap in a stub.
type Renderer interface {
	Render(ctx context.Context, p *project.Project, outputPath string) error
}

type Server struct {
	Store    *store.Store
	Compiler *compiler.Compiler
	Speech   *tts.Generator
	Renderer Renderer

	// ExportDir receives rendered videos, served under /exports/.
	ExportDir string
	// BaseURL is the externally visible origin, used in QR codes.
	BaseURL string
}

// Routes builds the HTTP handler.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/projects", s.handleProjects)
	mux.HandleFunc("/api/projects/", s.handleProject)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.Handle("/exports/", http.StripPrefix("/exports/",
		http.FileServer(http.Dir(s.ExportDir))))
	return mux
}

func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listProjects(w, r)
	case http.MethodPost:
		s.createProject(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handleProject serves /api/projects/{id} and /api/projects/{id}/qr.
func (s *Server) handleProject(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/projects/")
	id, sub, _ := strings.Cut(rest, "/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing project id")
		return
	}

	if sub == "qr" {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		s.projectQR(w, r, id)
		return
	}
	if sub != "" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.getProject(w, r, id)
	case http.MethodPut:
		s.updateProject(w, r, id)
	case http.MethodDelete:
		s.deleteProject(w, r, id)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) listProjects(w http.ResponseWriter, _ *http.Request) {
	projects, err := s.Store.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

type createRequest struct {
	Name  string `json:"name"`
	Story string `json:"story"`
}

func (s *Server) createProject(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Name == "" || req.Story == "" {
		writeError(w, http.StatusBadRequest, "name and story are required")
		return
	}

	p := s.Compiler.Compile(req.Name, req.Story)
	if s.Speech != nil {
		s.Speech.AttachAudio(p)
	}

	id, err := s.Store.Create(p)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	stored, err := s.Store.Get(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Printf("[*] Created project %s (%d scenes, %.1fs)", id, len(stored.Scenes), stored.Metadata.TotalDuration)
	writeJSON(w, http.StatusCreated, stored)
}

func (s *Server) getProject(w http.ResponseWriter, _ *http.Request, id string) {
	p, err := s.Store.Get(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) updateProject(w http.ResponseWriter, r *http.Request, id string) {
	var p project.Project
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	// Clients editing scenes rarely maintain the duration sum; fix it
	// up instead of rejecting.
	p.RecomputeTotalDuration()

	if err := p.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.Store.Update(id, &p); err != nil {
		writeStoreError(w, err)
		return
	}

	updated, err := s.Store.Get(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) deleteProject(w http.ResponseWriter, _ *http.Request, id string) {
	if err := s.Store.Delete(id); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type renderRequest struct {
	ProjectID string `json:"projectId"`
}

type renderResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.ProjectID == "" {
		writeError(w, http.StatusBadRequest, "projectId is required")
		return
	}

	p, err := s.Store.Get(req.ProjectID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	outPath := filepath.Join(s.ExportDir, p.ID+".mp4")
	log.Printf("[*] Rendering project %s to %s", p.ID, outPath)
	if err := s.Renderer.Render(r.Context(), p, outPath); err != nil {
		log.Printf("[!] Render failed for %s: %v", p.ID, err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("render failed: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, renderResponse{
		Success: true,
		URL:     "/exports/" + p.ID + ".mp4",
	})
}

// projectQR answers a PNG QR code pointing at the project's preview
// page, for opening a render on a phone.
func (s *Server) projectQR(w http.ResponseWriter, _ *http.Request, id string) {
	if _, err := s.Store.Get(id); err != nil {
		writeStoreError(w, err)
		return
	}

	target := strings.TrimSuffix(s.BaseURL, "/") + "/preview/" + id
	png, err := qrcode.Encode(target, qrcode.Medium, 256)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[!] Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}
