package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/ivlev/story2video/internal/compiler"
	"github.com/ivlev/story2video/internal/project"
	"github.com/ivlev/story2video/internal/store"
	"github.com/ivlev/story2video/internal/templates"
	"github.com/ivlev/story2video/internal/tts"
)

type stubRenderer struct {
	calls int
	fail  bool
}

func (r *stubRenderer) Render(_ context.Context, p *project.Project, outputPath string) error {
	r.calls++
	if r.fail {
		return os.ErrPermission
	}
	return os.WriteFile(outputPath, []byte("video"), 0644)
}

func newTestServer(t *testing.T) (*Server, *stubRenderer) {
	t.Helper()
	rend := &stubRenderer{}
	srv := &Server{
		Store:     store.New(),
		Compiler:  compiler.New(templates.Builtin()),
		Speech:    tts.NewGenerator(),
		Renderer:  rend,
		ExportDir: t.TempDir(),
		BaseURL:   "http://example.test",
	}
	return srv, rend
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func createProject(t *testing.T, h http.Handler) *project.Project {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/api/projects", map[string]string{
		"name":  "test story",
		"story": "Max ran to the park. He was happy. Luna joined him there.",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var p project.Project
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return &p
}

func TestCreateProject(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Routes()

	p := createProject(t, h)
	if p.ID == "" {
		t.Error("Expected assigned project id")
	}
	if len(p.Scenes) != 2 {
		t.Errorf("Expected 2 scenes for 3 sentences, got %d", len(p.Scenes))
	}
	if p.Metadata.FPS != 30 {
		t.Errorf("Expected 30 fps metadata, got %d", p.Metadata.FPS)
	}

	// TTS attachment runs at create time.
	if len(p.Scenes[0].Dialogue) == 0 {
		t.Fatal("Expected dialogue in first scene")
	}
	if !strings.Contains(p.Scenes[0].Dialogue[0].AudioURL, "translate_tts") {
		t.Errorf("Expected audio URL on dialogue, got %q", p.Scenes[0].Dialogue[0].AudioURL)
	}
}

func TestCreateProjectValidation(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Routes()

	rec := doJSON(t, h, http.MethodPost, "/api/projects", map[string]string{"name": "x"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing story, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader("{broken"))
	rec2 := httptest.NewRecorder()
	h.ServeHTTP(rec2, req)
	if rec2.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for malformed JSON, got %d", rec2.Code)
	}
}

func TestGetProject(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Routes()
	p := createProject(t, h)

	rec := doJSON(t, h, http.MethodGet, "/api/projects/"+p.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/projects/p-missing", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown id, got %d", rec.Code)
	}
}

func TestListProjects(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Routes()

	rec := doJSON(t, h, http.MethodGet, "/api/projects", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var empty []project.Project
	if err := json.Unmarshal(rec.Body.Bytes(), &empty); err != nil {
		t.Fatalf("Failed to decode list: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("Expected empty list, got %d", len(empty))
	}

	createProject(t, h)
	createProject(t, h)

	rec = doJSON(t, h, http.MethodGet, "/api/projects", nil)
	var projects []project.Project
	if err := json.Unmarshal(rec.Body.Bytes(), &projects); err != nil {
		t.Fatalf("Failed to decode list: %v", err)
	}
	if len(projects) != 2 {
		t.Errorf("Expected 2 projects, got %d", len(projects))
	}
}

func TestUpdateProject(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Routes()
	p := createProject(t, h)

	p.Name = "renamed"
	p.Metadata.TotalDuration = 0 // server recomputes

	rec := doJSON(t, h, http.MethodPut, "/api/projects/"+p.ID, p)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var updated project.Project
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if updated.Name != "renamed" {
		t.Errorf("Expected renamed, got %s", updated.Name)
	}
	if updated.Metadata.TotalDuration == 0 {
		t.Error("Expected total duration to be recomputed")
	}
}

func TestUpdateProjectRejectsInvalid(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Routes()
	p := createProject(t, h)

	p.Scenes[0].Dialogue = append(p.Scenes[0].Dialogue, project.DialogueLine{
		CharacterID: "char-does-not-exist",
		Text:        "ghost line",
		Duration:    3,
	})
	rec := doJSON(t, h, http.MethodPut, "/api/projects/"+p.ID, p)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for dangling character reference, got %d", rec.Code)
	}
}

func TestDeleteProject(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Routes()
	p := createProject(t, h)

	rec := doJSON(t, h, http.MethodDelete, "/api/projects/"+p.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	rec = doJSON(t, h, http.MethodGet, "/api/projects/"+p.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 after delete, got %d", rec.Code)
	}
}

func TestRenderEndpoint(t *testing.T) {
	srv, rend := newTestServer(t)
	h := srv.Routes()
	p := createProject(t, h)

	rec := doJSON(t, h, http.MethodPost, "/api/render", map[string]string{"projectId": p.ID})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if rend.calls != 1 {
		t.Errorf("Expected 1 render call, got %d", rend.calls)
	}

	var resp struct {
		Success bool   `json:"success"`
		URL     string `json:"url"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Error("Expected success=true")
	}
	if resp.URL != "/exports/"+p.ID+".mp4" {
		t.Errorf("Unexpected export URL %s", resp.URL)
	}

	// The exported file is reachable through the static route.
	rec = doJSON(t, h, http.MethodGet, resp.URL, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200 fetching export, got %d", rec.Code)
	}
}

func TestRenderEndpointErrors(t *testing.T) {
	srv, rend := newTestServer(t)
	h := srv.Routes()

	rec := doJSON(t, h, http.MethodPost, "/api/render", map[string]string{"projectId": "p-missing"})
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown project, got %d", rec.Code)
	}

	p := createProject(t, h)
	rend.fail = true
	rec = doJSON(t, h, http.MethodPost, "/api/render", map[string]string{"projectId": p.ID})
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500 for failed render, got %d", rec.Code)
	}
}

func TestProjectQR(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Routes()
	p := createProject(t, h)

	rec := doJSON(t, h, http.MethodGet, "/api/projects/"+p.ID+"/qr", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %s", ct)
	}
	// PNG magic bytes.
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")) {
		t.Error("Expected PNG payload")
	}

	rec = doJSON(t, h, http.MethodGet, "/api/projects/p-missing/qr", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown project, got %d", rec.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Routes()

	rec := doJSON(t, h, http.MethodPatch, "/api/projects", nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", rec.Code)
	}
	rec = doJSON(t, h, http.MethodGet, "/api/render", nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", rec.Code)
	}
}
