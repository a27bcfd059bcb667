package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/slidecraft/slidecraft/internal/api"
)

func testServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	s, err := New(&Config{
		ListenAddr:       "127.0.0.1:0",
		GeneratorCommand: "slidecraft-render",
		WorkDir:          t.TempDir(),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	srv := httptest.NewServer(s.Router())
	t.Cleanup(srv.Close)
	return s, srv
}

func postJSON(t *testing.T, url string, body any, out any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp
}

func TestHandleHealth(t *testing.T) {
	_, srv := testServer(t)

	resp, err := http.Get(srv.URL + api.RouteHealth)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var health api.HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if health.Status != api.HealthStatusHealthy {
		t.Errorf("status = %q", health.Status)
	}
	if health.Generator != "slidecraft-render" {
		t.Errorf("generator = %q", health.Generator)
	}
}

func TestHandleBrowseFolder(t *testing.T) {
	_, srv := testServer(t)

	dir := t.TempDir()
	mustMkdir(t, filepath.Join(dir, "Trip"))
	mustMkdir(t, filepath.Join(dir, ".hidden"))
	mustMkdir(t, filepath.Join(dir, "$RECYCLE.BIN"))
	mustWrite(t, filepath.Join(dir, "b.jpg"))
	mustWrite(t, filepath.Join(dir, "A.PNG"))
	mustWrite(t, filepath.Join(dir, "notes.txt"))
	mustWrite(t, filepath.Join(dir, "song.mp3"))

	var out api.BrowseResponse
	postJSON(t, srv.URL+api.RouteBrowseFolder, api.BrowseRequest{
		Path:          dir,
		IncludeImages: true,
	}, &out)

	if !out.Success {
		t.Fatalf("browse failed: %s", out.Error)
	}
	if len(out.Folders) != 1 || out.Folders[0].Name != "Trip" {
		t.Errorf("folders = %+v, hidden and system folders must be skipped", out.Folders)
	}
	if len(out.Files) != 2 || out.Files[0].Name != "A.PNG" || out.Files[1].Name != "b.jpg" {
		t.Errorf("files = %v, want images sorted case-insensitively", out.Files)
	}
	if out.ParentPath == nil {
		t.Error("parent path missing")
	}
}

func TestHandleBrowseFolderAudio(t *testing.T) {
	_, srv := testServer(t)

	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "song.mp3"))
	mustWrite(t, filepath.Join(dir, "cover.jpg"))

	var out api.BrowseResponse
	postJSON(t, srv.URL+api.RouteBrowseFolder, api.BrowseRequest{
		Path:         dir,
		IncludeAudio: true,
	}, &out)

	if len(out.Files) != 1 || out.Files[0].Name != "song.mp3" {
		t.Errorf("files = %v, want only audio", out.Files)
	}
}

func TestHandleBrowseFolderMissing(t *testing.T) {
	_, srv := testServer(t)

	var out api.BrowseResponse
	resp := postJSON(t, srv.URL+api.RouteBrowseFolder, api.BrowseRequest{
		Path: filepath.Join(t.TempDir(), "missing"),
	}, &out)

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if out.Success || out.Error == "" {
		t.Errorf("response = %+v, want failure with message", out)
	}
}

func TestHandleValidate(t *testing.T) {
	_, srv := testServer(t)

	imagesDir := t.TempDir()
	audioDir := t.TempDir()
	mustWrite(t, filepath.Join(imagesDir, "hero.jpg"))

	doc := "paths:\n" +
		"  images_dir: \"" + filepath.ToSlash(imagesDir) + "\"\n" +
		"  audio_dir: \"" + filepath.ToSlash(audioDir) + "\"\n" +
		"  output_file: \"" + filepath.ToSlash(filepath.Join(audioDir, "out.mp4")) + "\"\n" +
		"special_images:\n" +
		"  opening_closing: \"hero.jpg\"\n"

	var out api.ValidateResponse
	postJSON(t, srv.URL+api.RouteValidate, api.ValidateRequest{DocumentContent: doc}, &out)
	if !out.Valid {
		t.Errorf("valid document rejected: %v", out.Errors)
	}
}

func TestHandleValidateMissingPieces(t *testing.T) {
	_, srv := testServer(t)

	imagesDir := t.TempDir()
	doc := "paths:\n" +
		"  images_dir: \"" + filepath.ToSlash(imagesDir) + "\"\n" +
		"special_images:\n" +
		"  opening_closing: \"ghost.jpg\"\n"

	var out api.ValidateResponse
	postJSON(t, srv.URL+api.RouteValidate, api.ValidateRequest{DocumentContent: doc}, &out)
	if out.Valid {
		t.Fatal("incomplete document accepted")
	}
	if len(out.Errors) < 2 {
		t.Errorf("errors = %v, want missing audio_dir and missing photo", out.Errors)
	}
}

func TestHandleGenerateRejectsEmptyDocument(t *testing.T) {
	_, srv := testServer(t)

	var out api.GenerateResponse
	resp := postJSON(t, srv.URL+api.RouteGenerate, api.GenerateRequest{}, &out)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if out.Success {
		t.Error("empty document accepted")
	}
}

func TestWriteDocument(t *testing.T) {
	s, _ := testServer(t)

	outDir := t.TempDir()
	path, err := s.writeDocument(api.GenerateRequest{
		DocumentContent: "project:\n  name: \"Trip\"\n",
		Filename:        "trip.yaml",
		OutputDir:       filepath.ToSlash(outDir),
	})
	if err != nil {
		t.Fatalf("writeDocument: %v", err)
	}
	if filepath.Dir(path) != filepath.Clean(outDir) {
		t.Errorf("document written to %s, want %s", path, outDir)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "project:\n  name: \"Trip\"\n" {
		t.Errorf("content = %q", data)
	}
}

func TestWriteDocumentFallsBackToWorkDir(t *testing.T) {
	s, _ := testServer(t)

	path, err := s.writeDocument(api.GenerateRequest{
		DocumentContent: "x: 1\n",
		Filename:        "a.yaml",
	})
	if err != nil {
		t.Fatalf("writeDocument: %v", err)
	}
	if filepath.Dir(path) != filepath.Clean(s.workDir) {
		t.Errorf("document written to %s, want work dir %s", path, s.workDir)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"wedding.yaml", "wedding.yaml"},
		{"wedding", "wedding.yaml"},
		{"../../etc/passwd", "passwd.yaml"},
		{`..\..\escape.yaml`, "escape.yaml"},
		{"  trip.yml  ", "trip.yml"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := sanitizeFilename(tt.in); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestListenPort(t *testing.T) {
	tests := []struct {
		addr string
		want int
	}{
		{"127.0.0.1:5000", 5000},
		{":8080", 8080},
		{"garbage", 5000},
	}
	for _, tt := range tests {
		if got := listenPort(tt.addr); got != tt.want {
			t.Errorf("listenPort(%q) = %d, want %d", tt.addr, got, tt.want)
		}
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatal(err)
	}
}

func mustWrite(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}
