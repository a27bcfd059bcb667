package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/slidecraft/slidecraft/internal/api"
)

func TestNewClient(t *testing.T) {
	client := NewClient("http://192.168.1.20:5000/")

	if client.BaseURL != "http://192.168.1.20:5000" {
		t.Errorf("BaseURL = %s, want http://192.168.1.20:5000", client.BaseURL)
	}
	if client.HTTPClient == nil {
		t.Error("HTTPClient should not be nil")
	}
}

func TestSetTimeout(t *testing.T) {
	client := NewClient("http://localhost:5000")
	client.SetTimeout(5 * time.Second)

	if client.HTTPClient.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", client.HTTPClient.Timeout)
	}
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != api.RouteHealth {
			t.Errorf("path = %s, want %s", r.URL.Path, api.RouteHealth)
		}
		_ = json.NewEncoder(w).Encode(api.HealthResponse{Status: api.HealthStatusHealthy})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	if err := client.Health(context.Background()); err != nil {
		t.Errorf("Health() = %v, want nil", err)
	}
}

func TestHealthUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // shut down immediately so the port refuses connections

	client := NewClient(srv.URL)
	err := client.Health(context.Background())
	if err == nil {
		t.Fatal("expected error for unreachable backend")
	}
	if !IsUnreachable(err) {
		t.Errorf("error should classify as unreachable, got %v", err)
	}
}

func TestQuickPaths(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.QuickPathsResponse{Paths: []api.Entry{
			{Name: "Pictures", Path: "/home/user/Pictures"},
			{Name: "Music", Path: "/home/user/Music"},
		}})
	}))
	defer srv.Close()

	paths, err := NewClient(srv.URL).QuickPaths(context.Background())
	if err != nil {
		t.Fatalf("QuickPaths() = %v", err)
	}
	if len(paths) != 2 || paths[0].Name != "Pictures" {
		t.Errorf("paths = %+v", paths)
	}
}

func TestBrowseFolder(t *testing.T) {
	parent := "/home/user"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req api.BrowseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Path != "/home/user/Pictures" {
			t.Errorf("path = %s", req.Path)
		}
		if !req.IncludeImages {
			t.Error("include_images should be set")
		}
		_ = json.NewEncoder(w).Encode(api.BrowseResponse{
			Success:     true,
			CurrentPath: req.Path,
			ParentPath:  &parent,
			Folders:     []api.Entry{{Name: "Trip", Path: "/home/user/Pictures/Trip"}},
			Files: []api.Entry{
				{Name: "a.jpg", Path: "/home/user/Pictures/a.jpg"},
				{Name: "b.jpg", Path: "/home/user/Pictures/b.jpg"},
			},
		})
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL).BrowseFolder(context.Background(), api.BrowseRequest{
		Path:          "/home/user/Pictures",
		IncludeImages: true,
	})
	if err != nil {
		t.Fatalf("BrowseFolder() = %v", err)
	}
	if resp.ParentPath == nil || *resp.ParentPath != parent {
		t.Errorf("parent path = %v", resp.ParentPath)
	}
	if len(resp.Files) != 2 {
		t.Errorf("files = %v", resp.Files)
	}
}

func TestBrowseFolderRemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(api.BrowseResponse{
			Success: false,
			Error:   "path does not exist",
		})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).BrowseFolder(context.Background(), api.BrowseRequest{Path: "/nope"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsRemoteError(err) {
		t.Errorf("error should classify as remote, got %v", err)
	}
	if IsUnreachable(err) {
		t.Error("backend rejection must not look like an unreachable backend")
	}
}

func TestGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req api.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Filename != "wedding.yaml" {
			t.Errorf("filename = %s", req.Filename)
		}
		_ = json.NewEncoder(w).Encode(api.GenerateResponse{
			Success:    true,
			OutputFile: "C:/Out/Wedding.mp4",
			LogFile:    "C:/Out/wedding.log",
		})
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL).Generate(context.Background(), api.GenerateRequest{
		DocumentContent: "project:\n  name: \"Wedding\"\n",
		Filename:        "wedding.yaml",
		OutputDir:       "C:/Out",
	})
	if err != nil {
		t.Fatalf("Generate() = %v", err)
	}
	if resp.OutputFile != "C:/Out/Wedding.mp4" {
		t.Errorf("output file = %s", resp.OutputFile)
	}
}

func TestGenerateFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(api.GenerateResponse{
			Success: false,
			Error:   "renderer exited with status 1",
		})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Generate(context.Background(), api.GenerateRequest{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsRemoteError(err) {
		t.Errorf("error should classify as remote, got %v", err)
	}
}

func TestFallbackCommand(t *testing.T) {
	tests := []struct {
		generator string
		filename  string
		want      string
	}{
		{"slidecraft-render", "wedding.yaml", "slidecraft-render --config wedding.yaml"},
		{"slidecraft-render", "my config.yaml", `slidecraft-render --config "my config.yaml"`},
	}
	for _, tt := range tests {
		if got := FallbackCommand(tt.generator, tt.filename); got != tt.want {
			t.Errorf("FallbackCommand(%q, %q) = %q, want %q", tt.generator, tt.filename, got, tt.want)
		}
	}
}
