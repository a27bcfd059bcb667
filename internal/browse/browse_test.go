package browse

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/slidecraft/slidecraft/internal/api"
	"github.com/slidecraft/slidecraft/internal/backend"
	"github.com/slidecraft/slidecraft/internal/project"
)

func TestStartPath(t *testing.T) {
	tests := []struct {
		name       string
		fieldValue string
		imagesDir  string
		mode       Mode
		want       string
	}{
		{"field value wins for folders", `C:\Music`, `C:\Photos`, PickFolder, "C:/Music"},
		{"image mode opens images dir", "hero.jpg", `C:\Photos`, PickImage, "C:/Photos"},
		{"empty image field still opens images dir", "", `C:\Photos`, PickImage, "C:/Photos"},
		{"image mode without dir falls back", "hero.jpg", "", PickImage, "/"},
		{"fallback when nothing set", "", "", PickFolder, "/"},
		{"audio mode without dir falls back", "", "", PickAudio, "/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StartPath(tt.fieldValue, tt.imagesDir, "/", tt.mode); got != tt.want {
				t.Errorf("StartPath = %q, want %q", got, tt.want)
			}
		})
	}
}

// browseBackend serves quick paths and a fixed folder tree for session tests.
func browseBackend(t *testing.T) *httptest.Server {
	t.Helper()
	parentOf := map[string]*string{
		"/":     nil,
		"/pics": strPtr("/"),
	}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case api.RouteQuickPaths:
			_ = json.NewEncoder(w).Encode(api.QuickPathsResponse{
				Paths: []api.Entry{{Name: "Pictures", Path: "/pics"}},
			})
		case api.RouteBrowseFolder:
			var req api.BrowseRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			parent, known := parentOf[req.Path]
			if !known {
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(api.BrowseResponse{Success: false, Error: "path does not exist"})
				return
			}
			resp := api.BrowseResponse{
				Success:     true,
				CurrentPath: req.Path,
				ParentPath:  parent,
			}
			if req.Path == "/" {
				resp.Folders = []api.Entry{{Name: "pics", Path: "/pics"}}
			}
			if req.Path == "/pics" && req.IncludeImages {
				resp.Files = []api.Entry{
					{Name: "a.jpg", Path: "/pics/a.jpg"},
					{Name: "b.jpg", Path: "/pics/b.jpg"},
				}
			}
			_ = json.NewEncoder(w).Encode(resp)
		default:
			http.NotFound(w, r)
		}
	}))
}

func strPtr(s string) *string { return &s }

func TestSessionNavigation(t *testing.T) {
	srv := browseBackend(t)
	defer srv.Close()

	ctx := context.Background()
	client := backend.NewClient(srv.URL)

	s, err := NewSession(ctx, client, project.FieldImagesDir, PickFolder, "/")
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if len(s.QuickPaths) != 1 || s.QuickPaths[0].Name != "Pictures" {
		t.Errorf("quick paths = %+v", s.QuickPaths)
	}
	if !s.AtRoot() {
		t.Error("root should have no parent")
	}

	if err := s.Enter(ctx, "/pics"); err != nil {
		t.Fatalf("Enter: %v", err)
	}
	if s.CurrentPath != "/pics" || s.AtRoot() {
		t.Errorf("current = %q, at root = %v", s.CurrentPath, s.AtRoot())
	}
	if got := s.Accept(""); got != "/pics" {
		t.Errorf("Accept = %q, want /pics", got)
	}

	if err := s.Up(ctx); err != nil {
		t.Fatalf("Up: %v", err)
	}
	if s.CurrentPath != "/" {
		t.Errorf("after Up current = %q", s.CurrentPath)
	}
	// Up at root stays put without an error
	if err := s.Up(ctx); err != nil {
		t.Errorf("Up at root: %v", err)
	}
}

func TestSessionImageMode(t *testing.T) {
	srv := browseBackend(t)
	defer srv.Close()

	ctx := context.Background()
	s, err := NewSession(ctx, backend.NewClient(srv.URL), project.FieldSpecialPhoto, PickImage, "/pics")
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if len(s.Files) != 2 {
		t.Errorf("files = %v", s.Files)
	}
	if got := s.Accept("a.jpg"); got != "a.jpg" {
		t.Errorf("Accept = %q, want a.jpg", got)
	}
}

func TestSessionEnterFailureKeepsListing(t *testing.T) {
	srv := browseBackend(t)
	defer srv.Close()

	ctx := context.Background()
	s, err := NewSession(ctx, backend.NewClient(srv.URL), project.FieldImagesDir, PickFolder, "/")
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	if err := s.Enter(ctx, "/missing"); err == nil {
		t.Fatal("expected error for unknown path")
	}
	if s.CurrentPath != "/" {
		t.Errorf("failed Enter moved the session to %q", s.CurrentPath)
	}
	if len(s.Folders) != 1 {
		t.Error("failed Enter dropped the previous listing")
	}
}
