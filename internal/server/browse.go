package server

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/slidecraft/slidecraft/internal/api"
	"github.com/slidecraft/slidecraft/internal/project"
)

// audioExtensions lists the file extensions offered as soundtrack
// candidates, lowercase with the leading dot.
var audioExtensions = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".m4a":  true,
	".aac":  true,
	".flac": true,
	".ogg":  true,
}

func isAudioFile(name string) bool {
	return audioExtensions[strings.ToLower(filepath.Ext(name))]
}

// hiddenFolder reports whether a directory entry is skipped in listings.
// Dot names cover Unix hidden folders, "$" names cover Windows system
// folders like $RECYCLE.BIN.
func hiddenFolder(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "$")
}

// listFolder builds the browse response for one directory.
func listFolder(req api.BrowseRequest) (*api.BrowseResponse, error) {
	path := filepath.Clean(filepath.FromSlash(project.NormalizePath(req.Path)))

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("path does not exist: %s", req.Path)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", req.Path)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory: %s", req.Path)
	}

	resp := &api.BrowseResponse{
		Success:     true,
		CurrentPath: filepath.ToSlash(path),
	}
	if parent := filepath.Dir(path); parent != path {
		p := filepath.ToSlash(parent)
		resp.ParentPath = &p
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			if hiddenFolder(name) {
				continue
			}
			resp.Folders = append(resp.Folders, api.Entry{
				Name: name,
				Path: filepath.ToSlash(filepath.Join(path, name)),
			})
			continue
		}
		if (req.IncludeImages && project.IsImageFile(name)) ||
			(req.IncludeAudio && isAudioFile(name)) {
			resp.Files = append(resp.Files, api.Entry{
				Name: name,
				Path: filepath.ToSlash(filepath.Join(path, name)),
			})
		}
	}

	sort.Slice(resp.Folders, func(i, j int) bool {
		return strings.ToLower(resp.Folders[i].Name) < strings.ToLower(resp.Folders[j].Name)
	})
	sort.Slice(resp.Files, func(i, j int) bool {
		return strings.ToLower(resp.Files[i].Name) < strings.ToLower(resp.Files[j].Name)
	})
	return resp, nil
}

// quickPaths returns the user's standard media folders, skipping any
// that do not exist on this machine.
func quickPaths() []api.Entry {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	names := []string{"Desktop", "Documents", "Pictures", "Music", "Videos"}
	paths := []api.Entry{{Name: "Home", Path: filepath.ToSlash(home)}}
	for _, name := range names {
		p := filepath.Join(home, name)
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			paths = append(paths, api.Entry{Name: name, Path: filepath.ToSlash(p)})
		}
	}
	return paths
}
