// Package browse holds the state of one remote folder browsing session.
//
// The browser never touches the local filesystem. Every listing comes
// from the backend, so the folders on screen are the folders the
// renderer will read, even when the builder runs on another machine.
package browse

import (
	"context"

	"github.com/slidecraft/slidecraft/internal/api"
	"github.com/slidecraft/slidecraft/internal/backend"
	"github.com/slidecraft/slidecraft/internal/project"
)

// Mode selects what a browsing session is picking.
type Mode int

const (
	// PickFolder selects a directory (images, audio or output folder).
	PickFolder Mode = iota
	// PickImage selects an image file inside the images folder.
	PickImage
	// PickAudio inspects audio files; used for soundtrack preview.
	PickAudio
)

// Session is one folder-picking interaction, bound to the form field it
// will fill on accept.
type Session struct {
	Client *backend.Client

	// TargetField is the form field the selection is written to.
	TargetField project.FieldID

	Mode Mode

	// QuickPaths are the backend's shortcut folders, fetched once.
	QuickPaths []api.Entry

	CurrentPath string
	ParentPath  *string
	Folders     []api.Entry
	Files       []api.Entry
}

// StartPath decides where a session opens: the field's current value if
// set, the images folder when picking a file, and the configured
// fallback otherwise.
func StartPath(fieldValue, imagesDir, fallback string, mode Mode) string {
	// An image-mode field holds a file name, not a folder, so its value
	// never becomes the start path.
	if mode != PickImage {
		if v := project.NormalizePath(fieldValue); v != "" {
			return v
		}
	}
	if mode == PickImage || mode == PickAudio {
		if d := project.NormalizePath(imagesDir); d != "" {
			return d
		}
	}
	return fallback
}

// NewSession creates a session rooted at startPath and fetches both the
// quick paths and the first listing.
func NewSession(ctx context.Context, client *backend.Client, field project.FieldID, mode Mode, startPath string) (*Session, error) {
	s := &Session{
		Client:      client,
		TargetField: field,
		Mode:        mode,
	}
	quick, err := client.QuickPaths(ctx)
	if err == nil {
		s.QuickPaths = quick
	}
	// Quick paths are a convenience; a failed fetch only hides the
	// shortcut row while the listing itself still decides success
	if err := s.Enter(ctx, startPath); err != nil {
		return nil, err
	}
	return s, nil
}

// Enter lists the given folder and makes it current. On failure the
// session keeps its previous listing so the user is never stranded in an
// unlistable folder.
func (s *Session) Enter(ctx context.Context, path string) error {
	resp, err := s.Client.BrowseFolder(ctx, api.BrowseRequest{
		Path:          path,
		IncludeImages: s.Mode == PickImage,
		IncludeAudio:  s.Mode == PickAudio,
	})
	if err != nil {
		return err
	}
	s.CurrentPath = resp.CurrentPath
	s.ParentPath = resp.ParentPath
	s.Folders = resp.Folders
	s.Files = resp.Files
	return nil
}

// Up moves to the parent folder. At a filesystem root it is a no-op.
func (s *Session) Up(ctx context.Context) error {
	if s.ParentPath == nil {
		return nil
	}
	return s.Enter(ctx, *s.ParentPath)
}

// AtRoot reports whether the current folder has no parent.
func (s *Session) AtRoot() bool {
	return s.ParentPath == nil
}

// Accept returns the value the session writes to its target field: the
// current folder path in folder mode, the given file name in file mode.
func (s *Session) Accept(selectedFile string) string {
	if s.Mode == PickFolder {
		return s.CurrentPath
	}
	return selectedFile
}
