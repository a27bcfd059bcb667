package api

// API routes served by the backend.
const (
	RouteGenerate       = "/api/generate"
	RouteGenerateStream = "/api/generate/stream"
	RouteValidate       = "/api/validate"
	RouteHealth         = "/api/health"
	RouteQuickPaths     = "/api/browse/quick-paths"
	RouteBrowseFolder   = "/api/browse/folder"
)

// GenerateRequest submits a serialized configuration document for rendering.
type GenerateRequest struct {
	DocumentContent string `json:"document_content"`
	Filename        string `json:"filename"`
	OutputDir       string `json:"output_dir"`
}

// GenerateResponse reports the outcome of a generation run.
type GenerateResponse struct {
	Success    bool   `json:"success"`
	OutputFile string `json:"output_file,omitempty"`
	LogFile    string `json:"log_file,omitempty"`
	ConfigPath string `json:"config_path,omitempty"`
	Error      string `json:"error,omitempty"`
}

// ValidateRequest submits a document for server-side validation.
type ValidateRequest struct {
	DocumentContent string `json:"document_content"`
}

// ValidateResponse reports validation findings for a posted document.
type ValidateResponse struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings,omitempty"`
}

// HealthResponse reports backend liveness.
type HealthResponse struct {
	Status    string `json:"status"`
	Generator string `json:"generator,omitempty"`
}

// HealthStatusHealthy is the Status value reported by a live backend.
const HealthStatusHealthy = "healthy"

// Entry is a named filesystem entry (folder or file) with a forward-slash path.
type Entry struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// QuickPathsResponse lists backend-supplied shortcut directories.
type QuickPathsResponse struct {
	Success bool    `json:"success"`
	Paths   []Entry `json:"paths"`
	Error   string  `json:"error,omitempty"`
}

// BrowseRequest asks the backend to list one directory.
type BrowseRequest struct {
	Path          string `json:"path"`
	IncludeImages bool   `json:"include_images,omitempty"`
	IncludeAudio  bool   `json:"include_audio,omitempty"`
}

// BrowseResponse describes one directory listing. ParentPath is nil
// when the listed directory is a filesystem root.
type BrowseResponse struct {
	Success     bool    `json:"success"`
	CurrentPath string  `json:"current_path,omitempty"`
	ParentPath  *string `json:"parent_path"`
	Folders     []Entry `json:"folders,omitempty"`
	Files       []Entry `json:"files,omitempty"`
	Error       string  `json:"error,omitempty"`
}

// StreamLine is one generator output line pushed over the log stream socket.
type StreamLine struct {
	Line string `json:"line"`
}
