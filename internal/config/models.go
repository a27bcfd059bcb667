package config

// Settings represents the entire user configuration file.
// It stores connection defaults for the builder and execution defaults
// for the backend server.
type Settings struct {
	Version int              `yaml:"version"`
	Backend *BackendSettings `yaml:"backend,omitempty"`
	Server  *ServerSettings  `yaml:"server,omitempty"`
	Browser *BrowserSettings `yaml:"browser,omitempty"`
}

// BackendSettings configures how the builder reaches the backend server.
type BackendSettings struct {
	URL             string `yaml:"url"`                        // Base URL (e.g., "http://localhost:5000")
	AutoDiscover    bool   `yaml:"auto_discover"`              // Enable mDNS discovery when URL is unset
	DiscoverTimeout int    `yaml:"discover_timeout,omitempty"` // mDNS discovery timeout in seconds
}

// ServerSettings configures the backend server itself.
type ServerSettings struct {
	ListenAddr       string `yaml:"listen_addr"`            // Address the HTTP server binds to
	GeneratorCommand string `yaml:"generator_command"`      // Command run to render a slideshow
	WorkDir          string `yaml:"work_dir,omitempty"`     // Directory config files are written to when no output dir is given
	Announce         bool   `yaml:"announce"`               // Register the server via mDNS
	AnnounceName     string `yaml:"announce_name,omitempty"` // Instance name used in the mDNS registration
}

// BrowserSettings configures the remote folder browser defaults.
type BrowserSettings struct {
	FallbackPath string `yaml:"fallback_path"`         // Start path when neither the field nor the images dir is set
	OutputDir    string `yaml:"output_dir,omitempty"`  // Default output directory suggestion
}

// Default connection and execution values.
const (
	DefaultBackendURL       = "http://localhost:5000"
	DefaultListenAddr       = "127.0.0.1:5000"
	DefaultGeneratorCommand = "slidecraft-render"
	DefaultFallbackPath     = "/"
	DefaultDiscoverTimeout  = 5
)

// NewSettings creates a new Settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Backend: &BackendSettings{
			URL:             DefaultBackendURL,
			AutoDiscover:    false,
			DiscoverTimeout: DefaultDiscoverTimeout,
		},
		Server: &ServerSettings{
			ListenAddr:       DefaultListenAddr,
			GeneratorCommand: DefaultGeneratorCommand,
			Announce:         true,
		},
		Browser: &BrowserSettings{
			FallbackPath: DefaultFallbackPath,
		},
	}
}

// BackendURL returns the configured backend URL, falling back to the default.
func (s *Settings) BackendURL() string {
	if s.Backend != nil && s.Backend.URL != "" {
		return s.Backend.URL
	}
	return DefaultBackendURL
}

// GeneratorCommand returns the configured generator command, falling back to the default.
func (s *Settings) GeneratorCommand() string {
	if s.Server != nil && s.Server.GeneratorCommand != "" {
		return s.Server.GeneratorCommand
	}
	return DefaultGeneratorCommand
}

// FallbackBrowsePath returns the configured browser fallback path, falling back to the default.
func (s *Settings) FallbackBrowsePath() string {
	if s.Browser != nil && s.Browser.FallbackPath != "" {
		return s.Browser.FallbackPath
	}
	return DefaultFallbackPath
}
