package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/slidecraft/slidecraft/internal/api"
	"github.com/slidecraft/slidecraft/internal/logging"
	"github.com/slidecraft/slidecraft/internal/project"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// handleHealth reports liveness and the configured renderer command
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.HealthResponse{
		Status:    api.HealthStatusHealthy,
		Generator: s.runner.Command,
	})
}

// handleQuickPaths lists the standard media folders of this machine
func (s *Server) handleQuickPaths(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.QuickPathsResponse{
		Success: true,
		Paths:   quickPaths(),
	})
}

// handleBrowseFolder lists one directory
func (s *Server) handleBrowseFolder(w http.ResponseWriter, r *http.Request) {
	var req api.BrowseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, api.BrowseResponse{Success: false, Error: "invalid request body"})
		return
	}
	if req.Path == "" {
		writeJSON(w, http.StatusBadRequest, api.BrowseResponse{Success: false, Error: "path is required"})
		return
	}

	resp, err := listFolder(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, api.BrowseResponse{Success: false, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleValidate checks a document against this machine's filesystem
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req api.ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, api.ValidateResponse{Valid: false, Errors: []string{"invalid request body"}})
		return
	}
	writeJSON(w, http.StatusOK, validateDocument(req.DocumentContent))
}

// handleGenerate writes the posted document to disk and runs the
// renderer, blocking until it finishes
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req api.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, api.GenerateResponse{Success: false, Error: "invalid request body"})
		return
	}
	if strings.TrimSpace(req.DocumentContent) == "" {
		writeJSON(w, http.StatusBadRequest, api.GenerateResponse{Success: false, Error: "document_content is required"})
		return
	}
	if s.runner.Busy() {
		writeJSON(w, http.StatusConflict, api.GenerateResponse{Success: false, Error: "a generation is already in progress"})
		return
	}

	configPath, err := s.writeDocument(req)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, api.GenerateResponse{Success: false, Error: err.Error()})
		return
	}

	result, err := s.runner.Run(r.Context(), configPath)
	logging.LogGeneration(configPath, resultOutput(result), err)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, api.GenerateResponse{
			Success:    false,
			ConfigPath: filepath.ToSlash(configPath),
			Error:      err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, api.GenerateResponse{
		Success:    true,
		OutputFile: result.OutputFile,
		LogFile:    result.LogFile,
		ConfigPath: filepath.ToSlash(configPath),
	})
}

func resultOutput(r *RunResult) string {
	if r == nil {
		return ""
	}
	return r.OutputFile
}

// writeDocument saves the posted document where the renderer will read
// it: the requested output directory, or the server work directory when
// none is given.
func (s *Server) writeDocument(req api.GenerateRequest) (string, error) {
	name := sanitizeFilename(req.Filename)
	if name == "" {
		name = "slideshow.yaml"
	}

	dir := filepath.FromSlash(project.NormalizePath(req.OutputDir))
	if dir == "" {
		dir = s.workDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create config directory: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(req.DocumentContent), 0o644); err != nil {
		return "", fmt.Errorf("cannot write config file: %w", err)
	}
	return path, nil
}

// sanitizeFilename strips any path components so a posted filename can
// never escape the target directory.
func sanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	name = filepath.Base(filepath.FromSlash(strings.ReplaceAll(name, `\`, "/")))
	if name == "." || name == string(filepath.Separator) {
		return ""
	}
	if name != "" && !strings.HasSuffix(strings.ToLower(name), ".yaml") && !strings.HasSuffix(strings.ToLower(name), ".yml") {
		name += ".yaml"
	}
	return name
}

var upgrader = websocket.Upgrader{
	HandshakeTimeout: 10 * time.Second,
	// The builder may run on another machine on the LAN
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleGenerateStream upgrades to WebSocket and relays renderer output
// lines until the client disconnects
func (s *Server) handleGenerateStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn("stream upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}
	defer func() { _ = conn.Close() }()

	lines := s.runner.Subscribe()
	defer s.runner.Unsubscribe(lines)

	logging.Info("progress stream opened", zap.String("remote_addr", r.RemoteAddr))

	// Drain client frames so close messages are processed
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case line := <-lines:
			if err := conn.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
				return
			}
			if err := conn.WriteJSON(line); err != nil {
				logging.Debug("progress stream closed", zap.Error(err))
				return
			}
		case <-r.Context().Done():
			return
		}
	}
}
