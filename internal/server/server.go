package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/slidecraft/slidecraft/internal/api"
	"github.com/slidecraft/slidecraft/internal/discovery"
	"github.com/slidecraft/slidecraft/internal/logging"
)

// Config holds the server configuration
type Config struct {
	ListenAddr       string // Address the HTTP server binds to
	GeneratorCommand string // Renderer executable
	WorkDir          string // Where config files land when no output dir is given
	Announce         bool   // Register via mDNS
	AnnounceName     string // mDNS instance name (defaults to the hostname)
	LogLevel         string
}

// Server is the generation backend
type Server struct {
	config  *Config
	runner  *Runner
	workDir string
}

// New creates a new Server instance
func New(config *Config) (*Server, error) {
	if err := logging.Initialize(config.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	workDir := config.WorkDir
	if workDir == "" {
		workDir = os.TempDir()
	}

	return &Server{
		config:  config,
		runner:  NewRunner(config.GeneratorCommand),
		workDir: workDir,
	}, nil
}

// Router builds the HTTP route table
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get(api.RouteHealth, s.handleHealth)
	r.Get(api.RouteQuickPaths, s.handleQuickPaths)
	r.Post(api.RouteBrowseFolder, s.handleBrowseFolder)
	r.Post(api.RouteValidate, s.handleValidate)
	r.Post(api.RouteGenerate, s.handleGenerate)
	r.Get(api.RouteGenerateStream, s.handleGenerateStream)

	return r
}

// requestLogger logs every served request with its status and duration
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		logging.LogHTTPRequest(r.RemoteAddr, r.Method, r.URL.Path, ww.Status(), time.Since(start))
	})
}

// Start runs the server and blocks until a shutdown signal arrives
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpServer := &http.Server{
		Addr:    s.config.ListenAddr,
		Handler: s.Router(),
	}

	if s.config.Announce {
		if shutdown, err := s.announce(); err != nil {
			logging.Warn("mDNS announcement failed", zap.Error(err))
		} else {
			defer shutdown()
		}
	}

	logging.Info("backend listening",
		zap.String("addr", s.config.ListenAddr),
		zap.String("generator", s.config.GeneratorCommand),
		zap.String("work_dir", s.workDir),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logging.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	logging.Sync()
	return err
}

// announce registers the backend via mDNS so builders can discover it
func (s *Server) announce() (func(), error) {
	name := s.config.AnnounceName
	if name == "" {
		host, err := os.Hostname()
		if err != nil {
			host = "slidecraft"
		}
		name = host
	}

	port := listenPort(s.config.ListenAddr)
	shutdown, err := discovery.Announce(name, port)
	if err != nil {
		return nil, err
	}
	logging.Info("announced via mDNS",
		zap.String("instance", name),
		zap.Int("port", port),
	)
	return shutdown, nil
}

// listenPort extracts the port from a listen address like ":5000" or
// "0.0.0.0:5000", defaulting to 5000
func listenPort(addr string) int {
	_, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return 5000
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 {
		return 5000
	}
	return port
}
