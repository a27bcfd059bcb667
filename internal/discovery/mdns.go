// Package discovery finds generation backends on the local network via
// mDNS, and lets the backend announce itself.
package discovery

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/grandcat/zeroconf"
)

const (
	// ServiceType is the mDNS service type announced by generation backends
	ServiceType = "_slidecraft._tcp"

	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."

	// DefaultScanTimeout is the default timeout for backend discovery
	DefaultScanTimeout = 5 * time.Second
)

// Backend is one discovered generation backend
type Backend struct {
	// Name is the announced instance name (e.g., "studio-pc")
	Name string

	// Host is the backend's address, IP preferred over hostname
	Host string

	// Port is the backend's HTTP port
	Port int
}

// URL returns the backend's HTTP base URL
func (b *Backend) URL() string {
	return fmt.Sprintf("http://%s:%d", b.Host, b.Port)
}

// Scanner handles mDNS backend discovery
type Scanner struct {
	// Timeout is the maximum time to wait for discovery
	Timeout time.Duration
}

// NewScanner creates a new mDNS scanner with default settings
func NewScanner() *Scanner {
	return &Scanner{
		Timeout: DefaultScanTimeout,
	}
}

// Scan discovers all generation backends on the local network
func (s *Scanner) Scan(ctx context.Context) ([]*Backend, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	entries := make(chan *zeroconf.ServiceEntry)
	backends := make([]*Backend, 0)
	done := make(chan struct{})

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	go func() {
		defer close(done)
		for entry := range entries {
			if b := parseServiceEntry(entry); b != nil {
				backends = append(backends, b)
			}
		}
	}()

	if err := resolver.Browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	// Browse closes the entries channel when the context ends
	<-ctx.Done()
	<-done

	return backends, nil
}

// First returns the first backend found, or an error when none answers
// within the timeout
func (s *Scanner) First(ctx context.Context) (*Backend, error) {
	backends, err := s.Scan(ctx)
	if err != nil {
		return nil, err
	}
	if len(backends) == 0 {
		return nil, fmt.Errorf("no generation backend found within %s", s.Timeout)
	}
	return backends[0], nil
}

// parseServiceEntry converts an mDNS service entry to a Backend
func parseServiceEntry(entry *zeroconf.ServiceEntry) *Backend {
	if entry == nil || entry.Port == 0 {
		return nil
	}

	host := strings.TrimSuffix(entry.HostName, ".")
	if len(entry.AddrIPv4) > 0 {
		host = entry.AddrIPv4[0].String()
	}
	if host == "" {
		return nil
	}

	return &Backend{
		Name: entry.Instance,
		Host: host,
		Port: entry.Port,
	}
}

// Announce registers the backend as an mDNS service. The returned stop
// function withdraws the announcement.
func Announce(instance string, port int) (func(), error) {
	server, err := zeroconf.Register(instance, ServiceType, ServiceDomain, port, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to register mDNS service: %w", err)
	}
	return server.Shutdown, nil
}
