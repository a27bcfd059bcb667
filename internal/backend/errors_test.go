package backend

import (
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"
)

func TestBackendErrorMessage(t *testing.T) {
	err := NewHTTPError(503, "backend overloaded")
	if got := err.Error(); got != "HTTP Error: backend overloaded" {
		t.Errorf("Error() = %q", got)
	}

	wrapped := NewParseError("bad response", errors.New("unexpected end of JSON input"))
	if got := wrapped.Error(); got != "Parse Error: bad response (caused by: unexpected end of JSON input)" {
		t.Errorf("Error() = %q", got)
	}
}

func TestBackendErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := NewNetworkError("request failed", inner)
	if !errors.Is(err, inner) {
		t.Error("Unwrap should expose the underlying error")
	}
}

func TestClassifyConnectionRefused(t *testing.T) {
	opErr := &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}
	err := NewNetworkError("backend unreachable", opErr)
	if err.Type != ErrTypeConnectionRefused {
		t.Errorf("type = %v, want ErrTypeConnectionRefused", err.Type)
	}
	if !IsUnreachable(err) {
		t.Error("connection refused should classify as unreachable")
	}
}

func TestClassifyDNSError(t *testing.T) {
	dnsErr := &net.DNSError{Name: "backend.local", Err: "no such host"}
	err := NewNetworkError("backend unreachable", dnsErr)
	if err.Type != ErrTypeDNS {
		t.Errorf("type = %v, want ErrTypeDNS", err.Type)
	}
}

func TestIsUnreachableIgnoresOtherErrors(t *testing.T) {
	if IsUnreachable(NewRemoteError("invalid document")) {
		t.Error("remote rejection is not unreachable")
	}
	if IsUnreachable(fmt.Errorf("plain error")) {
		t.Error("plain errors are not unreachable")
	}
}

func TestIsRemoteError(t *testing.T) {
	if !IsRemoteError(NewRemoteError("invalid document")) {
		t.Error("remote error not recognized")
	}
	if IsRemoteError(NewHTTPError(500, "oops")) {
		t.Error("HTTP error misclassified as remote")
	}
}
