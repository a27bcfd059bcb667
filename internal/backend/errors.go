package backend

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"syscall"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeNetwork indicates a network-level error (connection refused, timeout, etc.)
	ErrTypeNetwork ErrorType = iota
	// ErrTypeHTTP indicates an HTTP-level error (non-200 status code)
	ErrTypeHTTP
	// ErrTypeParse indicates a parsing error (malformed JSON, invalid response)
	ErrTypeParse
	// ErrTypeRemote indicates the backend completed the request but reported failure
	ErrTypeRemote
	// ErrTypeTimeout indicates a request timeout
	ErrTypeTimeout
	// ErrTypeConnectionRefused indicates the backend refused the connection
	ErrTypeConnectionRefused
	// ErrTypeDNS indicates a DNS resolution failure
	ErrTypeDNS
	// ErrTypeUnknown indicates an unknown or unexpected error
	ErrTypeUnknown
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeParse:
		return "Parse Error"
	case ErrTypeRemote:
		return "Backend Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeConnectionRefused:
		return "Connection Refused"
	case ErrTypeDNS:
		return "DNS Error"
	case ErrTypeUnknown:
		return "Unknown Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// BackendError represents an error that occurred while talking to the
// generation backend
type BackendError struct {
	Type       ErrorType // Category of error
	Message    string    // Human-readable error message
	StatusCode int       // HTTP status code (if applicable)
	Err        error     // Underlying error (if any)
}

// Error implements the error interface
func (e *BackendError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *BackendError) Unwrap() error {
	return e.Err
}

// classifyNetworkError analyzes a transport error and assigns a more
// specific error type
func classifyNetworkError(err error) *BackendError {
	if err == nil {
		return nil
	}

	if os.IsTimeout(err) {
		return &BackendError{
			Type:    ErrTypeTimeout,
			Message: "Request timed out",
			Err:     err,
		}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &BackendError{
			Type:    ErrTypeDNS,
			Message: fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name),
			Err:     err,
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if errors.Is(opErr.Err, syscall.ECONNREFUSED) {
			return &BackendError{
				Type:    ErrTypeConnectionRefused,
				Message: "Backend refused connection",
				Err:     err,
			}
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		// Recursively classify the underlying error
		return classifyNetworkError(urlErr.Err)
	}

	return &BackendError{
		Type:    ErrTypeNetwork,
		Message: "Network error occurred",
		Err:     err,
	}
}

// NewNetworkError creates a network-level error with automatic classification
func NewNetworkError(message string, err error) *BackendError {
	classified := classifyNetworkError(err)
	if classified != nil {
		classified.Message = message
		return classified
	}
	return &BackendError{
		Type:    ErrTypeNetwork,
		Message: message,
		Err:     err,
	}
}

// NewHTTPError creates an HTTP-level error
func NewHTTPError(statusCode int, message string) *BackendError {
	return &BackendError{
		Type:       ErrTypeHTTP,
		Message:    message,
		StatusCode: statusCode,
	}
}

// NewParseError creates a parsing error
func NewParseError(message string, err error) *BackendError {
	return &BackendError{
		Type:    ErrTypeParse,
		Message: message,
		Err:     err,
	}
}

// NewRemoteError creates an error for a request the backend received but
// rejected
func NewRemoteError(message string) *BackendError {
	return &BackendError{
		Type:    ErrTypeRemote,
		Message: message,
	}
}

// IsUnreachable checks if an error means the backend could not be
// reached at all (as opposed to reached but failing)
func IsUnreachable(err error) bool {
	var be *BackendError
	if errors.As(err, &be) {
		return be.Type == ErrTypeNetwork ||
			be.Type == ErrTypeTimeout ||
			be.Type == ErrTypeConnectionRefused ||
			be.Type == ErrTypeDNS
	}
	return false
}

// IsRemoteError checks if an error is a rejection reported by the backend
func IsRemoteError(err error) bool {
	var be *BackendError
	if errors.As(err, &be) {
		return be.Type == ErrTypeRemote
	}
	return false
}
