package backend

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/slidecraft/slidecraft/internal/api"
)

const (
	// streamHandshakeTimeout bounds the WebSocket upgrade
	streamHandshakeTimeout = 10 * time.Second

	// streamReadWait is how long a silent stream stays open before the
	// reader gives up; the backend emits progress lines continuously
	// while a render runs
	streamReadWait = 5 * time.Minute
)

// StreamLogs opens the backend's progress stream for a running
// generation and forwards each line to the channel. The channel is
// closed when the stream ends, whether normally or on error; the
// returned error channel delivers at most one error.
func (c *Client) StreamLogs(ctx context.Context, lines chan<- api.StreamLine) <-chan error {
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		defer close(errc)

		conn, err := c.dialStream(ctx)
		if err != nil {
			errc <- err
			return
		}
		defer func() { _ = conn.Close() }()

		// Close the socket when the caller cancels so ReadJSON unblocks
		done := make(chan struct{})
		defer close(done)
		go func() {
			select {
			case <-ctx.Done():
				_ = conn.Close()
			case <-done:
			}
		}()

		for {
			if err := conn.SetReadDeadline(time.Now().Add(streamReadWait)); err != nil {
				errc <- NewNetworkError("failed to set stream deadline", err)
				return
			}

			var line api.StreamLine
			if err := conn.ReadJSON(&line); err != nil {
				if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) || ctx.Err() != nil {
					return
				}
				errc <- NewNetworkError("progress stream failed", err)
				return
			}

			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
	}()

	return errc
}

// dialStream upgrades the stream route to a WebSocket connection
func (c *Client) dialStream(ctx context.Context) (*websocket.Conn, error) {
	u, err := url.Parse(c.BaseURL + api.RouteGenerateStream)
	if err != nil {
		return nil, NewNetworkError("invalid backend URL", err)
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	}

	dialer := websocket.Dialer{HandshakeTimeout: streamHandshakeTimeout}
	conn, resp, err := dialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		if resp != nil {
			_ = resp.Body.Close()
		}
		return nil, NewNetworkError("failed to open progress stream", err)
	}
	return conn, nil
}

// FallbackCommand is the command line shown when the backend cannot be
// reached, letting the user render the saved document by hand.
func FallbackCommand(generator, filename string) string {
	var b strings.Builder
	b.WriteString(generator)
	b.WriteString(" --config ")
	if strings.ContainsAny(filename, " \t") {
		b.WriteString(`"` + filename + `"`)
	} else {
		b.WriteString(filename)
	}
	return b.String()
}
