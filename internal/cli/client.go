package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/leonletto/agent-browser/internal/protocol"
	"github.com/leonletto/agent-browser/internal/session"
)

// Default socket deadlines. Writes are small and local; reads may wait on a
// slow page action, so the read deadline bounds the worst-case wall-clock
// time of a command.
const (
	DefaultReadTimeout  = 30 * time.Second
	DefaultWriteTimeout = 5 * time.Second
)

// Client sends one request per connection to the daemon's Unix socket and
// reads exactly one newline-terminated response.
type Client struct {
	socketPath   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// NewClient creates a client addressing the session's socket.
func NewClient(sess session.Config) *Client {
	return &Client{
		socketPath:   sess.SocketPath(),
		ReadTimeout:  DefaultReadTimeout,
		WriteTimeout: DefaultWriteTimeout,
	}
}

// Send connects, writes the request as a single JSON line, and reads one
// response line. Connection, send, and receive failures are each surfaced
// once; nothing is retried at this layer.
func (c *Client) Send(req *protocol.Request) (*protocol.Response, error) {
	conn, err := net.Dial("unix", c.socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}
	defer func() { _ = conn.Close() }()

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	payload = append(payload, '\n')

	if err := conn.SetWriteDeadline(time.Now().Add(c.WriteTimeout)); err != nil {
		return nil, fmt.Errorf("failed to set write deadline: %w", err)
	}
	if _, err := conn.Write(payload); err != nil {
		return nil, fmt.Errorf("failed to send: %w", err)
	}

	if err := conn.SetReadDeadline(time.Now().Add(c.ReadTimeout)); err != nil {
		return nil, fmt.Errorf("failed to set read deadline: %w", err)
	}
	line, err := bufio.NewReader(conn).ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read: %w", err)
	}

	var resp protocol.Response
	if err := json.Unmarshal(line, &resp); err != nil {
		return nil, fmt.Errorf("invalid response %q: %w", string(line), err)
	}

	return &resp, nil
}
