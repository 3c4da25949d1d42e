package cli

import (
	"bufio"
	"encoding/json"
	"net"
	"testing"

	"github.com/leonletto/agent-browser/internal/protocol"
	"github.com/leonletto/agent-browser/internal/session"
)

// startMockDaemon listens on the session's socket and serves connections
// with handler: one request line in, one raw response line out. The listener
// is closed when the test ends.
func startMockDaemon(t *testing.T, sess session.Config, handler func(req *protocol.Request) string) {
	t.Helper()

	listener, err := net.Listen("unix", sess.SocketPath())
	if err != nil {
		t.Fatalf("failed to listen on %s: %v", sess.SocketPath(), err)
	}
	t.Cleanup(func() { _ = listener.Close() })

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			go func(conn net.Conn) {
				defer func() { _ = conn.Close() }()

				line, err := bufio.NewReader(conn).ReadBytes('\n')
				if err != nil {
					return
				}
				var req protocol.Request
				if err := json.Unmarshal(line, &req); err != nil {
					return
				}
				_, _ = conn.Write(append([]byte(handler(&req)), '\n'))
			}(conn)
		}
	}()
}

// okHandler echoes a success response with the given data document.
func okHandler(data string) func(*protocol.Request) string {
	return func(*protocol.Request) string {
		if data == "" {
			return `{"success":true}`
		}
		return `{"success":true,"data":` + data + `}`
	}
}
