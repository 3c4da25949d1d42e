// Package session derives the filesystem addresses (socket, PID file) for a
// named daemon session. Every other component takes a Config rather than
// reading the environment itself, so tests never mutate process state.
package session

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvSession selects the session name; EnvDaemonMarker is set on the spawned
// daemon process so it knows it is running as a daemon.
const (
	EnvSession      = "AGENT_BROWSER_SESSION"
	EnvDaemonMarker = "AGENT_BROWSER_DAEMON"

	// DefaultName is used when AGENT_BROWSER_SESSION is unset or empty.
	DefaultName = "default"
)

// Config identifies one daemon session. Name scopes the socket and PID file
// inside TempDir; two processes with the same Name and TempDir always compute
// identical paths.
type Config struct {
	Name    string
	TempDir string
}

// FromEnv builds a Config from AGENT_BROWSER_SESSION and the system temp
// directory. This is the only place the session environment is read.
func FromEnv() Config {
	name := os.Getenv(EnvSession)
	if name == "" {
		name = DefaultName
	}
	return Config{Name: name, TempDir: os.TempDir()}
}

// SocketPath returns the Unix socket path for this session.
func (c Config) SocketPath() string {
	return filepath.Join(c.TempDir, fmt.Sprintf("agent-browser-%s.sock", c.Name))
}

// PIDPath returns the daemon PID file path for this session.
func (c Config) PIDPath() string {
	return filepath.Join(c.TempDir, fmt.Sprintf("agent-browser-%s.pid", c.Name))
}
