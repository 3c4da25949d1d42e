package session

import (
	"path/filepath"
	"testing"
)

func TestPathsAreDeterministic(t *testing.T) {
	a := Config{Name: "default", TempDir: "/tmp"}
	b := Config{Name: "default", TempDir: "/tmp"}

	if a.SocketPath() != b.SocketPath() {
		t.Fatalf("socket paths differ: %s vs %s", a.SocketPath(), b.SocketPath())
	}
	if a.PIDPath() != b.PIDPath() {
		t.Fatalf("PID paths differ: %s vs %s", a.PIDPath(), b.PIDPath())
	}

	// Repeated calls on the same config are stable
	if a.SocketPath() != a.SocketPath() {
		t.Fatal("socket path not stable across calls")
	}
}

func TestPathsScopedBySession(t *testing.T) {
	a := Config{Name: "one", TempDir: "/tmp"}
	b := Config{Name: "two", TempDir: "/tmp"}

	if a.SocketPath() == b.SocketPath() {
		t.Fatal("different sessions must not share a socket path")
	}
	if a.PIDPath() == b.PIDPath() {
		t.Fatal("different sessions must not share a PID file")
	}
}

func TestPathLayout(t *testing.T) {
	c := Config{Name: "work", TempDir: "/tmp"}

	if got, want := c.SocketPath(), filepath.Join("/tmp", "agent-browser-work.sock"); got != want {
		t.Errorf("SocketPath = %s, want %s", got, want)
	}
	if got, want := c.PIDPath(), filepath.Join("/tmp", "agent-browser-work.pid"); got != want {
		t.Errorf("PIDPath = %s, want %s", got, want)
	}
}

func TestFromEnvDefault(t *testing.T) {
	t.Setenv(EnvSession, "")

	c := FromEnv()
	if c.Name != DefaultName {
		t.Errorf("Name = %q, want %q", c.Name, DefaultName)
	}
	if c.TempDir == "" {
		t.Error("TempDir is empty")
	}
}

func TestFromEnvNamed(t *testing.T) {
	t.Setenv(EnvSession, "ci-7")

	c := FromEnv()
	if c.Name != "ci-7" {
		t.Errorf("Name = %q, want %q", c.Name, "ci-7")
	}
}
