// Package protocol defines the wire types exchanged with the daemon: one
// JSON object per line, UTF-8, newline-terminated, one request per
// connection.
package protocol

import (
	"crypto/rand"
	"encoding/json"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Request is a single action request sent to the daemon. Action-specific
// fields are omitted from the wire encoding when unset.
type Request struct {
	ID     string `json:"id"`
	Action string `json:"action"`

	URL      string `json:"url,omitempty"`      // navigate
	Selector string `json:"selector,omitempty"` // click, fill, type, hover, gettext, wait, snapshot scope
	Value    string `json:"value,omitempty"`    // fill
	Text     string `json:"text,omitempty"`     // type
	Key      string `json:"key,omitempty"`      // press
	Path     string `json:"path,omitempty"`     // screenshot
	Script   string `json:"script,omitempty"`   // evaluate

	Interactive bool `json:"interactive,omitempty"` // snapshot
	Compact     bool `json:"compact,omitempty"`     // snapshot
	MaxDepth    int  `json:"maxDepth,omitempty"`    // snapshot

	// Timeout is a pointer so an explicit "wait 0" survives encoding.
	Timeout *uint64 `json:"timeout,omitempty"` // wait, milliseconds
}

// Response is the daemon's reply. Exactly one of Data/Error is meaningful
// depending on Success; a success=false response without an error string is
// a protocol violation handled defensively by the renderer.
type Response struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

var (
	ulidMu      sync.Mutex
	ulidEntropy = ulid.Monotonic(rand.Reader, 0)
)

// NewRequestID generates a request correlation ID.
// Format: "r" + ulid(). Time-derived and opaque; uniqueness is best-effort
// and nothing in the protocol depends on it.
func NewRequestID() string {
	ulidMu.Lock()
	defer ulidMu.Unlock()
	id := ulid.MustNew(ulid.Timestamp(time.Now()), ulidEntropy)
	return "r" + id.String()
}
