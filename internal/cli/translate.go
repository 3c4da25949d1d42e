// Package cli implements the client side of the agent-browser CLI: token
// translation, the socket transport, response rendering, and the install
// workflow.
package cli

import (
	"strconv"
	"strings"

	"github.com/leonletto/agent-browser/internal/protocol"
)

// Translate maps a sequence of command tokens to an action request, or nil
// when the primary token is unrecognized or a required positional argument
// is missing. Each request carries a fresh correlation ID.
func Translate(tokens []string) *protocol.Request {
	if len(tokens) == 0 {
		return nil
	}

	cmd := tokens[0]
	rest := tokens[1:]
	req := &protocol.Request{ID: protocol.NewRequestID()}

	switch cmd {
	case "open", "goto", "navigate":
		if len(rest) == 0 {
			return nil
		}
		req.Action = "navigate"
		req.URL = normalizeURL(rest[0])

	case "click":
		if len(rest) == 0 {
			return nil
		}
		req.Action = "click"
		req.Selector = rest[0]

	case "fill":
		if len(rest) == 0 {
			return nil
		}
		req.Action = "fill"
		req.Selector = rest[0]
		req.Value = strings.Join(rest[1:], " ")

	case "type":
		if len(rest) == 0 {
			return nil
		}
		req.Action = "type"
		req.Selector = rest[0]
		req.Text = strings.Join(rest[1:], " ")

	case "hover":
		if len(rest) == 0 {
			return nil
		}
		req.Action = "hover"
		req.Selector = rest[0]

	case "snapshot":
		req.Action = "snapshot"
		parseSnapshotFlags(req, rest)

	case "screenshot":
		req.Action = "screenshot"
		if len(rest) > 0 {
			req.Path = rest[0]
		}

	case "close", "quit", "exit":
		req.Action = "close"

	case "get":
		if len(rest) == 0 {
			return nil
		}
		switch rest[0] {
		case "text":
			if len(rest) < 2 {
				return nil
			}
			req.Action = "gettext"
			req.Selector = rest[1]
		case "url":
			req.Action = "url"
		case "title":
			req.Action = "title"
		default:
			return nil
		}

	case "press":
		if len(rest) == 0 {
			return nil
		}
		req.Action = "press"
		req.Key = rest[0]

	case "wait":
		if len(rest) == 0 {
			return nil
		}
		req.Action = "wait"
		if ms, err := strconv.ParseUint(rest[0], 10, 64); err == nil {
			req.Timeout = &ms
		} else {
			req.Selector = rest[0]
		}

	case "back":
		req.Action = "back"

	case "forward":
		req.Action = "forward"

	case "reload":
		req.Action = "reload"

	case "eval":
		req.Action = "evaluate"
		req.Script = strings.Join(rest, " ")

	default:
		return nil
	}

	return req
}

// normalizeURL prepends https:// when the URL has no http prefix, so bare
// hostnames work ("open example.com").
func normalizeURL(url string) string {
	if strings.HasPrefix(url, "http") {
		return url
	}
	return "https://" + url
}

// parseSnapshotFlags scans every token position independently, so flags may
// appear in any order. Unrecognized flags are silently ignored; value flags
// consume the following token.
func parseSnapshotFlags(req *protocol.Request, args []string) {
	for i, arg := range args {
		switch arg {
		case "-i", "--interactive":
			req.Interactive = true
		case "-c", "--compact":
			req.Compact = true
		case "-d", "--depth":
			if i+1 < len(args) {
				if n, err := strconv.Atoi(args[i+1]); err == nil {
					req.MaxDepth = n
				}
			}
		case "-s", "--selector":
			if i+1 < len(args) {
				req.Selector = args[i+1]
			}
		}
	}
}
