package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/leonletto/agent-browser/internal/protocol"
)

// Render writes the response to out (or failures to errOut) and returns the
// process exit code: 0 for success, 1 otherwise.
//
// Machine-readable mode re-emits the protocol Response verbatim. Human mode
// renders the first matching payload shape: different actions return
// different fields, and exactly one branch fires, in priority order.
func Render(out, errOut io.Writer, resp *protocol.Response, jsonMode bool) int {
	if jsonMode {
		encoded, err := json.Marshal(resp)
		if err != nil {
			fmt.Fprintf(errOut, "failed to encode response: %v\n", err)
			return 1
		}
		fmt.Fprintln(out, string(encoded))
		if resp.Success {
			return 0
		}
		return 1
	}

	if !resp.Success {
		msg := resp.Error
		if msg == "" {
			// success=false without an error string is a protocol
			// violation; don't fail to render over it
			msg = "Unknown error"
		}
		fmt.Fprintf(errOut, "%s %s\n", errRed("✗ Error:"), msg)
		return 1
	}

	renderData(out, resp.Data)
	return 0
}

// renderData renders a successful payload. Null data renders nothing.
func renderData(out io.Writer, data json.RawMessage) {
	if len(data) == 0 || string(data) == "null" {
		return
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		// Non-object payload, nothing to inspect
		return
	}

	url, hasURL := asString(fields, "url")
	title, hasTitle := asString(fields, "title")

	switch {
	case hasURL && hasTitle:
		fmt.Fprintf(out, "%s %s\n", green("✓"), bold(title))
		fmt.Fprintf(out, "%s\n", dim("  "+url))

	case hasURL:
		fmt.Fprintln(out, url)

	default:
		if snapshot, ok := asString(fields, "snapshot"); ok {
			fmt.Fprintln(out, snapshot)
			return
		}
		if hasTitle {
			fmt.Fprintln(out, title)
			return
		}
		if text, ok := asString(fields, "text"); ok {
			fmt.Fprintln(out, text)
			return
		}
		if result, ok := fields["result"]; ok {
			pretty, err := json.MarshalIndent(result, "", "  ")
			if err == nil {
				fmt.Fprintln(out, string(pretty))
			}
			return
		}
		if _, ok := fields["closed"]; ok {
			fmt.Fprintf(out, "%s Browser closed\n", green("✓"))
			return
		}
		fmt.Fprintf(out, "%s Done\n", green("✓"))
	}
}

// asString returns the field only when present and a string; payloads with
// non-string values fall through to lower-priority branches.
func asString(fields map[string]any, key string) (string, bool) {
	v, ok := fields[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
