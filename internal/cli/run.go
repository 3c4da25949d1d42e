package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/leonletto/agent-browser/internal/daemon"
	"github.com/leonletto/agent-browser/internal/session"
)

// Run executes one command invocation end to end: translate the tokens,
// ensure the session's daemon is reachable, send the request, render the
// response. Returns the process exit code. Every error path is terminal;
// retrying is the caller's business (re-invoking the CLI).
func Run(sess session.Config, tokens []string, jsonMode bool, out, errOut io.Writer) int {
	req := Translate(tokens)
	if req == nil {
		name := ""
		if len(tokens) > 0 {
			name = tokens[0]
		}
		fmt.Fprintf(errOut, "%s %s\n", errRed("Unknown command:"), name)
		return 1
	}

	supervisor := daemon.NewSupervisor(sess)
	if err := supervisor.Ensure(); err != nil {
		reportError(out, errOut, err, jsonMode)
		return 1
	}

	resp, err := NewClient(sess).Send(req)
	if err != nil {
		reportError(out, errOut, err, jsonMode)
		return 1
	}

	return Render(out, errOut, resp, jsonMode)
}

// reportError surfaces a supervisor- or transport-level failure. In JSON
// mode it is wrapped into a synthetic Response-shaped document so output
// shape is uniform regardless of the failure layer.
func reportError(out, errOut io.Writer, err error, jsonMode bool) {
	if jsonMode {
		doc, marshalErr := json.Marshal(map[string]any{
			"success": false,
			"error":   err.Error(),
		})
		if marshalErr == nil {
			fmt.Fprintln(out, string(doc))
			return
		}
	}
	fmt.Fprintf(errOut, "%s %v\n", errRed("✗ Error:"), err)
}
