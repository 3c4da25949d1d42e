// Command agent-browser is a fast browser automation CLI. It drives a
// long-lived daemon that owns the browser context; each invocation sends one
// action over the session's Unix socket and renders the result.
package main

import (
	"fmt"
	"os"
	goruntime "runtime"

	"github.com/spf13/cobra"

	"github.com/leonletto/agent-browser/internal/cli"
	"github.com/leonletto/agent-browser/internal/session"
)

var (
	// Build info (set via ldflags).
	Version = "dev"
	Build   = "unknown"
)

var flagJSON bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "agent-browser",
		Short: "Fast browser automation CLI",
		Long: `agent-browser drives a browser through a long-lived background daemon.

The first command starts the daemon for the current session; subsequent
commands reuse it, so the page keeps its state between invocations.
Sessions are selected with the AGENT_BROWSER_SESSION environment variable.

Examples:
  agent-browser open example.com
  agent-browser snapshot -i
  agent-browser click @e2`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output raw protocol JSON")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("agent-browser v{{.Version}} (build: " + Build + ", " + goruntime.Version() + ")\n")

	// Page actions
	rootCmd.AddCommand(actionCmd("open <url>", "Navigate to URL", []string{"goto", "navigate"}))
	rootCmd.AddCommand(actionCmd("click <selector>", "Click element (@ref from snapshot)", nil))
	rootCmd.AddCommand(actionCmd("fill <selector> <text>", "Fill input", nil))
	rootCmd.AddCommand(actionCmd("type <selector> <text>", "Type text", nil))
	rootCmd.AddCommand(actionCmd("hover <selector>", "Hover element", nil))
	rootCmd.AddCommand(actionCmd("press <key>", "Press keyboard key", nil))
	rootCmd.AddCommand(actionCmd("wait <ms|selector>", "Wait for time or element", nil))
	rootCmd.AddCommand(actionCmd("eval <script>", "Evaluate JavaScript", nil))
	rootCmd.AddCommand(actionCmd("back", "Go back in history", nil))
	rootCmd.AddCommand(actionCmd("forward", "Go forward in history", nil))
	rootCmd.AddCommand(actionCmd("reload", "Reload the page", nil))

	// Page inspection
	rootCmd.AddCommand(snapshotCmd())
	rootCmd.AddCommand(actionCmd("screenshot [path]", "Take screenshot", nil))
	rootCmd.AddCommand(actionCmd("get <text|url|title> [selector]", "Get text content, URL, or title", nil))

	// Lifecycle
	rootCmd.AddCommand(actionCmd("close", "Close browser", []string{"quit", "exit"}))
	rootCmd.AddCommand(installCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// actionCmd builds a daemon-backed command. Flag parsing is disabled so
// tokens reach the translator verbatim; the translator owns all argument
// validation and flag scanning.
func actionCmd(use, short string, aliases []string) *cobra.Command {
	return &cobra.Command{
		Use:                use,
		Short:              short,
		Aliases:            aliases,
		DisableFlagParsing: true,
		RunE:               runAction,
	}
}

func snapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot [flags]",
		Short: "Get accessibility tree with refs",
		Long: `Get the page's accessibility tree with element refs.

Refs (@e1, @e2, ...) can be passed to click, fill, type, and hover.

Flags:
  -i, --interactive       Only interactive elements
  -c, --compact           Remove empty structural elements
  -d, --depth <n>         Limit tree depth
  -s, --selector <sel>    Scope to CSS selector`,
		DisableFlagParsing: true,
		RunE:               runAction,
	}
}

// runAction dispatches one action through translate → ensure → send →
// render. --json and --help are recognized at any token position; --json is
// stripped before translation.
func runAction(cmd *cobra.Command, args []string) error {
	jsonMode := flagJSON
	tokens := []string{cmd.Name()}
	for _, arg := range args {
		switch arg {
		case "--json":
			jsonMode = true
		case "--help", "-h":
			return cmd.Help()
		default:
			tokens = append(tokens, arg)
		}
	}

	code := cli.Run(session.FromEnv(), tokens, jsonMode, os.Stdout, os.Stderr)
	if code != 0 {
		os.Exit(code)
	}
	return nil
}

func installCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install browser binaries",
		Long: `Install the Chromium browser binaries used by the daemon.

On Linux, --with-deps also installs the system libraries the browser
links against (requires sudo). Runs entirely locally; the daemon is not
contacted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			withDeps, _ := cmd.Flags().GetBool("with-deps")
			if code := cli.Install(os.Stdout, os.Stderr, withDeps); code != 0 {
				os.Exit(code)
			}
			return nil
		},
	}
	cmd.Flags().BoolP("with-deps", "d", false, "Also install system dependencies (Linux)")
	return cmd
}
