package cli

import (
	"os"

	"golang.org/x/term"
)

// ANSI styling, applied only when the relevant stream is a terminal so
// piped and redirected output stays clean.

var (
	stdoutIsTerminal = term.IsTerminal(int(os.Stdout.Fd()))
	stderrIsTerminal = term.IsTerminal(int(os.Stderr.Fd()))
)

func styled(enabled bool, code, s string) string {
	if !enabled {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

func green(s string) string  { return styled(stdoutIsTerminal, "32", s) }
func bold(s string) string   { return styled(stdoutIsTerminal, "1", s) }
func dim(s string) string    { return styled(stdoutIsTerminal, "2", s) }
func cyan(s string) string   { return styled(stdoutIsTerminal, "36", s) }
func yellow(s string) string { return styled(stdoutIsTerminal, "33", s) }

func errRed(s string) string    { return styled(stderrIsTerminal, "31", s) }
func errYellow(s string) string { return styled(stderrIsTerminal, "33", s) }
