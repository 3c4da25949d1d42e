package cli

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Browser shared-library dependencies per package manager. Playwright's
// bundled Chromium links against these at runtime.
var (
	aptDeps = []string{
		"libxcb-shm0", "libx11-xcb1", "libx11-6", "libxcb1", "libxext6",
		"libxrandr2", "libxcomposite1", "libxcursor1", "libxdamage1", "libxfixes3",
		"libxi6", "libgtk-3-0", "libpangocairo-1.0-0", "libpango-1.0-0", "libatk1.0-0",
		"libcairo-gobject2", "libcairo2", "libgdk-pixbuf-2.0-0", "libxrender1",
		"libasound2", "libfreetype6", "libfontconfig1", "libdbus-1-3", "libnss3",
		"libnspr4", "libatk-bridge2.0-0", "libdrm2", "libxkbcommon0", "libatspi2.0-0",
		"libcups2", "libxshmfence1", "libgbm1",
	}
	dnfDeps = []string{
		"nss", "nspr", "atk", "at-spi2-atk", "cups-libs", "libdrm",
		"libXcomposite", "libXdamage", "libXrandr", "mesa-libgbm", "pango",
		"alsa-lib", "libxkbcommon", "libxcb", "libX11-xcb", "libX11", "libXext",
		"libXcursor", "libXfixes", "libXi", "gtk3", "cairo-gobject",
	}
	yumDeps = []string{
		"nss", "nspr", "atk", "at-spi2-atk", "cups-libs", "libdrm",
		"libXcomposite", "libXdamage", "libXrandr", "mesa-libgbm", "pango",
		"alsa-lib", "libxkbcommon",
	}
)

// Install downloads the Chromium browser binaries via Playwright, optionally
// installing the system libraries first (Linux). A sequence of shell
// invocations with no daemon contact. Returns the process exit code.
func Install(out, errOut io.Writer, withDeps bool) int {
	isLinux := runtime.GOOS == "linux"

	if isLinux {
		if withDeps {
			if code := installSystemDeps(out, errOut); code != 0 {
				return code
			}
		} else {
			fmt.Fprintf(out, "%s Linux detected. If browser fails to launch, run:\n", yellow("⚠"))
			fmt.Fprintln(out, "  agent-browser install --with-deps")
			fmt.Fprintln(out, "  or: npx playwright install-deps chromium")
			fmt.Fprintln(out)
		}
	}

	fmt.Fprintln(out, cyan("Installing Chromium browser..."))
	cmd := exec.Command("npx", "playwright", "install", "chromium")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			fmt.Fprintf(errOut, "%s Failed to install browser\n", errRed("✗"))
			if isLinux {
				fmt.Fprintf(out, "%s Try installing system dependencies first:\n", yellow("Tip:"))
				fmt.Fprintln(out, "  agent-browser install --with-deps")
			}
			return 1
		}
		fmt.Fprintf(errOut, "%s Failed to run npx: %v\n", errRed("✗"), err)
		fmt.Fprintln(errOut, "Make sure Node.js is installed and npx is in your PATH")
		return 1
	}

	fmt.Fprintf(out, "%s Chromium installed successfully\n", green("✓"))
	if isLinux && !withDeps {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%s If you see \"shared library\" errors when running, use:\n", yellow("Note:"))
		fmt.Fprintln(out, "  agent-browser install --with-deps")
	}
	return 0
}

// installSystemDeps detects the package manager and installs the browser's
// shared-library dependencies.
func installSystemDeps(out, errOut io.Writer) int {
	fmt.Fprintln(out, cyan("Installing system dependencies..."))

	var installCmd string
	switch {
	case commandExists("apt-get"):
		installCmd = "sudo apt-get update && sudo apt-get install -y " + strings.Join(aptDeps, " ")
	case commandExists("dnf"):
		installCmd = "sudo dnf install -y " + strings.Join(dnfDeps, " ")
	case commandExists("yum"):
		installCmd = "sudo yum install -y " + strings.Join(yumDeps, " ")
	default:
		fmt.Fprintf(errOut, "%s No supported package manager found (apt-get, dnf, or yum)\n", errRed("✗"))
		return 1
	}

	fmt.Fprintf(out, "Running: %s\n", installCmd)
	cmd := exec.Command("sh", "-c", installCmd) //nolint:gosec // fixed command with fixed package lists
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			fmt.Fprintf(errOut, "%s Failed to install some dependencies. You may need to run manually with sudo.\n", errYellow("⚠"))
		} else {
			fmt.Fprintf(errOut, "%s Could not run install command: %v\n", errYellow("⚠"), err)
		}
		// Non-fatal: continue to browser install like the shell-based flow
		return 0
	}

	fmt.Fprintf(out, "%s System dependencies installed\n", green("✓"))
	return 0
}

func commandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
