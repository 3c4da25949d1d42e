package daemon

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadPIDFile reads the daemon process ID from the specified file. The PID
// file is owned and written by the daemon; the client only reads it.
func ReadPIDFile(path string) (int, error) {
	content, err := os.ReadFile(path) //nolint:gosec // G304 - path derived from session config
	if err != nil {
		// Return error without wrapping to preserve os.IsNotExist check
		return 0, err
	}

	pidStr := strings.TrimSpace(string(content))
	pid, err := strconv.Atoi(pidStr)
	if err != nil {
		return 0, fmt.Errorf("invalid PID in file: %s", pidStr)
	}

	return pid, nil
}
