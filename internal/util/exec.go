package util

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

const DefaultCmdTimeout = 2 * time.Second

// SafeCmdExecution runs a root owned, non world writable executable and
// returns its trimmed stdout.
func SafeCmdExecution(executable string, args []string, timeout time.Duration) (string, error) {
	if _, err := CheckFilePermissionsForExecution(executable); err != nil {
		return "", fmt.Errorf("cannot execute %s: %w", executable, err)
	}

	if timeout <= 0 {
		timeout = DefaultCmdTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, executable, args...)
	out, err := cmd.Output()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return "", fmt.Errorf("command timed out after %s: %s", timeout, executable)
	}
	if err != nil {
		return "", fmt.Errorf("command %s failed: %w", executable, err)
	}

	return strings.TrimSpace(string(out)), nil
}

// ReplacePlaceholder substitutes %name% with value in every argument.
func ReplacePlaceholder(args []string, name string, value string) []string {
	result := make([]string, len(args))
	for idx, arg := range args {
		result[idx] = strings.ReplaceAll(arg, "%"+name+"%", value)
	}
	return result
}
