package utils

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CommandFunc matches RunCommandGetOutput so adapters can swap in a fake.
type CommandFunc func(ctx context.Context, name string, args ...string) (string, error)

// RunCommandGetOutput runs name once and returns its trimmed stdout.
// A missing binary is reported before anything is executed.
func RunCommandGetOutput(ctx context.Context, name string, args ...string) (string, error) {
	if _, err := exec.LookPath(name); err != nil {
		return "", fmt.Errorf("command '%s' not available: %w", name, err)
	}

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("command '%s %s' failed: %w; stderr: %s",
			name, strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}

	return strings.TrimSpace(stdout.String()), nil
}
