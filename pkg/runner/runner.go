// Package runner executes the external command lines the tool is built
// around (gcloud and kubectl invocations), capturing their combined output.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Runner executes an external command line and returns its combined
// standard output and standard error as text.
type Runner interface {
	Run(ctx context.Context, command string) (string, error)
}

// Shell runs command lines through the system shell, the same way an
// operator would type them. A non-zero exit status is not treated as an
// error: the control-plane tools report problems in their output, and
// downstream parsers surface them as empty or malformed results. Run only
// returns an error when the command could not be executed at all (shell
// missing, context canceled).
type Shell struct {
	// Echo writes each command's captured output to Out as it completes.
	Echo bool

	// Out receives echoed output. Defaults to os.Stdout.
	Out io.Writer
}

// Run executes the given command line and returns its merged output.
func (s *Shell) Run(ctx context.Context, command string) (string, error) {
	start := time.Now()
	tool := commandTool(command)

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	err := cmd.Run()
	commandDuration.WithLabelValues(tool).Observe(time.Since(start).Seconds())

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			commandTotal.WithLabelValues(tool, "error").Inc()
			return "", fmt.Errorf("running %q: %w", command, err)
		}
		// Exit status is deliberately ignored; the captured output is
		// the only failure channel the downstream parsers look at.
		slog.Debug("command exited non-zero", slog.String("command", command), slog.String("error", err.Error()))
	}
	commandTotal.WithLabelValues(tool, "ok").Inc()

	if s.Echo {
		out := s.Out
		if out == nil {
			out = os.Stdout
		}
		fmt.Fprintln(out, buf.String())
	}
	return buf.String(), nil
}

// commandTool extracts the leading token of a command line for metric labels.
func commandTool(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return "unknown"
	}
	return fields[0]
}
