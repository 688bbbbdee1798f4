// Package command runs external tools synchronously and captures their output.
//
// Output is decoded leniently: invalid UTF-8 sequences become U+FFFD instead
// of failing the call, since file and track names in media containers are not
// always valid UTF-8.
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// Result captures one finished process.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// StdoutText returns stdout decoded with invalid bytes replaced.
func (r Result) StdoutText() string {
	return DecodeLenient(r.Stdout)
}

// StderrText returns stderr decoded with invalid bytes replaced.
func (r Result) StderrText() string {
	return DecodeLenient(r.Stderr)
}

// Succeeded reports a zero exit status.
func (r Result) Succeeded() bool {
	return r.ExitCode == 0
}

// Executor abstracts command execution for testability. A non-zero exit is
// reported through Result.ExitCode; the error is reserved for failures to run
// the process at all.
type Executor interface {
	Run(ctx context.Context, binary string, args []string) (Result, error)
}

// ExecExecutor runs commands with os/exec. No timeout is applied; the
// context only ends a call on cancellation.
type ExecExecutor struct{}

// Run executes binary and waits for it to exit.
func (ExecExecutor) Run(ctx context.Context, binary string, args []string) (Result, error) {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err == nil {
		return result, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, fmt.Errorf("run %s: %w", binary, ctxErr)
	}
	return result, fmt.Errorf("run %s: %w", binary, err)
}

// DecodeLenient converts raw tool output to a string, replacing invalid UTF-8.
func DecodeLenient(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	decoded, err := unicode.UTF8.NewDecoder().Bytes(raw)
	if err != nil {
		return strings.ToValidUTF8(string(raw), "�")
	}
	return string(decoded)
}

// Line renders binary and args as a single shell-like command line. Arguments
// are joined with spaces and not quoted.
func Line(binary string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, binary)
	parts = append(parts, args...)
	return strings.Join(parts, " ")
}
