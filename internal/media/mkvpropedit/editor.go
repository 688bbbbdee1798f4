package mkvpropedit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"mkvdefault/internal/logging"
	"mkvdefault/internal/media/command"
	"mkvdefault/internal/tracks"
)

// ErrEditFailed marks a track edit that ran but exited non-zero, or could not
// be started.
var ErrEditFailed = errors.New("mkvpropedit edit failed")

// EditResult reports one attempted track edit.
type EditResult struct {
	TrackID   int
	Type      tracks.Type
	Operation tracks.Operation
	Selector  string
	Args      []string
	DryRun    bool
	ExitCode  int
	Output    string
	Err       error
}

// Failed reports whether the edit was attempted and did not succeed.
func (r EditResult) Failed() bool {
	return r.Err != nil
}

// Option configures the editor.
type Option func(*Editor)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec command.Executor) Option {
	return func(e *Editor) {
		if exec != nil {
			e.exec = exec
		}
	}
}

// WithDryRun toggles preview mode.
func WithDryRun(dryRun bool) Option {
	return func(e *Editor) {
		e.dryRun = dryRun
	}
}

// WithOutput sets where previews and confirmations are written.
func WithOutput(w io.Writer) Option {
	return func(e *Editor) {
		if w != nil {
			e.out = w
		}
	}
}

// WithLogger sets the editor's logging destination.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Editor) {
		e.logger = logging.NewComponentLogger(logger, "mkvpropedit")
	}
}

// Editor wraps mkvpropedit flag edits.
type Editor struct {
	binary string
	exec   command.Executor
	dryRun bool
	out    io.Writer
	logger *slog.Logger
}

// New constructs an editor. Without WithOutput, console lines are discarded.
func New(binary string, opts ...Option) (*Editor, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("mkvpropedit binary required")
	}
	editor := &Editor{
		binary: binary,
		exec:   command.ExecExecutor{},
		out:    io.Discard,
		logger: logging.NewComponentLogger(nil, "mkvpropedit"),
	}
	for _, opt := range opts {
		opt(editor)
	}
	return editor, nil
}

// DryRun reports whether the editor only previews edits.
func (e *Editor) DryRun() bool {
	return e.dryRun
}

// SelectorIndex converts an mkvmerge track ID to mkvpropedit's 1-based index.
func SelectorIndex(trackID int) int {
	return trackID + 1
}

// Selector returns the --edit argument addressing trackID.
func Selector(trackID int) string {
	return "track:@" + strconv.Itoa(SelectorIndex(trackID))
}

// FlagValue returns the flag-default value for op.
func FlagValue(op tracks.Operation) string {
	if op == tracks.OpSet {
		return "1"
	}
	return "0"
}

// Args returns the mkvpropedit arguments editing track inside path.
func Args(path string, track tracks.Track) []string {
	return []string{
		path,
		"--edit",
		Selector(track.ID),
		"--set",
		"flag-default=" + FlagValue(track.Operation),
	}
}

// Apply edits every track in list that carries an operation, in order.
// Tracks without an operation are skipped and produce no result.
func (e *Editor) Apply(ctx context.Context, path string, list []tracks.Track) []EditResult {
	results := make([]EditResult, 0, len(list))
	for _, track := range list {
		if !track.HasOperation() {
			continue
		}
		results = append(results, e.edit(ctx, path, track))
	}
	return results
}

func (e *Editor) edit(ctx context.Context, path string, track tracks.Track) EditResult {
	args := Args(path, track)
	index := SelectorIndex(track.ID)
	kind := track.Type
	if kind == "" {
		kind = "Unknown Track Type"
	}
	result := EditResult{
		TrackID:   track.ID,
		Type:      track.Type,
		Operation: track.Operation,
		Selector:  Selector(track.ID),
		Args:      args,
		DryRun:    e.dryRun,
	}

	if e.dryRun {
		fmt.Fprintln(e.out, "           Command:", command.Line(e.binary, args))
		fmt.Fprintf(e.out, "  [DRY RUN] Would %s default %s (ID %d)\n", track.Operation, kind, index)
		return result
	}

	fmt.Fprintf(e.out, "  ✔ Default %s %s (ID %d)\n", kind, track.Operation, index)
	logging.WithContext(ctx, e.logger).Debug("executing mkvpropedit", logging.String("command", command.Line(e.binary, args)))

	run, err := e.exec.Run(ctx, e.binary, args)
	result.ExitCode = run.ExitCode
	result.Output = strings.TrimSpace(run.StdoutText() + "\n" + run.StderrText())
	switch {
	case err != nil:
		result.Err = fmt.Errorf("%w: %s: %w", ErrEditFailed, result.Selector, err)
	case !run.Succeeded():
		result.Err = fmt.Errorf("%w: %s: exit status %d", ErrEditFailed, result.Selector, run.ExitCode)
	}
	return result
}
