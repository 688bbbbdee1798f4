package mkvmerge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"mkvdefault/internal/logging"
	"mkvdefault/internal/media/command"
	"mkvdefault/internal/tracks"
)

var (
	// ErrInspectionFailed covers a non-zero exit, empty output, or a missing
	// track list.
	ErrInspectionFailed = errors.New("mkvmerge inspection failed")
	// ErrParseFailed means stdout was not valid JSON.
	ErrParseFailed = errors.New("mkvmerge output parse failed")
	// ErrUnexpected covers failures to run mkvmerge at all.
	ErrUnexpected = errors.New("mkvmerge unexpected failure")
)

// Kind tags the outcome of an inspection.
type Kind int

const (
	KindOK Kind = iota
	KindInspectionFailed
	KindParseFailed
	KindOtherFailed
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindInspectionFailed:
		return "inspection_failed"
	case KindParseFailed:
		return "parse_failed"
	case KindOtherFailed:
		return "other_failed"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Identification represents the parsed output of mkvmerge --identify.
type Identification struct {
	FileName  string         `json:"file_name"`
	Container Container      `json:"container"`
	Tracks    []tracks.Track `json:"tracks"`
	Errors    []string       `json:"errors"`
	Warnings  []string       `json:"warnings"`
}

// Container captures container-level metadata.
type Container struct {
	Type       string `json:"type"`
	Recognized bool   `json:"recognized"`
	Supported  bool   `json:"supported"`
}

// Inspection is the tagged result of one identify call. Info is only
// meaningful when Kind is KindOK; Stderr is the captured error stream, if any.
type Inspection struct {
	Kind   Kind
	Info   Identification
	Stderr string
	Err    error
}

// OK reports a usable inspection.
func (i Inspection) OK() bool {
	return i.Kind == KindOK
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec command.Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// WithLogger sets the client's logging destination.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logging.NewComponentLogger(logger, "mkvmerge")
	}
}

// Client wraps mkvmerge identification.
type Client struct {
	binary string
	exec   command.Executor
	logger *slog.Logger
}

// New constructs an mkvmerge client.
func New(binary string, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("mkvmerge binary required")
	}
	client := &Client{
		binary: binary,
		exec:   command.ExecExecutor{},
		logger: logging.NewComponentLogger(nil, "mkvmerge"),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Args returns the identify arguments for path.
func Args(path string) []string {
	return []string{"--identify", "--identification-format", "json", path}
}

// Inspect runs mkvmerge against path and classifies the outcome. It never
// returns a Go error: every failure is carried in the Inspection.
func (c *Client) Inspect(ctx context.Context, path string) Inspection {
	args := Args(path)
	logging.WithContext(ctx, c.logger).Debug("executing mkvmerge", logging.String("command", command.Line(c.binary, args)))

	result, err := c.exec.Run(ctx, c.binary, args)
	if err != nil {
		return Inspection{
			Kind:   KindOtherFailed,
			Stderr: result.StderrText(),
			Err:    fmt.Errorf("%w: %w", ErrUnexpected, err),
		}
	}
	return classify(result)
}

func classify(result command.Result) Inspection {
	stderr := result.StderrText()
	stdout := result.StdoutText()

	if !result.Succeeded() {
		return Inspection{
			Kind:   KindInspectionFailed,
			Stderr: stderr,
			Err:    fmt.Errorf("%w: exit status %d", ErrInspectionFailed, result.ExitCode),
		}
	}
	if stdout == "" {
		return Inspection{
			Kind:   KindInspectionFailed,
			Stderr: stderr,
			Err:    fmt.Errorf("%w: empty output", ErrInspectionFailed),
		}
	}

	info, err := Parse([]byte(stdout))
	if err != nil {
		kind := KindParseFailed
		if errors.Is(err, ErrInspectionFailed) {
			kind = KindInspectionFailed
		}
		return Inspection{Kind: kind, Stderr: stderr, Err: err}
	}
	return Inspection{Kind: KindOK, Info: info, Stderr: stderr}
}

// Parse decodes identify JSON. A null or absent track list is reported as
// ErrInspectionFailed; malformed JSON as ErrParseFailed.
func Parse(data []byte) (Identification, error) {
	var info Identification
	if err := json.Unmarshal(data, &info); err != nil {
		return Identification{}, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}
	if info.Tracks == nil {
		return Identification{}, fmt.Errorf("%w: no track list in output", ErrInspectionFailed)
	}
	return info, nil
}

// CountByType returns the number of tracks of the given type.
func (i Identification) CountByType(kind tracks.Type) int {
	count := 0
	for _, track := range i.Tracks {
		if track.Type == kind {
			count++
		}
	}
	return count
}
