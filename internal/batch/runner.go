package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"mkvdefault/internal/language"
	"mkvdefault/internal/logging"
	"mkvdefault/internal/media/mkvmerge"
	"mkvdefault/internal/media/mkvpropedit"
	"mkvdefault/internal/scanner"
	"mkvdefault/internal/selection"
	"mkvdefault/internal/tracks"
)

// Inspector identifies the tracks of a media file.
type Inspector interface {
	Inspect(ctx context.Context, path string) mkvmerge.Inspection
}

// Editor applies track operations to a media file.
type Editor interface {
	Apply(ctx context.Context, path string, list []tracks.Track) []mkvpropedit.EditResult
	DryRun() bool
}

// Options configures a Runner.
type Options struct {
	Directory string
	Extension string
	Criteria  selection.Criteria
	Strict    bool
	Inspector Inspector
	Editor    Editor
	// Out receives the per-file console report. Defaults to io.Discard.
	Out    io.Writer
	Logger *slog.Logger
	RunID  string
}

// Runner processes every matching file in a directory.
type Runner struct {
	opts   Options
	out    io.Writer
	logger *slog.Logger
}

// New validates opts and constructs a runner.
func New(opts Options) (*Runner, error) {
	if strings.TrimSpace(opts.Directory) == "" {
		return nil, errors.New("batch: directory required")
	}
	if opts.Extension == "" {
		return nil, errors.New("batch: extension required")
	}
	if opts.Inspector == nil {
		return nil, errors.New("batch: inspector required")
	}
	if opts.Editor == nil {
		return nil, errors.New("batch: editor required")
	}
	if opts.RunID == "" {
		opts.RunID = logging.NewRunID()
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	return &Runner{
		opts:   opts,
		out:    out,
		logger: logging.NewComponentLogger(opts.Logger, "batch"),
	}, nil
}

// Run lists the directory and processes each file in order. The returned
// error is non-nil only when the directory cannot be read or ctx is canceled;
// per-file problems are recorded in the Summary.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	started := time.Now()
	summary := Summary{
		RunID:     r.opts.RunID,
		Directory: r.opts.Directory,
		Extension: r.opts.Extension,
		DryRun:    r.opts.Editor.DryRun(),
		Strict:    r.opts.Strict,
		StartedAt: started.UTC(),
		Files:     []FileResult{},
	}
	ctx = logging.WithRunID(ctx, r.opts.RunID)
	logger := logging.WithContext(ctx, r.logger)

	files, err := scanner.List(r.opts.Directory, r.opts.Extension)
	if err != nil {
		logging.ErrorWithContext(logger, "directory scan failed", "scan_failed",
			logging.String("directory", r.opts.Directory),
			logging.String(logging.FieldErrorHint, "check that the directory exists and is readable"),
			logging.Error(err),
		)
		summary.Duration = Duration(time.Since(started))
		return summary, err
	}

	startAttrs := []logging.Attr{
		logging.String("directory", r.opts.Directory),
		logging.String("extension", r.opts.Extension),
		logging.Int("files", len(files)),
		logging.Bool("dry_run", summary.DryRun),
		logging.String("audio_language", r.opts.Criteria.AudioLanguage),
		logging.String("subtitle_title", r.opts.Criteria.SubtitleTitle),
	}
	if name := language.DisplayName(r.opts.Criteria.AudioLanguage); name != "" {
		startAttrs = append(startAttrs, logging.String("audio_language_name", name))
	}
	logger.Info("batch started", logging.Args(startAttrs...)...)

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			summary.Canceled = true
			summary.Duration = Duration(time.Since(started))
			logger.Info("batch canceled",
				logging.String(logging.FieldEventType, "batch_canceled"),
				logging.Int("processed", len(summary.Files)),
				logging.Int("remaining", len(files)-len(summary.Files)),
			)
			return summary, err
		}
		summary.Files = append(summary.Files, r.processFile(ctx, path))
	}

	summary.Duration = Duration(time.Since(started))
	logger.Info("batch completed",
		logging.String(logging.FieldEventType, "batch_complete"),
		logging.Int("files", len(summary.Files)),
		logging.Int("edited", summary.Count(OutcomeEdited)),
		logging.Int("tracks_set", summary.TracksSet()),
		logging.Int("tracks_unset", summary.TracksUnset()),
		logging.Int("edit_failures", summary.EditFailures()),
		logging.Duration("duration", time.Duration(summary.Duration)),
	)
	return summary, nil
}

func (r *Runner) processFile(ctx context.Context, path string) FileResult {
	name := filepath.Base(path)
	ctx = logging.WithFile(ctx, path)
	logger := logging.WithContext(ctx, r.logger)
	result := FileResult{Path: path, Name: name}

	fmt.Fprintf(r.out, "\nProcessing: %s\n", name)

	inspection := r.opts.Inspector.Inspect(ctx, path)
	if !inspection.OK() {
		r.reportInspectionFailure(logger, name, inspection, &result)
		return result
	}

	info := inspection.Info
	result.Container = info.Container.Type
	list := info.Tracks
	decision := selection.Apply(list, r.opts.Criteria)
	result.AudioTracks = len(decision.Audio)
	result.SubtitleTracks = len(decision.Subtitles)
	if decision.AudioSelected() {
		id := decision.SelectedAudioID
		result.SelectedAudioID = &id
	}
	if decision.SubtitleSelected() {
		id := decision.SelectedSubtitleID
		result.SelectedSubtitleID = &id
	}
	logger.Debug("track selection",
		logging.Args(append(
			logging.DecisionAttrs("default_track", selectionResult(decision), selectionReason(decision)),
			logging.Int("audio_tracks", result.AudioTracks),
			logging.Int("subtitle_tracks", result.SubtitleTracks),
			logging.String("container", result.Container),
		)...)...,
	)

	if decision.Touched() == 0 {
		result.Outcome = OutcomeUnchanged
		return result
	}

	edits := r.opts.Editor.Apply(ctx, path, list)
	for _, edit := range edits {
		switch edit.Operation {
		case tracks.OpSet:
			result.Set++
		case tracks.OpUnset:
			result.Unset++
		}
		if !edit.Failed() {
			continue
		}
		result.EditFailures++
		logging.WarnWithContext(logger, "track edit failed", "edit_failed",
			logging.Int("track_id", edit.TrackID),
			logging.String("selector", edit.Selector),
			logging.String("operation", string(edit.Operation)),
			logging.Int("exit_code", edit.ExitCode),
			logging.String("output", edit.Output),
			logging.String(logging.FieldErrorHint, "run the logged mkvpropedit command manually to see the full error"),
			logging.String(logging.FieldImpact, "default flag left unchanged for this track"),
			logging.Error(edit.Err),
		)
	}

	result.Outcome = OutcomeEdited
	if result.EditFailures > 0 && r.opts.Strict {
		result.Outcome = OutcomeEditFailed
		result.Detail = fmt.Sprintf("%d of %d edits failed", result.EditFailures, len(edits))
	}
	return result
}

func (r *Runner) reportInspectionFailure(logger *slog.Logger, name string, inspection mkvmerge.Inspection, result *FileResult) {
	switch inspection.Kind {
	case mkvmerge.KindInspectionFailed:
		fmt.Fprintf(r.out, "❌ mkvmerge failed for %s\n", name)
		if stderr := strings.TrimRight(inspection.Stderr, "\r\n"); stderr != "" {
			fmt.Fprintln(r.out, stderr)
		}
		result.Outcome = OutcomeInspectionFailed
	case mkvmerge.KindParseFailed:
		fmt.Fprintf(r.out, "❌ Failed to parse JSON for %s: %v\n", name, inspection.Err)
		result.Outcome = OutcomeParseFailed
	default:
		fmt.Fprintf(r.out, "❌ Error running mkvmerge on %s: %v\n", name, inspection.Err)
		result.Outcome = OutcomeError
	}
	if inspection.Err != nil {
		result.Detail = inspection.Err.Error()
	}
	logging.WarnWithContext(logger, "file skipped", "inspection_failed",
		logging.String("kind", inspection.Kind.String()),
		logging.String("stderr", strings.TrimSpace(inspection.Stderr)),
		logging.String(logging.FieldErrorHint, "run mkvmerge --identify on the file to inspect it"),
		logging.String(logging.FieldImpact, "file left unmodified"),
		logging.Error(inspection.Err),
	)
}

func selectionResult(decision selection.Result) string {
	switch {
	case decision.AudioSelected() && decision.SubtitleSelected():
		return "audio_and_subtitle"
	case decision.AudioSelected():
		return "audio_only"
	case decision.SubtitleSelected():
		return "subtitle_only"
	default:
		return "none"
	}
}

func selectionReason(decision selection.Result) string {
	if decision.Touched() == 0 {
		return "no audio or subtitle tracks"
	}
	if !decision.AudioSelected() && !decision.SubtitleSelected() {
		return "no track matched; all defaults cleared"
	}
	return "first matching track per type"
}
