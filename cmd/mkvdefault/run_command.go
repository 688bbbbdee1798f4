package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"mkvdefault/internal/batch"
	"mkvdefault/internal/config"
	"mkvdefault/internal/logging"
	"mkvdefault/internal/media/mkvmerge"
	"mkvdefault/internal/media/mkvpropedit"
	"mkvdefault/internal/preflight"
	"mkvdefault/internal/selection"
)

type runFlags struct {
	directory     string
	extension     string
	audioLanguage string
	subtitleTitle string
	dryRun        bool
	live          bool
	strict        bool
	jsonOutput    bool
}

func newRunCommand(ctx *commandContext) *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "run [directory]",
		Short: "Set default flags on every matching file in a directory",
		Long: "Inspect each matching file with mkvmerge, mark the first audio track in the\n" +
			"configured language and the first subtitle track with the configured title\n" +
			"as default, and clear the flag on every other audio and subtitle track.\n" +
			"Runs are dry by default; pass --live to apply edits.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			cfg := *base
			if len(args) == 1 {
				if err := cmd.Flags().Set("dir", args[0]); err != nil {
					return err
				}
			}
			if err := applyRunFlags(cmd, &cfg, flags); err != nil {
				return err
			}
			return runBatch(cmd, &cfg, flags.jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&flags.directory, "dir", "d", "", "Directory to scan (overrides config)")
	cmd.Flags().StringVarP(&flags.extension, "ext", "e", "", "File extension to match, case-insensitive")
	cmd.Flags().StringVarP(&flags.audioLanguage, "audio-lang", "a", "", "Language code of the audio track to make default")
	cmd.Flags().StringVarP(&flags.subtitleTitle, "subtitle-title", "s", "", "Exact title of the subtitle track to make default (empty matches untitled tracks)")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Print the edits without running mkvpropedit")
	cmd.Flags().BoolVar(&flags.live, "live", false, "Apply the edits with mkvpropedit")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "Fail the run when any track edit fails")
	cmd.Flags().BoolVar(&flags.jsonOutput, "json", false, "Write the run summary as JSON to stdout")
	cmd.MarkFlagsMutuallyExclusive("dry-run", "live")

	return cmd
}

// applyRunFlags copies explicitly set flags onto cfg. Unset flags leave the
// file and environment values in place, so an empty --subtitle-title is still
// an override.
func applyRunFlags(cmd *cobra.Command, cfg *config.Config, flags runFlags) error {
	changed := cmd.Flags().Changed
	if changed("dir") {
		cfg.Scan.Directory = flags.directory
	}
	if changed("ext") {
		cfg.Scan.Extension = flags.extension
	}
	if changed("audio-lang") {
		cfg.Selection.AudioLanguage = flags.audioLanguage
	}
	if changed("subtitle-title") {
		cfg.Selection.SubtitleTitle = flags.subtitleTitle
	}
	if changed("dry-run") {
		cfg.Run.DryRun = flags.dryRun
	}
	if changed("live") {
		cfg.Run.DryRun = !flags.live
	}
	if changed("strict") {
		cfg.Run.Strict = flags.strict
	}
	if err := cfg.Finalize(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

func runBatch(cmd *cobra.Command, cfg *config.Config, jsonOutput bool) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	logger, err := logging.NewFromConfig(cfg, stderr)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	runID := logging.NewRunID()

	configLogger := logging.NewComponentLogger(logger, "config").With(logging.String(logging.FieldRunID, runID))
	for _, warning := range cfg.Warnings() {
		logging.WarnWithContext(configLogger, warning, "config_warning",
			logging.String(logging.FieldErrorHint, "check audio_language in the config or --audio-lang"),
			logging.String(logging.FieldImpact, "no audio track may match"),
		)
	}

	// The per-file report moves to stderr when stdout carries JSON.
	report := stdout
	if jsonOutput {
		report = stderr
	}
	colorize := shouldColorize(report)

	if failed := preflight.Failures(preflight.RunAll(cfg)); len(failed) > 0 {
		for _, line := range preflightLines(failed, colorize) {
			fmt.Fprintln(report, line)
		}
		names := make([]string, 0, len(failed))
		for _, f := range failed {
			names = append(names, f.Name)
		}
		logging.ErrorWithContext(configLogger, "preflight failed", "preflight_failed",
			logging.Strings("failed_checks", names),
			logging.String(logging.FieldErrorHint, "install MKVToolNix or set [tools] paths; run mkvdefault check"),
		)
		return fmt.Errorf("preflight failed: %s", strings.Join(names, ", "))
	}

	runner, err := newBatchRunner(cfg, report, logger, runID)
	if err != nil {
		return err
	}
	summary, runErr := runner.Run(cmd.Context())
	if runErr != nil && !errors.Is(runErr, cmd.Context().Err()) {
		return runErr
	}

	if jsonOutput {
		if err := writeJSON(cmd, summary); err != nil {
			return err
		}
	} else {
		writeSummary(report, summary, colorize)
	}

	if runErr != nil {
		return runErr
	}
	if summary.Failed() {
		return fmt.Errorf("%d file(s) had failed track edits", summary.Count(batch.OutcomeEditFailed))
	}
	return nil
}

func newBatchRunner(cfg *config.Config, out io.Writer, logger *slog.Logger, runID string) (*batch.Runner, error) {
	inspector, err := mkvmerge.New(cfg.MkvmergeBinary(), mkvmerge.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	editor, err := mkvpropedit.New(cfg.MkvpropeditBinary(),
		mkvpropedit.WithDryRun(cfg.Run.DryRun),
		mkvpropedit.WithOutput(out),
		mkvpropedit.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	return batch.New(batch.Options{
		Directory: cfg.Scan.Directory,
		Extension: cfg.Scan.Extension,
		Criteria:  selection.FromConfig(cfg.Selection),
		Strict:    cfg.Run.Strict,
		Inspector: inspector,
		Editor:    editor,
		Out:       out,
		Logger:    logger,
		RunID:     runID,
	})
}

func writeSummary(out io.Writer, summary batch.Summary, colorize bool) {
	fmt.Fprintln(out)
	if len(summary.Files) > 0 {
		fmt.Fprintln(out, renderSummaryTable(summary))
	}
	for _, line := range summaryLines(summary, colorize) {
		fmt.Fprintln(out, line)
	}
}
