package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"mkvdefault/internal/language"
	"mkvdefault/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report configuration and tool readiness",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			var lines []string
			lines = append(lines, renderSectionHeader("Configuration", colorize)...)
			configDetail := ctx.configPath
			if !ctx.configSeen {
				configDetail += " (not found, defaults used)"
			}
			lines = append(lines, renderStatusLine("Config", statusInfo, configDetail, colorize))
			lines = append(lines, renderStatusLine("Extension", statusInfo, cfg.Scan.Extension, colorize))

			audio := cfg.Selection.AudioLanguage
			if name := language.DisplayName(audio); name != "" {
				audio = fmt.Sprintf("%s (%s)", audio, name)
			}
			audioKind := statusOK
			if len(cfg.Warnings()) > 0 {
				audioKind = statusWarn
			}
			lines = append(lines, renderStatusLine("Audio language", audioKind, audio, colorize))
			lines = append(lines, renderStatusLine("Subtitle title", statusInfo, strconv.Quote(cfg.Selection.SubtitleTitle), colorize))
			lines = append(lines, renderStatusLine("Dry run", statusInfo, yesNo(cfg.Run.DryRun), colorize))
			for _, warning := range cfg.Warnings() {
				lines = append(lines, renderStatusLine("Warning", statusWarn, warning, colorize))
			}

			results := preflight.RunAll(cfg)
			lines = append(lines, "")
			lines = append(lines, renderSectionHeader("Readiness", colorize)...)
			lines = append(lines, preflightLines(results, colorize)...)

			for _, line := range lines {
				fmt.Fprintln(out, line)
			}
			if failed := preflight.Failures(results); len(failed) > 0 {
				return errors.New("one or more required checks failed")
			}
			return nil
		},
	}
}
