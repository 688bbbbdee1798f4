package main

import (
	"fmt"
	"strconv"
	"strings"

	"mkvdefault/internal/batch"
	"mkvdefault/internal/media/mkvpropedit"
)

func renderSummaryTable(summary batch.Summary) string {
	headers := []string{"File", "Outcome", "Audio", "Subtitles", "Set", "Unset", "Failed"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight}
	rows := make([][]string, 0, len(summary.Files))
	for _, file := range summary.Files {
		rows = append(rows, []string{
			file.Name,
			string(file.Outcome),
			selectedCell(file.AudioTracks, file.SelectedAudioID),
			selectedCell(file.SubtitleTracks, file.SelectedSubtitleID),
			strconv.Itoa(file.Set),
			strconv.Itoa(file.Unset),
			strconv.Itoa(file.EditFailures),
		})
	}
	footer := []string{
		fmt.Sprintf("%d files", len(summary.Files)),
		"",
		"",
		"",
		strconv.Itoa(summary.TracksSet()),
		strconv.Itoa(summary.TracksUnset()),
		strconv.Itoa(summary.EditFailures()),
	}
	return renderTable(headers, rows, footer, aligns)
}

// selectedCell shows the track count and, when one was chosen, its 1-based
// index as printed on the per-track console lines.
func selectedCell(count int, selected *int) string {
	if count == 0 {
		return "-"
	}
	if selected == nil {
		return fmt.Sprintf("%d (none)", count)
	}
	return fmt.Sprintf("%d (ID %d)", count, mkvpropedit.SelectorIndex(*selected))
}

func summaryLines(summary batch.Summary, colorize bool) []string {
	mode := "live"
	if summary.DryRun {
		mode = "dry run"
	}
	var lines []string
	lines = append(lines, renderSectionHeader("Summary", colorize)...)
	lines = append(lines, renderStatusLine("Mode", statusInfo, mode, colorize))

	counts := make([]string, 0, len(batch.Outcomes))
	for _, outcome := range batch.Outcomes {
		if n := summary.Count(outcome); n > 0 {
			counts = append(counts, fmt.Sprintf("%s=%d", outcome, n))
		}
	}
	filesKind := statusOK
	if len(summary.Files) == 0 {
		filesKind = statusWarn
		counts = append(counts, "no matching files")
	} else if skipped := len(summary.Files) - summary.Count(batch.OutcomeEdited) - summary.Count(batch.OutcomeUnchanged); skipped > 0 {
		filesKind = statusWarn
	}
	lines = append(lines, renderStatusLine("Files", filesKind, strings.Join(counts, " "), colorize))

	editsKind := statusOK
	editsMessage := fmt.Sprintf("set=%d unset=%d", summary.TracksSet(), summary.TracksUnset())
	if failures := summary.EditFailures(); failures > 0 {
		editsKind = statusWarn
		if summary.Strict {
			editsKind = statusError
		}
		editsMessage += fmt.Sprintf(" failed=%d", failures)
	}
	lines = append(lines, renderStatusLine("Edits", editsKind, editsMessage, colorize))

	if summary.Canceled {
		lines = append(lines, renderStatusLine("Run", statusWarn, "canceled before all files were processed", colorize))
	}
	lines = append(lines, renderStatusLine("Duration", statusInfo, fmt.Sprint(summary.Duration), colorize))
	return lines
}
