package main

import (
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"mkvdefault/internal/batch"
	"mkvdefault/internal/preflight"
)

func TestRenderStatusLineNoColor(t *testing.T) {
	got := renderStatusLine("mkvmerge", statusError, "not found", false)
	want := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, "mkvmerge:", "[ERROR] not found")
	if got != want {
		t.Fatalf("renderStatusLine mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderStatusLineWithColor(t *testing.T) {
	got := renderStatusLine("mkvmerge", statusOK, "/usr/bin/mkvmerge", true)
	if !strings.HasPrefix(got, ansiGreen) {
		t.Fatalf("expected green prefix, got %q", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected reset suffix, got %q", got)
	}
}

func TestPreflightLines(t *testing.T) {
	lines := preflightLines([]preflight.Result{
		{Name: "Scan directory", Passed: true, Detail: "/media (read ok)"},
		{Name: "mkvmerge", Detail: "binary \"mkvmerge\" not found"},
		{Name: "mkvpropedit", Optional: true, Detail: "binary \"mkvpropedit\" not found"},
	}, false)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, want := range []string{"[OK]", "[ERROR]", "[WARN]"} {
		if !strings.Contains(lines[i], want) {
			t.Fatalf("line %d: expected %s, got %q", i, want, lines[i])
		}
	}
}

func TestSummaryRendering(t *testing.T) {
	audio := 2
	summary := batch.Summary{
		DryRun:   true,
		Duration: batch.Duration(1500 * time.Millisecond),
		Files: []batch.FileResult{
			{Name: "a.mkv", Outcome: batch.OutcomeEdited, AudioTracks: 2, SubtitleTracks: 1, SelectedAudioID: &audio, Set: 1, Unset: 2},
			{Name: "b.mkv", Outcome: batch.OutcomeParseFailed},
		},
	}

	table := renderSummaryTable(summary)
	for _, want := range []string{"a.mkv", "edited", "2 (ID 3)", "1 (none)", "parse_failed", "2 files"} {
		if !strings.Contains(table, want) {
			t.Fatalf("expected %q in table:\n%s", want, table)
		}
	}

	joined := strings.Join(summaryLines(summary, false), "\n")
	for _, want := range []string{"== Summary ==", "[INFO] dry run", "[WARN] edited=1 parse_failed=1", "[OK] set=1 unset=2", "1.5s"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected %q in summary:\n%s", want, joined)
		}
	}
}

func TestSummaryLinesWithoutFiles(t *testing.T) {
	joined := strings.Join(summaryLines(batch.Summary{}, false), "\n")
	if !strings.Contains(joined, "no matching files") {
		t.Fatalf("expected empty-run notice, got:\n%s", joined)
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(io.Discard) {
		t.Fatalf("expected non-file writer to disable color")
	}
}
