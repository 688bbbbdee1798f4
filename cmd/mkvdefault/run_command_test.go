package main

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"mkvdefault/internal/batch"
	"mkvdefault/internal/testsupport"
)

func TestRunDryRunPrintsPlannedEdits(t *testing.T) {
	env := setupCLITestEnv(t,
		testsupport.WithMkvmergeOutput(identifyFixture),
		testsupport.WithRecordingMkvpropedit(),
		testsupport.WithSelection("jpn", "Full"),
	)
	testsupport.WriteMediaFiles(t, env.mediaDir, "episode.mkv", "notes.txt")

	out, _, err := runCLI(t, []string{"run"}, env.configPath)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	path := filepath.Join(env.mediaDir, "episode.mkv")
	requireContains(t, out, "\nProcessing: episode.mkv\n")
	requireContains(t, out, "           Command: mkvpropedit "+path+" --edit track:@3 --set flag-default=1\n")
	requireContains(t, out, "  [DRY RUN] Would set default audio (ID 3)\n")
	requireContains(t, out, "  [DRY RUN] Would unset default audio (ID 2)\n")
	requireContains(t, out, "  [DRY RUN] Would unset default subtitles (ID 4)\n")
	requireContains(t, out, "  [DRY RUN] Would set default subtitles (ID 5)\n")
	requireNotContains(t, out, "track:@1 ")
	requireNotContains(t, out, "notes.txt")
	requireContains(t, out, "dry run")

	if edits := testsupport.EditLog(t, env.cfg); len(edits) != 0 {
		t.Fatalf("dry run must not execute mkvpropedit, got %v", edits)
	}
}

func TestRunLiveExecutesEdits(t *testing.T) {
	env := setupCLITestEnv(t,
		testsupport.WithMkvmergeOutput(identifyFixture),
		testsupport.WithRecordingMkvpropedit(),
	)
	testsupport.WriteMediaFiles(t, env.mediaDir, "episode.mkv")

	out, _, err := runCLI(t, []string{"run", "--live"}, env.configPath)
	if err != nil {
		t.Fatalf("run --live: %v", err)
	}
	requireContains(t, out, "  ✔ Default audio set (ID 3)\n")
	requireNotContains(t, out, "[DRY RUN]")

	path := filepath.Join(env.mediaDir, "episode.mkv")
	want := []string{
		path + " --edit track:@2 --set flag-default=0",
		path + " --edit track:@3 --set flag-default=1",
		path + " --edit track:@4 --set flag-default=0",
		path + " --edit track:@5 --set flag-default=0",
	}
	edits := testsupport.EditLog(t, env.cfg)
	if strings.Join(edits, "\n") != strings.Join(want, "\n") {
		t.Fatalf("unexpected edits:\n got %v\nwant %v", edits, want)
	}
}

func TestRunFlagsOverrideConfig(t *testing.T) {
	env := setupCLITestEnv(t,
		testsupport.WithMkvmergeOutput(identifyFixture),
		testsupport.WithRecordingMkvpropedit(),
	)
	other := t.TempDir()
	testsupport.WriteMediaFiles(t, other, "Movie.MKA")

	out, _, err := runCLI(t, []string{
		"run", other,
		"--ext", "mka",
		"--audio-lang", "eng",
		"--subtitle-title", "Signs & Songs",
	}, env.configPath)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	requireContains(t, out, "\nProcessing: Movie.MKA\n")
	requireContains(t, out, "  [DRY RUN] Would set default audio (ID 2)\n")
	requireContains(t, out, "  [DRY RUN] Would set default subtitles (ID 4)\n")
}

func TestRunJSONSummary(t *testing.T) {
	env := setupCLITestEnv(t,
		testsupport.WithMkvmergeOutput(identifyFixture),
		testsupport.WithStubbedBinaries("mkvpropedit"),
	)
	testsupport.WriteMediaFiles(t, env.mediaDir, "a.mkv", "b.mkv")

	out, stderr, err := runCLI(t, []string{"run", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("run --json: %v", err)
	}
	requireContains(t, stderr, "Processing: a.mkv")

	var summary batch.Summary
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("decode summary: %v\n%s", err, out)
	}
	if len(summary.Files) != 2 || summary.Count(batch.OutcomeEdited) != 2 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if !summary.DryRun || summary.TracksSet() != 2 || summary.TracksUnset() != 6 {
		t.Fatalf("unexpected totals: %+v", summary)
	}
	if summary.RunID == "" {
		t.Fatal("expected run id in summary")
	}
}

func TestRunInspectionFailureContinues(t *testing.T) {
	env := setupCLITestEnv(t,
		testsupport.WithMkvmergeOutput("not json"),
		testsupport.WithStubbedBinaries("mkvpropedit"),
	)
	testsupport.WriteMediaFiles(t, env.mediaDir, "a.mkv", "b.mkv")

	out, _, err := runCLI(t, []string{"run"}, env.configPath)
	if err != nil {
		t.Fatalf("inspection failures must not fail the run: %v", err)
	}
	requireContains(t, out, "❌ Failed to parse JSON for a.mkv: ")
	requireContains(t, out, "❌ Failed to parse JSON for b.mkv: ")
	requireContains(t, out, "parse_failed=2")
}

func TestRunStrictFailsOnEditErrors(t *testing.T) {
	env := setupCLITestEnv(t,
		testsupport.WithMkvmergeOutput(identifyFixture),
		testsupport.WithFailingMkvpropedit(),
	)
	testsupport.WriteMediaFiles(t, env.mediaDir, "a.mkv")

	if _, _, err := runCLI(t, []string{"run", "--live"}, env.configPath); err != nil {
		t.Fatalf("non-strict run must tolerate edit failures: %v", err)
	}

	out, _, err := runCLI(t, []string{"run", "--live", "--strict"}, env.configPath)
	if err == nil {
		t.Fatal("expected strict run to fail")
	}
	requireContains(t, err.Error(), "failed track edits")
	requireContains(t, out, "edit_failed=1")
}

func TestRunLiveRequiresMkvpropedit(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithMkvmergeOutput(identifyFixture))
	t.Setenv("PATH", filepath.Join(testsupport.BaseDir(env.cfg), "bin"))
	testsupport.WriteMediaFiles(t, env.mediaDir, "a.mkv")

	_, stderr, err := runCLI(t, []string{"run", "--live"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "preflight failed: mkvpropedit") {
		t.Fatalf("expected preflight failure, got %v", err)
	}
	requireContains(t, stderr, "failed_checks=[mkvpropedit]")
}

func TestRunRejectsConflictingModeFlags(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithStubbedBinaries())
	if _, _, err := runCLI(t, []string{"run", "--live", "--dry-run"}, env.configPath); err == nil {
		t.Fatal("expected error for --live with --dry-run")
	}
}
