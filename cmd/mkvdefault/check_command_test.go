package main

import (
	"path/filepath"
	"testing"

	"mkvdefault/internal/testsupport"
)

func TestCheckReportsReadiness(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithStubbedBinaries())

	out, _, err := runCLI(t, []string{"check"}, env.configPath)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	requireContains(t, out, "== Configuration ==")
	requireContains(t, out, "jpn (Japanese)")
	requireContains(t, out, "== Readiness ==")
	requireContains(t, out, "[OK] "+env.mediaDir+" (read ok)")
	requireContains(t, out, "[OK] "+filepath.Join(testsupport.BaseDir(env.cfg), "bin", "mkvmerge"))
}

func TestCheckFailsWithoutMkvmerge(t *testing.T) {
	env := setupCLITestEnv(t)
	t.Setenv("PATH", t.TempDir())

	out, _, err := runCLI(t, []string{"check"}, env.configPath)
	if err == nil {
		t.Fatal("expected check to fail without mkvmerge")
	}
	requireContains(t, out, "[ERROR] binary \"mkvmerge\" not found")
	requireContains(t, out, "[WARN] binary \"mkvpropedit\" not found (not needed for dry run)")
}
