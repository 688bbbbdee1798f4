package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mkvdefault/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose scan directory is a fresh temp directory.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	mediaDir := filepath.Join(base, "media")
	if err := os.MkdirAll(mediaDir, 0o755); err != nil {
		t.Fatalf("mkdir media dir: %v", err)
	}

	cfgVal := config.Default()
	cfgVal.Scan.Directory = mediaDir
	cfgVal.Logging.Level = "error"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithLiveRun disables dry-run mode on the test config.
func WithLiveRun() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Run.DryRun = false
	}
}

// WithSelection overrides the selection criteria on the test config.
func WithSelection(audioLanguage, subtitleTitle string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Selection.AudioLanguage = audioLanguage
		b.cfg.Selection.SubtitleTitle = subtitleTitle
	}
}

// WithStubbedBinaries writes stub executables for the provided names and
// prepends them to PATH. If names is empty, mkvmerge and mkvpropedit are
// stubbed; both exit 0 without output.
func WithStubbedBinaries(names ...string) ConfigOption {
	return func(b *configBuilder) {
		if len(names) == 0 {
			names = []string{"mkvmerge", "mkvpropedit"}
		}
		for _, name := range names {
			writeStub(b, name, "exit 0\n")
		}
	}
}

// WithMkvmergeOutput stubs mkvmerge so that it prints identify to stdout and
// exits 0 for every file.
func WithMkvmergeOutput(identify string) ConfigOption {
	return func(b *configBuilder) {
		fixture := filepath.Join(b.baseDir, "identify.json")
		if err := os.WriteFile(fixture, []byte(identify), 0o644); err != nil {
			b.t.Fatalf("write identify fixture: %v", err)
		}
		writeStub(b, "mkvmerge", fmt.Sprintf("cat %s\n", shellQuote(fixture)))
	}
}

// WithRecordingMkvpropedit stubs mkvpropedit so that each invocation appends
// its arguments as one line to EditLog(cfg).
func WithRecordingMkvpropedit() ConfigOption {
	return func(b *configBuilder) {
		logPath := filepath.Join(b.baseDir, "mkvpropedit.log")
		writeStub(b, "mkvpropedit", fmt.Sprintf("echo \"$@\" >> %s\n", shellQuote(logPath)))
	}
}

// WithFailingMkvpropedit stubs mkvpropedit so that every edit exits 2.
func WithFailingMkvpropedit() ConfigOption {
	return func(b *configBuilder) {
		writeStub(b, "mkvpropedit", "echo 'Error: the track could not be found' >&2\nexit 2\n")
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Scan.Directory)
}

// EditLog returns the recorded mkvpropedit invocations, one per line.
func EditLog(t testing.TB, cfg *config.Config) []string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(BaseDir(cfg), "mkvpropedit.log"))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("read edit log: %v", err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func writeStub(b *configBuilder, name, body string) {
	b.t.Helper()
	binDir := filepath.Join(b.baseDir, "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		b.t.Fatalf("mkdir bin dir: %v", err)
	}
	target := filepath.Join(binDir, name)
	if err := os.WriteFile(target, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		b.t.Fatalf("write stub %s: %v", name, err)
	}

	oldPath := os.Getenv("PATH")
	if strings.HasPrefix(oldPath, binDir+string(os.PathListSeparator)) {
		return
	}
	b.t.Setenv("PATH", binDir+string(os.PathListSeparator)+oldPath)
}

func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}
