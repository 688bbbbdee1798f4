package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"mkvdefault/internal/config"
	"mkvdefault/internal/testsupport"
)

const identifyFixture = `{
  "container": {"recognized": true, "supported": true, "type": "Matroska"},
  "errors": [],
  "file_name": "episode.mkv",
  "tracks": [
    {"codec": "AVC/H.264/MPEG-4p10", "id": 0, "properties": {"default_track": true, "language": "und"}, "type": "video"},
    {"codec": "AAC", "id": 1, "properties": {"default_track": true, "language": "eng", "track_name": "English"}, "type": "audio"},
    {"codec": "AAC", "id": 2, "properties": {"default_track": false, "language": "jpn"}, "type": "audio"},
    {"codec": "SubStationAlpha", "id": 3, "properties": {"language": "eng", "track_name": "Signs & Songs"}, "type": "subtitles"},
    {"codec": "SubStationAlpha", "id": 4, "properties": {"language": "eng", "track_name": "Full"}, "type": "subtitles"}
  ],
  "warnings": []
}`

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	mediaDir   string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	cfg := testsupport.NewConfig(t, opts...)
	configPath := filepath.Join(testsupport.BaseDir(cfg), "config.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{
		cfg:        cfg,
		configPath: configPath,
		mediaDir:   cfg.Scan.Directory,
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected output to contain %q\noutput:\n%s", substr, output)
	}
}

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected output not to contain %q\noutput:\n%s", substr, output)
	}
}
