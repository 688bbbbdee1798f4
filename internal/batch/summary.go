package batch

import (
	"time"
)

// Outcome classifies how a single file was handled.
type Outcome string

const (
	OutcomeEdited           Outcome = "edited"
	OutcomeUnchanged        Outcome = "unchanged"
	OutcomeInspectionFailed Outcome = "inspection_failed"
	OutcomeParseFailed      Outcome = "parse_failed"
	OutcomeError            Outcome = "error"
	// OutcomeEditFailed is only assigned in strict mode.
	OutcomeEditFailed Outcome = "edit_failed"
)

// Outcomes lists every outcome in display order.
var Outcomes = []Outcome{
	OutcomeEdited,
	OutcomeUnchanged,
	OutcomeInspectionFailed,
	OutcomeParseFailed,
	OutcomeError,
	OutcomeEditFailed,
}

// FileResult records what happened to one file.
type FileResult struct {
	Path               string  `json:"path"`
	Name               string  `json:"name"`
	Outcome            Outcome `json:"outcome"`
	Detail             string  `json:"detail,omitempty"`
	Container          string  `json:"container,omitempty"`
	AudioTracks        int     `json:"audio_tracks"`
	SubtitleTracks     int     `json:"subtitle_tracks"`
	SelectedAudioID    *int    `json:"selected_audio_id,omitempty"`
	SelectedSubtitleID *int    `json:"selected_subtitle_id,omitempty"`
	Set                int     `json:"set"`
	Unset              int     `json:"unset"`
	EditFailures       int     `json:"edit_failures"`
}

// Summary aggregates the outcome of a run.
type Summary struct {
	RunID     string       `json:"run_id"`
	Directory string       `json:"directory"`
	Extension string       `json:"extension"`
	DryRun    bool         `json:"dry_run"`
	Strict    bool         `json:"strict"`
	Canceled  bool         `json:"canceled"`
	StartedAt time.Time    `json:"started_at"`
	Duration  Duration     `json:"duration"`
	Files     []FileResult `json:"files"`
}

// Duration marshals as a human-readable string.
type Duration time.Duration

func (d Duration) String() string {
	return time.Duration(d).Round(time.Millisecond).String()
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(data []byte) error {
	parsed, err := time.ParseDuration(string(data))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// Count returns the number of files with the given outcome.
func (s Summary) Count(outcome Outcome) int {
	count := 0
	for _, file := range s.Files {
		if file.Outcome == outcome {
			count++
		}
	}
	return count
}

// TracksSet returns the number of set operations across all files.
func (s Summary) TracksSet() int {
	total := 0
	for _, file := range s.Files {
		total += file.Set
	}
	return total
}

// TracksUnset returns the number of unset operations across all files.
func (s Summary) TracksUnset() int {
	total := 0
	for _, file := range s.Files {
		total += file.Unset
	}
	return total
}

// EditFailures returns the number of failed mkvpropedit calls.
func (s Summary) EditFailures() int {
	total := 0
	for _, file := range s.Files {
		total += file.EditFailures
	}
	return total
}

// Failed reports whether the run should end with a non-zero status. Only
// strict runs with failed edits qualify; inspection failures are reported but
// never fail the run.
func (s Summary) Failed() bool {
	return s.Strict && s.Count(OutcomeEditFailed) > 0
}
