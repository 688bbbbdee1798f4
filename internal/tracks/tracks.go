// Package tracks defines the track model shared by the inspector, the
// selection policy, and the flag editor.
package tracks

// Type is the track kind reported by mkvmerge.
type Type = string

const (
	TypeAudio     Type = "audio"
	TypeSubtitles Type = "subtitles"
	TypeVideo     Type = "video"
)

// Operation is the default-flag change decided for a track.
type Operation string

const (
	// OpNone leaves the track untouched; it is never passed to the editor.
	OpNone  Operation = ""
	OpSet   Operation = "set"
	OpUnset Operation = "unset"
)

// Properties holds the mkvmerge per-track properties the selection policy
// reads. Every other key is ignored, whatever its type.
type Properties struct {
	// Language is nil when mkvmerge omits the key.
	Language  *string `json:"language,omitempty"`
	TrackName string  `json:"track_name,omitempty"`
}

// Track is one stream inside a media file. ID is 0-based as reported by
// mkvmerge and is never rewritten.
type Track struct {
	ID         int        `json:"id"`
	Type       Type       `json:"type"`
	Properties Properties `json:"properties"`
	Operation  Operation  `json:"-"`
}

// LanguageCode returns the reported language and whether the key was present.
func (t Track) LanguageCode() (string, bool) {
	if t.Properties.Language == nil {
		return "", false
	}
	return *t.Properties.Language, true
}

// HasOperation reports whether the editor must touch this track.
func (t Track) HasOperation() bool {
	return t.Operation == OpSet || t.Operation == OpUnset
}

// Lang is a convenience for building Properties literals.
func Lang(code string) *string {
	return &code
}
