package selection

import (
	"mkvdefault/internal/config"
	"mkvdefault/internal/tracks"
)

// Criteria holds the values matched against track properties.
type Criteria struct {
	AudioLanguage string
	SubtitleTitle string
}

// FromConfig builds criteria from the selection section of cfg.
func FromConfig(cfg config.Selection) Criteria {
	return Criteria{AudioLanguage: cfg.AudioLanguage, SubtitleTitle: cfg.SubtitleTitle}
}

// Result summarizes one Apply call. Audio and Subtitles hold the indices (into
// the input slice) of the tracks that received an operation, in input order.
type Result struct {
	Audio     []int
	Subtitles []int
	// SelectedAudioID and SelectedSubtitleID are -1 when nothing matched.
	SelectedAudioID    int
	SelectedSubtitleID int
}

// AudioSelected reports whether an audio track was set.
func (r Result) AudioSelected() bool {
	return r.SelectedAudioID >= 0
}

// SubtitleSelected reports whether a subtitle track was set.
func (r Result) SubtitleSelected() bool {
	return r.SelectedSubtitleID >= 0
}

// Touched returns the number of tracks that received an operation.
func (r Result) Touched() int {
	return len(r.Audio) + len(r.Subtitles)
}

// Apply assigns an operation to every track in list. It never fails and has
// no side effects beyond writing Track.Operation.
func Apply(list []tracks.Track, criteria Criteria) Result {
	result := Result{SelectedAudioID: -1, SelectedSubtitleID: -1}
	audioSet := false
	subtitleSet := false

	for i := range list {
		track := &list[i]
		switch track.Type {
		case tracks.TypeAudio:
			if !audioSet && matchesLanguage(*track, criteria.AudioLanguage) {
				track.Operation = tracks.OpSet
				audioSet = true
				result.SelectedAudioID = track.ID
			} else {
				track.Operation = tracks.OpUnset
			}
			result.Audio = append(result.Audio, i)
		case tracks.TypeSubtitles:
			if !subtitleSet && track.Properties.TrackName == criteria.SubtitleTitle {
				track.Operation = tracks.OpSet
				subtitleSet = true
				result.SelectedSubtitleID = track.ID
			} else {
				track.Operation = tracks.OpUnset
			}
			result.Subtitles = append(result.Subtitles, i)
		default:
			track.Operation = tracks.OpNone
		}
	}
	return result
}

// A track without a language key never matches, not even an empty criterion.
func matchesLanguage(track tracks.Track, want string) bool {
	lang, ok := track.LanguageCode()
	return ok && lang == want
}
