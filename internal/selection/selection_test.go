package selection

import (
	"math/rand"
	"testing"

	"mkvdefault/internal/config"
	"mkvdefault/internal/tracks"
)

func audio(id int, lang string) tracks.Track {
	return tracks.Track{ID: id, Type: tracks.TypeAudio, Properties: tracks.Properties{Language: tracks.Lang(lang)}}
}

func subtitle(id int, name string) tracks.Track {
	return tracks.Track{ID: id, Type: tracks.TypeSubtitles, Properties: tracks.Properties{TrackName: name}}
}

func ops(list []tracks.Track) []tracks.Operation {
	out := make([]tracks.Operation, len(list))
	for i, track := range list {
		out[i] = track.Operation
	}
	return out
}

func assertOps(t *testing.T, list []tracks.Track, want ...tracks.Operation) {
	t.Helper()
	got := ops(list)
	if len(got) != len(want) {
		t.Fatalf("operation count mismatch: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("track %d: got %q want %q (all: %v)", list[i].ID, got[i], want[i], got)
		}
	}
}

func TestApplySetsFirstMatchingAudio(t *testing.T) {
	list := []tracks.Track{audio(0, "eng"), audio(1, "jpn"), audio(2, "jpn")}

	result := Apply(list, Criteria{AudioLanguage: "jpn"})

	assertOps(t, list, tracks.OpUnset, tracks.OpSet, tracks.OpUnset)
	if result.SelectedAudioID != 1 {
		t.Fatalf("expected audio track 1 selected, got %d", result.SelectedAudioID)
	}
	if len(result.Audio) != 3 || result.Touched() != 3 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestApplyEmptySubtitleTitleMatchesLiterally(t *testing.T) {
	list := []tracks.Track{subtitle(0, ""), subtitle(1, "Signs")}

	result := Apply(list, Criteria{SubtitleTitle: ""})

	assertOps(t, list, tracks.OpSet, tracks.OpUnset)
	if result.SelectedSubtitleID != 0 {
		t.Fatalf("expected subtitle track 0 selected, got %d", result.SelectedSubtitleID)
	}
}

func TestApplyEmptySubtitleTitleIsNotWildcard(t *testing.T) {
	list := []tracks.Track{subtitle(0, "Signs"), subtitle(1, "Full")}

	result := Apply(list, Criteria{SubtitleTitle: ""})

	assertOps(t, list, tracks.OpUnset, tracks.OpUnset)
	if result.SubtitleSelected() {
		t.Fatalf("expected no subtitle selection, got %d", result.SelectedSubtitleID)
	}
}

func TestApplyMatchesSubtitleByExactName(t *testing.T) {
	list := []tracks.Track{subtitle(3, "signs"), subtitle(4, "Signs "), subtitle(5, "Signs"), subtitle(6, "Signs")}

	Apply(list, Criteria{SubtitleTitle: "Signs"})

	assertOps(t, list, tracks.OpUnset, tracks.OpUnset, tracks.OpSet, tracks.OpUnset)
}

func TestApplyAudioAndSubtitlesIndependent(t *testing.T) {
	list := []tracks.Track{
		{ID: 0, Type: tracks.TypeVideo},
		audio(1, "eng"),
		subtitle(2, "Full"),
		audio(3, "jpn"),
		subtitle(4, "Signs"),
		{ID: 5, Type: "buttons"},
	}

	result := Apply(list, Criteria{AudioLanguage: "jpn", SubtitleTitle: "Signs"})

	assertOps(t, list, tracks.OpNone, tracks.OpUnset, tracks.OpUnset, tracks.OpSet, tracks.OpSet, tracks.OpNone)
	if result.SelectedAudioID != 3 || result.SelectedSubtitleID != 4 {
		t.Fatalf("unexpected selection: %+v", result)
	}
	if len(result.Audio) != 2 || len(result.Subtitles) != 2 {
		t.Fatalf("unexpected touched tracks: %+v", result)
	}
}

func TestApplyNoMatchUnsetsEverything(t *testing.T) {
	list := []tracks.Track{audio(0, "eng"), audio(1, "ger")}

	result := Apply(list, Criteria{AudioLanguage: "jpn"})

	assertOps(t, list, tracks.OpUnset, tracks.OpUnset)
	if result.AudioSelected() {
		t.Fatal("expected no audio selected")
	}
}

func TestApplyMissingLanguageNeverMatches(t *testing.T) {
	list := []tracks.Track{
		{ID: 0, Type: tracks.TypeAudio},
		audio(1, ""),
	}

	Apply(list, Criteria{AudioLanguage: ""})

	assertOps(t, list, tracks.OpUnset, tracks.OpSet)
}

func TestApplyWithoutAudioOrSubtitlesTouchesNothing(t *testing.T) {
	list := []tracks.Track{{ID: 0, Type: tracks.TypeVideo}}

	result := Apply(list, Criteria{AudioLanguage: "jpn"})

	if result.Touched() != 0 {
		t.Fatalf("expected no touched tracks, got %+v", result)
	}
	assertOps(t, list, tracks.OpNone)
	if got := Apply(nil, Criteria{}); got.Touched() != 0 {
		t.Fatalf("expected empty result for nil list, got %+v", got)
	}
}

func TestApplyPreservesTrackIDs(t *testing.T) {
	list := []tracks.Track{audio(7, "jpn"), subtitle(9, ""), audio(2, "jpn")}

	Apply(list, Criteria{AudioLanguage: "jpn"})

	for i, want := range []int{7, 9, 2} {
		if list[i].ID != want {
			t.Fatalf("track %d id changed to %d", want, list[i].ID)
		}
	}
}

func TestApplyInvariantHoldsForRandomLists(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	types := []string{tracks.TypeAudio, tracks.TypeSubtitles, tracks.TypeVideo, "buttons"}
	langs := []string{"eng", "jpn", "", "und"}
	names := []string{"", "Signs", "Full"}

	for iter := 0; iter < 500; iter++ {
		list := make([]tracks.Track, rng.Intn(10))
		for i := range list {
			list[i] = tracks.Track{ID: i, Type: types[rng.Intn(len(types))]}
			if rng.Intn(4) > 0 {
				list[i].Properties.Language = tracks.Lang(langs[rng.Intn(len(langs))])
			}
			list[i].Properties.TrackName = names[rng.Intn(len(names))]
		}
		criteria := Criteria{AudioLanguage: langs[rng.Intn(len(langs))], SubtitleTitle: names[rng.Intn(len(names))]}

		Apply(list, criteria)

		setAudio, setSubs := 0, 0
		for _, track := range list {
			switch track.Type {
			case tracks.TypeAudio:
				if track.Operation == tracks.OpSet {
					setAudio++
				} else if track.Operation != tracks.OpUnset {
					t.Fatalf("audio track without operation: %+v", track)
				}
			case tracks.TypeSubtitles:
				if track.Operation == tracks.OpSet {
					setSubs++
				} else if track.Operation != tracks.OpUnset {
					t.Fatalf("subtitle track without operation: %+v", track)
				}
			default:
				if track.Operation != tracks.OpNone {
					t.Fatalf("non audio/subtitle track received %q", track.Operation)
				}
			}
		}
		if setAudio > 1 || setSubs > 1 {
			t.Fatalf("invariant violated: %d audio and %d subtitle tracks set", setAudio, setSubs)
		}
	}
}

func TestFromConfig(t *testing.T) {
	criteria := FromConfig(config.Selection{AudioLanguage: "jpn", SubtitleTitle: "Signs"})
	if criteria.AudioLanguage != "jpn" || criteria.SubtitleTitle != "Signs" {
		t.Fatalf("unexpected criteria: %+v", criteria)
	}
}
