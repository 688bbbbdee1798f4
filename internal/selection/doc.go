// Package selection decides which audio and subtitle track of a file should
// carry the default flag.
//
// The rule is first-match in track order: the first audio track whose
// language equals Criteria.AudioLanguage and the first subtitle track whose
// name equals Criteria.SubtitleTitle are set; every other audio and subtitle
// track is unset. Comparisons are exact, so an empty criterion only matches an
// empty field. Tracks of any other type get no operation.
//
// Primary entry point:
//   - Apply: assigns operations in place and reports what was chosen
package selection
