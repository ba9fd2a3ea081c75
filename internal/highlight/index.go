// Package highlight maps audio playback time to the word being spoken.
//
// The mapping is proportional: it assumes every word takes the same share
// of the clip. There is no forced alignment.
package highlight

import "math"

// maxProgress keeps the last instant of playback on the last word.
const maxProgress = 0.999

// Index returns the word to highlight at playback time t of a clip lasting
// duration seconds with wordCount words. An unknown or zero duration is
// treated as 1. The result is always within [0, wordCount-1], and 0 when
// there are no words.
func Index(t, duration float64, wordCount int) int {
	if wordCount <= 0 {
		return 0
	}
	if duration <= 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		duration = 1
	}

	progress := math.Min(t/duration, maxProgress)
	if progress < 0 || math.IsNaN(progress) {
		progress = 0
	}

	idx := int(math.Floor(progress * float64(wordCount)))
	if idx < 0 {
		return 0
	}
	if idx > wordCount-1 {
		return wordCount - 1
	}
	return idx
}
