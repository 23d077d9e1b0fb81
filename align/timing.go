package align

import (
	"fmt"
	"time"
)

// FrameDuration is the fixed MFCC analysis window every matched frame
// index is projected back to wall-clock time with. It must match the
// frame duration the Featurizer in use actually produces.
const FrameDuration = 40 * time.Millisecond

// framesToSeconds converts a frame count to elapsed seconds.
func framesToSeconds(frames int) float64 {
	return float64(frames) * FrameDuration.Seconds()
}

// secondsToDuration converts elapsed seconds to a time.Duration, the
// counterpart of formatTime for callers that want a typed duration
// instead of the rendered wire format.
func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}

// frameIndex converts a raw sample offset into a frame index at
// sampleRate, using the same 40ms window Featurize is expected to use.
func frameIndex(sampleOffset, sampleRate int) int {
	frameLen := int(float64(sampleRate) * FrameDuration.Seconds())
	if frameLen <= 0 {
		return 0
	}

	return sampleOffset / frameLen
}

// formatTime renders seconds as H:MM:SS.mmm, the sync map's wire format.
func formatTime(seconds float64) string {
	d := time.Duration(seconds * float64(time.Second))
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	secs := d / time.Second
	d -= secs * time.Second
	ms := d / time.Millisecond

	return fmt.Sprintf("%d:%02d:%02d.%03d", hours, minutes, secs, ms)
}
