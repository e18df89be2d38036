package renderer

import (
	"math"

	"github.com/ivlev/story2video/internal/project"
)

// SceneFrames converts a scene duration to its frame count. Every
// consumer of the document must bucket frames with exactly this
// rounding, or scene boundaries drift against the compiler's
// total-duration bookkeeping.
func SceneFrames(duration float64, fps int) int {
	return int(math.Floor(duration * float64(fps)))
}

// TotalFrames sums the frame counts of all scenes.
func TotalFrames(p *project.Project, fps int) int {
	total := 0
	for _, s := range p.Scenes {
		total += SceneFrames(s.Duration, fps)
	}
	return total
}

// SceneAt resolves which scene is active at an absolute frame index and
// the frame offset within it. ok is false when the frame lies past the
// end of the document (or the document has no scenes).
func SceneAt(p *project.Project, frame, fps int) (sceneIndex, sceneFrame int, ok bool) {
	if frame < 0 {
		return 0, 0, false
	}
	start := 0
	for i, s := range p.Scenes {
		n := SceneFrames(s.Duration, fps)
		if frame < start+n {
			return i, frame - start, true
		}
		start += n
	}
	return 0, 0, false
}
