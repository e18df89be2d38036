package renderer

import (
	"math"

	"github.com/ivlev/story2video/internal/project"
)

// CharacterState is the resolved pose of one character at one frame.
type CharacterState struct {
	Position   project.Point
	Scale      float64
	Rotation   float64 // degrees
	Opacity    float64
	Expression string
}

// StateAt resolves a character's pose at a scene-local frame by
// applying every animation window that is active at that frame to the
// character's resting state. Inactive animations contribute nothing;
// the state snaps back when a window ends, matching the playback
// contract this document format was designed against.
func StateAt(scene *project.Scene, ch project.Character, sceneFrame, fps int) CharacterState {
	state := CharacterState{
		Position:   ch.Position,
		Scale:      ch.Scale,
		Opacity:    1.0,
		Expression: "neutral",
	}

	t := float64(sceneFrame) / float64(fps)

	for _, anim := range scene.Animations {
		if anim.TargetID != ch.ID {
			continue
		}
		if anim.Duration <= 0 || t < anim.StartTime || t >= anim.StartTime+anim.Duration {
			continue
		}

		progress := ForPreset(anim.Easing)((t - anim.StartTime) / anim.Duration)
		applyAnimation(&state, anim, progress, ch.Scale)
	}

	// An active dialogue line overrides the expression and adds the
	// subtle talk bounce.
	for _, d := range scene.Dialogue {
		if d.CharacterID != ch.ID {
			continue
		}
		startFrame := d.StartTime * float64(fps)
		endFrame := (d.StartTime + d.Duration) * float64(fps)
		if float64(sceneFrame) >= startFrame && float64(sceneFrame) < endFrame {
			state.Expression = "talking"
			state.Scale += math.Sin(float64(sceneFrame)*0.5) * 0.05
			break
		}
	}

	return state
}

// applyAnimation folds one active animation into the state. The switch
// is exhaustive over the document's animation types; the value union
// guarantees the endpoint shapes per type.
func applyAnimation(state *CharacterState, anim project.Animation, progress, baseScale float64) {
	switch anim.Type {
	case project.AnimMove:
		if anim.From.Point == nil || anim.To.Point == nil {
			return
		}
		state.Position.X = lerp(anim.From.Point.X, anim.To.Point.X, progress)
		state.Position.Y = lerp(anim.From.Point.Y, anim.To.Point.Y, progress)

	case project.AnimScale:
		if anim.From.Scalar == nil || anim.To.Scalar == nil {
			return
		}
		state.Scale = lerp(*anim.From.Scalar, *anim.To.Scalar, progress)

	case project.AnimRotate:
		if anim.From.Scalar == nil || anim.To.Scalar == nil {
			return
		}
		state.Rotation = lerp(*anim.From.Scalar, *anim.To.Scalar, progress)

	case project.AnimAppear, project.AnimDisappear:
		if anim.From.Pose == nil || anim.To.Pose == nil {
			return
		}
		state.Opacity = lerp(anim.From.Pose.Opacity, anim.To.Pose.Opacity, progress)
		state.Scale = lerp(anim.From.Pose.Scale, anim.To.Pose.Scale, progress) * baseScale

	case project.AnimExpression:
		if anim.To.Expression == "" {
			return
		}
		state.Expression = anim.To.Expression
	}
}

// ActiveDialogue returns the dialogue line showing at a scene-local
// frame, if any. At most one line is active per scene slot in compiled
// documents; for hand-edited documents the first match wins.
func ActiveDialogue(scene *project.Scene, sceneFrame, fps int) (project.DialogueLine, bool) {
	for _, d := range scene.Dialogue {
		startFrame := d.StartTime * float64(fps)
		endFrame := (d.StartTime + d.Duration) * float64(fps)
		if float64(sceneFrame) >= startFrame && float64(sceneFrame) < endFrame {
			return d, true
		}
	}
	return project.DialogueLine{}, false
}
