package renderer

import "github.com/ivlev/story2video/internal/project"

// EasingFunc maps linear progress [0,1] to eased progress [0,1].
type EasingFunc func(t float64) float64

// ForPreset resolves a named easing preset. Unknown or empty names fall
// back to easeInOut, the document default.
func ForPreset(e project.Easing) EasingFunc {
	switch e {
	case project.EaseLinear:
		return Linear
	case project.EaseIn:
		return EaseInCubic
	case project.EaseOut:
		return EaseOutCubic
	default:
		return EaseInOutCubic
	}
}

func Linear(t float64) float64 {
	return t
}

func EaseInCubic(t float64) float64 {
	return t * t * t
}

func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// EaseInOutCubic is the smooth in-out curve used for movement.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - pow(-2*t+2, 3)/2
}

// lerp performs linear interpolation between a and b
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// pow calculates x^n
func pow(x float64, n int) float64 {
	result := 1.0
	for i := 0; i < n; i++ {
		result *= x
	}
	return result
}
