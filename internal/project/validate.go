package project

import (
	"fmt"
	"math"
)

// timeEpsilon absorbs float accumulation when comparing schedule bounds.
const timeEpsilon = 1e-9

// Validate checks the structural invariants of a compiled document:
// duration floors, total-duration bookkeeping, referential integrity of
// dialogue and animation targets, animation windows inside their scene,
// and non-overlapping dialogue per character within a scene.
func (p *Project) Validate() error {
	for _, s := range p.Scenes {
		if err := s.validate(); err != nil {
			return fmt.Errorf("scene %s: %w", s.ID, err)
		}
	}

	want := TotalDuration(p.Scenes)
	if math.Abs(p.Metadata.TotalDuration-want) > timeEpsilon {
		return fmt.Errorf("metadata totalDuration %.3f does not match scene sum %.3f",
			p.Metadata.TotalDuration, want)
	}
	return nil
}

func (s *Scene) validate() error {
	floor := math.Max(6, float64(len(s.Dialogue))*3)
	if s.Duration < floor-timeEpsilon {
		return fmt.Errorf("duration %.2f below floor %.2f", s.Duration, floor)
	}

	roster := make(map[string]bool, len(s.Characters))
	for _, c := range s.Characters {
		roster[c.ID] = true
	}

	// Per-character dialogue windows, checked for overlap below.
	windows := make(map[string][][2]float64)

	for i, d := range s.Dialogue {
		if !roster[d.CharacterID] {
			return fmt.Errorf("dialogue %d references unknown character %q", i, d.CharacterID)
		}
		if d.StartTime < 0 || d.Duration <= 0 {
			return fmt.Errorf("dialogue %d has invalid timing (start %.2f, duration %.2f)",
				i, d.StartTime, d.Duration)
		}
		windows[d.CharacterID] = append(windows[d.CharacterID], [2]float64{d.StartTime, d.StartTime + d.Duration})
	}

	for id, ws := range windows {
		for i := 0; i < len(ws); i++ {
			for j := i + 1; j < len(ws); j++ {
				if ws[i][0] < ws[j][1]-timeEpsilon && ws[j][0] < ws[i][1]-timeEpsilon {
					return fmt.Errorf("character %q has overlapping dialogue windows", id)
				}
			}
		}
	}

	for i, a := range s.Animations {
		if !roster[a.TargetID] {
			return fmt.Errorf("animation %d references unknown character %q", i, a.TargetID)
		}
		if a.StartTime < 0 || a.Duration <= 0 {
			return fmt.Errorf("animation %d has invalid timing (start %.2f, duration %.2f)",
				i, a.StartTime, a.Duration)
		}
		if a.StartTime+a.Duration > s.Duration+timeEpsilon {
			return fmt.Errorf("animation %d ends at %.2f past scene duration %.2f",
				i, a.StartTime+a.Duration, s.Duration)
		}
	}

	return nil
}
