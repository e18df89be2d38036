package project

import (
	"path/filepath"
	"strings"
	"testing"
)

func validProject() *Project {
	chars := []Character{
		{ID: "char-0", Name: "Max the Dog", Color: "#F4A460", Position: Point{X: 200, Y: 350}, Scale: 1},
		{ID: "char-1", Name: "Luna the Cat", Color: "#FFA07A", Position: Point{X: 350, Y: 350}, Scale: 1},
	}
	return &Project{
		Name:  "valid",
		Story: "Max ran. Luna slept.",
		Scenes: []Scene{
			{
				ID:         "scene-0",
				Background: `<svg><rect fill="#87CEEB"/></svg>`,
				Characters: chars,
				Dialogue: []DialogueLine{
					{CharacterID: "char-0", Text: "Max ran", StartTime: 0, Duration: 3},
					{CharacterID: "char-1", Text: "Luna slept", StartTime: 3, Duration: 3},
				},
				Duration: 6,
				Animations: []Animation{
					{TargetID: "char-0", Type: AnimAppear, From: PoseValue(0, 0), To: PoseValue(1, 1), StartTime: 0.5, Duration: 0.5, Easing: EaseOut},
					{TargetID: "char-0", Type: AnimMove, From: PointValue(200, 350), To: PointValue(220, 350), StartTime: 1, Duration: 1, Easing: EaseInOut},
				},
			},
			{
				ID:         "scene-1",
				Background: `<svg><rect fill="#FFE4B5"/></svg>`,
				Characters: chars[:1],
				Duration:   6,
			},
		},
		Metadata: Metadata{FPS: 30, Width: 1920, Height: 1080, TotalDuration: 12},
	}
}

func TestValidateAccepts(t *testing.T) {
	if err := validProject().Validate(); err != nil {
		t.Errorf("Expected valid project, got %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Project)
		want   string
	}{
		{"duration below floor", func(p *Project) { p.Scenes[0].Duration = 5; p.RecomputeTotalDuration() }, "below floor"},
		{"dialogue floor", func(p *Project) {
			p.Scenes[1].Characters = p.Scenes[0].Characters
			for i := 0; i < 3; i++ {
				p.Scenes[1].Dialogue = append(p.Scenes[1].Dialogue,
					DialogueLine{CharacterID: "char-0", Text: "x", StartTime: float64(i) * 3, Duration: 3})
			}
		}, "below floor"},
		{"unknown dialogue speaker", func(p *Project) { p.Scenes[0].Dialogue[0].CharacterID = "ghost" }, "unknown character"},
		{"unknown animation target", func(p *Project) { p.Scenes[0].Animations[0].TargetID = "ghost" }, "unknown character"},
		{"animation past scene end", func(p *Project) { p.Scenes[0].Animations[1].StartTime = 5.5 }, "past scene duration"},
		{"overlapping dialogue", func(p *Project) {
			p.Scenes[0].Dialogue[1].CharacterID = "char-0"
			p.Scenes[0].Dialogue[1].StartTime = 1
		}, "overlapping"},
		{"stale total duration", func(p *Project) { p.Metadata.TotalDuration = 99 }, "totalDuration"},
		{"negative start", func(p *Project) { p.Scenes[0].Dialogue[0].StartTime = -1 }, "invalid timing"},
	}

	for _, tt := range tests {
		p := validProject()
		tt.mutate(p)
		err := p.Validate()
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: expected %q in error, got %v", tt.name, tt.want, err)
		}
	}
}

func TestReplaceScenes(t *testing.T) {
	p := validProject()
	p.ReplaceScenes(p.Scenes[:1])
	if p.Metadata.TotalDuration != 6 {
		t.Errorf("Expected total duration 6 after replace, got %v", p.Metadata.TotalDuration)
	}
}

func TestCharacterByID(t *testing.T) {
	p := validProject()
	if c, ok := p.Scenes[0].CharacterByID("char-1"); !ok || c.Name != "Luna the Cat" {
		t.Errorf("Expected Luna the Cat, got %+v (found %v)", c, ok)
	}
	if _, ok := p.Scenes[0].CharacterByID("nope"); ok {
		t.Error("Expected lookup miss for unknown id")
	}
}

func TestWriteReadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	p := validProject()

	if err := Write(p, path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	back, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if back.Name != p.Name {
		t.Errorf("Expected name %s, got %s", p.Name, back.Name)
	}
	if len(back.Scenes) != 2 {
		t.Fatalf("Expected 2 scenes, got %d", len(back.Scenes))
	}
	if err := back.Validate(); err != nil {
		t.Errorf("Round-tripped project must validate: %v", err)
	}
	if back.Scenes[0].Animations[0].From.Kind() != KindPose {
		t.Errorf("Animation value lost its shape: %v", back.Scenes[0].Animations[0].From.Kind())
	}
}

func TestWriteReadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.yaml")
	p := validProject()

	if err := Write(p, path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	back, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if err := back.Validate(); err != nil {
		t.Errorf("Round-tripped project must validate: %v", err)
	}
	if back.Scenes[0].Animations[1].To.Kind() != KindPoint {
		t.Errorf("Animation value lost its shape: %v", back.Scenes[0].Animations[1].To.Kind())
	}
}
