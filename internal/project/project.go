package project

// Point is a position in the fixed 1920x1080 stage coordinate space
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Character is a project-local instance of a character template.
// Sprite, color and expressions are value copies taken at creation time,
// so later template edits never leak into an existing project.
type Character struct {
	ID          string            `json:"id" yaml:"id"`
	Name        string            `json:"name" yaml:"name"`
	Sprite      string            `json:"sprite" yaml:"sprite"`
	Position    Point             `json:"position" yaml:"position"`
	Scale       float64           `json:"scale" yaml:"scale"`
	Color       string            `json:"color" yaml:"color"`
	Expressions map[string]string `json:"expressions" yaml:"expressions"`
}

// DialogueLine is a timed subtitle spoken by one character.
// Times are in seconds relative to the start of the containing scene.
type DialogueLine struct {
	CharacterID string  `json:"characterId" yaml:"characterId"`
	Text        string  `json:"text" yaml:"text"`
	AudioURL    string  `json:"audioUrl,omitempty" yaml:"audioUrl,omitempty"`
	StartTime   float64 `json:"startTime" yaml:"startTime"`
	Duration    float64 `json:"duration" yaml:"duration"`
}

// Animation is a timed transition of one character attribute.
// TargetID is a lookup key into the scene's character list, not a pointer.
type Animation struct {
	TargetID  string        `json:"targetId" yaml:"targetId"`
	Type      AnimationType `json:"type" yaml:"type"`
	From      Value         `json:"from" yaml:"from"`
	To        Value         `json:"to" yaml:"to"`
	StartTime float64       `json:"startTime" yaml:"startTime"`
	Duration  float64       `json:"duration" yaml:"duration"`
	Easing    Easing        `json:"easing,omitempty" yaml:"easing,omitempty"`
}

// Scene is a time-bounded segment: one background, a character roster,
// dialogue cues and keyframe animations. Duration is in seconds.
type Scene struct {
	ID         string         `json:"id" yaml:"id"`
	Background string         `json:"background" yaml:"background"`
	Characters []Character    `json:"characters" yaml:"characters"`
	Dialogue   []DialogueLine `json:"dialogue" yaml:"dialogue"`
	Duration   float64        `json:"duration" yaml:"duration"`
	Animations []Animation    `json:"animations" yaml:"animations"`
}

// Metadata carries the fixed render parameters of a project.
type Metadata struct {
	FPS           int     `json:"fps" yaml:"fps"`
	Width         int     `json:"width" yaml:"width"`
	Height        int     `json:"height" yaml:"height"`
	TotalDuration float64 `json:"totalDuration" yaml:"totalDuration"`
}

// Project is the compiled animation document. The compiler leaves ID
// empty; the store assigns it on first save.
type Project struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Story    string   `json:"story" yaml:"story"`
	Scenes   []Scene  `json:"scenes" yaml:"scenes"`
	Metadata Metadata `json:"metadata" yaml:"metadata"`
}

// TotalDuration sums scene durations.
func TotalDuration(scenes []Scene) float64 {
	total := 0.0
	for _, s := range scenes {
		total += s.Duration
	}
	return total
}

// Rename changes the display name only.
func (p *Project) Rename(name string) {
	p.Name = name
}

// ReplaceScenes swaps the scene list and keeps the duration bookkeeping
// consistent. Any edit that touches scene durations must go through here
// or call RecomputeTotalDuration itself.
func (p *Project) ReplaceScenes(scenes []Scene) {
	p.Scenes = scenes
	p.RecomputeTotalDuration()
}

// RecomputeTotalDuration refreshes metadata after scene edits.
func (p *Project) RecomputeTotalDuration() {
	p.Metadata.TotalDuration = TotalDuration(p.Scenes)
}

// CharacterByID looks a character up in a scene's roster.
func (s *Scene) CharacterByID(id string) (Character, bool) {
	for _, c := range s.Characters {
		if c.ID == id {
			return c, true
		}
	}
	return Character{}, false
}
