// Package compiler turns a story into a fully time-scheduled animation
// document. The compilation is pure: same story plus same catalog gives
// byte-identical output, with no clock, randomness or global state
// involved, so a Compiler may be shared across goroutines.
package compiler

import (
	"fmt"
	"math"
	"strings"

	"github.com/ivlev/story2video/internal/project"
	"github.com/ivlev/story2video/internal/story"
	"github.com/ivlev/story2video/internal/templates"
)

// Stage and schedule constants. These are part of the document contract:
// renderers assume the same values when resolving frames.
const (
	DefaultFPS    = 30
	StageWidth    = 1920
	StageHeight   = 1080
	dialogueSlot  = 3.0 // seconds per dialogue line
	sceneFloor    = 6.0 // minimum scene duration
	characterBase = 200.0
	characterStep = 150.0
	characterY    = 350.0
)

// Compiler generates animation documents from story text.
type Compiler struct {
	Catalog   templates.Catalog
	Extractor *story.Extractor

	// MaxCharacters caps how many extracted names become characters.
	// Names beyond the cap are dropped before template cycling.
	MaxCharacters int
	// SentencesPerScene is the chunk size for scene grouping. The last
	// scene may hold fewer sentences.
	SentencesPerScene int
}

// New creates a Compiler with the default limits over the given catalog.
func New(catalog templates.Catalog) *Compiler {
	return &Compiler{
		Catalog:           catalog,
		Extractor:         story.NewExtractor(),
		MaxCharacters:     4,
		SentencesPerScene: 2,
	}
}

// Compile builds the animation document for a story. It is total: any
// UTF-8 input yields a valid document, degrading to zero scenes or zero
// characters rather than failing. The project id is left empty for the
// store to assign.
func (c *Compiler) Compile(name, text string) *project.Project {
	sentences := c.Extractor.Sentences(text)
	names := c.Extractor.Names(text)

	characters := c.assignCharacters(names)
	scenes := c.buildScenes(sentences, characters)

	return &project.Project{
		Name:   name,
		Story:  text,
		Scenes: scenes,
		Metadata: project.Metadata{
			FPS:           DefaultFPS,
			Width:         StageWidth,
			Height:        StageHeight,
			TotalDuration: project.TotalDuration(scenes),
		},
	}
}

// assignCharacters maps the first MaxCharacters names onto character
// templates, cycling the catalog when names outnumber templates. All
// template data is copied by value.
func (c *Compiler) assignCharacters(names []string) []project.Character {
	if len(c.Catalog.Characters) == 0 {
		return nil
	}
	if len(names) > c.MaxCharacters {
		names = names[:c.MaxCharacters]
	}

	characters := make([]project.Character, 0, len(names))
	for i, name := range names {
		tpl := c.Catalog.Characters[i%len(c.Catalog.Characters)]
		characters = append(characters, project.Character{
			ID:          fmt.Sprintf("char-%d", i),
			Name:        name,
			Sprite:      tpl.SVG,
			Position:    project.Point{X: characterBase + float64(i)*characterStep, Y: characterY},
			Scale:       1.0,
			Color:       tpl.BaseColor,
			Expressions: copyExpressions(tpl.Expressions),
		})
	}
	return characters
}

// buildScenes groups sentences into fixed-size chunks and derives one
// scene per chunk: background by catalog cycling, roster by
// case-insensitive name match against the chunk text, then dialogue and
// the idle talk gesture per present character.
func (c *Compiler) buildScenes(sentences []string, characters []project.Character) []project.Scene {
	if len(c.Catalog.Scenes) == 0 {
		return nil
	}

	var scenes []project.Scene
	for i := 0; i < len(sentences); i += c.SentencesPerScene {
		end := i + c.SentencesPerScene
		if end > len(sentences) {
			end = len(sentences)
		}
		chunk := sentences[i:end]
		sceneText := strings.Join(chunk, ". ")

		tpl := c.Catalog.Scenes[len(scenes)%len(c.Catalog.Scenes)]

		// Roster order follows the project character list, not the
		// order of occurrence in the text.
		var present []project.Character
		lowerText := strings.ToLower(sceneText)
		for _, ch := range characters {
			if strings.Contains(lowerText, strings.ToLower(ch.Name)) {
				present = append(present, ch)
			}
		}

		dialogue := buildDialogue(chunk, sceneText, present)
		duration := math.Max(sceneFloor, float64(len(dialogue))*dialogueSlot)
		animations := buildAnimations(present, duration)

		scenes = append(scenes, project.Scene{
			ID:         fmt.Sprintf("scene-%d", len(scenes)),
			Background: tpl.SVG,
			Characters: present,
			Dialogue:   dialogue,
			Duration:   duration,
			Animations: animations,
		})
	}
	return scenes
}

// buildDialogue assigns one line per present character by ordinal slot.
// The idx-th sentence of the chunk is used when it exists; shorter
// chunks fall back to the full scene text. This is a structural
// assignment, not speaker attribution.
func buildDialogue(chunk []string, sceneText string, present []project.Character) []project.DialogueLine {
	dialogue := make([]project.DialogueLine, 0, len(present))
	for idx, ch := range present {
		text := sceneText
		if idx < len(chunk) {
			text = chunk[idx]
		}
		dialogue = append(dialogue, project.DialogueLine{
			CharacterID: ch.ID,
			Text:        text,
			StartTime:   float64(idx) * dialogueSlot,
			Duration:    dialogueSlot,
		})
	}
	return dialogue
}

// buildAnimations emits the fixed idle talk gesture per character:
// appear, a small step aside while speaking, and the step back.
// Windows are clamped to the scene duration so the schedule stays
// in range by construction.
func buildAnimations(present []project.Character, sceneDuration float64) []project.Animation {
	var animations []project.Animation
	for idx, ch := range present {
		fidx := float64(idx)
		offset := 20.0
		if idx%2 != 0 {
			offset = -20.0
		}
		home := ch.Position
		aside := project.Point{X: home.X + offset, Y: home.Y}

		animations = append(animations,
			clampToScene(project.Animation{
				TargetID:  ch.ID,
				Type:      project.AnimAppear,
				From:      project.PoseValue(0, 0),
				To:        project.PoseValue(1, 1),
				StartTime: 0.5 + fidx*0.2,
				Duration:  0.5,
				Easing:    project.EaseOut,
			}, sceneDuration),
			clampToScene(project.Animation{
				TargetID:  ch.ID,
				Type:      project.AnimMove,
				From:      project.PointValue(home.X, home.Y),
				To:        project.PointValue(aside.X, aside.Y),
				StartTime: fidx*dialogueSlot + 1,
				Duration:  1,
				Easing:    project.EaseInOut,
			}, sceneDuration),
			clampToScene(project.Animation{
				TargetID:  ch.ID,
				Type:      project.AnimMove,
				From:      project.PointValue(aside.X, aside.Y),
				To:        project.PointValue(home.X, home.Y),
				StartTime: fidx*dialogueSlot + 2.5,
				Duration:  1,
				Easing:    project.EaseInOut,
			}, sceneDuration),
		)
	}
	return animations
}

// clampToScene trims an animation window that would run past the end of
// the scene. The last character's step-back would otherwise overshoot
// by half a second whenever the dialogue slots fill the scene exactly.
func clampToScene(a project.Animation, sceneDuration float64) project.Animation {
	if a.StartTime+a.Duration > sceneDuration {
		a.Duration = sceneDuration - a.StartTime
	}
	return a
}

func copyExpressions(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
