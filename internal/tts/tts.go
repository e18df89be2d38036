// Package tts builds speech audio URLs for dialogue lines. It targets
// the public Google Translate TTS endpoint, which plays directly in a
// browser's audio element with no API key.
package tts

import (
	"fmt"
	"net/url"

	"github.com/ivlev/story2video/internal/project"
)

const defaultHost = "https://translate.google.com"

// Generator builds per-line audio URLs.
type Generator struct {
	// Host overrides the TTS endpoint origin, mainly for tests.
	Host string
	// Lang is the speech language code; empty means "en".
	Lang string
	// Slow selects the reduced speaking rate.
	Slow bool
}

func NewGenerator() *Generator {
	return &Generator{Lang: "en"}
}

// AudioURL returns the playback URL for one piece of text. Empty text
// yields an empty URL so the player falls back to silent subtitles.
func (g *Generator) AudioURL(text string) string {
	if text == "" {
		return ""
	}

	host := g.Host
	if host == "" {
		host = defaultHost
	}
	lang := g.Lang
	if lang == "" {
		lang = "en"
	}
	speed := "1"
	if g.Slow {
		speed = "0.24"
	}

	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("q", text)
	q.Set("tl", lang)
	q.Set("total", "1")
	q.Set("idx", "0")
	q.Set("textlen", fmt.Sprintf("%d", len([]rune(text))))
	q.Set("client", "tw-ob")
	q.Set("ttsspeed", speed)

	return host + "/translate_tts?" + q.Encode()
}

// AttachAudio fills in the audio URL of every dialogue line that does
// not already have one. Lines with hand-assigned URLs are left alone.
func (g *Generator) AttachAudio(p *project.Project) {
	for si := range p.Scenes {
		for di := range p.Scenes[si].Dialogue {
			line := &p.Scenes[si].Dialogue[di]
			if line.AudioURL == "" {
				line.AudioURL = g.AudioURL(line.Text)
			}
		}
	}
}
