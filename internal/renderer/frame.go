package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ivlev/story2video/internal/project"
)

// Documents place characters in a fixed logical stage; output frames
// may use any geometry, so stage coordinates are scaled on paint.
const (
	stageWidth  = 1920
	stageHeight = 1080
)

// Sprite box of a character template, in stage pixels before scaling.
const (
	spriteWidth  = 100
	spriteHeight = 120
)

// FrameRenderer paints document frames into RGBA images. It holds no
// mutable state beyond the buffer pool and is safe for concurrent use.
type FrameRenderer struct {
	Width  int
	Height int
	FPS    int

	pool *framePool
}

// NewFrameRenderer creates a renderer for the given geometry.
func NewFrameRenderer(width, height, fps int) *FrameRenderer {
	return &FrameRenderer{
		Width:  width,
		Height: height,
		FPS:    fps,
		pool:   newFramePool(width, height),
	}
}

// RenderFrame paints the given absolute frame of a document. The
// returned image comes from the renderer's pool; hand it back with
// Release once encoded.
func (r *FrameRenderer) RenderFrame(p *project.Project, frame int) (*image.RGBA, error) {
	idx, sceneFrame, ok := SceneAt(p, frame, r.FPS)
	if !ok {
		return nil, fmt.Errorf("frame %d is out of range (%d total)", frame, TotalFrames(p, r.FPS))
	}
	scene := &p.Scenes[idx]

	img := r.pool.Get()

	r.paintBackground(img, scene)

	for _, ch := range scene.Characters {
		state := StateAt(scene, ch, sceneFrame, r.FPS)
		r.paintCharacter(img, ch, state)
	}

	if d, ok := ActiveDialogue(scene, sceneFrame, r.FPS); ok {
		r.paintSubtitle(img, scene, d)
	}

	// White flash over the first 0.3s of every scene.
	flashFrames := float64(r.FPS) * 0.3
	if float64(sceneFrame) < flashFrames {
		alpha := 1.0 - float64(sceneFrame)/flashFrames
		fillRect(img, img.Bounds(), color.RGBA{255, 255, 255, 255}, alpha)
	}

	return img, nil
}

// Release returns a frame buffer to the pool.
func (r *FrameRenderer) Release(img *image.RGBA) {
	r.pool.Put(img)
}

// paintBackground approximates the SVG background with its two leading
// fill colors: the first paints the upper band, the second the ground.
func (r *FrameRenderer) paintBackground(img *image.RGBA, scene *project.Scene) {
	primary, secondary := backgroundColors(scene.Background)

	bounds := img.Bounds()
	fillRect(img, bounds, primary, 1.0)

	groundTop := bounds.Min.Y + bounds.Dy()*2/3
	ground := image.Rect(bounds.Min.X, groundTop, bounds.Max.X, bounds.Max.Y)
	fillRect(img, ground, secondary, 1.0)
}

// backgroundColors pulls the first two hex fills out of an SVG
// fragment. Plain color strings work too. Missing colors default to a
// sky/grass pair.
func backgroundColors(svg string) (color.RGBA, color.RGBA) {
	primary := color.RGBA{135, 206, 235, 255} // #87CEEB
	secondary := color.RGBA{144, 238, 144, 255}

	var found []color.RGBA
	rest := svg
	for len(found) < 2 {
		i := strings.Index(rest, `fill="#`)
		if i < 0 {
			break
		}
		rest = rest[i+len(`fill="`):]
		j := strings.IndexByte(rest, '"')
		if j < 0 {
			break
		}
		if c, ok := parseHexColor(rest[:j]); ok {
			found = append(found, c)
		}
		rest = rest[j:]
	}

	if len(found) > 0 {
		primary = found[0]
	} else if c, ok := parseHexColor(svg); ok {
		// Background may be a bare color instead of SVG.
		primary = c
		secondary = c
	}
	if len(found) > 1 {
		secondary = found[1]
	}
	return primary, secondary
}

// paintCharacter draws the flat storybook sprite: body ellipse, head,
// eyes and a mouth when talking. Rotation is resolved in the state but
// not applied to these flat shapes.
func (r *FrameRenderer) paintCharacter(img *image.RGBA, ch project.Character, state CharacterState) {
	if state.Opacity <= 0 || state.Scale <= 0 {
		return
	}

	body, _ := parseHexColor(ch.Color)
	dark := color.RGBA{0, 0, 0, 255}

	kx := float64(r.Width) / stageWidth
	ky := float64(r.Height) / stageHeight

	// Sprite-space -> output-space mapping, box centered on position.
	sx := func(x float64) float64 {
		return (state.Position.X + (x-spriteWidth/2)*state.Scale) * kx
	}
	sy := func(y float64) float64 {
		return (state.Position.Y + (y-spriteHeight/2)*state.Scale) * ky
	}
	rx := func(v float64) float64 { return v * state.Scale * kx }
	ry := func(v float64) float64 { return v * state.Scale * ky }
	a := clamp01(state.Opacity)

	fillEllipse(img, sx(50), sy(70), rx(25), ry(30), body, a) // body
	fillEllipse(img, sx(50), sy(35), rx(20), ry(20), body, a) // head
	fillEllipse(img, sx(43), sy(32), rx(3), ry(3), dark, a)   // eyes
	fillEllipse(img, sx(57), sy(32), rx(3), ry(3), dark, a)

	switch state.Expression {
	case "talking", "surprised":
		fillEllipse(img, sx(50), sy(48), rx(5), ry(4), dark, a)
	case "happy":
		fillEllipse(img, sx(50), sy(49), rx(7), ry(2), dark, a)
	}

	// Name tag above the sprite.
	label := ch.Name
	lx := int(state.Position.X*kx) - len(label)*basicfont.Face7x13.Advance/2
	ly := int(sy(0)) - 8
	drawText(img, label, lx, ly, dark)
}

// paintSubtitle draws the active dialogue line in a banner near the
// bottom of the stage, prefixed with the speaker's name.
func (r *FrameRenderer) paintSubtitle(img *image.RGBA, scene *project.Scene, d project.DialogueLine) {
	text := d.Text
	if ch, ok := scene.CharacterByID(d.CharacterID); ok {
		text = ch.Name + ": " + text
	}

	face := basicfont.Face7x13
	textWidth := len(text) * face.Advance
	pad := 20

	bounds := img.Bounds()
	cx := bounds.Min.X + bounds.Dx()/2
	bannerBottom := bounds.Max.Y - 80
	banner := image.Rect(cx-textWidth/2-pad, bannerBottom-face.Height-pad,
		cx+textWidth/2+pad, bannerBottom)

	fillRect(img, banner, color.RGBA{255, 255, 255, 255}, 0.9)
	drawText(img, text, cx-textWidth/2, bannerBottom-pad, color.RGBA{40, 40, 40, 255})
}

func drawText(img *image.RGBA, text string, x, y int, c color.RGBA) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// fillRect blends a rectangle over the image with the given opacity.
func fillRect(img *image.RGBA, rect image.Rectangle, c color.RGBA, alpha float64) {
	if alpha >= 1.0 {
		draw.Draw(img, rect, image.NewUniform(c), image.Point{}, draw.Src)
		return
	}
	blended := color.RGBA{c.R, c.G, c.B, uint8(clamp01(alpha) * 255)}
	draw.Draw(img, rect, image.NewUniform(blended), image.Point{}, draw.Over)
}

// fillEllipse blends an axis-aligned ellipse centered at (cx, cy).
func fillEllipse(img *image.RGBA, cx, cy, rx, ry float64, c color.RGBA, alpha float64) {
	if rx <= 0 || ry <= 0 {
		return
	}
	rect := image.Rect(int(cx-rx), int(cy-ry), int(cx+rx)+1, int(cy+ry)+1).Intersect(img.Bounds())
	src := color.RGBA{c.R, c.G, c.B, uint8(clamp01(alpha) * 255)}
	uniform := image.NewUniform(src)

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		dy := (float64(y) + 0.5 - cy) / ry
		if dy*dy > 1 {
			continue
		}
		// Horizontal span of the ellipse at this row.
		half := rx * math.Sqrt(1-dy*dy)
		x0 := int(cx - half)
		x1 := int(cx+half) + 1
		row := image.Rect(x0, y, x1, y+1).Intersect(rect)
		draw.Draw(img, row, uniform, image.Point{}, draw.Over)
	}
}

func parseHexColor(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || s[0] != '#' {
		return color.RGBA{128, 128, 128, 255}, false
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{128, 128, 128, 255}, false
	}
	var v [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexDigit(hex[i*2])
		lo, ok2 := hexDigit(hex[i*2+1])
		if !ok1 || !ok2 {
			return color.RGBA{128, 128, 128, 255}, false
		}
		v[i] = hi<<4 | lo
	}
	return color.RGBA{v[0], v[1], v[2], 255}, true
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
