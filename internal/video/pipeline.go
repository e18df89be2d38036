package video

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/story2video/internal/project"
	"github.com/ivlev/story2video/internal/renderer"
)

// Pipeline renders a project scene by scene and encodes each scene as
// its own segment in parallel, then concatenates the segments. Scenes
// are independent, which is what makes the parallel split safe.
type Pipeline struct {
	Renderer *renderer.FrameRenderer
	Encoder  Encoder
	// Workers caps the number of concurrently encoded scenes.
	Workers int
	// Progress, when set, is called after each finished segment.
	Progress func(done, total int)
}

func NewPipeline(r *renderer.FrameRenderer, enc Encoder, workers int) *Pipeline {
	if workers < 1 {
		workers = 1
	}
	return &Pipeline{Renderer: r, Encoder: enc, Workers: workers}
}

// Render produces the final video file for the project.
func (pl *Pipeline) Render(ctx context.Context, p *project.Project, outputPath string) error {
	if len(p.Scenes) == 0 {
		return fmt.Errorf("project %q has no scenes", p.Name)
	}

	tmpDir, err := os.MkdirTemp("", "story2video_")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmpDir)

	frames := make([]int, len(p.Scenes))
	offsets := make([]int, len(p.Scenes))
	total := 0
	for i, s := range p.Scenes {
		frames[i] = renderer.SceneFrames(s.Duration, pl.Renderer.FPS)
		offsets[i] = total
		total += frames[i]
	}
	if total == 0 {
		return fmt.Errorf("project %q has no frames", p.Name)
	}

	segments := make([]string, len(p.Scenes))
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(pl.Workers)

	for i := range p.Scenes {
		if frames[i] == 0 {
			continue
		}
		i := i
		g.Go(func() error {
			segPath := filepath.Join(tmpDir, fmt.Sprintf("s%d.mp4", i))
			params := SegmentParams{
				Width:      pl.Renderer.Width,
				Height:     pl.Renderer.Height,
				FPS:        pl.Renderer.FPS,
				FrameCount: frames[i],
			}
			next := func(frame int) (*image.RGBA, func(), error) {
				img, err := pl.Renderer.RenderFrame(p, offsets[i]+frame)
				if err != nil {
					return nil, nil, err
				}
				return img, func() { pl.Renderer.Release(img) }, nil
			}
			if err := pl.Encoder.EncodeSegment(gctx, segPath, params, next); err != nil {
				return fmt.Errorf("scene %d: %w", i, err)
			}
			segments[i] = segPath
			if pl.Progress != nil {
				pl.Progress(int(done.Add(1)), len(p.Scenes))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	// Zero-frame scenes leave holes; compact before concatenation.
	paths := segments[:0]
	for _, s := range segments {
		if s != "" {
			paths = append(paths, s)
		}
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	if err := pl.Encoder.Concatenate(ctx, paths, outputPath, tmpDir); err != nil {
		return fmt.Errorf("final assembly error: %w", err)
	}
	return nil
}
