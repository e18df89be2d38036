package video

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// SegmentParams describes one scene segment to encode.
type SegmentParams struct {
	Width      int
	Height     int
	FPS        int
	FrameCount int
}

// FrameFunc supplies the i-th frame of a segment plus a release
// callback that returns the frame buffer to its pool.
type FrameFunc func(i int) (*image.RGBA, func(), error)

// Encoder turns rendered frames into video segments and stitches
// segments into the final file.
type Encoder interface {
	EncodeSegment(ctx context.Context, path string, params SegmentParams, next FrameFunc) error
	Concatenate(ctx context.Context, segmentPaths []string, finalPath string, tmpDir string) error
}

// FFmpegEncoder pipes raw RGBA frames into ffmpeg over stdin, so no
// intermediate images ever touch the disk.
type FFmpegEncoder struct {
	// Codec is the ffmpeg video encoder name; empty means libx264.
	Codec string
	// Quality is the CRF for libx264, the -cq value for nvenc, or a
	// bitrate multiplier for videotoolbox; zero keeps ffmpeg defaults.
	Quality int
}

func (e *FFmpegEncoder) EncodeSegment(ctx context.Context, path string, params SegmentParams, next FrameFunc) error {
	codec := e.Codec
	if codec == "" {
		codec = "libx264"
	}

	args := []string{
		"-y",
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", params.Width, params.Height),
		"-framerate", fmt.Sprintf("%d", params.FPS),
		"-i", "-",
		"-r", fmt.Sprintf("%d", params.FPS),
		"-pix_fmt", "yuv420p",
		"-c:v", codec,
	}
	args = append(args, qualityArgs(codec, e.Quality)...)
	args = append(args, path)

	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	var log bytes.Buffer
	cmd.Stdout = &log
	cmd.Stderr = &log

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("stdin pipe error: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("ffmpeg start error: %w", err)
	}

	writeErr := e.writeFrames(stdin, params, next)
	stdin.Close()

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg wait error: %w, output: %s", err, log.String())
	}
	return writeErr
}

func (e *FFmpegEncoder) writeFrames(w io.Writer, params SegmentParams, next FrameFunc) error {
	for i := 0; i < params.FrameCount; i++ {
		img, release, err := next(i)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		err = writeRawRGBA(w, img)
		if release != nil {
			release()
		}
		if err != nil {
			return fmt.Errorf("write frame %d: %w", i, err)
		}
	}
	return nil
}

func qualityArgs(codec string, quality int) []string {
	if quality <= 0 {
		return nil
	}
	switch codec {
	case "h264_videotoolbox":
		return []string{"-b:v", fmt.Sprintf("%dk", quality*100)}
	case "h264_nvenc":
		return []string{"-cq", fmt.Sprintf("%d", quality)}
	default: // libx264
		return []string{"-crf", fmt.Sprintf("%d", quality), "-preset", "medium"}
	}
}

// Concatenate joins segments with the concat demuxer. Segments share
// codec and geometry, so streams are copied without re-encoding.
func (e *FFmpegEncoder) Concatenate(ctx context.Context, segmentPaths []string, finalPath string, tmpDir string) error {
	if len(segmentPaths) == 0 {
		return fmt.Errorf("no segments to concatenate")
	}
	if len(segmentPaths) == 1 {
		return os.Rename(segmentPaths[0], finalPath)
	}

	var list strings.Builder
	for _, p := range segmentPaths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		fmt.Fprintf(&list, "file '%s'\n", abs)
	}

	listPath := filepath.Join(tmpDir, "inputs.txt")
	if err := os.WriteFile(listPath, []byte(list.String()), 0644); err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, "ffmpeg", "-y",
		"-f", "concat", "-safe", "0", "-i", listPath,
		"-c", "copy", finalPath,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg concat error: %w, output: %s", err, string(out))
	}
	return nil
}

func writeRawRGBA(w io.Writer, img *image.RGBA) error {
	bounds := img.Bounds()
	if img.Stride != bounds.Dx()*4 || bounds.Min.X != 0 || bounds.Min.Y != 0 {
		tmp := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(tmp, tmp.Bounds(), img, bounds.Min, draw.Src)
		img = tmp
	}
	_, err := w.Write(img.Pix)
	return err
}
