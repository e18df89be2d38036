package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ivlev/story2video/internal/compiler"
	"github.com/ivlev/story2video/internal/config"
	"github.com/ivlev/story2video/internal/project"
	"github.com/ivlev/story2video/internal/renderer"
	"github.com/ivlev/story2video/internal/source"
	"github.com/ivlev/story2video/internal/system"
	"github.com/ivlev/story2video/internal/templates"
	"github.com/ivlev/story2video/internal/tts"
	"github.com/ivlev/story2video/internal/video"
)

func main() {
	system.InitResourceLimits()

	for _, d := range []string{"input/stories", "output"} {
		os.MkdirAll(d, 0755)
	}

	cfg := config.Load()

	inputPtr := flag.String("input", "", "Story file (.txt/.md/.story/.pdf); default: newest file in input/stories/")
	storyPtr := flag.String("story", "", "Inline story text (overrides -input)")
	namePtr := flag.String("name", "", "Project name (default: input file name)")
	outputPtr := flag.String("output", "", "Project document path (.json or .yaml; default: output/<name>.<format>)")
	formatPtr := flag.String("format", "json", "Document format when -output is not set: json, yaml")
	catalogPtr := flag.String("catalog", cfg.CatalogPath, "Template catalog YAML (default: built-in templates)")
	audioPtr := flag.Bool("audio", true, "Attach speech URLs to dialogue lines")
	renderPtr := flag.Bool("render", false, "Render the compiled project to video")
	videoPtr := flag.String("video", "", "Video output path (default: output/<name>.mp4)")
	widthPtr := flag.Int("width", cfg.Width, "Video width")
	heightPtr := flag.Int("height", cfg.Height, "Video height")
	fpsPtr := flag.Int("fps", cfg.FPS, "Frames per second")
	workersPtr := flag.Int("workers", 0, "Parallel scene encoders (0 = auto by CPU and memory)")
	encoderPtr := flag.String("encoder", "", "FFmpeg video encoder (default: probe hardware, fall back to libx264)")
	qualityPtr := flag.Int("quality", cfg.Quality, "Video quality (x264: CRF 1-51)")
	statsPtr := flag.Bool("stats", false, "Print timing report")
	flag.Parse()

	cfg.Width, cfg.Height, cfg.FPS = *widthPtr, *heightPtr, *fpsPtr
	cfg.Quality = *qualityPtr
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[-] Invalid settings: %v", err)
	}

	catalog := loadCatalog(*catalogPtr)

	name, text := loadStory(*inputPtr, *storyPtr, *namePtr)
	if strings.TrimSpace(text) == "" {
		log.Fatalf("[-] Story is empty")
	}

	start := time.Now()
	comp := compiler.New(catalog)
	p := comp.Compile(name, text)
	if *audioPtr {
		tts.NewGenerator().AttachAudio(p)
	}
	compileTime := time.Since(start)

	fmt.Printf("[*] Compiled %q: %d scenes, %d characters, %.1fs total\n",
		p.Name, len(p.Scenes), countCharacters(p), p.Metadata.TotalDuration)

	docPath := *outputPtr
	if docPath == "" {
		ext := ".json"
		if *formatPtr == "yaml" || *formatPtr == "yml" {
			ext = ".yaml"
		}
		docPath = filepath.Join("output", sanitize(name)+ext)
	}
	os.MkdirAll(filepath.Dir(docPath), 0755)
	if err := project.Write(p, docPath); err != nil {
		log.Fatalf("[-] Failed to write project document: %v", err)
	}
	fmt.Printf("[*] Project document: %s\n", docPath)

	if !*renderPtr {
		return
	}

	videoPath := *videoPtr
	if videoPath == "" {
		videoPath = filepath.Join("output", sanitize(name)+".mp4")
	}

	encoderName := *encoderPtr
	if encoderName == "" {
		encoderName = system.BestH264Encoder()
		fmt.Printf("[*] Encoder: %s\n", encoderName)
	}

	workers := *workersPtr
	if workers < 1 {
		workers = system.RenderWorkers(cfg.Width * cfg.Height * 4)
	}

	fmt.Printf("[*] Rendering %dx%d @ %d FPS, %d workers\n", cfg.Width, cfg.Height, cfg.FPS, workers)

	fr := renderer.NewFrameRenderer(cfg.Width, cfg.Height, cfg.FPS)
	pl := video.NewPipeline(fr, &video.FFmpegEncoder{Codec: encoderName, Quality: cfg.Quality}, workers)
	pl.Progress = func(done, total int) {
		fmt.Printf("[>] Ready: %d/%d\n", done, total)
	}

	renderStart := time.Now()
	if err := pl.Render(context.Background(), p, videoPath); err != nil {
		log.Fatalf("[-] Render failed: %v", err)
	}
	renderTime := time.Since(renderStart)

	fmt.Printf("[+++] Done: %s\n", videoPath)

	if *statsPtr {
		frames := renderer.TotalFrames(p, cfg.FPS)
		fmt.Printf("--- [PERFORMANCE REPORT] ---\n")
		fmt.Printf("Compile: %.2fs\n", compileTime.Seconds())
		fmt.Printf("Render+Encode: %.2fs\n", renderTime.Seconds())
		fmt.Printf("Frames: %d\n", frames)
		fmt.Printf("Effective FPS: %.2f\n", float64(frames)/renderTime.Seconds())
		fmt.Printf("----------------------------\n")
	}
}

func loadCatalog(path string) templates.Catalog {
	if path == "" {
		return templates.Builtin()
	}
	c, err := templates.ReadCatalog(path)
	if err != nil {
		log.Fatalf("[-] Failed to read catalog %s: %v", path, err)
	}
	fmt.Printf("[*] Using catalog: %s\n", path)
	return *c
}

// loadStory resolves the story text and project name from the flags:
// inline text wins, then an explicit file, then the newest story file
// in input/stories/.
func loadStory(inputPath, inline, name string) (string, string) {
	if inline != "" {
		if name == "" {
			name = "untitled story"
		}
		return name, inline
	}

	if inputPath == "" {
		latest, err := source.FindLatestStory("input/stories")
		if err != nil {
			log.Fatalf("[-] %v. Drop a story into input/stories/ or pass -input", err)
		}
		inputPath = latest
		fmt.Printf("[*] Selected story: %s\n", inputPath)
	}

	src, err := source.Open(inputPath)
	if err != nil {
		log.Fatalf("[-] Failed to open story: %v", err)
	}
	defer src.Close()

	text, err := src.Text()
	if err != nil {
		log.Fatalf("[-] Failed to read story: %v", err)
	}
	if name == "" {
		name = src.Name()
	}
	return name, text
}

func countCharacters(p *project.Project) int {
	seen := make(map[string]bool)
	for _, s := range p.Scenes {
		for _, c := range s.Characters {
			seen[c.ID] = true
		}
	}
	return len(seen)
}

func sanitize(name string) string {
	mapper := func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r == ' ':
			return '_'
		}
		return -1
	}
	out := strings.Map(mapper, name)
	if out == "" {
		out = "story"
	}
	return out
}
