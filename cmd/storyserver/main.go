package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/ivlev/story2video/internal/api"
	"github.com/ivlev/story2video/internal/compiler"
	"github.com/ivlev/story2video/internal/config"
	"github.com/ivlev/story2video/internal/renderer"
	"github.com/ivlev/story2video/internal/store"
	"github.com/ivlev/story2video/internal/system"
	"github.com/ivlev/story2video/internal/templates"
	"github.com/ivlev/story2video/internal/tts"
	"github.com/ivlev/story2video/internal/video"
)

func main() {
	system.InitResourceLimits()

	cfg := config.Load()

	addrPtr := flag.String("addr", cfg.Addr, "Listen address")
	dataPtr := flag.String("data", cfg.DataFile, "Project snapshot file")
	exportPtr := flag.String("exports", cfg.ExportDir, "Directory for rendered videos")
	catalogPtr := flag.String("catalog", cfg.CatalogPath, "Template catalog YAML (default: built-in templates)")
	flag.Parse()

	cfg.Addr, cfg.DataFile, cfg.ExportDir, cfg.CatalogPath = *addrPtr, *dataPtr, *exportPtr, *catalogPtr
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[-] Invalid settings: %v", err)
	}

	if err := os.MkdirAll(cfg.ExportDir, 0755); err != nil {
		log.Fatalf("[-] Failed to create export dir: %v", err)
	}

	catalog := templates.Builtin()
	if cfg.CatalogPath != "" {
		loaded, err := templates.ReadCatalog(cfg.CatalogPath)
		if err != nil {
			log.Fatalf("[-] Failed to read catalog %s: %v", cfg.CatalogPath, err)
		}
		catalog = *loaded
		fmt.Printf("[*] Using catalog: %s\n", cfg.CatalogPath)
	}

	st, err := store.Open(cfg.DataFile)
	if err != nil {
		log.Fatalf("[-] Failed to open project store: %v", err)
	}
	fmt.Printf("[*] Store: %s (%d projects)\n", cfg.DataFile, st.Count())

	encoderName := cfg.VideoEncoder
	if encoderName == "" || encoderName == "auto" {
		encoderName = system.BestH264Encoder()
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = system.RenderWorkers(cfg.Width * cfg.Height * 4)
	}

	fr := renderer.NewFrameRenderer(cfg.Width, cfg.Height, cfg.FPS)
	pipeline := video.NewPipeline(fr, &video.FFmpegEncoder{Codec: encoderName, Quality: cfg.Quality}, workers)
	pipeline.Progress = func(done, total int) {
		log.Printf("[>] Segment ready: %d/%d", done, total)
	}

	srv := &api.Server{
		Store:     st,
		Compiler:  compiler.New(catalog),
		Speech:    tts.NewGenerator(),
		Renderer:  pipeline,
		ExportDir: cfg.ExportDir,
		BaseURL:   cfg.BaseURL,
	}

	fmt.Printf("[*] Listening on %s (%dx%d @ %d FPS, encoder %s, %d workers)\n",
		cfg.Addr, cfg.Width, cfg.Height, cfg.FPS, encoderName, workers)
	if err := http.ListenAndServe(cfg.Addr, srv.Routes()); err != nil {
		log.Fatalf("[-] Server stopped: %v", err)
	}
}
