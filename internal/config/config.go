// Package config carries the runtime settings of the CLI and the
// server. Values come from defaults, then a .env file, then process
// environment, then flags, in that order of increasing precedence.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Compile and render geometry.
	Width  int
	Height int
	FPS    int

	// Render pipeline.
	Workers      int
	VideoEncoder string
	Quality      int

	// Server.
	Addr      string
	BaseURL   string
	DataFile  string
	ExportDir string

	// Catalog override; empty means the built-in templates.
	CatalogPath string

	ShowStats bool
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Width:        1920,
		Height:       1080,
		FPS:          30,
		Workers:      4,
		VideoEncoder: "libx264",
		Quality:      23,
		Addr:         ":8080",
		BaseURL:      "http://localhost:8080",
		DataFile:     "projects.json",
		ExportDir:    "output",
	}
}

// Load reads a .env file if present, then applies STORY2VIDEO_*
// variables on top of the defaults. A missing .env is not an error.
func Load() Config {
	godotenv.Load()
	cfg := Default()
	cfg.applyEnv()
	return cfg
}

func (c *Config) applyEnv() {
	envString("STORY2VIDEO_ADDR", &c.Addr)
	envString("STORY2VIDEO_BASE_URL", &c.BaseURL)
	envString("STORY2VIDEO_DATA_FILE", &c.DataFile)
	envString("STORY2VIDEO_EXPORT_DIR", &c.ExportDir)
	envString("STORY2VIDEO_CATALOG", &c.CatalogPath)
	envString("STORY2VIDEO_ENCODER", &c.VideoEncoder)
	envInt("STORY2VIDEO_FPS", &c.FPS)
	envInt("STORY2VIDEO_WIDTH", &c.Width)
	envInt("STORY2VIDEO_HEIGHT", &c.Height)
	envInt("STORY2VIDEO_WORKERS", &c.Workers)
	envInt("STORY2VIDEO_QUALITY", &c.Quality)
}

// Validate rejects values the renderer cannot work with.
func (c *Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid resolution %dx%d", c.Width, c.Height)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}

func envString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envInt(key string, dst *int) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		fmt.Printf("[!] Ignoring %s=%q: %v\n", key, v, err)
		return
	}
	*dst = n
}
