package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultOutput   = "render.png"
	DefaultWorkers  = 16
	DefaultTimeout  = "5h"
	DefaultProgress = "2s"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	SceneFile string `json:"scene_file"`
	ModelDir  string `json:"model_dir"`
	Output    string `json:"output"`

	// Render settings
	Workers     int    `json:"workers"`
	Timeout     string `json:"timeout"`
	PreviewSize int    `json:"preview_size"`
	Report      *bool  `json:"report"`
	Progress    string `json:"progress"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	SceneFile   string
	ModelDir    string
	Output      string
	Workers     int
	Timeout     string
	PreviewSize int
	NoReport    bool
}

// Resolve applies CLI overrides, then fills any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.SceneFile != "" {
		c.SceneFile = flags.SceneFile
	}
	if flags.ModelDir != "" {
		c.ModelDir = flags.ModelDir
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Timeout != "" {
		c.Timeout = flags.Timeout
	}
	if flags.PreviewSize > 0 {
		c.PreviewSize = flags.PreviewSize
	}
	if flags.NoReport {
		off := false
		c.Report = &off
	}

	// Models live next to the scene file unless told otherwise
	if c.SceneFile != "" {
		sceneDir := filepath.Dir(c.SceneFile)
		if c.ModelDir == "" {
			c.ModelDir = sceneDir
		} else if !filepath.IsAbs(c.ModelDir) {
			c.ModelDir = filepath.Join(sceneDir, c.ModelDir)
		}
	}

	// Defaults for render settings
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Workers <= 0 {
		c.Workers = DefaultWorkers
	}
	if c.Timeout == "" {
		c.Timeout = DefaultTimeout
	}
	if c.Progress == "" {
		c.Progress = DefaultProgress
	}
	if c.Report == nil {
		on := true
		c.Report = &on
	}
}

// Durations parses the timeout and progress interval.
func (c Config) Durations() (timeout, progress time.Duration, err error) {
	timeout, err = time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, 0, fmt.Errorf("config: timeout %q: %w", c.Timeout, err)
	}
	progress, err = time.ParseDuration(c.Progress)
	if err != nil {
		return 0, 0, fmt.Errorf("config: progress %q: %w", c.Progress, err)
	}
	return timeout, progress, nil
}

// WantReport reports whether a JSON run report should be written.
func (c Config) WantReport() bool {
	return c.Report == nil || *c.Report
}
