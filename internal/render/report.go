package render

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"obj-raytracer/internal/scene"
)

// Report summarizes one render run. It is written as JSON next to the
// output image.
type Report struct {
	RunID          string    `json:"run_id"`
	Scene          string    `json:"scene"`
	Width          int       `json:"width"`
	Height         int       `json:"height"`
	Workers        int       `json:"workers"`
	StartedAt      time.Time `json:"started_at"`
	ElapsedSeconds float64   `json:"elapsed_seconds"`
	Finished       bool      `json:"finished"`
	Rendered       int       `json:"rendered"`
	Total          int       `json:"total"`
	MaxDepth       int       `json:"max_depth"`
	Outputs        []string  `json:"outputs"`
	Skipped        []string  `json:"skipped,omitempty"`
}

// NewReport fills a report for res with a fresh run id.
func NewReport(sc *scene.Scene, cfg Config, res Result) Report {
	cfg = cfg.withDefaults()
	return Report{
		RunID:          uuid.NewString(),
		Scene:          sc.Name,
		Width:          sc.Camera.Width,
		Height:         sc.Camera.Height,
		Workers:        cfg.Workers,
		StartedAt:      time.Now().Add(-res.Elapsed).UTC(),
		ElapsedSeconds: res.Elapsed.Seconds(),
		Finished:       res.Finished,
		Rendered:       res.Rendered,
		Total:          res.Total,
		MaxDepth:       res.MaxDepth,
	}
}

// WriteReport writes r as indented JSON to path.
func WriteReport(path string, r Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("render: encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("render: write report %s: %w", path, err)
	}
	return nil
}
