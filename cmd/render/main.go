package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"obj-raytracer/internal/config"
	"obj-raytracer/internal/geom"
	"obj-raytracer/internal/output"
	"obj-raytracer/internal/render"
	"obj-raytracer/internal/scene"
	"obj-raytracer/internal/scenefile"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	sceneFile := flag.String("scene", "", "Scene description JSON (default: built-in demo scene)")
	modelDir := flag.String("models", "", "Directory with .obj models (default: scene file directory)")
	outputPath := flag.String("output", "", "Output image; extension selects the format (default: render.png)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: 16)")
	timeout := flag.String("timeout", "", "Render time limit, e.g. 30m (default: 5h)")
	preview := flag.Int("preview", 0, "Also write a preview with this longest side")
	report := flag.Bool("report", true, "Write a JSON run report next to the output")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		SceneFile:   *sceneFile,
		ModelDir:    *modelDir,
		Output:      *outputPath,
		Workers:     *workers,
		Timeout:     *timeout,
		PreviewSize: *preview,
		NoReport:    !*report,
	})

	limit, progress, err := cfg.Durations()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Assemble scene
	var (
		sc      *scene.Scene
		skipped []error
	)
	if cfg.SceneFile == "" {
		sc = scenefile.Default()
	} else {
		asm, err := scenefile.Load(cfg.SceneFile, cfg.ModelDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
			os.Exit(1)
		}
		sc, skipped = asm.Scene, asm.Skipped
	}
	for _, e := range skipped {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", e)
	}

	cam := sc.Camera
	fmt.Printf("OBJ ray tracer: %s\n", sc.Name)
	fmt.Printf("Resolution: %dx%d, Surfaces: %d, Lights: %d, Workers: %d\n",
		cam.Width, cam.Height, len(sc.Surfaces), len(sc.Lights), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.Output)
	for _, surf := range sc.Surfaces {
		if m, ok := surf.(*geom.Mesh); ok {
			lo, hi := m.Bounds()
			fmt.Printf("  Mesh: %d triangles, X[%.2f, %.2f] Y[%.2f, %.2f] Z[%.2f, %.2f]\n",
				len(m.Triangles), lo.X(), hi.X(), lo.Y(), hi.Y(), lo.Z(), hi.Z())
		}
	}
	fmt.Println("------------------------------------------------------------")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rcfg := render.Config{
		Workers:          cfg.Workers,
		Timeout:          limit,
		Log:              os.Stdout,
		ProgressInterval: progress,
	}
	res, err := render.Run(ctx, rcfg, sc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %s\n", res.Elapsed.Round(time.Millisecond))
	fmt.Printf("Rendered: %d/%d pixels, deepest chain: %d\n", res.Rendered, res.Total, res.MaxDepth)

	// Save image
	outputs := []string{cfg.Output}
	if err := output.Save(cfg.Output, res.Image); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.PreviewSize > 0 {
		pp := output.PreviewPath(cfg.Output)
		if err := output.Save(pp, output.Thumbnail(res.Image, cfg.PreviewSize)); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: preview write failed: %v\n", err)
		} else {
			outputs = append(outputs, pp)
		}
	}
	fmt.Printf("Image: %s\n", strings.Join(outputs, ", "))

	// Write report
	if cfg.WantReport() {
		rep := render.NewReport(sc, rcfg, res)
		rep.Outputs = outputs
		for _, e := range skipped {
			rep.Skipped = append(rep.Skipped, e.Error())
		}
		reportPath := strings.TrimSuffix(cfg.Output, filepath.Ext(cfg.Output)) + ".report.json"
		if err := render.WriteReport(reportPath, rep); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: report write failed: %v\n", err)
		} else {
			fmt.Printf("Report: %s\n", reportPath)
		}
	}
}
