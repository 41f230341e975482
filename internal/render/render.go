// Package render drives the per-pixel work: one unit per pixel on a fixed
// worker pool, written into a shared FrameBuffer under a wall-clock limit.
package render

import (
	"context"
	"fmt"
	"image"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"obj-raytracer/internal/scene"
	"obj-raytracer/internal/trace"
)

const (
	DefaultWorkers  = 16
	DefaultTimeout  = 5 * time.Hour
	DefaultProgress = 2 * time.Second
)

// Config controls a render run. Zero values take the defaults above.
type Config struct {
	Workers  int
	Timeout  time.Duration
	MaxDepth int // shading passes per pixel; 0 means trace.DefaultMaxDepth

	// Log receives progress and diagnostics. Nil keeps the run silent.
	Log              io.Writer
	ProgressInterval time.Duration
}

func (c Config) withDefaults() Config {
	if c.Workers <= 0 {
		c.Workers = DefaultWorkers
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = trace.DefaultMaxDepth
	}
	if c.ProgressInterval <= 0 {
		c.ProgressInterval = DefaultProgress
	}
	return c
}

// Result is the outcome of a render. When the run timed out or was
// cancelled, Finished is false and Image holds the pixels written so far;
// the rest stay black.
type Result struct {
	Image    *image.RGBA
	Rendered int
	Total    int
	Finished bool
	Elapsed  time.Duration
	MaxDepth int // deepest shading chain seen
}

// Run renders sc. Cancellation and timeout are not errors; only an
// invalid scene is.
func Run(ctx context.Context, cfg Config, sc *scene.Scene) (Result, error) {
	if err := sc.Validate(); err != nil {
		return Result{}, fmt.Errorf("render: %w", err)
	}
	cfg = cfg.withDefaults()

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	cam := sc.Camera
	total := cam.Pixels()
	fb := NewFrameBuffer(cam.Width, cam.Height)
	resolver := trace.NewResolver(sc)
	resolver.MaxDepth = cfg.MaxDepth

	var (
		rendered atomic.Int64
		deepest  atomic.Int64
	)
	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		if cfg.Log == nil {
			<-done
			return
		}
		ticker := time.NewTicker(cfg.ProgressInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := rendered.Load()
				if p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					fmt.Fprintf(cfg.Log, "  [%d/%d] %.1f px/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	pixels := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range pixels {
				if ctx.Err() != nil {
					continue
				}
				x, y := idx%cam.Width, idx/cam.Width
				s := resolver.Pixel(x, y)
				fb.Set(x, y, s.Color)
				rendered.Add(1)
				storeMax(&deepest, int64(s.Depth))
			}
		}()
	}

	// Send work
feed:
	for i := 0; i < total; i++ {
		select {
		case pixels <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(pixels)

	wg.Wait()
	close(done)
	<-stopped

	res := Result{
		Image:    fb.Image(),
		Rendered: int(rendered.Load()),
		Total:    total,
		Elapsed:  time.Since(start),
		MaxDepth: int(deepest.Load()),
	}
	res.Finished = res.Rendered == total
	if !res.Finished && cfg.Log != nil {
		fmt.Fprintf(cfg.Log, "render: cancel non-finished (%d/%d pixels)\n", res.Rendered, total)
	}
	return res, nil
}

func storeMax(v *atomic.Int64, n int64) {
	for {
		cur := v.Load()
		if n <= cur || v.CompareAndSwap(cur, n) {
			return
		}
	}
}
