package renderer

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// RowUpdate reports one finished row to the OnRow callback
type RowUpdate struct {
	Y         int
	Pixels    []uint8 // packed RGB bytes for the row
	Completed int     // rows finished so far
	Total     int     // rows in the image
}

// RenderOptions configures a parallel render
type RenderOptions struct {
	Workers int             // number of row workers, 0 = one per CPU
	OnRow   func(RowUpdate) // optional per-row callback
}

// RenderParallel renders rows concurrently and returns a framebuffer
// bit-identical to RenderPass. Workers write disjoint rows of the shared
// framebuffer; OnRow is dispatched from a single goroutine, never
// concurrently with itself.
func (rt *Raytracer) RenderParallel(ctx context.Context, options RenderOptions) (*Framebuffer, RenderStats, error) {
	start := time.Now()
	rt.raysTraced.Store(0)

	numWorkers := options.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	width, height := rt.camera.Width(), rt.camera.Height()
	fb := NewFramebuffer(width, height)

	rows := make(chan int)
	completed := make(chan int, height)

	g, gctx := errgroup.WithContext(ctx)

	// Feed row indices until done or cancelled
	g.Go(func() error {
		defer close(rows)
		for y := 0; y < height; y++ {
			select {
			case rows <- y:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < numWorkers; i++ {
		g.Go(func() error {
			for y := range rows {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				if err := rt.renderRow(fb, y); err != nil {
					return err
				}
				completed <- y
			}
			return nil
		})
	}

	// Close the completion stream once the feeder and all workers are done
	go func() {
		_ = g.Wait() // error surfaces from the Wait below
		close(completed)
	}()

	// Collector: single-threaded callback dispatch and progress logging
	count := 0
	for y := range completed {
		count++
		if options.OnRow != nil {
			options.OnRow(RowUpdate{
				Y:         y,
				Pixels:    fb.Row(y),
				Completed: count,
				Total:     height,
			})
		}
		if count%progressInterval == 0 {
			rt.logger.Printf("  Row %d/%d\n", count, height)
		}
	}

	if err := g.Wait(); err != nil {
		return nil, RenderStats{}, err
	}

	n := rt.config.SamplesPerAxis
	stats := RenderStats{
		TotalPixels:  width * height,
		TotalSamples: width * height * n * n,
		RaysTraced:   rt.raysTraced.Load(),
		Workers:      numWorkers,
		Elapsed:      time.Since(start),
	}
	return fb, stats, nil
}
