package app

import (
	"context"
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/bagraVansh/Ray-Tracing/pkg/renderer"
)

// App implements the ebiten.Game interface, displaying a render live as
// rows complete. The render runs on a background goroutine; finished rows
// are copied into an RGBA buffer that Draw uploads each frame.
type App struct {
	raytracer *renderer.Raytracer
	width     int
	height    int
	workers   int

	mu        sync.Mutex
	img       *image.RGBA
	completed int
	total     int
	stats     renderer.RenderStats
	done      bool
	renderErr error

	screenImg *ebiten.Image
	cancel    context.CancelFunc
}

// New creates a viewer for the given raytracer and starts rendering
func New(rt *renderer.Raytracer, width, height, workers int) *App {
	a := &App{
		raytracer: rt,
		width:     width,
		height:    height,
		workers:   workers,
		img:       image.NewRGBA(image.Rect(0, 0, width, height)),
		total:     height,
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	go a.render(ctx)

	return a
}

// render feeds finished rows into the display buffer
func (a *App) render(ctx context.Context) {
	_, stats, err := a.raytracer.RenderParallel(ctx, renderer.RenderOptions{
		Workers: a.workers,
		OnRow: func(update renderer.RowUpdate) {
			a.mu.Lock()
			a.copyRow(update)
			a.completed = update.Completed
			a.mu.Unlock()
		},
	})

	a.mu.Lock()
	a.stats = stats
	a.renderErr = err
	a.done = true
	a.mu.Unlock()
}

// copyRow expands a packed RGB row into the RGBA buffer. Callers hold mu.
func (a *App) copyRow(update renderer.RowUpdate) {
	row := update.Pixels
	offset := a.img.PixOffset(0, update.Y)
	for x := 0; x < len(row)/3; x++ {
		i := offset + x*4
		a.img.Pix[i+0] = row[x*3+0]
		a.img.Pix[i+1] = row[x*3+1]
		a.img.Pix[i+2] = row[x*3+2]
		a.img.Pix[i+3] = 0xFF
	}
}

func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.cancel()
		return ebiten.Termination
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	if a.screenImg == nil {
		a.screenImg = ebiten.NewImage(a.width, a.height)
	}

	a.mu.Lock()
	a.screenImg.WritePixels(a.img.Pix)
	completed, total := a.completed, a.total
	done, err, stats := a.done, a.renderErr, a.stats
	a.mu.Unlock()

	screen.DrawImage(a.screenImg, nil)

	var info string
	switch {
	case err != nil:
		info = fmt.Sprintf("Render failed: %v\n[Esc] quit", err)
	case done:
		info = fmt.Sprintf("Done in %v | %d rays | %d workers\n[Esc] quit",
			stats.Elapsed.Round(time.Millisecond), stats.RaysTraced, stats.Workers)
	default:
		info = fmt.Sprintf("Rendering... %d/%d rows\n[Esc] quit", completed, total)
	}
	ebitenutil.DebugPrint(screen, info)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}
