package scene

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/echoflaresat/tinyray/framebuffer"
)

// ErrFramebufferSize is returned when the destination does not match the
// requested image size.
var ErrFramebufferSize = errors.New("framebuffer size mismatch")

// Render traces one primary ray through the center of every pixel and stores
// the results in fb, row-major.
//
// fov is the vertical field of view in radians. Rows are spread over at most
// workers goroutines; workers <= 0 uses GOMAXPROCS. Each pixel is a pure
// function of the scene and its coordinates, so the output does not depend
// on the worker count.
func (s *Scene) Render(fb *framebuffer.Framebuffer, width, height int, fov float32, workers int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if !(fov > 0 && fov < math.Pi) {
		return fmt.Errorf("field of view %v out of range (0, pi)", fov)
	}
	if fb.Width() != width || fb.Height() != height {
		return fmt.Errorf("%w: have %dx%d, want %dx%d",
			ErrFramebufferSize, fb.Width(), fb.Height(), width, height)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	start := time.Now()
	camera := NewCamera(width, height, fov)
	pixels := fb.Pixels()

	var g errgroup.Group
	g.SetLimit(workers)
	for r := 0; r < height; r++ {
		g.Go(func() error {
			row := pixels[r*width : (r+1)*width]
			for c := range row {
				row[c] = s.CastRay(camera.Origin(), camera.ComputeRay(r, c), MaxDepth)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	slog.Debug("render finished",
		"width", width,
		"height", height,
		"workers", workers,
		"objects", len(s.objects),
		"lights", len(s.lights),
		"elapsed", time.Since(start))
	return nil
}
