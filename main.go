package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/echoflaresat/tinyray/framebuffer"
	"github.com/echoflaresat/tinyray/scene"
	"github.com/echoflaresat/tinyray/scenes"
	"github.com/echoflaresat/tinyray/sky"
)

type config struct {
	width, height, workers *int
	fov                    *float64
	out                    *string
	sunTime                *string
	lat, lon               *float64
	sunIntensity           *float64
	verbose                *bool
	showHelp               *bool
}

func defineFlags() config {
	return config{
		width:   flag.Int("width", 1024, "Output image width in pixels"),
		height:  flag.Int("height", 768, "Output image height in pixels"),
		fov:     flag.Float64("fov", 60.0, "Vertical field of view in degrees"),
		workers: flag.Int("workers", 0, "Number of render goroutines (0 = GOMAXPROCS)"),

		out: flag.String("out", "output.png", "Output image path (.png, .jpg or .tiff)"),

		sunTime:      flag.String("sun", "", "Add a sun light for this time in RFC3339 format (e.g., 2025-08-02T15:04:05Z)"),
		lat:          flag.Float64("lat", 47.5, "Observer latitude in degrees for the sun light"),
		lon:          flag.Float64("lon", 19.0, "Observer longitude in degrees for the sun light"),
		sunIntensity: flag.Float64("sun-intensity", 1.0, "Sun light intensity"),

		verbose:  flag.Bool("v", false, "Enable debug logging"),
		showHelp: flag.Bool("h", false, "Show this help message"),
	}
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `tinyray - Whitted-style ray tracer

Usage:
  %[1]s [options]

`, os.Args[0])

	printGroup("Rendering Options", []string{"width", "height", "fov", "workers"})
	printGroup("Sun Light", []string{"sun", "lat", "lon", "sun-intensity"})
	printGroup("Output", []string{"out"})
	printGroup("Misc", []string{"v", "h"})
}

func printGroup(title string, keys []string) {
	fmt.Fprintf(os.Stderr, "%s:\n", title)
	for _, name := range keys {
		if f := flag.Lookup(name); f != nil {
			fmt.Fprintf(os.Stderr, "  -%-14s %s (default %q)\n", f.Name, f.Usage, f.DefValue)
		}
	}
	fmt.Fprintln(os.Stderr)
}

func main() {
	cfg := defineFlags()
	flag.Usage = printHelp
	flag.Parse()

	if *cfg.showHelp {
		printHelp()
		return
	}

	level := slog.LevelInfo
	if *cfg.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	s := scenes.Demo()
	if *cfg.sunTime != "" {
		addSun(s, parseTimeOrExit(*cfg.sunTime), *cfg.lat, *cfg.lon, float32(*cfg.sunIntensity))
	}

	slog.Info("rendering", "out", *cfg.out, "width", *cfg.width, "height", *cfg.height, "fov", *cfg.fov)
	start := time.Now()
	fb, err := renderImage(s, *cfg.width, *cfg.height, *cfg.fov, *cfg.workers)
	if err != nil {
		log.Fatal(err)
	}
	slog.Info("render complete", "elapsed", time.Since(start))

	if err := fb.Save(*cfg.out); err != nil {
		log.Fatalf("Failed to write image: %v", err)
	}
}

func parseTimeOrExit(timeStr string) time.Time {
	t, err := time.Parse(time.RFC3339, timeStr)
	if err != nil {
		log.Fatalf("Invalid time format: %v", err)
	}
	return t
}

func addSun(s *scene.Scene, t time.Time, lat, lon float64, intensity float32) {
	light, ok := sky.SunLight(t, lat, lon, intensity)
	if !ok {
		slog.Warn("sun is below the horizon, not adding a sun light",
			"time", t, "lat", lat, "lon", lon,
			"elevation", sky.Elevation(t, lat, lon))
		return
	}
	slog.Info("adding sun light", "position", light.Position, "elevation", sky.Elevation(t, lat, lon))
	s.PushLight(light)
}

// renderImage renders s into a new framebuffer. fovDeg is in degrees.
func renderImage(s *scene.Scene, width, height int, fovDeg float64, workers int) (*framebuffer.Framebuffer, error) {
	fb := framebuffer.New(width, height)
	fov := float32(fovDeg * math.Pi / 180.0)
	if err := s.Render(fb, width, height, fov, workers); err != nil {
		return nil, err
	}
	return fb, nil
}
