// Command compare reports how two rendered images differ.
//
// It exits with status 1 when any pixel differs by more than the tolerance.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/echoflaresat/tinyray/framebuffer"
)

type diffStats struct {
	differing int
	maxDelta  float32
}

func compare(a, b *framebuffer.Framebuffer, tolerance float32) (diffStats, error) {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return diffStats{}, fmt.Errorf("size mismatch: %dx%d vs %dx%d",
			a.Width(), a.Height(), b.Width(), b.Height())
	}

	var stats diffStats
	pa, pb := a.Pixels(), b.Pixels()
	for i := range pa {
		var delta float32
		for ch := 0; ch < 3; ch++ {
			d := pa[i][ch] - pb[i][ch]
			if d < 0 {
				d = -d
			}
			delta = max(delta, d)
		}
		stats.maxDelta = max(stats.maxDelta, delta)
		if delta > tolerance {
			stats.differing++
		}
	}
	return stats, nil
}

func main() {
	tolerance := flag.Float64("tolerance", 0, "Maximum per-channel difference (0..1) treated as equal")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-tolerance t] <a.png> <b.png>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	a, err := framebuffer.Load(flag.Arg(0))
	if err != nil {
		log.Fatalf("Could not load %q: %v", flag.Arg(0), err)
	}
	b, err := framebuffer.Load(flag.Arg(1))
	if err != nil {
		log.Fatalf("Could not load %q: %v", flag.Arg(1), err)
	}

	stats, err := compare(a, b, float32(*tolerance))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d of %d pixels differ (max channel delta %.4f)\n",
		stats.differing, a.Width()*a.Height(), stats.maxDelta)
	if stats.differing > 0 {
		os.Exit(1)
	}
}
