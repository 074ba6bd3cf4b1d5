package proxy

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/kbukum/patternkit/catalog"
)

// DemoLatency is the simulated per-call latency of the slow library.
// Overridable through the demo configuration section.
var DemoLatency = 20 * time.Millisecond

func init() {
	catalog.MustRegister(catalog.Func{
		DemoName:     "proxy",
		DemoCategory: catalog.CategoryStructural,
		DemoBrief:    "Put a caching proxy in front of a slow video library",
		RunFunc:      runDemo,
	})
}

func runDemo(ctx context.Context, w io.Writer) error {
	library := NewLibrary(DemoLatency)
	cached := NewCached(library, time.Minute)

	naive, err := browse(ctx, library)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Without proxy: every request pays the network.")

	// First pass through the proxy fills the cache, second pass hits it.
	if _, err := browse(ctx, cached); err != nil {
		return err
	}
	smart, err := browse(ctx, cached)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "With proxy: repeat requests come from the cache.")
	fmt.Fprintln(w)

	hits, misses := cached.Stats()
	fmt.Fprintf(w, "Cache hits: %d, misses: %d\n", hits, misses)
	fmt.Fprintf(w, "Time saved by caching proxy: %v\n", (naive - smart).Round(time.Millisecond))
	return nil
}

// browse runs the canonical session: the popular list, then two videos.
func browse(ctx context.Context, lib VideoLib) (time.Duration, error) {
	start := time.Now()
	if _, err := lib.Popular(ctx); err != nil {
		return 0, err
	}
	for _, id := range []string{"catzzzzzzzzz", "dancesvideoo"} {
		if _, err := lib.Video(ctx, id); err != nil {
			return 0, err
		}
	}
	return time.Since(start), nil
}
