package singleton

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/kbukum/patternkit/catalog"
)

func init() {
	catalog.MustRegister(catalog.Func{
		DemoName:     "singleton",
		DemoCategory: catalog.CategoryCreational,
		DemoBrief:    "Race two goroutines against a guarded and an unguarded lazy init",
		RunFunc:      runDemo,
	})
}

func runDemo(ctx context.Context, w io.Writer) error {
	// Fresh state per run, so concurrent runs stay independent.
	var guarded lazyInit
	var naive naiveInit

	fmt.Fprintln(w, "If you see the same value, then the singleton was reused (yay!)")
	fmt.Fprintln(w, "If you see different values, then 2 singletons were created (boo!)")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "sync.Once variant:")
	if err := race(ctx, w, guarded.get); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "naive variant:")
	return race(ctx, w, naive.get)
}

// race calls get concurrently with FOO and BAR and reports what each caller saw.
func race(ctx context.Context, w io.Writer, get func(string) *Settings) error {
	results := make([]string, 2)

	g, _ := errgroup.WithContext(ctx)
	for i, value := range []string{"FOO", "BAR"} {
		i, value := i, value
		g.Go(func() error {
			results[i] = get(value).Value
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, value := range []string{"FOO", "BAR"} {
		fmt.Fprintf(w, "  caller %s saw %s\n", value, results[i])
	}
	return nil
}
