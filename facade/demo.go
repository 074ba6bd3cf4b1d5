package facade

import (
	"context"
	"fmt"
	"io"

	"github.com/kbukum/patternkit/catalog"
)

func init() {
	catalog.MustRegister(catalog.Func{
		DemoName:     "facade",
		DemoCategory: catalog.CategoryStructural,
		DemoBrief:    "Convert a video with one call over a codec subsystem",
		RunFunc:      runDemo,
	})
}

func runDemo(ctx context.Context, w io.Writer) error {
	converter := NewConverter()

	fmt.Fprintln(w, "Converting youtubevideo.ogg to mp4...")
	result, err := converter.Convert(ctx, "youtubevideo.ogg", "mp4")
	if err != nil {
		return err
	}

	for _, step := range result.Steps {
		fmt.Fprintf(w, "  %s\n", step)
	}
	fmt.Fprintf(w, "Conversion completed: %s\n", result.File.Name)
	return nil
}
