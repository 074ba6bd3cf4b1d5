package strategy

import (
	"context"
	"fmt"
	"io"

	"github.com/kbukum/patternkit/catalog"
)

func init() {
	catalog.MustRegister(catalog.Func{
		DemoName:     "strategy",
		DemoCategory: catalog.CategoryBehavioral,
		DemoBrief:    "Sort one slice three ways by swapping the algorithm at runtime",
		RunFunc:      runDemo,
	})
}

func runDemo(_ context.Context, w io.Writer) error {
	input := []int{5, 2, 9, 1, 5, 6}
	processor := NewProcessor(nil)

	for _, s := range []SortStrategy{Quick{}, Merge{}, Bubble{}} {
		data := append([]int(nil), input...)
		processor.Use(s)
		if err := processor.Process(data); err != nil {
			return err
		}
		fmt.Fprintf(w, "%s: %v\n", s.Name(), data)
	}
	return nil
}
