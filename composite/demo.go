package composite

import (
	"context"
	"fmt"
	"io"

	"github.com/kbukum/patternkit/catalog"
)

func init() {
	catalog.MustRegister(catalog.Func{
		DemoName:     "composite",
		DemoCategory: catalog.CategoryStructural,
		DemoBrief:    "Render a file tree and aggregate sizes through one interface",
		RunFunc:      runDemo,
	})
}

func runDemo(_ context.Context, w io.Writer) error {
	dir1 := NewDir("Directory1")
	dir1.Add(NewFile("File1.txt", 120))
	dir1.Add(NewFile("File2.txt", 300))

	dir2 := NewDir("Directory2")
	dir2.Add(NewFile("File3.txt", 80))
	dir2.Add(dir1)

	dir2.Render(w, 0)
	fmt.Fprintf(w, "\nTotal size of %s: %d B\n", dir2.Name(), dir2.Size())
	return nil
}
