package flyweight

import (
	"context"
	"fmt"
	"io"
	"math/rand"

	"github.com/kbukum/patternkit/catalog"
)

const (
	canvasSize  = 500
	treesToDraw = 10
)

// DemoSeed fixes the forest layout so the demo prints the same text every
// run. Overridable through the demo configuration section.
var DemoSeed int64 = 1

func init() {
	catalog.MustRegister(catalog.Func{
		DemoName:     "flyweight",
		DemoCategory: catalog.CategoryStructural,
		DemoBrief:    "Plant a forest where ten trees share two kind objects",
		RunFunc:      runDemo,
	})
}

func runDemo(_ context.Context, w io.Writer) error {
	rng := rand.New(rand.NewSource(DemoSeed))
	forest := NewForest()

	for i := 0; i < treesToDraw/2; i++ {
		forest.Plant(rng.Intn(canvasSize), rng.Intn(canvasSize),
			"Summer Oak", "green", "rough bark")
		forest.Plant(rng.Intn(canvasSize), rng.Intn(canvasSize),
			"Autumn Oak", "orange", "rough bark")
	}

	for _, tree := range forest.Trees() {
		fmt.Fprintf(w, "%-10s at (%3d, %3d)\n", tree.Kind.Name, tree.X, tree.Y)
	}

	fmt.Fprintln(w, "-----------------------------")
	fmt.Fprintln(w, forest.Memory())
	return nil
}
