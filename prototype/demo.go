package prototype

import (
	"context"
	"fmt"
	"io"

	"github.com/kbukum/patternkit/catalog"
)

func init() {
	catalog.MustRegister(catalog.Func{
		DemoName:     "prototype",
		DemoCategory: catalog.CategoryCreational,
		DemoBrief:    "Stamp customized orders out of cloneable prototypes",
		RunFunc:      runDemo,
	})
}

func runDemo(_ context.Context, w io.Writer) error {
	coffeePrototype := NewCoffee()
	teaPrototype := NewTea()
	milkPrototype := NewMilk()
	sugarPrototype := NewSugar()

	coffeeMilk := NewFactory(coffeePrototype, milkPrototype)
	teaSugar := NewFactory(teaPrototype, sugarPrototype)

	coffeeLover := NewCustomer(coffeeMilk)
	teaLover := NewCustomer(teaSugar)

	coffeeLover.Order("dark roast", "Almond")
	teaLover.Order("earl grey", "Brown")

	for _, line := range coffeeLover.Enjoy() {
		fmt.Fprintln(w, line)
	}
	for _, line := range teaLover.Enjoy() {
		fmt.Fprintln(w, line)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Prototypes untouched: %s / %s Milk\n", coffeePrototype.Kind, milkPrototype.Name)

	// Shallow vs deep: the shallow clone shares the prototype's note list.
	shallow := milkPrototype.ShallowClone()
	shallow.Notes[0] = "scalded"
	deep := milkPrototype.Clone().(*Milk)
	deep.Notes[0] = "frothed"
	fmt.Fprintf(w, "After shallow clone edit, prototype notes: %v\n", milkPrototype.Notes)
	return nil
}
