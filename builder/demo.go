package builder

import (
	"context"
	"fmt"
	"io"

	"github.com/kbukum/patternkit/catalog"
)

func init() {
	catalog.MustRegister(catalog.Func{
		DemoName:     "builder",
		DemoCategory: catalog.CategoryCreational,
		DemoBrief:    "Assemble pizzas and sandwiches step by step through a director",
		RunFunc:      runDemo,
	})
}

func runDemo(_ context.Context, w io.Writer) error {
	var director Director
	pizzas := NewPizzaBuilder()
	sandwiches := NewSandwichBuilder()

	director.HawaiianPizza(pizzas)
	director.VeggieSandwich(sandwiches)

	fmt.Fprintln(w, pizzas.Build())
	fmt.Fprintln(w, sandwiches.Build())

	// The pizza builder is reusable: Build cleared the topping state.
	director.ItalianPizza(pizzas)
	fmt.Fprintln(w, pizzas.Build())
	return nil
}
