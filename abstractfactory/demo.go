package abstractfactory

import (
	"context"
	"fmt"
	"io"

	"github.com/kbukum/patternkit/catalog"
)

func init() {
	catalog.MustRegister(catalog.Func{
		DemoName:     "abstract-factory",
		DemoCategory: catalog.CategoryCreational,
		DemoBrief:    "Serve matched beverage/topping families from family factories",
		RunFunc:      runDemo,
	})
}

func runDemo(_ context.Context, w io.Writer) error {
	coffeeLover := NewCustomer(CoffeeFactory{})
	for _, line := range coffeeLover.Enjoy() {
		fmt.Fprintln(w, line)
	}

	fmt.Fprintln(w)

	teaLover := NewCustomer(TeaFactory{})
	for _, line := range teaLover.Enjoy() {
		fmt.Fprintln(w, line)
	}
	return nil
}
