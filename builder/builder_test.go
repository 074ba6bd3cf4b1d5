package builder

import (
	"bytes"
	"context"
	"reflect"
	"strings"
	"testing"
)

func TestDirector_Recipes(t *testing.T) {
	var director Director

	pb := NewPizzaBuilder()
	director.HawaiianPizza(pb)
	pizza := pb.Build()

	if pizza.Size != "Large" || pizza.Crust != "Thin" {
		t.Errorf("unexpected pizza base: %+v", pizza)
	}
	if !reflect.DeepEqual(pizza.Toppings, []string{"Ham", "Pineapple"}) {
		t.Errorf("expected Hawaiian toppings, got %v", pizza.Toppings)
	}

	sb := NewSandwichBuilder()
	director.VeggieSandwich(sb)
	sandwich := sb.Build()

	if sandwich.Bread != "Gluten Free" {
		t.Errorf("expected gluten free bread, got %s", sandwich.Bread)
	}
	if !reflect.DeepEqual(sandwich.Sauces, []string{"Avocado", "Black Beans"}) {
		t.Errorf("expected veggie sauces, got %v", sandwich.Sauces)
	}
}

func TestPizzaBuilder_ReusableAfterBuild(t *testing.T) {
	var director Director
	pb := NewPizzaBuilder()

	director.HawaiianPizza(pb)
	first := pb.Build()

	director.ItalianPizza(pb)
	second := pb.Build()

	if len(first.Toppings) != 2 {
		t.Errorf("expected 2 toppings on the first pizza, got %v", first.Toppings)
	}
	if !reflect.DeepEqual(second.Toppings, []string{"Sausage"}) {
		t.Errorf("expected toppings reset between builds, got %v", second.Toppings)
	}
}

func TestProduct_Strings(t *testing.T) {
	p := Pizza{Size: "Small", Crust: "Thin", Toppings: []string{"Cheese"}}
	if got := p.String(); got != "Pizza: size=Small, crust=Thin, toppings=[Cheese]" {
		t.Errorf("unexpected pizza string: %s", got)
	}
}

func TestDemoOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := runDemo(context.Background(), &buf); err != nil {
		t.Fatalf("demo error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"toppings=[Ham, Pineapple]",
		"sauces=[Avocado, Black Beans]",
		"toppings=[Sausage]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}
