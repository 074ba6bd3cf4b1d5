package builder

import (
	"fmt"
	"strings"
)

// Builder is the step interface shared by all product builders. Steps return
// the builder so recipes can chain them.
type Builder interface {
	Size(size string) Builder
	Base(base string) Builder
	Add(extra string) Builder
}

// Pizza is one product representation.
type Pizza struct {
	Size     string
	Crust    string
	Toppings []string
}

func (p Pizza) String() string {
	return fmt.Sprintf("Pizza: size=%s, crust=%s, toppings=[%s]",
		p.Size, p.Crust, strings.Join(p.Toppings, ", "))
}

// Sandwich is another product built from the same steps.
type Sandwich struct {
	Size   string
	Bread  string
	Sauces []string
}

func (s Sandwich) String() string {
	return fmt.Sprintf("Sandwich: size=%s, bread=%s, sauces=[%s]",
		s.Size, s.Bread, strings.Join(s.Sauces, ", "))
}

// PizzaBuilder assembles a Pizza. Build resets the topping list so the
// builder can be reused for the next recipe.
type PizzaBuilder struct {
	size     string
	crust    string
	toppings []string
}

func NewPizzaBuilder() *PizzaBuilder { return &PizzaBuilder{} }

func (b *PizzaBuilder) Size(size string) Builder {
	b.size = size
	return b
}

func (b *PizzaBuilder) Base(crust string) Builder {
	b.crust = crust
	return b
}

func (b *PizzaBuilder) Add(topping string) Builder {
	b.toppings = append(b.toppings, topping)
	return b
}

func (b *PizzaBuilder) Build() Pizza {
	pizza := Pizza{Size: b.size, Crust: b.crust, Toppings: b.toppings}
	b.toppings = nil
	return pizza
}

// SandwichBuilder assembles a Sandwich.
type SandwichBuilder struct {
	size   string
	bread  string
	sauces []string
}

func NewSandwichBuilder() *SandwichBuilder { return &SandwichBuilder{} }

func (b *SandwichBuilder) Size(size string) Builder {
	b.size = size
	return b
}

func (b *SandwichBuilder) Base(bread string) Builder {
	b.bread = bread
	return b
}

func (b *SandwichBuilder) Add(sauce string) Builder {
	b.sauces = append(b.sauces, sauce)
	return b
}

func (b *SandwichBuilder) Build() Sandwich {
	sandwich := Sandwich{Size: b.size, Bread: b.bread, Sauces: b.sauces}
	b.sauces = nil
	return sandwich
}

// Director knows the recipes. It drives any Builder through the steps
// without knowing which product comes out.
type Director struct{}

func (Director) HawaiianPizza(b Builder) {
	b.Size("Large").
		Base("Thin").
		Add("Ham").
		Add("Pineapple")
}

func (Director) ItalianPizza(b Builder) {
	b.Size("Large").
		Base("Thick").
		Add("Sausage")
}

func (Director) VeggieSandwich(b Builder) {
	b.Size("Large").
		Base("Gluten Free").
		Add("Avocado").
		Add("Black Beans")
}
