package prototype

// ProductFactory creates a beverage/topping pair.
type ProductFactory interface {
	CreateBeverage() Beverage
	CreateTopping() Topping
}

// Factory is a prototype factory: it is parameterized with exemplar
// instances and stamps out clones on every create call.
type Factory struct {
	beverage Beverage
	topping  Topping
}

// NewFactory creates a factory around the given prototypes.
func NewFactory(beverage Beverage, topping Topping) *Factory {
	return &Factory{beverage: beverage, topping: topping}
}

func (f *Factory) CreateBeverage() Beverage { return f.beverage.Clone() }
func (f *Factory) CreateTopping() Topping   { return f.topping.Clone() }

// Customer holds its own clones, customizes them, and enjoys the order.
type Customer struct {
	beverage Beverage
	topping  Topping
}

// NewCustomer stamps a fresh beverage and topping out of the factory.
func NewCustomer(factory ProductFactory) *Customer {
	return &Customer{
		beverage: factory.CreateBeverage(),
		topping:  factory.CreateTopping(),
	}
}

// Order customizes the customer's clones. The factory prototypes are
// untouched.
func (c *Customer) Order(beverageKind, toppingName string) {
	c.beverage.SetKind(beverageKind)
	c.topping.SetName(toppingName)
}

// Enjoy consumes the order and returns what happened, line by line.
func (c *Customer) Enjoy() []string {
	return []string{c.beverage.Serve(), c.topping.Add()}
}
