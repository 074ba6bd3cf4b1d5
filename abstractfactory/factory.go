package abstractfactory

// Beverage is the first product kind in the family.
type Beverage interface {
	Serve() string
}

// Topping is the second product kind in the family.
type Topping interface {
	Add() string
}

// BeverageFactory creates a matched beverage/topping pair.
type BeverageFactory interface {
	CreateBeverage() Beverage
	CreateTopping() Topping
}

// --- Coffee family ---

type Coffee struct{}

func (Coffee) Serve() string { return "Here's your hot coffee!" }

type Milk struct{}

func (Milk) Add() string { return "Adding Milk..." }

// CoffeeFactory produces the coffee family: coffee with milk.
type CoffeeFactory struct{}

func (CoffeeFactory) CreateBeverage() Beverage { return Coffee{} }
func (CoffeeFactory) CreateTopping() Topping   { return Milk{} }

// --- Tea family ---

type Tea struct{}

func (Tea) Serve() string { return "Here's your hot tea!" }

type Sugar struct{}

func (Sugar) Add() string { return "Adding Sugar..." }

// TeaFactory produces the tea family: tea with sugar.
type TeaFactory struct{}

func (TeaFactory) CreateBeverage() Beverage { return Tea{} }
func (TeaFactory) CreateTopping() Topping   { return Sugar{} }

// Customer is the client. It only ever sees the abstract factory, so it
// cannot mix products from different families.
type Customer struct {
	beverage Beverage
	topping  Topping
}

// NewCustomer orders a full set of products from one factory.
func NewCustomer(factory BeverageFactory) *Customer {
	return &Customer{
		beverage: factory.CreateBeverage(),
		topping:  factory.CreateTopping(),
	}
}

// Enjoy consumes the order and returns what happened, line by line.
func (c *Customer) Enjoy() []string {
	return []string{c.beverage.Serve(), c.topping.Add()}
}
