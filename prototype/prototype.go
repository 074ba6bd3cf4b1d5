package prototype

import "fmt"

// Beverage is a cloneable product. Clone returns an independent copy
// preserving the receiver's state.
type Beverage interface {
	SetKind(kind string)
	Serve() string
	Clone() Beverage
}

// Topping is the second cloneable product kind.
type Topping interface {
	SetName(name string)
	Add() string
	Clone() Topping
}

// Coffee is a beverage prototype.
type Coffee struct {
	Kind string
}

// NewCoffee creates the exemplar the factory clones from.
func NewCoffee() *Coffee { return &Coffee{Kind: "house blend"} }

func (c *Coffee) SetKind(kind string) { c.Kind = kind }

func (c *Coffee) Serve() string {
	return fmt.Sprintf("Here's your %s coffee!", c.Kind)
}

func (c *Coffee) Clone() Beverage {
	clone := *c
	return &clone
}

// Tea is a beverage prototype.
type Tea struct {
	Kind string
}

func NewTea() *Tea { return &Tea{Kind: "green"} }

func (t *Tea) SetKind(kind string) { t.Kind = kind }

func (t *Tea) Serve() string {
	return fmt.Sprintf("Here's your %s tea!", t.Kind)
}

func (t *Tea) Clone() Beverage {
	clone := *t
	return &clone
}

// Milk is a topping prototype. Notes is a reference type, so Clone copies it
// element-wise; ShallowClone shares it to demonstrate the difference.
type Milk struct {
	Name  string
	Notes []string
}

func NewMilk() *Milk { return &Milk{Name: "Whole", Notes: []string{"steamed"}} }

func (m *Milk) SetName(name string) { m.Name = name }

func (m *Milk) Add() string {
	return fmt.Sprintf("Adding %s Milk...", m.Name)
}

func (m *Milk) Clone() Topping {
	clone := *m
	clone.Notes = append([]string(nil), m.Notes...)
	return &clone
}

// ShallowClone copies the struct but shares the Notes slice with the
// receiver. Mutating the clone's notes mutates the prototype's too.
func (m *Milk) ShallowClone() *Milk {
	clone := *m
	return &clone
}

// Sugar is a topping prototype.
type Sugar struct {
	Name string
}

func NewSugar() *Sugar { return &Sugar{Name: "White"} }

func (s *Sugar) SetName(name string) { s.Name = name }

func (s *Sugar) Add() string {
	return fmt.Sprintf("Adding %s Sugar...", s.Name)
}

func (s *Sugar) Clone() Topping {
	clone := *s
	return &clone
}
