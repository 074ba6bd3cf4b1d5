package catalog

import (
	"context"
	"io"
)

// Category groups demos by the classic pattern taxonomy.
type Category string

const (
	CategoryBehavioral Category = "behavioral"
	CategoryCreational Category = "creational"
	CategoryStructural Category = "structural"
)

// Demo is a runnable pattern demonstration.
type Demo interface {
	// Name returns the unique demo name used for lookup (e.g. "strategy").
	Name() string

	// Category returns the pattern taxonomy group the demo belongs to.
	Category() Category

	// Brief returns a one-line summary shown in listings.
	Brief() string

	// Run executes the demonstration, writing illustrative output to w.
	Run(ctx context.Context, w io.Writer) error
}

// Func adapts a plain function into a Demo. Pattern packages use it to
// register their demo without declaring a dedicated type.
type Func struct {
	DemoName     string
	DemoCategory Category
	DemoBrief    string
	RunFunc      func(ctx context.Context, w io.Writer) error
}

func (f Func) Name() string       { return f.DemoName }
func (f Func) Category() Category { return f.DemoCategory }
func (f Func) Brief() string      { return f.DemoBrief }

func (f Func) Run(ctx context.Context, w io.Writer) error {
	return f.RunFunc(ctx, w)
}
