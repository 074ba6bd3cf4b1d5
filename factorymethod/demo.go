package factorymethod

import (
	"context"
	"fmt"
	"io"

	"github.com/kbukum/patternkit/catalog"
)

func init() {
	catalog.MustRegister(catalog.Func{
		DemoName:     "factory-method",
		DemoCategory: catalog.CategoryCreational,
		DemoBrief:    "Let each factory decide which vehicle to instantiate",
		RunFunc:      runDemo,
	})
}

func runDemo(_ context.Context, w io.Writer) error {
	for _, factory := range []VehicleFactory{CarFactory{}, MotorcycleFactory{}} {
		vehicle := factory.CreateVehicle()
		fmt.Fprintln(w, vehicle.Drive())
	}
	return nil
}
