package factorymethod

// Vehicle is the product interface.
type Vehicle interface {
	Drive() string
}

// VehicleFactory is the creator interface: the factory method.
type VehicleFactory interface {
	CreateVehicle() Vehicle
}

type Car struct{}

func (Car) Drive() string { return "Driving a car!" }

type Motorcycle struct{}

func (Motorcycle) Drive() string { return "Driving a motorcycle!" }

// CarFactory creates cars.
type CarFactory struct{}

func (CarFactory) CreateVehicle() Vehicle { return Car{} }

// MotorcycleFactory creates motorcycles.
type MotorcycleFactory struct{}

func (MotorcycleFactory) CreateVehicle() Vehicle { return Motorcycle{} }
