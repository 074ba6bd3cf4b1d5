// Package factorymethod demonstrates the Factory Method pattern: a creator
// interface whose implementations decide which concrete product to
// instantiate.
//
// Intent: define an interface for creating an object, but let subtypes decide
// which type to instantiate, deferring instantiation to them.
//
// Applicability:
//   - A type cannot anticipate the concrete products it must create.
//   - Creation knowledge should live next to the product, not the caller.
//
// Trade-offs: every new product needs a new factory type. In Go, a simple
// constructor function or a map of constructors often covers the same ground;
// the interface form pays off when factories carry state or are passed around.
//
// The demo builds a car and a motorcycle through their factories and drives
// each one.
package factorymethod
