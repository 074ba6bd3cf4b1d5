// Package builder demonstrates the Builder pattern: step-by-step construction
// of a product behind a fluent interface, with a director encapsulating the
// recipes.
//
// Intent: separate the construction of a complex object from its
// representation so the same construction process can create different
// representations.
//
// Applicability:
//   - An object needs many optional parts assembled in steps.
//   - The same assembly sequence should produce different products (here the
//     director's recipes drive both a pizza and a sandwich builder).
//
// Trade-offs: a builder per product is extra code; for a type with a handful
// of fields, a struct literal or functional options do the same job with
// less ceremony. Builders earn their keep when construction order matters or
// when a director reuses recipes across products.
//
// The demo has a Director assemble a Hawaiian pizza, a veggie sandwich, and
// an Italian pizza, reusing the pizza builder between runs.
package builder
