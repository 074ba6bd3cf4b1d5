// Package strategy demonstrates the Strategy pattern: a family of
// interchangeable algorithms behind one interface, selected at runtime by
// the context that uses them.
//
// Intent: define a family of algorithms, encapsulate each one, and make them
// interchangeable. Strategy lets the algorithm vary independently from the
// clients that use it.
//
// Applicability:
//   - Many related types differ only in behavior.
//   - A type needs different variants of an algorithm (here: sort order of
//     magnitude vs. stability vs. simplicity).
//   - An algorithm uses data its clients should not know about.
//
// Trade-offs: clients must understand how strategies differ to pick one, and
// the indirection costs an interface call per use. With only one algorithm
// and no runtime switching, a plain function is simpler.
//
// The demo sorts the same six-element slice with bubble, merge, and quick
// sort through a Processor whose strategy is swapped between runs.
package strategy
