// Package decorator demonstrates the Decorator pattern: wrappers that add
// behavior to a data source without changing its interface, stackable in any
// order.
//
// Intent: attach additional responsibilities to an object dynamically.
// Decorators provide a flexible alternative to subclassing for extending
// behavior.
//
// Applicability:
//   - Responsibilities should be addable and removable per instance, not per
//     type (this file compressed, that one compressed and encrypted).
//   - Extension by wrapping beats a combinatorial explosion of subtypes.
//
// Trade-offs: a stack of small wrapped objects is harder to debug than a
// flat type, and decorator order matters: here Write applies layers
// outside-in and Read peels them inside-out, so a mismatched stack fails to
// decode. This is the same shape the standard library uses for io.Reader
// wrapping.
//
// The demo writes a salary CSV through compression and encryption onto a
// file source, shows the unreadable encoded bytes, and reads them back
// through the same stack.
package decorator
