// Package flyweight demonstrates the Flyweight pattern: sharing immutable
// intrinsic state (a tree's kind, color, texture) across many lightweight
// objects that carry only extrinsic state (position).
//
// Intent: use sharing to support large numbers of fine-grained objects
// efficiently.
//
// Applicability:
//   - Object counts are large and most of each object's state is repeated
//     verbatim across instances.
//   - The repeated state can be made immutable and shared by reference.
//
// Trade-offs: the cache that deduplicates flyweights is shared mutable
// infrastructure and must be synchronized; extrinsic state has to travel as
// call arguments instead of living on the object. Sharing only pays when the
// intrinsic state dwarfs the per-object remainder.
//
// The demo plants ten trees of two kinds and prints how many kind objects
// were actually allocated and the bytes saved by sharing.
package flyweight
