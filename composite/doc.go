// Package composite demonstrates the Composite pattern: part/whole trees
// whose leaves and containers share one interface, so clients treat a single
// file and a whole directory uniformly.
//
// Intent: compose objects into tree structures to represent part-whole
// hierarchies, letting clients treat individual objects and compositions
// uniformly.
//
// Applicability:
//   - The domain is naturally recursive (file systems, UI widgets, org
//     charts).
//   - Clients should not care whether they hold a leaf or a subtree.
//
// Trade-offs: a maximally-uniform interface forces leaves to answer
// container questions. Here the child-management methods live on Dir only;
// the shared Node interface carries what both can answer (name, size,
// render). That trades some uniformity for type safety — the classic design
// tension in this pattern.
//
// The demo builds the canonical two-directory, three-file tree, renders it
// indented, and aggregates sizes up the tree.
package composite
