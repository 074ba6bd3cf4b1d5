// Package abstractfactory demonstrates the Abstract Factory pattern: one
// factory interface that creates a whole family of related products, keeping
// the family members consistent with each other.
//
// Intent: provide an interface for creating families of related objects
// without specifying their concrete types.
//
// Applicability:
//   - A system should be independent of how its products are created.
//   - Related products must be used together (coffee pairs with milk, tea
//     with sugar) and that constraint should be enforced by construction.
//
// Trade-offs: adding a new product kind means touching every factory, since
// the factory interface names each product. If families never vary together,
// separate factory methods are lighter.
//
// The demo serves a coffee order (coffee + milk) and a tea order
// (tea + sugar) to two customers, each built from its family's factory.
package abstractfactory
